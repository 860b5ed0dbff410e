package task

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

type Task struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `json:"title" gorm:"not null"`
	TitleSearch string    `json:"-" gorm:"index;not null"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date" gorm:"index;not null"`
	Status      Status    `json:"status" gorm:"type:varchar(16);index;not null"`
}

// TaskFilters narrows FindAll. Nil fields are not applied; all set fields
// must match.
type TaskFilters struct {
	TitleContains *string
	DueOn         *time.Time
	Status        *Status
}

// FoldTitle returns the case-folded form of a title used for substring search.
// Lowering first keeps dotted capital I as a plain i, which full folding
// would expand to i plus a combining dot.
func FoldTitle(title string) string {
	return cases.Fold().String(strings.ToLower(title))
}

// NormalizeDueDate keeps the wall clock of t and drops its offset, so two due
// dates compare by calendar date regardless of the zone they arrived in.
func NormalizeDueDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// DayBounds returns the half-open [start, end) range covering the calendar
// date of t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}
