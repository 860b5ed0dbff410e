package task

import (
	"fmt"
	"strings"
	"time"
)

// dueDateLayouts are tried in order. Values without an offset are read as a
// wall clock.
var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
}

type InvalidDueDateError struct {
	Value string
}

func (e *InvalidDueDateError) Error() string {
	return fmt.Sprintf("invalid date %q: use YYYY-MM-DD or YYYY-MM-DDTHH:MM[:SS][Z|±HH:MM]", e.Value)
}

// ParseDueDate accepts a date, a date and wall-clock time, or an RFC 3339
// timestamp. The result keeps the wall clock as given; see NormalizeDueDate.
func ParseDueDate(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return NormalizeDueDate(t), nil
		}
	}
	return time.Time{}, &InvalidDueDateError{Value: s}
}
