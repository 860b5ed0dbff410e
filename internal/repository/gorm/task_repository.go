package gorm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"organizer/domain/task"

	"gorm.io/gorm"
)

// likeEscaper escapes LIKE wildcards so a search term matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) task.Repository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *task.Task) error {
	prepare(t)
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TaskRepository) FindAll(ctx context.Context, filters task.TaskFilters) ([]task.Task, error) {
	tasks := []task.Task{}
	query := r.db.WithContext(ctx).Model(&task.Task{})

	if filters.TitleContains != nil {
		pattern := "%" + likeEscaper.Replace(task.FoldTitle(*filters.TitleContains)) + "%"
		query = query.Where(`title_search LIKE ? ESCAPE '\'`, pattern)
	}

	if filters.DueOn != nil {
		start, end := task.DayBounds(*filters.DueOn)
		query = query.Where("due_date >= ? AND due_date < ?", start, end)
	}

	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}

	err := query.Order("id").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*task.Task, error) {
	var t task.Task
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, task.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Update replaces the mutable fields of the row identified by t.ID in one
// statement. It never inserts.
func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	prepare(t)
	result := r.db.WithContext(ctx).
		Model(t).
		Select("Title", "TitleSearch", "Description", "DueDate", "Status", "UpdatedAt").
		Updates(t)
	if result.Error != nil {
		return fmt.Errorf("update task %d: %w", t.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return task.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&task.Task{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete task %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return task.ErrNotFound
	}
	return nil
}

func prepare(t *task.Task) {
	t.TitleSearch = task.FoldTitle(t.Title)
	t.DueDate = task.NormalizeDueDate(t.DueDate)
}
