package task

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("task not found")

// Repository is the storage collaborator for tasks. Every method issues a
// single statement, so each write is atomic for the record it touches.
type Repository interface {
	Create(ctx context.Context, task *Task) error
	FindAll(ctx context.Context, filters TaskFilters) ([]Task, error)
	FindByID(ctx context.Context, id uint) (*Task, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id uint) error
}
