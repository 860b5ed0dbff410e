// Package task holds the task resource operations: validation, filtering and
// the single storage write each mutation performs.
package task

import (
	"context"
	"strings"
	"time"

	"organizer/domain/task"

	log "github.com/sirupsen/logrus"
)

// Manager defines the task operations exposed to the transport layer.
type Manager interface {
	GetByID(ctx context.Context, id uint) (*task.Task, error)
	GetAll(ctx context.Context) ([]task.Task, error)
	GetByTitle(ctx context.Context, title string) ([]task.Task, error)
	GetByDate(ctx context.Context, date time.Time) ([]task.Task, error)
	GetByStatus(ctx context.Context, status task.Status) ([]task.Task, error)
	Create(ctx context.Context, in *Input) (*task.Task, error)
	Update(ctx context.Context, id uint, in *Input) (*task.Task, error)
	Delete(ctx context.Context, id uint) error
}

// Input carries the caller-supplied fields of a task. The ID is never taken
// from input.
type Input struct {
	Title       string
	Description string
	DueDate     time.Time
	Status      task.Status
}

type Service struct {
	repo task.Repository
}

func NewService(repo task.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id uint) (*task.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) GetAll(ctx context.Context) ([]task.Task, error) {
	return s.repo.FindAll(ctx, task.TaskFilters{})
}

func (s *Service) GetByTitle(ctx context.Context, title string) ([]task.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, invalid("title", "title query parameter is required")
	}
	return s.repo.FindAll(ctx, task.TaskFilters{TitleContains: &title})
}

func (s *Service) GetByDate(ctx context.Context, date time.Time) ([]task.Task, error) {
	return s.repo.FindAll(ctx, task.TaskFilters{DueOn: &date})
}

func (s *Service) GetByStatus(ctx context.Context, status task.Status) ([]task.Task, error) {
	if !status.Valid() {
		return nil, invalid("status", (&task.InvalidStatusError{Value: string(status)}).Error())
	}
	return s.repo.FindAll(ctx, task.TaskFilters{Status: &status})
}

func (s *Service) Create(ctx context.Context, in *Input) (*task.Task, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	newTask := &task.Task{
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Status:      statusOrDefault(in.Status),
	}

	if err := s.repo.Create(ctx, newTask); err != nil {
		return nil, err
	}

	log.WithField("task_id", newTask.ID).Info("task created")
	return newTask, nil
}

// Update checks existence before validating input, so a missing task is
// reported as not found even when the payload is also invalid.
func (s *Service) Update(ctx context.Context, id uint, in *Input) (*task.Task, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validate(in); err != nil {
		return nil, err
	}

	existing.Title = in.Title
	existing.Description = in.Description
	existing.DueDate = in.DueDate
	existing.Status = statusOrDefault(in.Status)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	log.WithField("task_id", existing.ID).Info("task updated")
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.WithField("task_id", id).Info("task deleted")
	return nil
}

func validate(in *Input) error {
	if in == nil {
		return invalid("task", "task payload is required")
	}
	if in.DueDate.IsZero() {
		return invalid("due_date", "due date is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return invalid("title", "title is required")
	}
	if in.Status != "" && !in.Status.Valid() {
		return invalid("status", (&task.InvalidStatusError{Value: string(in.Status)}).Error())
	}
	return nil
}

func statusOrDefault(st task.Status) task.Status {
	if st == "" {
		return task.StatusPending
	}
	return st
}
