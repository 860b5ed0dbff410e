package app

import (
	"context"

	taskService "organizer/app/service/task"
	"organizer/domain/task"
	"organizer/internal/dbconn"
	gormRepo "organizer/internal/repository/gorm"

	"gorm.io/gorm"
)

// Container wires the storage handle into the services. The handle is
// passed explicitly; repositories open a request-scoped session from it per
// call.
type Container struct {
	DB             *gorm.DB
	TaskRepository task.Repository
	TaskService    *taskService.Service
}

func NewContainer(db *gorm.DB) *Container {
	// Initialize repositories
	taskRepo := gormRepo.NewTaskRepository(db)

	// Initialize services
	taskSvc := taskService.NewService(taskRepo)

	return &Container{
		DB:             db,
		TaskRepository: taskRepo,
		TaskService:    taskSvc,
	}
}

func (c *Container) Migrate() error {
	return c.DB.AutoMigrate(&task.Task{})
}

// Ping checks the database behind the container.
func (c *Container) Ping(ctx context.Context) error {
	return dbconn.Ping(ctx, c.DB)
}
