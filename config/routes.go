package config

import (
	"organizer/app"
	"organizer/app/controller/health"
	"organizer/app/controller/tasks"

	"github.com/labstack/echo/v4"
)

// TasksPath is the base path of the task resource.
const TasksPath = "/api/v1/tasks"

func AddRoutes(e *echo.Echo, container *app.Container) {
	root := e.Group("")

	health.Register(root, container.Ping)

	tasksHandler := tasks.NewHandler(container.TaskService)
	tasksHandler.RegisterRoutes(e.Group(TasksPath))
}
