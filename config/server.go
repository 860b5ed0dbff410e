package config

import (
	"organizer/app"
	"organizer/app/middleware/requestlog"
	"organizer/internal/logging"
	"organizer/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// NewServer builds the echo instance with middleware and every route.
func NewServer(container *app.Container, logger *logrus.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(logging.EchoLevel(logger.GetLevel()))
	e.Validator = validator.New()

	e.Use(requestlog.RequestID())
	e.Use(requestlog.New(logger))
	e.Use(middleware.Recover())

	AddRoutes(e, container)
	return e
}
