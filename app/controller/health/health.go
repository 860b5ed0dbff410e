// Package health is for the health route
package health

import (
	"context"
	"net/http"
	"time"

	"organizer/version"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

const pingTimeout = 2 * time.Second

type (
	// Pinger reports whether the database answers.
	Pinger func(ctx context.Context) error

	Handler struct {
		ping Pinger
	}
	OkResponse struct {
		Ok       bool   `json:"ok"`
		Version  string `json:"version"`
		Database string `json:"database"`
	}
)

func NewHandler(ping Pinger) *Handler {
	return &Handler{ping: ping}
}

func (h Handler) GET(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		log.WithError(err).Warn("health check: database unreachable")
		return c.JSON(http.StatusServiceUnavailable, OkResponse{
			Ok:       false,
			Version:  version.Version,
			Database: "unreachable",
		})
	}

	return c.JSON(http.StatusOK, OkResponse{
		Ok:       true,
		Version:  version.Version,
		Database: "ok",
	})
}

func Register(g *echo.Group, ping Pinger) {
	h := NewHandler(ping)

	g.GET("/health", h.GET)
}
