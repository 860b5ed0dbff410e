// Package tasks exposes the task resource over HTTP
package tasks

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	taskService "organizer/app/service/task"
	"organizer/domain/task"
	"organizer/internal/validator"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// RouteGetTask names the GET /:id route so Create can point at it.
const RouteGetTask = "tasks.get"

type (
	Handler struct {
		svc taskService.Manager
	}

	// TaskRequest is the body of create and update calls. An "id" in the body
	// is ignored.
	TaskRequest struct {
		Title       string      `json:"title"`
		Description string      `json:"description"`
		DueDate     DueDate     `json:"due_date"`
		Status      task.Status `json:"status"`
	}

	// DueDate decodes the due date layouts accepted by task.ParseDueDate.
	DueDate struct {
		time.Time
	}

	DateQuery struct {
		Date string `query:"date" validate:"required"`
	}

	StatusQuery struct {
		Status string `query:"status" validate:"required"`
	}

	ErrorResponse struct {
		Error string `json:"error"`
		Field string `json:"field,omitempty"`
	}
)

func NewHandler(svc taskService.Manager) *Handler {
	return &Handler{svc: svc}
}

func (d *DueDate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		d.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &task.InvalidDueDateError{Value: string(data)}
	}

	t, err := task.ParseDueDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (r *TaskRequest) toInput() *taskService.Input {
	if r == nil {
		return nil
	}
	return &taskService.Input{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate.Time,
		Status:      r.Status,
	}
}

// Get handles GET /:id
func (h *Handler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.idFailure(c, err)
	}

	t, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, t)
}

// Index handles GET / and returns every task
func (h *Handler) Index(c echo.Context) error {
	tasks, err := h.svc.GetAll(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) SearchByTitle(c echo.Context) error {
	tasks, err := h.svc.GetByTitle(c.Request().Context(), c.QueryParam("title"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) SearchByDate(c echo.Context) error {
	var q DateQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return badRequest(c, "date", "Invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return h.fail(c, err)
	}

	date, err := task.ParseDueDate(q.Date)
	if err != nil {
		return badRequest(c, "date", err.Error())
	}

	tasks, err := h.svc.GetByDate(c.Request().Context(), date)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) SearchByStatus(c echo.Context) error {
	var q StatusQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return badRequest(c, "status", "Invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return h.fail(c, err)
	}

	status, err := task.ParseStatus(q.Status)
	if err != nil {
		return badRequest(c, "status", err.Error())
	}

	tasks, err := h.svc.GetByStatus(c.Request().Context(), status)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, tasks)
}

// Create handles POST / and answers 201 with a Location header for the new
// task.
func (h *Handler) Create(c echo.Context) error {
	req, err := bindTask(c)
	if err != nil {
		return bindFailure(c, err)
	}

	created, err := h.svc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return h.fail(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, c.Echo().Reverse(RouteGetTask, created.ID))
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /:id
func (h *Handler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.idFailure(c, err)
	}

	req, err := bindTask(c)
	if err != nil {
		return bindFailure(c, err)
	}

	updated, err := h.svc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /:id
func (h *Handler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.idFailure(c, err)
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.Index)
	g.POST("", h.Create)
	g.GET("/search/title", h.SearchByTitle)
	g.GET("/search/date", h.SearchByDate)
	g.GET("/search/status", h.SearchByStatus)
	g.GET("/:id", h.Get).Name = RouteGetTask
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// fail maps service errors onto the response contract. Anything that is not
// a known kind is a storage failure.
func (h *Handler) fail(c echo.Context, err error) error {
	var verr *taskService.ValidationError
	var ferr *validator.FieldError

	switch {
	case errors.Is(err, taskService.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})
	case errors.As(err, &verr):
		return badRequest(c, verr.Field, verr.Message)
	case errors.As(err, &ferr):
		return badRequest(c, ferr.Field, ferr.Error())
	default:
		log.WithError(err).
			WithField("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
			Error("task request failed")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to process task request",
		})
	}
}

// bindTask decodes the JSON body. A missing body or a literal null yields a
// nil request.
func bindTask(c echo.Context) (*TaskRequest, error) {
	var req *TaskRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return nil, err
	}
	return req, nil
}

func bindFailure(c echo.Context, err error) error {
	var statusErr *task.InvalidStatusError
	var dueErr *task.InvalidDueDateError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &statusErr):
		return badRequest(c, "status", statusErr.Error())
	case errors.As(err, &dueErr):
		return badRequest(c, "due_date", dueErr.Error())
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return badRequest(c, typeErr.Field, "Invalid value for "+typeErr.Field)
	case errors.Is(err, echo.ErrUnsupportedMediaType):
		return c.JSON(http.StatusUnsupportedMediaType, ErrorResponse{Error: "Content-Type must be application/json"})
	default:
		return badRequest(c, "task", "Invalid request body")
	}
}

func badRequest(c echo.Context, field, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Field: field})
}

var errInvalidID = errors.New("id must be an integer")

// parseID rejects only values that are not integers. Integers that can never
// be stored (zero, negative, out of range) are reported as not found.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, taskService.ErrNotFound
	}
	if err != nil {
		return 0, errInvalidID
	}
	if id <= 0 || uint64(id) > uint64(^uint(0)) {
		return 0, taskService.ErrNotFound
	}
	return uint(id), nil
}

func (h *Handler) idFailure(c echo.Context, err error) error {
	if errors.Is(err, errInvalidID) {
		return badRequest(c, "id", err.Error())
	}
	return h.fail(c, err)
}
