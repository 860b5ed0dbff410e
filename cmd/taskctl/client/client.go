package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"organizer/internal/httpclient"
)

const tasksPath = "/api/v1/tasks"

// Client interface for interacting with the organizer API
type Client interface {
	CreateTask(ctx context.Context, req *TaskRequest) (*Task, error)
	UpdateTask(ctx context.Context, id uint, req *TaskRequest) (*Task, error)
	GetTask(ctx context.Context, id uint) (*Task, error)
	ListTasks(ctx context.Context) ([]Task, error)
	SearchTasks(ctx context.Context, search *SearchRequest) ([]Task, error)
	DeleteTask(ctx context.Context, id uint) error
}

// HTTPClient implements the Client interface
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a new HTTP client
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  httpclient.NewClient("taskctl", 30*time.Second),
	}
}

// TaskRequest is the body of create and update calls. DueDate is sent as
// typed and parsed by the server.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status,omitempty"`
}

// SearchRequest selects one search; exactly one field should be set
type SearchRequest struct {
	Title  string
	Date   string
	Status string
}

// Task represents a task from the API
type Task struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// APIError is returned for any non-success response
type APIError struct {
	StatusCode int
	Message    string `json:"error"`
	Field      string `json:"field"`
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("API error: status %d, field %s: %s", e.StatusCode, e.Field, e.Message)
	}
	return fmt.Sprintf("API error: status %d: %s", e.StatusCode, e.Message)
}

// CreateTask creates a new task via the API
func (c *HTTPClient) CreateTask(ctx context.Context, req *TaskRequest) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPost, c.baseURL+tasksPath, req, http.StatusCreated, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask replaces the fields of an existing task
func (c *HTTPClient) UpdateTask(ctx context.Context, id uint, req *TaskRequest) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPut, c.taskURL(id), req, http.StatusOK, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// GetTask gets task details by ID
func (c *HTTPClient) GetTask(ctx context.Context, id uint) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodGet, c.taskURL(id), nil, http.StatusOK, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// ListTasks lists every task
func (c *HTTPClient) ListTasks(ctx context.Context) ([]Task, error) {
	tasks := []Task{}
	if err := c.do(ctx, http.MethodGet, c.baseURL+tasksPath, nil, http.StatusOK, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// SearchTasks runs the search selected in search
func (c *HTTPClient) SearchTasks(ctx context.Context, search *SearchRequest) ([]Task, error) {
	if search == nil {
		return nil, fmt.Errorf("search criteria are required")
	}

	var by, key, value string
	switch {
	case search.Title != "":
		by, key, value = "title", "title", search.Title
	case search.Date != "":
		by, key, value = "date", "date", search.Date
	case search.Status != "":
		by, key, value = "status", "status", search.Status
	default:
		return nil, fmt.Errorf("one of title, date or status is required")
	}

	u, err := url.Parse(c.baseURL + tasksPath + "/search/" + by)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()

	tasks := []Task{}
	if err := c.do(ctx, http.MethodGet, u.String(), nil, http.StatusOK, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// DeleteTask deletes a task by ID
func (c *HTTPClient) DeleteTask(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, c.taskURL(id), nil, http.StatusNoContent, nil)
}

func (c *HTTPClient) taskURL(id uint) string {
	return c.baseURL + tasksPath + "/" + strconv.FormatUint(uint64(id), 10)
}

func (c *HTTPClient) do(ctx context.Context, method, target string, body any, wantStatus int, out any) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	data, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(data, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = string(bytes.TrimSpace(data))
	}
	return apiErr
}
