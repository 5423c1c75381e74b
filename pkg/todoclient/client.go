// Package todoclient is a typed HTTP client for the todo-api server.
package todoclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Priority matches the wire representation used by the server.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Category groups todos under a name and a display color.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryWithCount is a category annotated with the number of todos
// referring to it.
type CategoryWithCount struct {
	Category

	TodoCount int64 `json:"todo_count"`
}

// Todo is a single tracked item.
type Todo struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	CategoryID  *int64     `json:"category_id"`
	Category    *Category  `json:"category"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PaginationMeta describes the collection a page was cut from.
type PaginationMeta struct {
	CurrentPage int64 `json:"current_page"`
	PerPage     int64 `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int64 `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

// ListTodosResponse is one page of todos.
type ListTodosResponse struct {
	Data       []Todo         `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// ListTodosParams narrows and orders the collection, zero values are left out
// of the request.
type ListTodosParams struct {
	Page       int64
	PerPage    int64
	SortBy     string
	SortOrder  string
	Search     string
	CategoryID *int64
	Completed  *bool
	Priority   *Priority
}

func (p ListTodosParams) query() url.Values {
	q := url.Values{}

	if p.Page > 0 {
		q.Set("page", strconv.FormatInt(p.Page, 10))
	}

	if p.PerPage > 0 {
		q.Set("per_page", strconv.FormatInt(p.PerPage, 10))
	}

	if p.SortBy != "" {
		q.Set("sort_by", p.SortBy)
	}

	if p.SortOrder != "" {
		q.Set("sort_order", p.SortOrder)
	}

	if p.Search != "" {
		q.Set("search", p.Search)
	}

	if p.CategoryID != nil {
		q.Set("category_id", strconv.FormatInt(*p.CategoryID, 10))
	}

	if p.Completed != nil {
		q.Set("completed", strconv.FormatBool(*p.Completed))
	}

	if p.Priority != nil {
		q.Set("priority", string(*p.Priority))
	}

	return q
}

// CreateTodoRequest defines the request used for creating todos.
type CreateTodoRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Priority    Priority   `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CategoryID  *int64     `json:"category_id,omitempty"`
}

// UpdateTodoRequest defines the request used for updating a todo, absent
// fields keep their stored values.
type UpdateTodoRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Priority    *Priority  `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CategoryID  *int64     `json:"category_id,omitempty"`
}

// TodoSummary counts the collection by completion, priority and due date.
type TodoSummary struct {
	Total          int64 `json:"total"`
	Completed      int64 `json:"completed"`
	Pending        int64 `json:"pending"`
	HighPriority   int64 `json:"high_priority"`
	MediumPriority int64 `json:"medium_priority"`
	LowPriority    int64 `json:"low_priority"`
	Overdue        int64 `json:"overdue"`
}

// SearchTodosRequest defines the request used for full text searches.
type SearchTodosRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Completed   *bool     `json:"completed,omitempty"`
	From        int64     `json:"from,omitempty"`
	Size        int64     `json:"size,omitempty"`
}

// SearchTodosResponse is one page of search hits.
type SearchTodosResponse struct {
	Todos []Todo `json:"todos"`
	Total int64  `json:"total"`
}

// CreateCategoryRequest defines the request used for creating categories.
type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// UpdateCategoryRequest defines the request used for updating a category,
// absent fields keep their stored values.
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

// HealthResponse reports liveness and the running version.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Error is the decoded non-2xx response.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient makes the Client use a caller-supplied http.Client, for
// instrumented transports.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// Client calls the todo-api server.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient instantiates a Client talking to baseURL, for example
// "http://0.0.0.0:9234".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		client:  http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CreateTodo adds a new todo.
func (c *Client) CreateTodo(ctx context.Context, req CreateTodoRequest) (Todo, error) {
	var res Todo

	err := c.do(ctx, http.MethodPost, "/api/todos", nil, req, &res)

	return res, err
}

// Todo returns one todo by id.
func (c *Client) Todo(ctx context.Context, id int64) (Todo, error) {
	var res Todo

	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/todos/%d", id), nil, nil, &res)

	return res, err
}

// ListTodos returns one page of todos together with the size of the full
// filtered collection.
func (c *Client) ListTodos(ctx context.Context, params ListTodosParams) (ListTodosResponse, error) {
	var res ListTodosResponse

	err := c.do(ctx, http.MethodGet, "/api/todos", params.query(), nil, &res)

	return res, err
}

// UpdateTodo modifies an existing todo.
func (c *Client) UpdateTodo(ctx context.Context, id int64, req UpdateTodoRequest) (Todo, error) {
	var res Todo

	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/todos/%d", id), nil, req, &res)

	return res, err
}

// UpdateTodoStatus marks a todo as completed or pending.
func (c *Client) UpdateTodoStatus(ctx context.Context, id int64, completed bool) (Todo, error) {
	var res Todo

	req := struct {
		Completed bool `json:"completed"`
	}{Completed: completed}

	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/todos/%d/complete", id), nil, req, &res)

	return res, err
}

// DeleteTodo removes a todo.
func (c *Client) DeleteTodo(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/todos/%d", id), nil, nil, nil)
}

// TodoSummary returns counts over the whole collection.
func (c *Client) TodoSummary(ctx context.Context) (TodoSummary, error) {
	var res TodoSummary

	err := c.do(ctx, http.MethodGet, "/api/todos/summary", nil, nil, &res)

	return res, err
}

// SearchTodos runs a full text search against the search index.
func (c *Client) SearchTodos(ctx context.Context, req SearchTodosRequest) (SearchTodosResponse, error) {
	var res SearchTodosResponse

	err := c.do(ctx, http.MethodPost, "/api/todos/search", nil, req, &res)

	return res, err
}

// CreateCategory adds a new category.
func (c *Client) CreateCategory(ctx context.Context, req CreateCategoryRequest) (Category, error) {
	var res Category

	err := c.do(ctx, http.MethodPost, "/api/categories", nil, req, &res)

	return res, err
}

// Category returns one category by id.
func (c *Client) Category(ctx context.Context, id int64) (Category, error) {
	var res Category

	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/categories/%d", id), nil, nil, &res)

	return res, err
}

// ListCategories returns all categories ordered by name.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var res []Category

	err := c.do(ctx, http.MethodGet, "/api/categories", nil, nil, &res)

	return res, err
}

// ListCategoriesWithCounts returns all categories together with the number of
// todos referring to each.
func (c *Client) ListCategoriesWithCounts(ctx context.Context) ([]CategoryWithCount, error) {
	var res []CategoryWithCount

	err := c.do(ctx, http.MethodGet, "/api/categories/with-counts", nil, nil, &res)

	return res, err
}

// UpdateCategory modifies an existing category.
func (c *Client) UpdateCategory(ctx context.Context, id int64, req UpdateCategoryRequest) (Category, error) {
	var res Category

	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/categories/%d", id), nil, req, &res)

	return res, err
}

// DeleteCategory removes a category, failing while todos still refer to it.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/categories/%d", id), nil, nil, nil)
}

// Health reports whether the server is up.
func (c *Client) Health(ctx context.Context) (HealthResponse, error) {
	var res HealthResponse

	err := c.do(ctx, http.MethodGet, "/health", nil, nil, &res)

	return res, err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reqBody *bytes.Buffer

	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("json.Encode %w", err)
		}
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var (
		req *http.Request
		err error
	)

	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, target, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, target, nil)
	}

	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext %w", err)
	}

	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("client.Do %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errRes struct {
			Error string `json:"error"`
		}

		_ = json.NewDecoder(resp.Body).Decode(&errRes)

		return &Error{
			StatusCode: resp.StatusCode,
			Message:    errRes.Error,
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("json.Decode %w", err)
	}

	return nil
}
