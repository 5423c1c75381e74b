package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/frezix0/todo-api/internal"
)

//go:generate counterfeiter -o resttesting/todo_service.gen.go . TodoService

// TodoService orchestrates create, read, update, delete, listing and search of
// todos.
type TodoService interface {
	Create(ctx context.Context, params internal.CreateTodoParams) (internal.Todo, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, params internal.ListTodosParams) ([]internal.Todo, int64, error)
	Search(ctx context.Context, params internal.SearchParams) (internal.SearchResults, error)
	Summary(ctx context.Context) (internal.TodoSummary, error)
	Todo(ctx context.Context, id int64) (internal.Todo, error)
	Update(ctx context.Context, id int64, params internal.UpdateTodoParams) (internal.Todo, error)
	UpdateStatus(ctx context.Context, id int64, completed bool) (internal.Todo, error)
}

// TodoHandler ...
type TodoHandler struct {
	svc        TodoService
	pagination internal.Pagination
}

// NewTodoHandler ...
func NewTodoHandler(svc TodoService, pagination internal.Pagination) *TodoHandler {
	return &TodoHandler{
		svc:        svc,
		pagination: pagination,
	}
}

// Register connects the handlers to the router.
func (t *TodoHandler) Register(r chi.Router) {
	r.Get("/todos", t.list)
	r.Post("/todos", t.create)
	r.Get("/todos/summary", t.summary)
	r.Post("/todos/search", t.search)
	r.Get("/todos/{id:[0-9]+}", t.todo)
	r.Put("/todos/{id:[0-9]+}", t.update)
	r.Patch("/todos/{id:[0-9]+}/complete", t.updateStatus)
	r.Delete("/todos/{id:[0-9]+}", t.delete)
}

// Todo is an item to be worked on, optionally assigned to a category.
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

// NewTodo converts the domain type to its wire representation.
func NewTodo(todo internal.Todo) Todo {
	res := Todo{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
		Priority:    NewPriority(todo.Priority),
		DueDate:     todo.DueDate,
		CategoryID:  todo.CategoryID,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
	}

	if todo.Category != nil {
		category := NewCategory(*todo.Category)
		res.Category = &category
	}

	return res
}

// NewTodos converts a collection of domain todos to their wire representation.
func NewTodos(todos []internal.Todo) []Todo {
	res := make([]Todo, len(todos))
	for i, todo := range todos {
		res[i] = NewTodo(todo)
	}

	return res
}

// PaginationMeta describes the slice of the collection carried in a list
// response.
type PaginationMeta struct {
	CurrentPage int64 `json:"current_page"`
	PerPage     int64 `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int64 `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

func newPaginationMeta(page, perPage, total int64) PaginationMeta {
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	return PaginationMeta{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// ListTodosResponse defines the response returned back after listing todos.
type ListTodosResponse struct {
	Data       []Todo         `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

func (t *TodoHandler) list(w http.ResponseWriter, r *http.Request) {
	params, page, perPage, err := t.listParams(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	todos, total, err := t.svc.List(r.Context(), params)
	if err != nil {
		renderErrorResponse(r.Context(), w, "list failed", err)
		return
	}

	renderResponse(w,
		&ListTodosResponse{
			Data:       NewTodos(todos),
			Pagination: newPaginationMeta(page, perPage, total),
		},
		http.StatusOK)
}

func (t *TodoHandler) listParams(r *http.Request) (internal.ListTodosParams, int64, int64, error) {
	q := r.URL.Query()

	page, err := parseQueryInt(q.Get("page"), 1)
	if err != nil {
		return internal.ListTodosParams{}, 0, 0, err
	}

	if page < 1 {
		page = 1
	}

	perPage, err := parseQueryInt(q.Get("per_page"), t.pagination.DefaultLimit)
	if err != nil {
		return internal.ListTodosParams{}, 0, 0, err
	}

	perPage = t.pagination.ClampLimit(perPage)

	params := internal.ListTodosParams{
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
		Skip:      (page - 1) * perPage,
		Limit:     perPage,
	}

	if search := q.Get("search"); search != "" {
		params.Search = &search
	}

	if v := q.Get("category_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return internal.ListTodosParams{}, 0, 0, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "category_id")
		}

		params.CategoryID = &id
	}

	if v := q.Get("completed"); v != "" {
		completed, err := strconv.ParseBool(v)
		if err != nil {
			return internal.ListTodosParams{}, 0, 0, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "completed")
		}

		params.Completed = &completed
	}

	if v := q.Get("priority"); v != "" {
		priority, err := Priority(v).Convert()
		if err != nil {
			return internal.ListTodosParams{}, 0, 0, err
		}

		params.Priority = &priority
	}

	return params, page, perPage, nil
}

func parseQueryInt(value string, def int64) (int64, error) {
	if value == "" {
		return def, nil
	}

	res, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "strconv.ParseInt")
	}

	return res, nil
}

// CreateTodoRequest defines the request used for creating todos.
type CreateTodoRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	CategoryID  *int64     `json:"category_id"`
}

func (t *TodoHandler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request",
			internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "json decoder"))
		return
	}
	defer r.Body.Close()

	if req.Priority == "" {
		req.Priority = PriorityMedium
	}

	priority, err := req.Priority.Convert()
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	todo, err := t.svc.Create(r.Context(), internal.CreateTodoParams{
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		DueDate:     req.DueDate,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		renderErrorResponse(r.Context(), w, "create failed", err)
		return
	}

	renderResponse(w, NewTodo(todo), http.StatusCreated)
}

func (t *TodoHandler) todo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	todo, err := t.svc.Todo(r.Context(), id)
	if err != nil {
		renderErrorResponse(r.Context(), w, "find failed", err)
		return
	}

	renderResponse(w, NewTodo(todo), http.StatusOK)
}

// UpdateTodoRequest defines the request used for updating a todo. Absent
// fields keep their stored values, completion changes go through the
// complete endpoint.
type UpdateTodoRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Priority    *Priority  `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	CategoryID  *int64     `json:"category_id"`
}

func (t *TodoHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	var req UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request",
			internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "json decoder"))
		return
	}
	defer r.Body.Close()

	params := internal.UpdateTodoParams{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		CategoryID:  req.CategoryID,
	}

	if req.Priority != nil {
		priority, err := req.Priority.Convert()
		if err != nil {
			renderErrorResponse(r.Context(), w, "invalid request", err)
			return
		}

		params.Priority = &priority
	}

	todo, err := t.svc.Update(r.Context(), id, params)
	if err != nil {
		renderErrorResponse(r.Context(), w, "update failed", err)
		return
	}

	renderResponse(w, NewTodo(todo), http.StatusOK)
}

// UpdateTodoStatusRequest defines the request used to set completion.
type UpdateTodoStatusRequest struct {
	Completed bool `json:"completed"`
}

func (t *TodoHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	var req UpdateTodoStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request",
			internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "json decoder"))
		return
	}
	defer r.Body.Close()

	todo, err := t.svc.UpdateStatus(r.Context(), id, req.Completed)
	if err != nil {
		renderErrorResponse(r.Context(), w, "update failed", err)
		return
	}

	renderResponse(w, NewTodo(todo), http.StatusOK)
}

func (t *TodoHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	if err := t.svc.Delete(r.Context(), id); err != nil {
		renderErrorResponse(r.Context(), w, "delete failed", err)
		return
	}

	renderResponse(w, nil, http.StatusNoContent)
}

// TodoSummaryResponse defines the aggregate counts returned back for the
// whole collection.
type TodoSummaryResponse struct {
	Total          int64 `json:"total"`
	Completed      int64 `json:"completed"`
	Pending        int64 `json:"pending"`
	HighPriority   int64 `json:"high_priority"`
	MediumPriority int64 `json:"medium_priority"`
	LowPriority    int64 `json:"low_priority"`
	Overdue        int64 `json:"overdue"`
}

func (t *TodoHandler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := t.svc.Summary(r.Context())
	if err != nil {
		renderErrorResponse(r.Context(), w, "summary failed", err)
		return
	}

	renderResponse(w,
		&TodoSummaryResponse{
			Total:          summary.Total,
			Completed:      summary.Completed,
			Pending:        summary.Pending,
			HighPriority:   summary.HighPriority,
			MediumPriority: summary.MediumPriority,
			LowPriority:    summary.LowPriority,
			Overdue:        summary.Overdue,
		},
		http.StatusOK)
}

// SearchTodosRequest defines the request used for searching todos.
type SearchTodosRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Priority    *Priority `json:"priority"`
	Completed   *bool     `json:"completed"`
	From        int64     `json:"from"`
	Size        int64     `json:"size"`
}

// SearchTodosResponse defines the response returned back after searching.
type SearchTodosResponse struct {
	Todos []Todo `json:"todos"`
	Total int64  `json:"total"`
}

func (t *TodoHandler) search(w http.ResponseWriter, r *http.Request) {
	var req SearchTodosRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request",
			internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "json decoder"))
		return
	}
	defer r.Body.Close()

	params := internal.SearchParams{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		From:        req.From,
		Size:        req.Size,
	}

	if req.Priority != nil {
		priority, err := req.Priority.Convert()
		if err != nil {
			renderErrorResponse(r.Context(), w, "invalid request", err)
			return
		}

		params.Priority = &priority
	}

	res, err := t.svc.Search(r.Context(), params)
	if err != nil {
		renderErrorResponse(r.Context(), w, "search failed", err)
		return
	}

	renderResponse(w,
		&SearchTodosResponse{
			Todos: NewTodos(res.Todos),
			Total: res.Total,
		},
		http.StatusOK)
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "strconv.ParseInt")
	}

	return id, nil
}
