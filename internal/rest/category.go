package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/frezix0/todo-api/internal"
)

//go:generate counterfeiter -o resttesting/category_service.gen.go . CategoryService

// CategoryService orchestrates create, read, update, delete and listing of
// categories.
type CategoryService interface {
	Category(ctx context.Context, id int64) (internal.Category, error)
	Create(ctx context.Context, params internal.CreateCategoryParams) (internal.Category, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]internal.Category, error)
	ListWithCounts(ctx context.Context) ([]internal.CategoryWithCount, error)
	Update(ctx context.Context, id int64, params internal.UpdateCategoryParams) (internal.Category, error)
}

// CategoryHandler ...
type CategoryHandler struct {
	svc CategoryService
}

// NewCategoryHandler ...
func NewCategoryHandler(svc CategoryService) *CategoryHandler {
	return &CategoryHandler{
		svc: svc,
	}
}

// Register connects the handlers to the router.
func (c *CategoryHandler) Register(r chi.Router) {
	r.Get("/categories", c.list)
	r.Post("/categories", c.create)
	r.Get("/categories/with-counts", c.listWithCounts)
	r.Get("/categories/{id:[0-9]+}", c.category)
	r.Put("/categories/{id:[0-9]+}", c.update)
	r.Delete("/categories/{id:[0-9]+}", c.delete)
}

// Category groups todos under a name and a display color.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCategory converts the domain type to its wire representation.
func NewCategory(category internal.Category) Category {
	return Category{
		ID:        category.ID,
		Name:      category.Name,
		Color:     category.Color,
		CreatedAt: category.CreatedAt,
	}
}

// CategoryWithCount is a category annotated with the number of todos
// referring to it.
type CategoryWithCount struct {
	Category

	TodoCount int64 `json:"todo_count"`
}

func (c *CategoryHandler) list(w http.ResponseWriter, r *http.Request) {
	categories, err := c.svc.List(r.Context())
	if err != nil {
		renderErrorResponse(r.Context(), w, "list failed", err)
		return
	}

	res := make([]Category, len(categories))
	for i, category := range categories {
		res[i] = NewCategory(category)
	}

	renderResponse(w, res, http.StatusOK)
}

func (c *CategoryHandler) listWithCounts(w http.ResponseWriter, r *http.Request) {
	categories, err := c.svc.ListWithCounts(r.Context())
	if err != nil {
		renderErrorResponse(r.Context(), w, "list failed", err)
		return
	}

	res := make([]CategoryWithCount, len(categories))
	for i, category := range categories {
		res[i] = CategoryWithCount{
			Category:  NewCategory(category.Category),
			TodoCount: category.TodoCount,
		}
	}

	renderResponse(w, res, http.StatusOK)
}

// CreateCategoryRequest defines the request used for creating categories.
type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (c *CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request",
			internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "json decoder"))
		return
	}
	defer r.Body.Close()

	if req.Color == "" {
		req.Color = internal.DefaultCategoryColor
	}

	category, err := c.svc.Create(r.Context(), internal.CreateCategoryParams{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		renderErrorResponse(r.Context(), w, "create failed", err)
		return
	}

	renderResponse(w, NewCategory(category), http.StatusCreated)
}

func (c *CategoryHandler) category(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	category, err := c.svc.Category(r.Context(), id)
	if err != nil {
		renderErrorResponse(r.Context(), w, "find failed", err)
		return
	}

	renderResponse(w, NewCategory(category), http.StatusOK)
}

// UpdateCategoryRequest defines the request used for updating a category.
// Absent fields keep their stored values.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

func (c *CategoryHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	var req UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request",
			internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "json decoder"))
		return
	}
	defer r.Body.Close()

	category, err := c.svc.Update(r.Context(), id, internal.UpdateCategoryParams{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		renderErrorResponse(r.Context(), w, "update failed", err)
		return
	}

	renderResponse(w, NewCategory(category), http.StatusOK)
}

func (c *CategoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	if err := c.svc.Delete(r.Context(), id); err != nil {
		renderErrorResponse(r.Context(), w, "delete failed", err)
		return
	}

	renderResponse(w, nil, http.StatusNoContent)
}
