package service

import (
	"context"
	"fmt"

	"github.com/frezix0/todo-api/internal"
	"go.opentelemetry.io/otel/trace"
)

// CategoryRepository defines the datastore handling persisting Category
// records.
type CategoryRepository interface {
	Create(ctx context.Context, params internal.CreateCategoryParams) (internal.Category, error)
	Delete(ctx context.Context, id int64) error
	Find(ctx context.Context, id int64) (internal.Category, error)
	List(ctx context.Context) ([]internal.Category, error)
	ListWithCounts(ctx context.Context) ([]internal.CategoryWithCount, error)
	Update(ctx context.Context, id int64, params internal.UpdateCategoryParams) (internal.Category, error)
}

// Category defines the application service in charge of interacting with
// Categories.
type Category struct {
	repo CategoryRepository
}

// NewCategory ...
func NewCategory(repo CategoryRepository) *Category {
	return &Category{
		repo: repo,
	}
}

// List returns all categories ordered by name.
func (c *Category) List(ctx context.Context) ([]internal.Category, error) {
	ctx, span := trace.SpanFromContext(ctx).TracerProvider().Tracer("").Start(ctx, "Category.List")
	defer span.End()

	categories, err := c.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo list: %w", err)
	}

	return categories, nil
}

// ListWithCounts returns all categories annotated with the number of todos
// referencing each one.
func (c *Category) ListWithCounts(ctx context.Context) ([]internal.CategoryWithCount, error) {
	ctx, span := trace.SpanFromContext(ctx).TracerProvider().Tracer("").Start(ctx, "Category.ListWithCounts")
	defer span.End()

	categories, err := c.repo.ListWithCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo list with counts: %w", err)
	}

	return categories, nil
}

// Create stores a new record.
func (c *Category) Create(ctx context.Context, params internal.CreateCategoryParams) (internal.Category, error) {
	ctx, span := trace.SpanFromContext(ctx).TracerProvider().Tracer("").Start(ctx, "Category.Create")
	defer span.End()

	if err := params.Validate(); err != nil {
		return internal.Category{}, fmt.Errorf("params validate: %w", err)
	}

	category, err := c.repo.Create(ctx, params)
	if err != nil {
		return internal.Category{}, fmt.Errorf("repo create: %w", err)
	}

	return category, nil
}

// Category gets an existing Category from the datastore.
func (c *Category) Category(ctx context.Context, id int64) (internal.Category, error) {
	ctx, span := trace.SpanFromContext(ctx).TracerProvider().Tracer("").Start(ctx, "Category.Category")
	defer span.End()

	category, err := c.repo.Find(ctx, id)
	if err != nil {
		return internal.Category{}, fmt.Errorf("repo find: %w", err)
	}

	return category, nil
}

// Update modifies an existing record in place, fields left nil stay as they
// are.
func (c *Category) Update(ctx context.Context, id int64, params internal.UpdateCategoryParams) (internal.Category, error) {
	ctx, span := trace.SpanFromContext(ctx).TracerProvider().Tracer("").Start(ctx, "Category.Update")
	defer span.End()

	if err := params.Validate(); err != nil {
		return internal.Category{}, fmt.Errorf("params validate: %w", err)
	}

	category, err := c.repo.Update(ctx, id, params)
	if err != nil {
		return internal.Category{}, fmt.Errorf("repo update: %w", err)
	}

	return category, nil
}

// Delete removes an existing Category, the datastore refuses to while todos
// still reference it.
func (c *Category) Delete(ctx context.Context, id int64) error {
	ctx, span := trace.SpanFromContext(ctx).TracerProvider().Tracer("").Start(ctx, "Category.Delete")
	defer span.End()

	if err := c.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("repo delete: %w", err)
	}

	return nil
}
