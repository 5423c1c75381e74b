package postgresql

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/frezix0/todo-api/internal"
	"github.com/frezix0/todo-api/internal/postgresql/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Category represents the repository used for interacting with Category
// records.
type Category struct {
	pool *pgxpool.Pool
}

// NewCategory instantiates the Category repository.
func NewCategory(pool *pgxpool.Pool) *Category {
	return &Category{
		pool: pool,
	}
}

// Create inserts a new category record.
func (c *Category) Create(ctx context.Context, params internal.CreateCategoryParams) (internal.Category, error) {
	defer newOTELSpan(ctx, "Category.Create").End()

	rec := db.Category{
		Name:  params.Name,
		Color: params.Color,
	}

	if err := c.pool.QueryRow(ctx,
		`INSERT INTO categories (name, color) VALUES ($1, $2) RETURNING id, created_at`,
		params.Name,
		params.Color,
	).Scan(&rec.ID, &rec.CreatedAt); err != nil {
		return internal.Category{}, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "pool.QueryRow")
	}

	return newCategory(rec), nil
}

// Find returns the requested category.
func (c *Category) Find(ctx context.Context, id int64) (internal.Category, error) {
	defer newOTELSpan(ctx, "Category.Find").End()

	return c.find(ctx, id)
}

// List returns all categories ordered by name.
func (c *Category) List(ctx context.Context) ([]internal.Category, error) {
	defer newOTELSpan(ctx, "Category.List").End()

	rows, err := c.pool.Query(ctx,
		`SELECT id, name, color, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "pool.Query")
	}
	defer rows.Close()

	categories := []internal.Category{}

	for rows.Next() {
		var rec db.Category

		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Color, &rec.CreatedAt); err != nil {
			return nil, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "rows.Scan")
		}

		categories = append(categories, newCategory(rec))
	}

	if err := rows.Err(); err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "rows.Err")
	}

	return categories, nil
}

// ListWithCounts returns all categories ordered by name, each annotated with
// the number of todos referencing it, keeping categories nobody uses at zero.
func (c *Category) ListWithCounts(ctx context.Context) ([]internal.CategoryWithCount, error) {
	defer newOTELSpan(ctx, "Category.ListWithCounts").End()

	rows, err := c.pool.Query(ctx,
		`SELECT c.id, c.name, c.color, c.created_at, COUNT(t.id)
		FROM categories c
		LEFT JOIN todos t ON t.category_id = c.id
		GROUP BY c.id
		ORDER BY c.name`)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "pool.Query")
	}
	defer rows.Close()

	categories := []internal.CategoryWithCount{}

	for rows.Next() {
		var (
			rec   db.Category
			count int64
		)

		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Color, &rec.CreatedAt, &count); err != nil {
			return nil, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "rows.Scan")
		}

		categories = append(categories, internal.CategoryWithCount{
			Category:  newCategory(rec),
			TodoCount: count,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "rows.Err")
	}

	return categories, nil
}

// Update modifies the fields set in params, leaving the rest untouched.
// created_at is immutable.
func (c *Category) Update(ctx context.Context, id int64, params internal.UpdateCategoryParams) (internal.Category, error) {
	defer newOTELSpan(ctx, "Category.Update").End()

	if params.Name == nil && params.Color == nil {
		return c.find(ctx, id)
	}

	ub := psql.Update("categories").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, color, created_at")

	if params.Name != nil {
		ub = ub.Set("name", *params.Name)
	}

	if params.Color != nil {
		ub = ub.Set("color", *params.Color)
	}

	sql, args, err := ub.ToSql()
	if err != nil {
		return internal.Category{}, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "ub.ToSql")
	}

	var rec db.Category

	if err := c.pool.QueryRow(ctx, sql, args...).Scan(&rec.ID, &rec.Name, &rec.Color, &rec.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return internal.Category{}, internal.NewErrorf(internal.ErrorCodeNotFound, "category not found: %d", id)
		}

		return internal.Category{}, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "pool.QueryRow")
	}

	return newCategory(rec), nil
}

// Delete removes the category record, refusing to do so while any todo still
// references it. The dependent count and the delete run in one transaction.
func (c *Category) Delete(ctx context.Context, id int64) error {
	defer newOTELSpan(ctx, "Category.Delete").End()

	return pgx.BeginFunc(ctx, c.pool, func(tx pgx.Tx) error {
		var count int64

		if err := tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM todos WHERE category_id = $1`,
			id,
		).Scan(&count); err != nil {
			return internal.WrapErrorf(err, internal.ErrorCodeUnkown, "tx.QueryRow")
		}

		if count > 0 {
			return internal.NewErrorf(internal.ErrorCodeConflict, "category %d still has %d todos", id, count)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
		if err != nil {
			return internal.WrapErrorf(err, internal.ErrorCodeUnkown, "tx.Exec")
		}

		if tag.RowsAffected() == 0 {
			return internal.NewErrorf(internal.ErrorCodeNotFound, "category not found: %d", id)
		}

		return nil
	})
}

func (c *Category) find(ctx context.Context, id int64) (internal.Category, error) {
	var rec db.Category

	err := c.pool.QueryRow(ctx,
		`SELECT id, name, color, created_at FROM categories WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Name, &rec.Color, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return internal.Category{}, internal.NewErrorf(internal.ErrorCodeNotFound, "category not found: %d", id)
		}

		return internal.Category{}, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "pool.QueryRow")
	}

	return newCategory(rec), nil
}

func newCategory(rec db.Category) internal.Category {
	return internal.Category{
		ID:        rec.ID,
		Name:      rec.Name,
		Color:     rec.Color,
		CreatedAt: rec.CreatedAt.Time,
	}
}
