package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/frezix0/todo-api/internal"
	"github.com/frezix0/todo-api/internal/postgresql/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var todoColumns = []string{
	"t.id",
	"t.title",
	"t.description",
	"t.completed",
	"t.priority",
	"t.due_date",
	"t.category_id",
	"t.created_at",
	"t.updated_at",
	"c.name",
	"c.color",
	"c.created_at",
}

var sortColumns = map[string]string{
	internal.SortByCreatedAt: "t.created_at",
	internal.SortByUpdatedAt: "t.updated_at",
	internal.SortByTitle:     "t.title",
	internal.SortByPriority:  "t.priority",
	internal.SortByDueDate:   "t.due_date",
}

const findTodoSQL = `
SELECT t.id, t.title, t.description, t.completed, t.priority, t.due_date, t.category_id, t.created_at, t.updated_at,
       c.name, c.color, c.created_at
FROM todos t
LEFT JOIN categories c ON c.id = t.category_id
WHERE t.id = $1`

const summarySQL = `
SELECT COUNT(*),
       COUNT(*) FILTER (WHERE completed),
       COUNT(*) FILTER (WHERE priority = 'high'),
       COUNT(*) FILTER (WHERE priority = 'medium'),
       COUNT(*) FILTER (WHERE priority = 'low'),
       COUNT(*) FILTER (WHERE due_date < now() AND NOT completed)
FROM todos`

// Todo represents the repository used for interacting with Todo records.
type Todo struct {
	pool       *pgxpool.Pool
	pagination internal.Pagination
}

// NewTodo instantiates the Todo repository.
func NewTodo(pool *pgxpool.Pool, pagination internal.Pagination) *Todo {
	return &Todo{
		pool:       pool,
		pagination: pagination,
	}
}

// Create inserts a new todo record. When a category is referenced it is
// resolved in the same transaction before the todo row is written, unknown
// ids are rejected as invalid arguments.
func (t *Todo) Create(ctx context.Context, params internal.CreateTodoParams) (internal.Todo, error) {
	defer newOTELSpan(ctx, "Todo.Create").End()

	todo := internal.Todo{
		Title:       params.Title,
		Description: params.Description,
		Priority:    params.Priority,
		DueDate:     params.DueDate,
		CategoryID:  params.CategoryID,
	}

	err := pgx.BeginFunc(ctx, t.pool, func(tx pgx.Tx) error {
		category, err := findCategory(ctx, tx, params.CategoryID)
		if err != nil {
			return err
		}

		var createdAt, updatedAt pgtype.Timestamptz

		if err := tx.QueryRow(ctx,
			`INSERT INTO todos (title, description, priority, due_date, category_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, completed, created_at, updated_at`,
			params.Title,
			params.Description,
			newPriority(params.Priority),
			params.DueDate,
			params.CategoryID,
		).Scan(&todo.ID, &todo.Completed, &createdAt, &updatedAt); err != nil {
			return internal.WrapErrorf(err, internal.ErrorCodeUnkown, "tx.QueryRow")
		}

		todo.CreatedAt = createdAt.Time
		todo.UpdatedAt = updatedAt.Time
		todo.Category = category

		return nil
	})
	if err != nil {
		return internal.Todo{}, err
	}

	return todo, nil
}

// Find returns the requested todo with its category attached.
func (t *Todo) Find(ctx context.Context, id int64) (internal.Todo, error) {
	defer newOTELSpan(ctx, "Todo.Find").End()

	return findTodo(ctx, t.pool, id)
}

// List returns the todos matching params plus the total number of matching
// records disregarding pagination. The page and the total share one predicate
// and run in a single read-only transaction, so both always describe the same
// snapshot.
func (t *Todo) List(ctx context.Context, params internal.ListTodosParams) ([]internal.Todo, int64, error) {
	defer newOTELSpan(ctx, "Todo.List").End()

	params.Skip = t.pagination.ClampSkip(params.Skip)
	params.Limit = t.pagination.ClampLimit(params.Limit)

	pred := listPredicate(params)

	pageSQL, pageArgs, err := listPageQuery(params, pred).ToSql()
	if err != nil {
		return nil, 0, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "listPageQuery")
	}

	countSQL, countArgs, err := listCountQuery(pred).ToSql()
	if err != nil {
		return nil, 0, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "listCountQuery")
	}

	var (
		todos []internal.Todo
		total int64
	)

	err = pgx.BeginTxFunc(ctx, t.pool, pgx.TxOptions{AccessMode: pgx.ReadOnly}, func(tx pgx.Tx) error {
		todos, err = queryTodos(ctx, tx, pageSQL, pageArgs)
		if err != nil {
			return err
		}

		if err := tx.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
			return internal.WrapErrorf(err, internal.ErrorCodeUnkown, "tx.QueryRow")
		}

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return todos, total, nil
}

// Update modifies the fields set in params, leaving the rest untouched, and
// always refreshes updated_at. A newly referenced category is resolved before
// the todo row is written.
func (t *Todo) Update(ctx context.Context, id int64, params internal.UpdateTodoParams) (internal.Todo, error) {
	defer newOTELSpan(ctx, "Todo.Update").End()

	ub := psql.Update("todos").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	if params.Title != nil {
		ub = ub.Set("title", *params.Title)
	}

	if params.Description != nil {
		ub = ub.Set("description", *params.Description)
	}

	if params.Priority != nil {
		ub = ub.Set("priority", newPriority(*params.Priority))
	}

	if params.DueDate != nil {
		ub = ub.Set("due_date", *params.DueDate)
	}

	if params.CategoryID != nil {
		ub = ub.Set("category_id", *params.CategoryID)
	}

	sql, args, err := ub.ToSql()
	if err != nil {
		return internal.Todo{}, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "ub.ToSql")
	}

	var todo internal.Todo

	err = pgx.BeginFunc(ctx, t.pool, func(tx pgx.Tx) error {
		if _, err := findCategory(ctx, tx, params.CategoryID); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return internal.WrapErrorf(err, internal.ErrorCodeUnkown, "tx.Exec")
		}

		if tag.RowsAffected() == 0 {
			return internal.NewErrorf(internal.ErrorCodeNotFound, "todo not found: %d", id)
		}

		todo, err = findTodo(ctx, tx, id)

		return err
	})
	if err != nil {
		return internal.Todo{}, err
	}

	return todo, nil
}

// UpdateStatus sets completed, refreshing updated_at and nothing else.
func (t *Todo) UpdateStatus(ctx context.Context, id int64, completed bool) (internal.Todo, error) {
	defer newOTELSpan(ctx, "Todo.UpdateStatus").End()

	var todo internal.Todo

	err := pgx.BeginFunc(ctx, t.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE todos SET completed = $2, updated_at = now() WHERE id = $1`,
			id, completed)
		if err != nil {
			return internal.WrapErrorf(err, internal.ErrorCodeUnkown, "tx.Exec")
		}

		if tag.RowsAffected() == 0 {
			return internal.NewErrorf(internal.ErrorCodeNotFound, "todo not found: %d", id)
		}

		todo, err = findTodo(ctx, tx, id)

		return err
	})
	if err != nil {
		return internal.Todo{}, err
	}

	return todo, nil
}

// Delete removes the todo record.
func (t *Todo) Delete(ctx context.Context, id int64) error {
	defer newOTELSpan(ctx, "Todo.Delete").End()

	tag, err := t.pool.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnkown, "pool.Exec")
	}

	if tag.RowsAffected() == 0 {
		return internal.NewErrorf(internal.ErrorCodeNotFound, "todo not found: %d", id)
	}

	return nil
}

// Summary aggregates all stored todos in a single statement. Pending is
// derived as total minus completed, overdue counts uncompleted todos due
// strictly before now.
func (t *Todo) Summary(ctx context.Context) (internal.TodoSummary, error) {
	defer newOTELSpan(ctx, "Todo.Summary").End()

	var res internal.TodoSummary

	if err := t.pool.QueryRow(ctx, summarySQL).Scan(
		&res.Total,
		&res.Completed,
		&res.HighPriority,
		&res.MediumPriority,
		&res.LowPriority,
		&res.Overdue,
	); err != nil {
		return internal.TodoSummary{}, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "pool.QueryRow")
	}

	res.Pending = res.Total - res.Completed

	return res, nil
}

func listPredicate(params internal.ListTodosParams) squirrel.And {
	pred := squirrel.And{}

	if params.Search != nil {
		pattern := fmt.Sprintf("%%%s%%", *params.Search)

		pred = append(pred, squirrel.Or{
			squirrel.ILike{"t.title": pattern},
			squirrel.ILike{"t.description": pattern},
		})
	}

	if params.CategoryID != nil {
		pred = append(pred, squirrel.Eq{"t.category_id": *params.CategoryID})
	}

	if params.Completed != nil {
		pred = append(pred, squirrel.Eq{"t.completed": *params.Completed})
	}

	if params.Priority != nil {
		pred = append(pred, squirrel.Eq{"t.priority": newPriority(*params.Priority)})
	}

	return pred
}

func listPageQuery(params internal.ListTodosParams, pred squirrel.And) squirrel.SelectBuilder {
	qb := psql.Select(todoColumns...).
		From("todos t").
		LeftJoin("categories c ON c.id = t.category_id")

	if len(pred) > 0 {
		qb = qb.Where(pred)
	}

	return qb.OrderBy(orderBy(params.SortBy, params.SortOrder)).
		Limit(uint64(params.Limit)).
		Offset(uint64(params.Skip))
}

func listCountQuery(pred squirrel.And) squirrel.SelectBuilder {
	qb := psql.Select("COUNT(*)").From("todos t")

	if len(pred) > 0 {
		qb = qb.Where(pred)
	}

	return qb
}

func orderBy(sortBy, sortOrder string) string {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = sortColumns[internal.SortByCreatedAt]
	}

	direction := "DESC"
	if sortOrder == internal.SortAsc {
		direction = "ASC"
	}

	return fmt.Sprintf("%s %s", column, direction)
}

func queryTodos(ctx context.Context, tx pgx.Tx, sql string, args []interface{}) ([]internal.Todo, error) {
	rows, err := tx.Query(ctx, sql, args...)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "tx.Query")
	}
	defer rows.Close()

	todos := []internal.Todo{}

	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}

		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "rows.Err")
	}

	return todos, nil
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func findTodo(ctx context.Context, q querier, id int64) (internal.Todo, error) {
	todo, err := scanTodo(q.QueryRow(ctx, findTodoSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return internal.Todo{}, internal.NewErrorf(internal.ErrorCodeNotFound, "todo not found: %d", id)
		}

		return internal.Todo{}, err
	}

	return todo, nil
}

// findCategory resolves a referenced category inside the current transaction,
// before any todo row is touched. A nil id means no category, an unknown one
// is an invalid argument.
func findCategory(ctx context.Context, tx pgx.Tx, id *int64) (*internal.Category, error) {
	if id == nil {
		return nil, nil
	}

	var rec db.Category

	err := tx.QueryRow(ctx,
		`SELECT id, name, color, created_at FROM categories WHERE id = $1`,
		*id,
	).Scan(&rec.ID, &rec.Name, &rec.Color, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "category not found: %d", *id)
		}

		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "tx.QueryRow")
	}

	return &internal.Category{
		ID:        rec.ID,
		Name:      rec.Name,
		Color:     rec.Color,
		CreatedAt: rec.CreatedAt.Time,
	}, nil
}

func scanTodo(row pgx.Row) (internal.Todo, error) {
	var (
		rec        db.Todo
		catName    pgtype.Text
		catColor   pgtype.Text
		catCreated pgtype.Timestamptz
	)

	if err := row.Scan(
		&rec.ID,
		&rec.Title,
		&rec.Description,
		&rec.Completed,
		&rec.Priority,
		&rec.DueDate,
		&rec.CategoryID,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&catName,
		&catColor,
		&catCreated,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return internal.Todo{}, err
		}

		return internal.Todo{}, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "row.Scan")
	}

	priority, err := convertPriority(rec.Priority)
	if err != nil {
		return internal.Todo{}, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "convertPriority")
	}

	todo := internal.Todo{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: textPtr(rec.Description),
		Completed:   rec.Completed,
		Priority:    priority,
		DueDate:     timePtr(rec.DueDate),
		CategoryID:  int8Ptr(rec.CategoryID),
		CreatedAt:   rec.CreatedAt.Time,
		UpdatedAt:   rec.UpdatedAt.Time,
	}

	if rec.CategoryID.Valid && catName.Valid {
		todo.Category = &internal.Category{
			ID:        rec.CategoryID.Int64,
			Name:      catName.String,
			Color:     catColor.String,
			CreatedAt: catCreated.Time,
		}
	}

	return todo, nil
}
