package service

import (
	"context"
	"fmt"
	"time"

	"github.com/frezix0/todo-api/internal"
	"github.com/mercari/go-circuitbreaker"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// TodoRepository defines the datastore handling persisting Todo records.
type TodoRepository interface {
	Create(ctx context.Context, params internal.CreateTodoParams) (internal.Todo, error)
	Delete(ctx context.Context, id int64) error
	Find(ctx context.Context, id int64) (internal.Todo, error)
	List(ctx context.Context, params internal.ListTodosParams) ([]internal.Todo, int64, error)
	Summary(ctx context.Context) (internal.TodoSummary, error)
	Update(ctx context.Context, id int64, params internal.UpdateTodoParams) (internal.Todo, error)
	UpdateStatus(ctx context.Context, id int64, completed bool) (internal.Todo, error)
}

// TodoSearchRepository defines the datastore handling searching indexed Todo
// records.
type TodoSearchRepository interface {
	Search(ctx context.Context, params internal.SearchParams) (internal.SearchResults, error)
}

// TodoMessageBrokerRepository defines the broker receiving Todo events.
type TodoMessageBrokerRepository interface {
	Created(ctx context.Context, todo internal.Todo) error
	Deleted(ctx context.Context, id int64) error
	Updated(ctx context.Context, todo internal.Todo) error
}

// Todo defines the application service in charge of interacting with Todos.
type Todo struct {
	logger    *zap.Logger
	repo      TodoRepository
	search    TodoSearchRepository
	msgBroker TodoMessageBrokerRepository
	cb        *circuitbreaker.CircuitBreaker
}

// NewTodo ...
func NewTodo(logger *zap.Logger, repo TodoRepository, search TodoSearchRepository, msgBroker TodoMessageBrokerRepository) *Todo {
	return &Todo{
		logger:    logger,
		repo:      repo,
		search:    search,
		msgBroker: msgBroker,
		cb: circuitbreaker.New(
			circuitbreaker.WithOpenTimeout(time.Minute),
			circuitbreaker.WithOnStateChangeHookFn(func(from, to circuitbreaker.State) {
				logger.Info("todos index breaker",
					zap.String("from", string(from)),
					zap.String("to", string(to)))
			}),
		),
	}
}

// List returns the todos matching params plus the total number of matching
// records.
func (t *Todo) List(ctx context.Context, params internal.ListTodosParams) ([]internal.Todo, int64, error) {
	ctx, span := trace.SpanFromContext(ctx).TracerProvider().Tracer("").Start(ctx, "Todo.List")
	defer span.End()

	todos, total, err := t.repo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("repo list: %w", err)
	}

	return todos, total, nil
}

// Create stores a new record, publishing its event on success.
func (t *Todo) Create(ctx context.Context, params internal.CreateTodoParams) (internal.Todo, error) {
	ctx, span := trace.SpanFromContext(ctx).TracerProvider().Tracer("").Start(ctx, "Todo.Create")
	defer span.End()

	if err := params.Validate(); err != nil {
		return internal.Todo{}, fmt.Errorf("params validate: %w", err)
	}

	todo, err := t.repo.Create(ctx, params)
	if err != nil {
		return internal.Todo{}, fmt.Errorf("repo create: %w", err)
	}

	_ = t.msgBroker.Created(ctx, todo)

	return todo, nil
}

// Todo gets an existing Todo from the datastore.
func (t *Todo) Todo(ctx context.Context, id int64) (internal.Todo, error) {
	ctx, span := trace.SpanFromContext(ctx).TracerProvider().Tracer("").Start(ctx, "Todo.Todo")
	defer span.End()

	todo, err := t.repo.Find(ctx, id)
	if err != nil {
		return internal.Todo{}, fmt.Errorf("repo find: %w", err)
	}

	return todo, nil
}

// Update modifies an existing record in place, fields left nil stay as they
// are.
func (t *Todo) Update(ctx context.Context, id int64, params internal.UpdateTodoParams) (internal.Todo, error) {
	ctx, span := trace.SpanFromContext(ctx).TracerProvider().Tracer("").Start(ctx, "Todo.Update")
	defer span.End()

	if err := params.Validate(); err != nil {
		return internal.Todo{}, fmt.Errorf("params validate: %w", err)
	}

	todo, err := t.repo.Update(ctx, id, params)
	if err != nil {
		return internal.Todo{}, fmt.Errorf("repo update: %w", err)
	}

	_ = t.msgBroker.Updated(ctx, todo)

	return todo, nil
}

// UpdateStatus toggles completion, nothing else changes besides updated_at.
func (t *Todo) UpdateStatus(ctx context.Context, id int64, completed bool) (internal.Todo, error) {
	ctx, span := trace.SpanFromContext(ctx).TracerProvider().Tracer("").Start(ctx, "Todo.UpdateStatus")
	defer span.End()

	todo, err := t.repo.UpdateStatus(ctx, id, completed)
	if err != nil {
		return internal.Todo{}, fmt.Errorf("repo update status: %w", err)
	}

	_ = t.msgBroker.Updated(ctx, todo)

	return todo, nil
}

// Delete removes an existing Todo from the datastore, publishing its event on
// success.
func (t *Todo) Delete(ctx context.Context, id int64) error {
	ctx, span := trace.SpanFromContext(ctx).TracerProvider().Tracer("").Start(ctx, "Todo.Delete")
	defer span.End()

	if err := t.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("repo delete: %w", err)
	}

	_ = t.msgBroker.Deleted(ctx, id)

	return nil
}

// Summary aggregates the current state of all stored todos.
func (t *Todo) Summary(ctx context.Context) (internal.TodoSummary, error) {
	ctx, span := trace.SpanFromContext(ctx).TracerProvider().Tracer("").Start(ctx, "Todo.Summary")
	defer span.End()

	res, err := t.repo.Summary(ctx)
	if err != nil {
		return internal.TodoSummary{}, fmt.Errorf("repo summary: %w", err)
	}

	return res, nil
}

// Search queries the todos index, failing fast while the breaker is open so a
// struggling cluster does not drag request handling down with it.
func (t *Todo) Search(ctx context.Context, params internal.SearchParams) (internal.SearchResults, error) {
	ctx, span := trace.SpanFromContext(ctx).TracerProvider().Tracer("").Start(ctx, "Todo.Search")
	defer span.End()

	res, err := t.cb.Do(ctx, func() (interface{}, error) {
		return t.search.Search(ctx, params)
	})
	if err != nil {
		return internal.SearchResults{}, fmt.Errorf("search: %w", err)
	}

	return res.(internal.SearchResults), nil
}
