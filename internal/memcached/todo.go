package memcached

import (
	"context"
	"fmt"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"go.uber.org/zap"

	"github.com/frezix0/todo-api/internal"
)

// Todo decorates a TodoStore with a cache keeping single records, listings
// and aggregates always go to the decorated store.
type Todo struct {
	client     *memcache.Client
	orig       TodoStore
	expiration time.Duration
	logger     *zap.Logger
}

// TodoStore is the datastore being decorated.
type TodoStore interface {
	Create(ctx context.Context, params internal.CreateTodoParams) (internal.Todo, error)
	Delete(ctx context.Context, id int64) error
	Find(ctx context.Context, id int64) (internal.Todo, error)
	List(ctx context.Context, params internal.ListTodosParams) ([]internal.Todo, int64, error)
	Summary(ctx context.Context) (internal.TodoSummary, error)
	Update(ctx context.Context, id int64, params internal.UpdateTodoParams) (internal.Todo, error)
	UpdateStatus(ctx context.Context, id int64, completed bool) (internal.Todo, error)
}

// NewTodo instantiates the Todo decorator.
func NewTodo(client *memcache.Client, orig TodoStore, logger *zap.Logger) *Todo {
	return &Todo{
		client:     client,
		orig:       orig,
		expiration: 15 * time.Minute,
		logger:     logger,
	}
}

func cacheKey(id int64) string {
	return fmt.Sprintf("todo:%d", id)
}

// Create inserts the record in the store and caches it.
func (t *Todo) Create(ctx context.Context, params internal.CreateTodoParams) (internal.Todo, error) {
	defer newOTELSpan(ctx, "Todo.Create").End()

	todo, err := t.orig.Create(ctx, params)
	if err != nil {
		return internal.Todo{}, err
	}

	setTodo(ctx, t.client, cacheKey(todo.ID), &todo, t.expiration)

	return todo, nil
}

// Delete removes the record from the store and invalidates its cache entry.
func (t *Todo) Delete(ctx context.Context, id int64) error {
	defer newOTELSpan(ctx, "Todo.Delete").End()

	if err := t.orig.Delete(ctx, id); err != nil {
		return err
	}

	deleteTodo(ctx, t.client, cacheKey(id))

	return nil
}

// Find returns the cached record, falling back to the store on a miss.
func (t *Todo) Find(ctx context.Context, id int64) (internal.Todo, error) {
	defer newOTELSpan(ctx, "Todo.Find").End()

	var res internal.Todo

	if err := getTodo(ctx, t.client, cacheKey(id), &res); err == nil {
		return res, nil
	}

	t.logger.Debug("Find: cache miss", zap.Int64("id", id))

	res, err := t.orig.Find(ctx, id)
	if err != nil {
		return internal.Todo{}, err
	}

	setTodo(ctx, t.client, cacheKey(res.ID), &res, t.expiration)

	return res, nil
}

// List always goes to the store, result sets depend on the filters.
func (t *Todo) List(ctx context.Context, params internal.ListTodosParams) ([]internal.Todo, int64, error) {
	return t.orig.List(ctx, params)
}

// Summary always goes to the store.
func (t *Todo) Summary(ctx context.Context) (internal.TodoSummary, error) {
	return t.orig.Summary(ctx)
}

// Update modifies the record in the store and refreshes its cache entry.
func (t *Todo) Update(ctx context.Context, id int64, params internal.UpdateTodoParams) (internal.Todo, error) {
	defer newOTELSpan(ctx, "Todo.Update").End()

	todo, err := t.orig.Update(ctx, id, params)
	if err != nil {
		return internal.Todo{}, err
	}

	setTodo(ctx, t.client, cacheKey(todo.ID), &todo, t.expiration)

	return todo, nil
}

// UpdateStatus sets completion in the store and refreshes the cache entry.
func (t *Todo) UpdateStatus(ctx context.Context, id int64, completed bool) (internal.Todo, error) {
	defer newOTELSpan(ctx, "Todo.UpdateStatus").End()

	todo, err := t.orig.UpdateStatus(ctx, id, completed)
	if err != nil {
		return internal.Todo{}, err
	}

	setTodo(ctx, t.client, cacheKey(todo.ID), &todo, t.expiration)

	return todo, nil
}
