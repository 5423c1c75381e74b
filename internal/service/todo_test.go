package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/frezix0/todo-api/internal"
	"github.com/frezix0/todo-api/internal/service"
)

type todoRepoStub struct {
	createFn       func(context.Context, internal.CreateTodoParams) (internal.Todo, error)
	deleteFn       func(context.Context, int64) error
	findFn         func(context.Context, int64) (internal.Todo, error)
	listFn         func(context.Context, internal.ListTodosParams) ([]internal.Todo, int64, error)
	summaryFn      func(context.Context) (internal.TodoSummary, error)
	updateFn       func(context.Context, int64, internal.UpdateTodoParams) (internal.Todo, error)
	updateStatusFn func(context.Context, int64, bool) (internal.Todo, error)
}

func (s *todoRepoStub) Create(ctx context.Context, params internal.CreateTodoParams) (internal.Todo, error) {
	return s.createFn(ctx, params)
}

func (s *todoRepoStub) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *todoRepoStub) Find(ctx context.Context, id int64) (internal.Todo, error) {
	return s.findFn(ctx, id)
}

func (s *todoRepoStub) List(ctx context.Context, params internal.ListTodosParams) ([]internal.Todo, int64, error) {
	return s.listFn(ctx, params)
}

func (s *todoRepoStub) Summary(ctx context.Context) (internal.TodoSummary, error) {
	return s.summaryFn(ctx)
}

func (s *todoRepoStub) Update(ctx context.Context, id int64, params internal.UpdateTodoParams) (internal.Todo, error) {
	return s.updateFn(ctx, id, params)
}

func (s *todoRepoStub) UpdateStatus(ctx context.Context, id int64, completed bool) (internal.Todo, error) {
	return s.updateStatusFn(ctx, id, completed)
}

type searchStub struct {
	searchFn func(context.Context, internal.SearchParams) (internal.SearchResults, error)
}

func (s *searchStub) Search(ctx context.Context, params internal.SearchParams) (internal.SearchResults, error) {
	return s.searchFn(ctx, params)
}

type brokerRecorder struct {
	created []internal.Todo
	updated []internal.Todo
	deleted []int64
}

func (b *brokerRecorder) Created(_ context.Context, todo internal.Todo) error {
	b.created = append(b.created, todo)
	return nil
}

func (b *brokerRecorder) Deleted(_ context.Context, id int64) error {
	b.deleted = append(b.deleted, id)
	return nil
}

func (b *brokerRecorder) Updated(_ context.Context, todo internal.Todo) error {
	b.updated = append(b.updated, todo)
	return nil
}

func newTodoService(repo service.TodoRepository, search service.TodoSearchRepository, broker service.TodoMessageBrokerRepository) *service.Todo {
	if repo == nil {
		repo = &todoRepoStub{}
	}

	if search == nil {
		search = &searchStub{}
	}

	if broker == nil {
		broker = &brokerRecorder{}
	}

	return service.NewTodo(zap.NewNop(), repo, search, broker)
}

func TestTodo_Create(t *testing.T) {
	t.Parallel()

	repo := &todoRepoStub{
		createFn: func(_ context.Context, params internal.CreateTodoParams) (internal.Todo, error) {
			return internal.Todo{ID: 7, Title: params.Title, Priority: params.Priority}, nil
		},
	}
	broker := &brokerRecorder{}

	svc := newTodoService(repo, nil, broker)

	todo, err := svc.Create(context.Background(), internal.CreateTodoParams{
		Title:    "write report",
		Priority: internal.PriorityHigh,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), todo.ID)

	require.Len(t, broker.created, 1)
	assert.Equal(t, int64(7), broker.created[0].ID)
}

func TestTodo_Create_InvalidParams(t *testing.T) {
	t.Parallel()

	called := false
	repo := &todoRepoStub{
		createFn: func(context.Context, internal.CreateTodoParams) (internal.Todo, error) {
			called = true
			return internal.Todo{}, nil
		},
	}
	broker := &brokerRecorder{}

	svc := newTodoService(repo, nil, broker)

	_, err := svc.Create(context.Background(), internal.CreateTodoParams{Priority: internal.PriorityLow})
	require.Error(t, err)

	var ierr *internal.Error
	require.True(t, errors.As(err, &ierr))
	assert.Equal(t, internal.ErrorCodeInvalidArgument, ierr.Code())

	assert.False(t, called, "repository must not be reached with invalid params")
	assert.Empty(t, broker.created)
}

func TestTodo_Create_RepoError(t *testing.T) {
	t.Parallel()

	repo := &todoRepoStub{
		createFn: func(context.Context, internal.CreateTodoParams) (internal.Todo, error) {
			return internal.Todo{}, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "category not found: 9")
		},
	}
	broker := &brokerRecorder{}

	svc := newTodoService(repo, nil, broker)

	_, err := svc.Create(context.Background(), internal.CreateTodoParams{
		Title:    "write report",
		Priority: internal.PriorityMedium,
	})
	require.Error(t, err)

	assert.Empty(t, broker.created, "failed create must not publish")
}

func TestTodo_Update(t *testing.T) {
	t.Parallel()

	title := "updated title"
	repo := &todoRepoStub{
		updateFn: func(_ context.Context, id int64, params internal.UpdateTodoParams) (internal.Todo, error) {
			return internal.Todo{ID: id, Title: *params.Title}, nil
		},
	}
	broker := &brokerRecorder{}

	svc := newTodoService(repo, nil, broker)

	todo, err := svc.Update(context.Background(), 3, internal.UpdateTodoParams{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "updated title", todo.Title)

	require.Len(t, broker.updated, 1)
	assert.Equal(t, int64(3), broker.updated[0].ID)
}

func TestTodo_UpdateStatus(t *testing.T) {
	t.Parallel()

	repo := &todoRepoStub{
		updateStatusFn: func(_ context.Context, id int64, completed bool) (internal.Todo, error) {
			return internal.Todo{ID: id, Completed: completed}, nil
		},
	}
	broker := &brokerRecorder{}

	svc := newTodoService(repo, nil, broker)

	todo, err := svc.UpdateStatus(context.Background(), 5, true)
	require.NoError(t, err)

	assert.True(t, todo.Completed)
	require.Len(t, broker.updated, 1)
}

func TestTodo_Delete(t *testing.T) {
	t.Parallel()

	repo := &todoRepoStub{
		deleteFn: func(context.Context, int64) error { return nil },
	}
	broker := &brokerRecorder{}

	svc := newTodoService(repo, nil, broker)

	require.NoError(t, svc.Delete(context.Background(), 42))
	assert.Equal(t, []int64{42}, broker.deleted)
}

func TestTodo_Delete_NotFound(t *testing.T) {
	t.Parallel()

	repo := &todoRepoStub{
		deleteFn: func(context.Context, int64) error {
			return internal.NewErrorf(internal.ErrorCodeNotFound, "todo not found: 42")
		},
	}
	broker := &brokerRecorder{}

	svc := newTodoService(repo, nil, broker)

	err := svc.Delete(context.Background(), 42)
	require.Error(t, err)

	var ierr *internal.Error
	require.True(t, errors.As(err, &ierr))
	assert.Equal(t, internal.ErrorCodeNotFound, ierr.Code())

	assert.Empty(t, broker.deleted)
}

func TestTodo_List(t *testing.T) {
	t.Parallel()

	repo := &todoRepoStub{
		listFn: func(context.Context, internal.ListTodosParams) ([]internal.Todo, int64, error) {
			return []internal.Todo{{ID: 1}, {ID: 2}}, 17, nil
		},
	}

	svc := newTodoService(repo, nil, nil)

	todos, total, err := svc.List(context.Background(), internal.ListTodosParams{})
	require.NoError(t, err)

	assert.Len(t, todos, 2)
	assert.Equal(t, int64(17), total)
}

func TestTodo_Summary(t *testing.T) {
	t.Parallel()

	repo := &todoRepoStub{
		summaryFn: func(context.Context) (internal.TodoSummary, error) {
			return internal.TodoSummary{Total: 10, Completed: 4, Pending: 6}, nil
		},
	}

	svc := newTodoService(repo, nil, nil)

	res, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(10), res.Total)
	assert.Equal(t, res.Total, res.Completed+res.Pending)
}

func TestTodo_Search(t *testing.T) {
	t.Parallel()

	search := &searchStub{
		searchFn: func(context.Context, internal.SearchParams) (internal.SearchResults, error) {
			return internal.SearchResults{Todos: []internal.Todo{{ID: 9}}, Total: 1}, nil
		},
	}

	svc := newTodoService(nil, search, nil)

	res, err := svc.Search(context.Background(), internal.SearchParams{})
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.Total)
	require.Len(t, res.Todos, 1)
}

func TestTodo_Search_Error(t *testing.T) {
	t.Parallel()

	search := &searchStub{
		searchFn: func(context.Context, internal.SearchParams) (internal.SearchResults, error) {
			return internal.SearchResults{}, errors.New("cluster down")
		},
	}

	svc := newTodoService(nil, search, nil)

	_, err := svc.Search(context.Background(), internal.SearchParams{})
	assert.Error(t, err)
}
