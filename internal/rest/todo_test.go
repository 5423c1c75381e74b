package rest_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frezix0/todo-api/internal"
	"github.com/frezix0/todo-api/internal/rest"
	"github.com/frezix0/todo-api/internal/rest/resttesting"
)

func newTodoRouter(svc rest.TodoService) *chi.Mux {
	router := chi.NewRouter()

	rest.NewTodoHandler(svc, internal.Pagination{DefaultLimit: 10, MaxLimit: 50}).Register(router)

	return router
}

func doRequest(t *testing.T, router http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(data)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, reader))

	return rec
}

func TestTodoHandler_List(t *testing.T) {
	t.Parallel()

	t.Run("OK: filters and pagination forwarded", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeTodoService{}
		svc.ListReturns([]internal.Todo{
			{ID: 1, Title: "write report", Priority: internal.PriorityHigh},
		}, 23, nil)

		rec := doRequest(t, newTodoRouter(svc),
			http.MethodGet,
			"/todos?page=2&per_page=10&search=report&category_id=5&completed=false&priority=high&sort_by=title&sort_order=asc",
			nil)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 1, svc.ListCallCount())

		_, params := svc.ListArgsForCall(0)
		assert.Equal(t, int64(10), params.Skip)
		assert.Equal(t, int64(10), params.Limit)
		assert.Equal(t, "title", params.SortBy)
		assert.Equal(t, "asc", params.SortOrder)

		require.NotNil(t, params.Search)
		assert.Equal(t, "report", *params.Search)

		require.NotNil(t, params.CategoryID)
		assert.Equal(t, int64(5), *params.CategoryID)

		require.NotNil(t, params.Completed)
		assert.False(t, *params.Completed)

		require.NotNil(t, params.Priority)
		assert.Equal(t, internal.PriorityHigh, *params.Priority)

		var res rest.ListTodosResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

		require.Len(t, res.Data, 1)
		assert.Equal(t, rest.PriorityHigh, res.Data[0].Priority)
		assert.Equal(t, rest.PaginationMeta{
			CurrentPage: 2,
			PerPage:     10,
			Total:       23,
			TotalPages:  3,
			HasNext:     true,
			HasPrev:     true,
		}, res.Pagination)
	})

	t.Run("OK: defaults on empty collection", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeTodoService{}
		svc.ListReturns(nil, 0, nil)

		rec := doRequest(t, newTodoRouter(svc), http.MethodGet, "/todos", nil)

		require.Equal(t, http.StatusOK, rec.Code)

		_, params := svc.ListArgsForCall(0)
		assert.Equal(t, int64(0), params.Skip)
		assert.Equal(t, int64(10), params.Limit)
		assert.Nil(t, params.Search)
		assert.Nil(t, params.CategoryID)
		assert.Nil(t, params.Completed)
		assert.Nil(t, params.Priority)

		var res rest.ListTodosResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

		assert.Empty(t, res.Data)
		assert.Equal(t, rest.PaginationMeta{
			CurrentPage: 1,
			PerPage:     10,
			Total:       0,
			TotalPages:  1,
			HasNext:     false,
			HasPrev:     false,
		}, res.Pagination)
	})

	t.Run("OK: per_page clamped to the maximum", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeTodoService{}

		rec := doRequest(t, newTodoRouter(svc), http.MethodGet, "/todos?page=0&per_page=500", nil)

		require.Equal(t, http.StatusOK, rec.Code)

		_, params := svc.ListArgsForCall(0)
		assert.Equal(t, int64(0), params.Skip)
		assert.Equal(t, int64(50), params.Limit)
	})

	t.Run("ERR: malformed query values", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name   string
			target string
		}{
			{"page", "/todos?page=abc"},
			{"per_page", "/todos?per_page=many"},
			{"category_id", "/todos?category_id=work"},
			{"completed", "/todos?completed=maybe"},
			{"priority", "/todos?priority=urgent"},
		}

		for _, tt := range tests {
			tt := tt

			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				svc := &resttesting.FakeTodoService{}

				rec := doRequest(t, newTodoRouter(svc), http.MethodGet, tt.target, nil)

				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Zero(t, svc.ListCallCount())
			})
		}
	})

	t.Run("ERR: service failure", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeTodoService{}
		svc.ListReturns(nil, 0, internal.NewErrorf(internal.ErrorCodeUnkown, "boom"))

		rec := doRequest(t, newTodoRouter(svc), http.MethodGet, "/todos", nil)

		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var res rest.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "list failed", res.Error)
	})
}

func TestTodoHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("OK: priority defaults to medium", func(t *testing.T) {
		t.Parallel()

		dueDate := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		categoryID := int64(3)

		svc := &resttesting.FakeTodoService{}
		svc.CreateReturns(internal.Todo{
			ID:         42,
			Title:      "buy milk",
			Priority:   internal.PriorityMedium,
			DueDate:    &dueDate,
			CategoryID: &categoryID,
		}, nil)

		rec := doRequest(t, newTodoRouter(svc), http.MethodPost, "/todos", map[string]interface{}{
			"title":       "buy milk",
			"due_date":    dueDate,
			"category_id": categoryID,
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, 1, svc.CreateCallCount())

		_, params := svc.CreateArgsForCall(0)
		assert.Equal(t, "buy milk", params.Title)
		assert.Equal(t, internal.PriorityMedium, params.Priority)
		require.NotNil(t, params.DueDate)
		assert.True(t, params.DueDate.Equal(dueDate))
		require.NotNil(t, params.CategoryID)
		assert.Equal(t, categoryID, *params.CategoryID)

		var res rest.Todo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, int64(42), res.ID)
		assert.Equal(t, rest.PriorityMedium, res.Priority)
	})

	t.Run("ERR: invalid body", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeTodoService{}

		rec := httptest.NewRecorder()
		newTodoRouter(svc).ServeHTTP(rec,
			httptest.NewRequest(http.MethodPost, "/todos", bytes.NewReader([]byte(`{`))))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, svc.CreateCallCount())
	})

	t.Run("ERR: unknown priority", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeTodoService{}

		rec := doRequest(t, newTodoRouter(svc), http.MethodPost, "/todos", map[string]interface{}{
			"title":    "buy milk",
			"priority": "urgent",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, svc.CreateCallCount())
	})

	t.Run("ERR: service rejects params", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeTodoService{}
		svc.CreateReturns(internal.Todo{},
			internal.NewErrorf(internal.ErrorCodeInvalidArgument, "title is required"))

		rec := doRequest(t, newTodoRouter(svc), http.MethodPost, "/todos", map[string]interface{}{
			"title": "",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTodoHandler_Get(t *testing.T) {
	t.Parallel()

	t.Run("OK", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeTodoService{}
		svc.TodoReturns(internal.Todo{
			ID:       7,
			Title:    "walk the dog",
			Priority: internal.PriorityLow,
			Category: &internal.Category{ID: 2, Name: "Personal", Color: "#10B981"},
		}, nil)

		rec := doRequest(t, newTodoRouter(svc), http.MethodGet, "/todos/7", nil)

		require.Equal(t, http.StatusOK, rec.Code)

		_, id := svc.TodoArgsForCall(0)
		assert.Equal(t, int64(7), id)

		var res rest.Todo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, int64(7), res.ID)
		assert.Equal(t, rest.PriorityLow, res.Priority)
		require.NotNil(t, res.Category)
		assert.Equal(t, "Personal", res.Category.Name)
	})

	t.Run("ERR: not found", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeTodoService{}
		svc.TodoReturns(internal.Todo{},
			internal.NewErrorf(internal.ErrorCodeNotFound, "todo not found"))

		rec := doRequest(t, newTodoRouter(svc), http.MethodGet, "/todos/999", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)

		var res rest.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "find failed", res.Error)
	})
}

func TestTodoHandler_Update(t *testing.T) {
	t.Parallel()

	t.Run("OK: only provided fields forwarded", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeTodoService{}
		svc.UpdateReturns(internal.Todo{ID: 7, Title: "walk the dog", Priority: internal.PriorityHigh}, nil)

		rec := doRequest(t, newTodoRouter(svc), http.MethodPut, "/todos/7", map[string]interface{}{
			"priority": "high",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		_, id, params := svc.UpdateArgsForCall(0)
		assert.Equal(t, int64(7), id)
		assert.Nil(t, params.Title)
		assert.Nil(t, params.Description)
		assert.Nil(t, params.DueDate)
		assert.Nil(t, params.CategoryID)
		require.NotNil(t, params.Priority)
		assert.Equal(t, internal.PriorityHigh, *params.Priority)
	})

	t.Run("ERR: not found", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeTodoService{}
		svc.UpdateReturns(internal.Todo{},
			internal.NewErrorf(internal.ErrorCodeNotFound, "todo not found"))

		rec := doRequest(t, newTodoRouter(svc), http.MethodPut, "/todos/999", map[string]interface{}{
			"title": "renamed",
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTodoHandler_UpdateStatus(t *testing.T) {
	t.Parallel()

	t.Run("OK", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeTodoService{}
		svc.UpdateStatusReturns(internal.Todo{ID: 7, Completed: true, Priority: internal.PriorityMedium}, nil)

		rec := doRequest(t, newTodoRouter(svc), http.MethodPatch, "/todos/7/complete", map[string]interface{}{
			"completed": true,
		})

		require.Equal(t, http.StatusOK, rec.Code)

		_, id, completed := svc.UpdateStatusArgsForCall(0)
		assert.Equal(t, int64(7), id)
		assert.True(t, completed)

		var res rest.Todo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.True(t, res.Completed)
	})
}

func TestTodoHandler_Delete(t *testing.T) {
	t.Parallel()

	t.Run("OK: no content", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeTodoService{}

		rec := doRequest(t, newTodoRouter(svc), http.MethodDelete, "/todos/7", nil)

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.Bytes())

		_, id := svc.DeleteArgsForCall(0)
		assert.Equal(t, int64(7), id)
	})

	t.Run("ERR: not found", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeTodoService{}
		svc.DeleteReturns(internal.NewErrorf(internal.ErrorCodeNotFound, "todo not found"))

		rec := doRequest(t, newTodoRouter(svc), http.MethodDelete, "/todos/999", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTodoHandler_Summary(t *testing.T) {
	t.Parallel()

	svc := &resttesting.FakeTodoService{}
	svc.SummaryReturns(internal.TodoSummary{
		Total:          10,
		Completed:      4,
		Pending:        6,
		HighPriority:   2,
		MediumPriority: 5,
		LowPriority:    3,
		Overdue:        1,
	}, nil)

	rec := doRequest(t, newTodoRouter(svc), http.MethodGet, "/todos/summary", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var res rest.TodoSummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, rest.TodoSummaryResponse{
		Total:          10,
		Completed:      4,
		Pending:        6,
		HighPriority:   2,
		MediumPriority: 5,
		LowPriority:    3,
		Overdue:        1,
	}, res)
}

func TestTodoHandler_Search(t *testing.T) {
	t.Parallel()

	t.Run("OK", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeTodoService{}
		svc.SearchReturns(internal.SearchResults{
			Todos: []internal.Todo{{ID: 1, Title: "write report", Priority: internal.PriorityHigh}},
			Total: 1,
		}, nil)

		rec := doRequest(t, newTodoRouter(svc), http.MethodPost, "/todos/search", map[string]interface{}{
			"title":    "report",
			"priority": "high",
			"size":     5,
		})

		require.Equal(t, http.StatusOK, rec.Code)

		_, params := svc.SearchArgsForCall(0)
		require.NotNil(t, params.Title)
		assert.Equal(t, "report", *params.Title)
		require.NotNil(t, params.Priority)
		assert.Equal(t, internal.PriorityHigh, *params.Priority)
		assert.Equal(t, int64(5), params.Size)

		var res rest.SearchTodosResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		require.Len(t, res.Todos, 1)
		assert.Equal(t, int64(1), res.Total)
	})

	t.Run("ERR: search backend down", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeTodoService{}
		svc.SearchReturns(internal.SearchResults{},
			internal.NewErrorf(internal.ErrorCodeUnkown, "search index unavailable"))

		rec := doRequest(t, newTodoRouter(svc), http.MethodPost, "/todos/search", map[string]interface{}{
			"title": "report",
		})

		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var res rest.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "search failed", res.Error)
	})
}
