package rest_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frezix0/todo-api/internal"
	"github.com/frezix0/todo-api/internal/rest"
	"github.com/frezix0/todo-api/internal/rest/resttesting"
)

func newCategoryRouter(svc rest.CategoryService) *chi.Mux {
	router := chi.NewRouter()

	rest.NewCategoryHandler(svc).Register(router)

	return router
}

func TestCategoryHandler_List(t *testing.T) {
	t.Parallel()

	svc := &resttesting.FakeCategoryService{}
	svc.ListReturns([]internal.Category{
		{ID: 1, Name: "Personal", Color: "#10B981"},
		{ID: 2, Name: "Work", Color: "#3B82F6"},
	}, nil)

	rec := doRequest(t, newCategoryRouter(svc), http.MethodGet, "/categories", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var res []rest.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	require.Len(t, res, 2)
	assert.Equal(t, "Personal", res[0].Name)
	assert.Equal(t, "Work", res[1].Name)
}

func TestCategoryHandler_ListWithCounts(t *testing.T) {
	t.Parallel()

	svc := &resttesting.FakeCategoryService{}
	svc.ListWithCountsReturns([]internal.CategoryWithCount{
		{Category: internal.Category{ID: 1, Name: "Personal", Color: "#10B981"}, TodoCount: 3},
		{Category: internal.Category{ID: 2, Name: "Work", Color: "#3B82F6"}, TodoCount: 0},
	}, nil)

	rec := doRequest(t, newCategoryRouter(svc), http.MethodGet, "/categories/with-counts", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var res []rest.CategoryWithCount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	require.Len(t, res, 2)
	assert.Equal(t, int64(3), res[0].TodoCount)
	assert.Equal(t, "Personal", res[0].Name)
	assert.Equal(t, int64(0), res[1].TodoCount)
}

func TestCategoryHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("OK: color defaults when omitted", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeCategoryService{}
		svc.CreateReturns(internal.Category{ID: 9, Name: "Errands", Color: internal.DefaultCategoryColor}, nil)

		rec := doRequest(t, newCategoryRouter(svc), http.MethodPost, "/categories", map[string]interface{}{
			"name": "Errands",
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, 1, svc.CreateCallCount())

		_, params := svc.CreateArgsForCall(0)
		assert.Equal(t, "Errands", params.Name)
		assert.Equal(t, internal.DefaultCategoryColor, params.Color)

		var res rest.Category
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, int64(9), res.ID)
	})

	t.Run("ERR: service rejects params", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeCategoryService{}
		svc.CreateReturns(internal.Category{},
			internal.NewErrorf(internal.ErrorCodeInvalidArgument, "name is required"))

		rec := doRequest(t, newCategoryRouter(svc), http.MethodPost, "/categories", map[string]interface{}{
			"name": "",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCategoryHandler_Get(t *testing.T) {
	t.Parallel()

	t.Run("OK", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeCategoryService{}
		svc.CategoryReturns(internal.Category{ID: 2, Name: "Work", Color: "#3B82F6"}, nil)

		rec := doRequest(t, newCategoryRouter(svc), http.MethodGet, "/categories/2", nil)

		require.Equal(t, http.StatusOK, rec.Code)

		_, id := svc.CategoryArgsForCall(0)
		assert.Equal(t, int64(2), id)
	})

	t.Run("ERR: not found", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeCategoryService{}
		svc.CategoryReturns(internal.Category{},
			internal.NewErrorf(internal.ErrorCodeNotFound, "category not found"))

		rec := doRequest(t, newCategoryRouter(svc), http.MethodGet, "/categories/999", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCategoryHandler_Update(t *testing.T) {
	t.Parallel()

	svc := &resttesting.FakeCategoryService{}
	svc.UpdateReturns(internal.Category{ID: 2, Name: "Office", Color: "#3B82F6"}, nil)

	rec := doRequest(t, newCategoryRouter(svc), http.MethodPut, "/categories/2", map[string]interface{}{
		"name": "Office",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	_, id, params := svc.UpdateArgsForCall(0)
	assert.Equal(t, int64(2), id)
	require.NotNil(t, params.Name)
	assert.Equal(t, "Office", *params.Name)
	assert.Nil(t, params.Color)
}

func TestCategoryHandler_Delete(t *testing.T) {
	t.Parallel()

	t.Run("OK: no content", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeCategoryService{}

		rec := doRequest(t, newCategoryRouter(svc), http.MethodDelete, "/categories/2", nil)

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.Bytes())
	})

	t.Run("ERR: still referenced by todos", func(t *testing.T) {
		t.Parallel()

		svc := &resttesting.FakeCategoryService{}
		svc.DeleteReturns(internal.NewErrorf(internal.ErrorCodeConflict, "category 2 still has 3 todos"))

		rec := doRequest(t, newCategoryRouter(svc), http.MethodDelete, "/categories/2", nil)

		require.Equal(t, http.StatusConflict, rec.Code)

		var res rest.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "delete failed", res.Error)
	})
}
