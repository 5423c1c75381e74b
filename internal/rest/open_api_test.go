package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frezix0/todo-api/internal/rest"
)

func TestNewOpenAPI3(t *testing.T) {
	t.Parallel()

	swagger := rest.NewOpenAPI3()

	data, err := json.Marshal(&swagger)
	require.NoError(t, err)

	doc, err := openapi3.NewLoader().LoadFromData(data)
	require.NoError(t, err)

	require.NoError(t, doc.Validate(context.Background()))

	for _, path := range []string{
		"/todos",
		"/todos/summary",
		"/todos/search",
		"/todos/{id}",
		"/todos/{id}/complete",
		"/categories",
		"/categories/with-counts",
		"/categories/{id}",
	} {
		assert.Contains(t, doc.Paths, path)
	}
}

func TestRegisterOpenAPI(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	rest.RegisterOpenAPI(router)

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, router, http.MethodGet, "/openapi3.json", nil)

		require.Equal(t, http.StatusOK, rec.Code)

		var doc openapi3.T
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
		assert.Equal(t, "Todo API", doc.Info.Title)
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, router, http.MethodGet, "/openapi3.yaml", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/x-yaml", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "Todo API")
	})
}
