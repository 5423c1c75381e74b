package rest_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frezix0/todo-api/internal/rest"
)

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	rest.NewHealthHandler("1.2.3").Register(router)

	rec := doRequest(t, router, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var res rest.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "ok", res.Status)
	assert.Equal(t, "1.2.3", res.Version)
}
