package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HealthHandler reports whether the service is up.
type HealthHandler struct {
	version string
}

// NewHealthHandler ...
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{
		version: version,
	}
}

// Register connects the handler to the router.
func (h *HealthHandler) Register(r chi.Router) {
	r.Get("/health", h.health)
}

// HealthResponse ...
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (h *HealthHandler) health(w http.ResponseWriter, r *http.Request) {
	renderResponse(w,
		&HealthResponse{
			Status:  "ok",
			Version: h.version,
		},
		http.StatusOK)
}
