package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/frezix0/todo-api/internal"
	"go.opentelemetry.io/otel"
)

const otelName = "github.com/frezix0/todo-api/internal/rest"

// ErrorResponse represents a response containing an error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

func renderErrorResponse(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	resp := ErrorResponse{Error: msg}
	status := http.StatusInternalServerError

	var ierr *internal.Error
	if !errors.As(err, &ierr) {
		resp.Error = "internal error"
	} else {
		switch ierr.Code() {
		case internal.ErrorCodeNotFound:
			status = http.StatusNotFound
		case internal.ErrorCodeInvalidArgument:
			status = http.StatusBadRequest
		case internal.ErrorCodeConflict:
			status = http.StatusConflict
		}
	}

	if err != nil {
		_, span := otel.Tracer(otelName).Start(ctx, "renderErrorResponse")
		defer span.End()

		span.RecordError(err)
	}

	renderResponse(w, resp, status)
}

func renderResponse(w http.ResponseWriter, res interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")

	if res == nil {
		w.WriteHeader(status)
		return
	}

	content, err := json.Marshal(res)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write(content)
}
