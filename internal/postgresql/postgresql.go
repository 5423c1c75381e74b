package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/frezix0/todo-api/internal"
	"github.com/frezix0/todo-api/internal/postgresql/db"
	"github.com/jackc/pgx/v5/pgtype"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

const otelName = "github.com/frezix0/todo-api/internal/postgresql"

func convertPriority(p db.Priority) (internal.Priority, error) {
	switch p {
	case db.PriorityLow:
		return internal.PriorityLow, nil
	case db.PriorityMedium:
		return internal.PriorityMedium, nil
	case db.PriorityHigh:
		return internal.PriorityHigh, nil
	}

	return internal.PriorityNone, fmt.Errorf("unknown value: %s", p)
}

func newPriority(p internal.Priority) db.Priority {
	switch p {
	case internal.PriorityLow:
		return db.PriorityLow
	case internal.PriorityMedium:
		return db.PriorityMedium
	case internal.PriorityHigh:
		return db.PriorityHigh
	}

	return "invalid"
}

func timePtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}

	t := ts.Time

	return &t
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}

	s := t.String

	return &s
}

func int8Ptr(v pgtype.Int8) *int64 {
	if !v.Valid {
		return nil
	}

	i := v.Int64

	return &i
}

func newOTELSpan(ctx context.Context, name string) trace.Span {
	_, span := otel.Tracer(otelName).Start(ctx, name)

	span.SetAttributes(semconv.DBSystemPostgreSQL)

	return span
}
