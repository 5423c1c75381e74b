package redis

import (
	"bytes"
	"context"
	"encoding/json"

	rv8 "github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/frezix0/todo-api/internal"
)

const otelName = "github.com/frezix0/todo-api/internal/redis"

// Todo represents the repository used for publishing todo events, each event
// type goes to the channel named after it.
type Todo struct {
	client *rv8.Client
}

type event struct {
	Type  string
	Value internal.Todo
}

// NewTodo instantiates the Todo repository.
func NewTodo(client *rv8.Client) *Todo {
	return &Todo{
		client: client,
	}
}

// Created publishes a message indicating a todo was created.
func (t *Todo) Created(ctx context.Context, todo internal.Todo) error {
	return t.publish(ctx, "Todo.Created", "todos.event.created", todo)
}

// Deleted publishes a message indicating a todo was deleted.
func (t *Todo) Deleted(ctx context.Context, id int64) error {
	return t.publish(ctx, "Todo.Deleted", "todos.event.deleted", internal.Todo{ID: id})
}

// Updated publishes a message indicating a todo was updated.
func (t *Todo) Updated(ctx context.Context, todo internal.Todo) error {
	return t.publish(ctx, "Todo.Updated", "todos.event.updated", todo)
}

func (t *Todo) publish(ctx context.Context, spanName, channel string, todo internal.Todo) error {
	ctx, span := otel.Tracer(otelName).Start(ctx, spanName)
	defer span.End()

	span.SetAttributes(
		attribute.KeyValue{
			Key:   semconv.MessagingSystemKey,
			Value: attribute.StringValue("redis"),
		},
	)

	var b bytes.Buffer

	evt := event{
		Type:  channel,
		Value: todo,
	}

	if err := json.NewEncoder(&b).Encode(evt); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnkown, "json.Encode")
	}

	if err := t.client.Publish(ctx, channel, b.String()).Err(); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnkown, "client.Publish")
	}

	return nil
}
