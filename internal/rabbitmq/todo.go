package rabbitmq

import (
	"bytes"
	"context"
	"encoding/gob"
	"time"

	"github.com/streadway/amqp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/frezix0/todo-api/internal"
)

const otelName = "github.com/frezix0/todo-api/internal/rabbitmq"

// Todo represents the repository used for publishing todo events.
type Todo struct {
	ch *amqp.Channel
}

// NewTodo instantiates the Todo repository.
func NewTodo(channel *amqp.Channel) (*Todo, error) {
	return &Todo{
		ch: channel,
	}, nil
}

// Created publishes a message indicating a todo was created.
func (t *Todo) Created(ctx context.Context, todo internal.Todo) error {
	return t.publish(ctx, "Todo.Created", "todos.event.created", todo)
}

// Deleted publishes a message indicating a todo was deleted.
func (t *Todo) Deleted(ctx context.Context, id int64) error {
	return t.publish(ctx, "Todo.Deleted", "todos.event.deleted", id)
}

// Updated publishes a message indicating a todo was updated.
func (t *Todo) Updated(ctx context.Context, todo internal.Todo) error {
	return t.publish(ctx, "Todo.Updated", "todos.event.updated", todo)
}

func (t *Todo) publish(ctx context.Context, spanName, routingKey string, e interface{}) error {
	_, span := otel.Tracer(otelName).Start(ctx, spanName)
	defer span.End()

	span.SetAttributes(
		attribute.KeyValue{
			Key:   semconv.MessagingSystemKey,
			Value: attribute.StringValue("rabbitmq"),
		},
		attribute.KeyValue{
			Key:   semconv.MessagingRabbitmqDestinationRoutingKeyKey,
			Value: attribute.StringValue(routingKey),
		},
	)

	var b bytes.Buffer
	if err := gob.NewEncoder(&b).Encode(e); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnkown, "gob.Encode")
	}

	err := t.ch.Publish(
		"todos",
		routingKey,
		false,
		false,
		amqp.Publishing{
			AppId:       "todos-rest-server",
			ContentType: "application/x-encoding-gob",
			Body:        b.Bytes(),
			Timestamp:   time.Now(),
		})
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnkown, "ch.Publish")
	}

	return nil
}
