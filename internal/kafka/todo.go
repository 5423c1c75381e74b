package kafka

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/frezix0/todo-api/internal"
)

// Todo represents the repository used for publishing todo events.
type Todo struct {
	producer  *kafka.Producer
	topicName string
}

type event struct {
	Type  string
	Value internal.Todo
}

// NewTodo instantiates the Todo repository.
func NewTodo(producer *kafka.Producer, topicName string) *Todo {
	return &Todo{
		producer:  producer,
		topicName: topicName,
	}
}

// Created publishes a message indicating a todo was created.
func (t *Todo) Created(ctx context.Context, todo internal.Todo) error {
	return t.pubish(ctx, "Todo.Created", "todos.event.created", todo)
}

// Deleted publishes a message indicating a todo was deleted.
func (t *Todo) Deleted(ctx context.Context, id int64) error {
	return t.pubish(ctx, "Todo.Deleted", "todos.event.deleted", internal.Todo{ID: id})
}

// Updated publishes a message indicating a todo was updated.
func (t *Todo) Updated(ctx context.Context, todo internal.Todo) error {
	return t.pubish(ctx, "Todo.Updated", "todos.event.updated", todo)
}

func (t *Todo) pubish(ctx context.Context, spanName, msgType string, todo internal.Todo) error {
	_, span := trace.SpanFromContext(ctx).Tracer().Start(ctx, spanName)
	defer span.End()

	span.SetAttributes(
		attribute.KeyValue{
			Key:   semconv.MessagingSystemKey,
			Value: attribute.StringValue("kafka"),
		},
	)

	var b bytes.Buffer

	evt := event{
		Type:  msgType,
		Value: todo,
	}

	if err := json.NewEncoder(&b).Encode(evt); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnkown, "json.Encode")
	}

	if err := t.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &t.topicName,
			Partition: kafka.PartitionAny,
		},
		Value: b.Bytes(),
	}, nil); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnkown, "producer.Produce")
	}

	return nil
}
