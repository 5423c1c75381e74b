package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/frezix0/todo-api/pkg/todoclient"
)

func main() {
	var baseURL string

	flag.StringVar(&baseURL, "url", "http://0.0.0.0:9234", "Server base URL")
	flag.Parse()

	initTracer()

	instrumented := http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	client := todoclient.NewClient(baseURL, todoclient.WithHTTPClient(&instrumented))

	ctx := context.Background()

	newPtrStr := func(s string) *string {
		return &s
	}

	newPtrTime := func(t time.Time) *time.Time {
		return &t
	}

	category, err := client.CreateCategory(ctx, todoclient.CreateCategoryRequest{
		Name: "Errands",
	})
	if err != nil {
		log.Fatalf("Couldn't create category: %s", err)
	}

	fmt.Printf("New Category\n\tID: %d\n", category.ID)
	fmt.Printf("\tName: %s\n", category.Name)
	fmt.Printf("\tColor: %s\n", category.Color)

	todo, err := client.CreateTodo(ctx, todoclient.CreateTodoRequest{
		Title:       "Sleep early",
		Description: newPtrStr("Lights out before midnight"),
		Priority:    todoclient.PriorityLow,
		DueDate:     newPtrTime(time.Now().Add(24 * time.Hour)),
		CategoryID:  &category.ID,
	})
	if err != nil {
		log.Fatalf("Couldn't create todo: %s", err)
	}

	fmt.Printf("New Todo\n\tID: %d\n", todo.ID)
	fmt.Printf("\tTitle: %s\n", todo.Title)
	fmt.Printf("\tPriority: %s\n", todo.Priority)
	fmt.Printf("\tDue: %s\n", todo.DueDate)

	priority := todoclient.PriorityHigh

	if _, err = client.UpdateTodo(ctx, todo.ID, todoclient.UpdateTodoRequest{
		Description: newPtrStr("Lights out before midnight ..."),
		Priority:    &priority,
	}); err != nil {
		log.Fatalf("Couldn't update todo: %s", err)
	}

	if _, err = client.UpdateTodoStatus(ctx, todo.ID, true); err != nil {
		log.Fatalf("Couldn't complete todo: %s", err)
	}

	updated, err := client.Todo(ctx, todo.ID)
	if err != nil {
		log.Fatalf("Couldn't read todo: %s", err)
	}

	fmt.Printf("Updated Todo\n\tID: %d\n", updated.ID)
	fmt.Printf("\tTitle: %s\n", updated.Title)
	fmt.Printf("\tPriority: %s\n", updated.Priority)
	fmt.Printf("\tCompleted: %t\n", updated.Completed)

	if updated.Category != nil {
		fmt.Printf("\tCategory: %s\n", updated.Category.Name)
	}

	completed := true

	page, err := client.ListTodos(ctx, todoclient.ListTodosParams{
		PerPage:   5,
		SortBy:    "priority",
		SortOrder: "desc",
		Completed: &completed,
	})
	if err != nil {
		log.Fatalf("Couldn't list todos: %s", err)
	}

	fmt.Printf("Completed Todos\n\tTotal: %d\n", page.Pagination.Total)

	for _, t := range page.Data {
		fmt.Printf("\t- %s (%s)\n", t.Title, t.Priority)
	}

	summary, err := client.TodoSummary(ctx)
	if err != nil {
		log.Fatalf("Couldn't read summary: %s", err)
	}

	fmt.Printf("Summary\n\tTotal: %d\n", summary.Total)
	fmt.Printf("\tCompleted: %d\n", summary.Completed)
	fmt.Printf("\tPending: %d\n", summary.Pending)
	fmt.Printf("\tOverdue: %d\n", summary.Overdue)

	hits, err := client.SearchTodos(ctx, todoclient.SearchTodosRequest{
		Title: newPtrStr("sleep"),
	})
	if err != nil {
		log.Fatalf("Couldn't search todos: %s", err)
	}

	fmt.Printf("Search\n\tTotal: %d\n", hits.Total)

	for _, t := range hits.Todos {
		fmt.Printf("\t- %s\n", t.Title)
	}

	// Leave time for the batch span processors to flush.
	time.Sleep(10 * time.Second)
}

// initTracer wires Jaeger and stdout exporters into the global provider.
func initTracer() {
	jaegerEndpoint := "http://localhost:14268/api/traces"

	jaegerExporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(jaegerEndpoint)))
	if err != nil {
		log.Fatalf("Couldn't initialize jaeger exporter: %s", err)
	}

	stdoutExporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		log.Fatalf("Couldn't initialize stdout exporter: %s", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(stdoutExporter),
		sdktrace.WithBatcher(jaegerExporter),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
}
