package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strconv"
	"time"

	esv7 "github.com/elastic/go-elasticsearch/v7"
	esv7api "github.com/elastic/go-elasticsearch/v7/esapi"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/frezix0/todo-api/internal"
)

const otelName = "github.com/frezix0/todo-api/internal/elasticsearch"

// Todo represents the repository used for indexing and searching todo
// records.
type Todo struct {
	client *esv7.Client
	index  string
}

// indexedTodo is the document stored in the index. Zero DueDate and
// CategoryID mean the todo has none.
type indexedTodo struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Completed   bool              `json:"completed"`
	Priority    internal.Priority `json:"priority"`
	DueDate     int64             `json:"due_date"`
	CategoryID  int64             `json:"category_id"`
}

// NewTodo instantiates the Todo repository.
func NewTodo(client *esv7.Client) *Todo {
	return &Todo{
		client: client,
		index:  "todos",
	}
}

// Index creates or updates a todo in the index.
func (t *Todo) Index(ctx context.Context, todo internal.Todo) error {
	defer newOTELSpan(ctx, "Todo.Index").End()

	body := indexedTodo{
		ID:        todo.ID,
		Title:     todo.Title,
		Completed: todo.Completed,
		Priority:  todo.Priority,
	}

	if todo.Description != nil {
		body.Description = *todo.Description
	}

	if todo.DueDate != nil {
		body.DueDate = todo.DueDate.UnixNano()
	}

	if todo.CategoryID != nil {
		body.CategoryID = *todo.CategoryID
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnkown, "json.NewEncoder.Encode")
	}

	req := esv7api.IndexRequest{
		Index:      t.index,
		Body:       &buf,
		DocumentID: strconv.FormatInt(todo.ID, 10),
		Refresh:    "true",
	}

	resp, err := req.Do(ctx, t.client)
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnkown, "IndexRequest.Do")
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return internal.NewErrorf(internal.ErrorCodeUnkown, "IndexRequest.Do %d", resp.StatusCode)
	}

	io.Copy(io.Discard, resp.Body)

	return nil
}

// Delete removes a todo from the index.
func (t *Todo) Delete(ctx context.Context, id int64) error {
	defer newOTELSpan(ctx, "Todo.Delete").End()

	req := esv7api.DeleteRequest{
		Index:      t.index,
		DocumentID: strconv.FormatInt(id, 10),
	}

	resp, err := req.Do(ctx, t.client)
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnkown, "DeleteRequest.Do")
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return internal.NewErrorf(internal.ErrorCodeUnkown, "DeleteRequest.Do %d", resp.StatusCode)
	}

	io.Copy(io.Discard, resp.Body)

	return nil
}

// Search returns todos matching the arguments.
func (t *Todo) Search(ctx context.Context, args internal.SearchParams) (internal.SearchResults, error) {
	defer newOTELSpan(ctx, "Todo.Search").End()

	if args.IsZero() {
		return internal.SearchResults{}, nil
	}

	should := make([]interface{}, 0, 4)

	if args.Title != nil {
		should = append(should, map[string]interface{}{
			"match": map[string]interface{}{
				"title": *args.Title,
			},
		})
	}

	if args.Description != nil {
		should = append(should, map[string]interface{}{
			"match": map[string]interface{}{
				"description": *args.Description,
			},
		})
	}

	if args.Priority != nil {
		should = append(should, map[string]interface{}{
			"match": map[string]interface{}{
				"priority": *args.Priority,
			},
		})
	}

	if args.Completed != nil {
		should = append(should, map[string]interface{}{
			"match": map[string]interface{}{
				"completed": *args.Completed,
			},
		})
	}

	var query map[string]interface{}

	if len(should) > 1 {
		query = map[string]interface{}{
			"query": map[string]interface{}{
				"bool": map[string]interface{}{
					"should": should,
				},
			},
		}
	} else {
		query = map[string]interface{}{
			"query": should[0],
		}
	}

	query["sort"] = []interface{}{
		"_score",
		map[string]interface{}{"id": "asc"},
	}

	query["from"] = args.From
	query["size"] = args.Size

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return internal.SearchResults{}, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "json.NewEncoder.Encode")
	}

	req := esv7api.SearchRequest{
		Index: []string{t.index},
		Body:  &buf,
	}

	resp, err := req.Do(ctx, t.client)
	if err != nil {
		return internal.SearchResults{}, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "SearchRequest.Do")
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return internal.SearchResults{}, internal.NewErrorf(internal.ErrorCodeUnkown, "SearchRequest.Do %d", resp.StatusCode)
	}

	var hits struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source indexedTodo `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return internal.SearchResults{}, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "json.NewDecoder.Decode")
	}

	res := make([]internal.Todo, len(hits.Hits.Hits))

	for i, hit := range hits.Hits.Hits {
		res[i].ID = hit.Source.ID
		res[i].Title = hit.Source.Title
		res[i].Completed = hit.Source.Completed
		res[i].Priority = hit.Source.Priority

		if hit.Source.Description != "" {
			description := hit.Source.Description
			res[i].Description = &description
		}

		if hit.Source.DueDate != 0 {
			dueDate := time.Unix(0, hit.Source.DueDate).UTC()
			res[i].DueDate = &dueDate
		}

		if hit.Source.CategoryID != 0 {
			categoryID := hit.Source.CategoryID
			res[i].CategoryID = &categoryID
		}
	}

	return internal.SearchResults{
		Todos: res,
		Total: hits.Hits.Total.Value,
	}, nil
}

func newOTELSpan(ctx context.Context, name string) trace.Span {
	_, span := otel.Tracer(otelName).Start(ctx, name)

	span.SetAttributes(semconv.DBSystemElasticsearch)

	return span
}
