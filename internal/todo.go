package internal

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Priority indicates how important a Todo is.
type Priority uint8

const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

// Validate ...
func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	}

	return NewErrorf(ErrorCodeInvalidArgument, "unknown priority value")
}

// Sort fields accepted by listing operations, any other value falls back to
// SortByCreatedAt. Direction falls back to SortDesc.
const (
	SortByCreatedAt = "created_at"
	SortByUpdatedAt = "updated_at"
	SortByTitle     = "title"
	SortByPriority  = "priority"
	SortByDueDate   = "due_date"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Todo is an item to be completed, optionally assigned to a Category.
type Todo struct {
	ID          int64
	Title       string
	Description *string
	Completed   bool
	Priority    Priority
	DueDate     *time.Time
	CategoryID  *int64
	Category    *Category
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateTodoParams defines the fields used to create a Todo.
type CreateTodoParams struct {
	Title       string
	Description *string
	Priority    Priority
	DueDate     *time.Time
	CategoryID  *int64
}

// Validate ...
func (p CreateTodoParams) Validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&p.Priority),
	); err != nil {
		return WrapErrorf(err, ErrorCodeInvalidArgument, "validation.ValidateStruct")
	}

	return nil
}

// UpdateTodoParams defines the fields that can be updated in place, nil values
// leave the current one untouched. Completion is changed only via UpdateStatus.
type UpdateTodoParams struct {
	Title       *string
	Description *string
	Priority    *Priority
	DueDate     *time.Time
	CategoryID  *int64
}

// Validate ...
func (p UpdateTodoParams) Validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&p.Priority),
	); err != nil {
		return WrapErrorf(err, ErrorCodeInvalidArgument, "validation.ValidateStruct")
	}

	return nil
}

// ListTodosParams narrows down and orders the rows returned by List.
type ListTodosParams struct {
	Search     *string
	CategoryID *int64
	Completed  *bool
	Priority   *Priority
	SortBy     string
	SortOrder  string
	Skip       int64
	Limit      int64
}

// TodoSummary aggregates the current state of all stored todos. Pending is
// always Total minus Completed, Overdue counts uncompleted todos due strictly
// before the time the aggregation ran.
type TodoSummary struct {
	Total          int64
	Completed      int64
	Pending        int64
	HighPriority   int64
	MediumPriority int64
	LowPriority    int64
	Overdue        int64
}

// SearchParams defines the fields used when searching the todos index.
type SearchParams struct {
	Title       *string
	Description *string
	Priority    *Priority
	Completed   *bool
	From        int64
	Size        int64
}

// IsZero determines whether the search arguments have values.
func (p SearchParams) IsZero() bool {
	return p.Title == nil &&
		p.Description == nil &&
		p.Priority == nil &&
		p.Completed == nil
}

// SearchResults is the result of searching the todos index.
type SearchResults struct {
	Todos []Todo
	Total int64
}

// Pagination bounds the page size used by listing operations. It is built once
// during startup and handed to the layers that slice result sets, there is no
// package level default.
type Pagination struct {
	DefaultLimit int64
	MaxLimit     int64
}

// ClampLimit coerces limit into the [1, MaxLimit] range, missing or
// non-positive values take the default.
func (p Pagination) ClampLimit(limit int64) int64 {
	switch {
	case limit < 1:
		return p.DefaultLimit
	case limit > p.MaxLimit:
		return p.MaxLimit
	}

	return limit
}

// ClampSkip coerces skip into a non-negative offset.
func (p Pagination) ClampSkip(skip int64) int64 {
	if skip < 0 {
		return 0
	}

	return skip
}
