package rest

import "github.com/frezix0/todo-api/internal"

// Priority is the wire representation of a todo priority.
type Priority string

const (
	// PriorityLow indicates the todo can wait.
	PriorityLow Priority = "low"
	// PriorityMedium is the value assigned when a request omits the field.
	PriorityMedium Priority = "medium"
	// PriorityHigh indicates the todo should be worked on first.
	PriorityHigh Priority = "high"
)

// Convert returns the domain equivalent, unknown values are invalid.
func (p Priority) Convert() (internal.Priority, error) {
	switch p {
	case PriorityLow:
		return internal.PriorityLow, nil
	case PriorityMedium:
		return internal.PriorityMedium, nil
	case PriorityHigh:
		return internal.PriorityHigh, nil
	}

	return internal.PriorityNone, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "unknown priority %q", string(p))
}

// NewPriority converts the domain type to its wire representation.
func NewPriority(p internal.Priority) Priority {
	switch p {
	case internal.PriorityLow:
		return PriorityLow
	case internal.PriorityMedium:
		return PriorityMedium
	case internal.PriorityHigh:
		return PriorityHigh
	}

	return ""
}
