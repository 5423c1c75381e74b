package db

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// Priority mirrors the priority enum, declared in the enum's own order so that
// ORDER BY priority ranks high first.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Todo mirrors the todos table.
type Todo struct {
	ID          int64
	Title       string
	Description pgtype.Text
	Completed   bool
	Priority    Priority
	DueDate     pgtype.Timestamptz
	CategoryID  pgtype.Int8
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

// Category mirrors the categories table.
type Category struct {
	ID        int64
	Name      string
	Color     string
	CreatedAt pgtype.Timestamptz
}
