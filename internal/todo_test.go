package internal_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frezix0/todo-api/internal"
)

func TestPriority_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   internal.Priority
		withErr bool
	}{
		{name: "low", input: internal.PriorityLow},
		{name: "medium", input: internal.PriorityMedium},
		{name: "high", input: internal.PriorityHigh},
		{name: "none", input: internal.PriorityNone, withErr: true},
		{name: "out of range", input: internal.Priority(42), withErr: true},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.input.Validate()
			if tt.withErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCreateTodoParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   internal.CreateTodoParams
		withErr bool
	}{
		{
			name: "OK",
			input: internal.CreateTodoParams{
				Title:    "write report",
				Priority: internal.PriorityMedium,
			},
		},
		{
			name: "ErrMissingTitle",
			input: internal.CreateTodoParams{
				Priority: internal.PriorityHigh,
			},
			withErr: true,
		},
		{
			name: "ErrTitleTooLong",
			input: internal.CreateTodoParams{
				Title:    strings.Repeat("x", 201),
				Priority: internal.PriorityLow,
			},
			withErr: true,
		},
		{
			name: "ErrUnknownPriority",
			input: internal.CreateTodoParams{
				Title:    "write report",
				Priority: internal.Priority(9),
			},
			withErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.input.Validate()
			if tt.withErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestUpdateTodoParams_Validate(t *testing.T) {
	t.Parallel()

	title := "groceries"
	empty := ""
	priority := internal.PriorityHigh
	badPriority := internal.Priority(7)

	tests := []struct {
		name    string
		input   internal.UpdateTodoParams
		withErr bool
	}{
		{name: "OK: nothing set", input: internal.UpdateTodoParams{}},
		{name: "OK: title and priority", input: internal.UpdateTodoParams{Title: &title, Priority: &priority}},
		{name: "ErrEmptyTitle", input: internal.UpdateTodoParams{Title: &empty}, withErr: true},
		{name: "ErrUnknownPriority", input: internal.UpdateTodoParams{Priority: &badPriority}, withErr: true},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.input.Validate()
			if tt.withErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestPagination_ClampLimit(t *testing.T) {
	t.Parallel()

	pagination := internal.Pagination{DefaultLimit: 10, MaxLimit: 50}

	tests := []struct {
		name  string
		input int64
		want  int64
	}{
		{name: "zero takes default", input: 0, want: 10},
		{name: "negative takes default", input: -3, want: 10},
		{name: "above max is capped", input: 500, want: 50},
		{name: "in range untouched", input: 25, want: 25},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, pagination.ClampLimit(tt.input))
		})
	}
}

func TestPagination_ClampSkip(t *testing.T) {
	t.Parallel()

	pagination := internal.Pagination{DefaultLimit: 10, MaxLimit: 50}

	assert.Equal(t, int64(0), pagination.ClampSkip(-1))
	assert.Equal(t, int64(40), pagination.ClampSkip(40))
}

func TestSearchParams_IsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, internal.SearchParams{From: 10, Size: 20}.IsZero())

	title := "report"

	assert.False(t, internal.SearchParams{Title: &title}.IsZero())
}
