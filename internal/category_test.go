package internal_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frezix0/todo-api/internal"
)

func TestCreateCategoryParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   internal.CreateCategoryParams
		withErr bool
	}{
		{
			name:  "OK",
			input: internal.CreateCategoryParams{Name: "Work", Color: internal.DefaultCategoryColor},
		},
		{
			name:    "ErrMissingName",
			input:   internal.CreateCategoryParams{Color: "#FF0000"},
			withErr: true,
		},
		{
			name:    "ErrNameTooLong",
			input:   internal.CreateCategoryParams{Name: strings.Repeat("n", 101), Color: "#FF0000"},
			withErr: true,
		},
		{
			name:    "ErrColorNotHex",
			input:   internal.CreateCategoryParams{Name: "Work", Color: "red"},
			withErr: true,
		},
		{
			name:    "ErrColorTooShort",
			input:   internal.CreateCategoryParams{Name: "Work", Color: "#123"},
			withErr: true,
		},
		{
			name:    "ErrColorBadDigits",
			input:   internal.CreateCategoryParams{Name: "Work", Color: "#GGGGGG"},
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

func TestUpdateCategoryParams_Validate(t *testing.T) {
	t.Parallel()

	name := "Personal"
	empty := ""
	color := "#10B981"
	badColor := "blue"

	tests := []struct {
		name    string
		input   internal.UpdateCategoryParams
		withErr bool
	}{
		{name: "OK: nothing set", input: internal.UpdateCategoryParams{}},
		{name: "OK: both set", input: internal.UpdateCategoryParams{Name: &name, Color: &color}},
		{name: "ErrEmptyName", input: internal.UpdateCategoryParams{Name: &empty}, withErr: true},
		{name: "ErrColor", input: internal.UpdateCategoryParams{Color: &badColor}, withErr: true},
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
