package internal

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultCategoryColor is assigned when a category is created without an
// explicit color.
const DefaultCategoryColor = "#3B82F6"

var colorRx = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Category groups todos, deleting one is refused while todos still reference
// it.
type Category struct {
	ID        int64
	Name      string
	Color     string
	CreatedAt time.Time
}

// CategoryWithCount is a Category annotated with the number of todos
// referencing it, categories without todos report zero.
type CategoryWithCount struct {
	Category

	TodoCount int64
}

// CreateCategoryParams defines the fields used to create a Category.
type CreateCategoryParams struct {
	Name  string
	Color string
}

// Validate ...
func (p CreateCategoryParams) Validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.Color, validation.Required, validation.Match(colorRx)),
	); err != nil {
		return WrapErrorf(err, ErrorCodeInvalidArgument, "validation.ValidateStruct")
	}

	return nil
}

// UpdateCategoryParams defines the fields that can be updated in place, nil
// values leave the current one untouched.
type UpdateCategoryParams struct {
	Name  *string
	Color *string
}

// Validate ...
func (p UpdateCategoryParams) Validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&p.Color, validation.NilOrNotEmpty, validation.Match(colorRx)),
	); err != nil {
		return WrapErrorf(err, ErrorCodeInvalidArgument, "validation.ValidateStruct")
	}

	return nil
}
