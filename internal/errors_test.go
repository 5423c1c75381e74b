package internal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frezix0/todo-api/internal"
)

func TestError_Wrapping(t *testing.T) {
	t.Parallel()

	orig := errors.New("connection refused")
	err := internal.WrapErrorf(orig, internal.ErrorCodeUnkown, "pgx.Query")

	var ierr *internal.Error
	require.True(t, errors.As(err, &ierr))

	assert.Equal(t, internal.ErrorCodeUnkown, ierr.Code())
	assert.Equal(t, "pgx.Query: connection refused", err.Error())
	assert.True(t, errors.Is(err, orig))
}

func TestError_New(t *testing.T) {
	t.Parallel()

	err := internal.NewErrorf(internal.ErrorCodeNotFound, "todo %d not found", 42)

	var ierr *internal.Error
	require.True(t, errors.As(err, &ierr))

	assert.Equal(t, internal.ErrorCodeNotFound, ierr.Code())
	assert.Equal(t, "todo 42 not found", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
