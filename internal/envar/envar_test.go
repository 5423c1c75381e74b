package envvar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	envvar "github.com/frezix0/todo-api/internal/envar"
)

type providerStub struct {
	values map[string]string
}

func (p providerStub) Get(key string) (string, error) {
	return p.values[key], nil
}

func TestConfiguration_Get(t *testing.T) {
	t.Setenv("DATABASE_HOST", "localhost")

	conf := envvar.New(providerStub{})

	got, err := conf.Get("DATABASE_HOST")
	require.NoError(t, err)
	assert.Equal(t, "localhost", got)
}

func TestConfiguration_Get_Secure(t *testing.T) {
	t.Setenv("DATABASE_PASSWORD", "plain")
	t.Setenv("DATABASE_PASSWORD_SECURE", "db-password")

	conf := envvar.New(providerStub{values: map[string]string{"db-password": "fromvault"}})

	got, err := conf.Get("DATABASE_PASSWORD")
	require.NoError(t, err)
	assert.Equal(t, "fromvault", got)
}

func TestConfiguration_Get_Unset(t *testing.T) {
	conf := envvar.New(providerStub{})

	got, err := conf.Get("NOT_SET_AT_ALL")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad_EmptyFilename(t *testing.T) {
	assert.NoError(t, envvar.Load(""))
}

func TestLoad_MissingFile(t *testing.T) {
	assert.Error(t, envvar.Load("testdata/nope.env"))
}
