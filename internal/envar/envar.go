package envvar

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/frezix0/todo-api/internal"
)

// Load reads the env filename and loads it into ENV for this process, an
// empty filename leaves the current environment untouched.
func Load(filename string) error {
	if filename == "" {
		return nil
	}

	if err := godotenv.Load(filename); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnkown, "godotenv.Load")
	}

	return nil
}

// Provider provides access to values stored outside of the process
// environment.
type Provider interface {
	Get(key string) (string, error)
}

// Configuration ...
type Configuration struct {
	provider Provider
}

// New ...
func New(provider Provider) *Configuration {
	return &Configuration{provider: provider}
}

// Get returns the value of the environment variable key. When the companion
// variable "<key>_SECURE" is set, its value is used as the key for looking the
// final value up in the secrets provider instead.
func (c *Configuration) Get(key string) (string, error) {
	res := os.Getenv(key)

	valSecret := os.Getenv(fmt.Sprintf("%s_SECURE", key))
	if valSecret != "" {
		valSecretRes, err := c.provider.Get(valSecret)
		if err != nil {
			return "", internal.WrapErrorf(err, internal.ErrorCodeUnkown, "provider.Get")
		}

		res = valSecretRes
	}

	return res, nil
}
