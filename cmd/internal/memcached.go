package internal

import (
	"time"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/frezix0/todo-api/internal"
	envvar "github.com/frezix0/todo-api/internal/envar"
)

// NewMemcached instantiates the Memcached client using configuration defined
// in environment variables.
func NewMemcached(conf *envvar.Configuration) (*memcache.Client, error) {
	host, err := conf.Get("MEMCACHED_HOST")
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "conf.Get MEMCACHED_HOST")
	}

	client := memcache.New(host)

	if err := client.Ping(); err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "client.Ping")
	}

	client.Timeout = 100 * time.Millisecond
	client.MaxIdleConns = 100

	return client, nil
}
