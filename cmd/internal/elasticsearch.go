package internal

import (
	esv7 "github.com/elastic/go-elasticsearch/v7"

	"github.com/frezix0/todo-api/internal"
	envvar "github.com/frezix0/todo-api/internal/envar"
)

// NewElasticSearch instantiates the ElasticSearch client using configuration
// defined in environment variables.
func NewElasticSearch(conf *envvar.Configuration) (es *esv7.Client, err error) {
	url, err := conf.Get("ELASTICSEARCH_URL")
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "conf.Get ELASTICSEARCH_URL")
	}

	es, err = esv7.NewClient(esv7.Config{
		Addresses: []string{url},
	})
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "elasticsearch.NewClient")
	}

	res, err := es.Info()
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "es.Info")
	}

	defer func() {
		err = res.Body.Close()
	}()

	return es, nil
}
