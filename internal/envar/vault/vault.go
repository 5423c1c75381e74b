package vault

import (
	"github.com/hashicorp/vault/api"

	"github.com/frezix0/todo-api/internal"
)

// Provider reads secrets from a HashiCorp Vault KV v2 engine.
type Provider struct {
	client *api.Client
	path   string
}

// New instantiates a vault client using token for authentication, secrets are
// read from path.
func New(token, addr, path string) (*Provider, error) {
	config := &api.Config{Address: addr}

	client, err := api.NewClient(config)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "api.NewClient")
	}

	client.SetToken(token)

	return &Provider{
		client: client,
		path:   path,
	}, nil
}

// Get reads the value named key from the configured secrets path.
func (p *Provider) Get(key string) (string, error) {
	secret, err := p.client.Logical().Read(p.path)
	if err != nil {
		return "", internal.WrapErrorf(err, internal.ErrorCodeUnkown, "client.Logical().Read")
	}

	if secret == nil {
		return "", internal.NewErrorf(internal.ErrorCodeNotFound, "path not found: %s", p.path)
	}

	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return "", internal.NewErrorf(internal.ErrorCodeUnkown, "unexpected payload: %s", p.path)
	}

	res, ok := data[key].(string)
	if !ok {
		return "", internal.NewErrorf(internal.ErrorCodeNotFound, "key not found: %s", key)
	}

	return res, nil
}
