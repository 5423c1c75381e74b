package internal

import (
	"os"

	"github.com/frezix0/todo-api/internal"
	"github.com/frezix0/todo-api/internal/envar/vault"
)

// NewVaultProvider instantiates the Vault client using configuration defined
// in environment variables.
func NewVaultProvider() (*vault.Provider, error) {
	vaultPath := os.Getenv("VAULT_PATH")
	vaultToken := os.Getenv("VAULT_TOKEN")
	vaultAddress := os.Getenv("VAULT_ADDRESS")

	provider, err := vault.New(vaultToken, vaultAddress, vaultPath)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "vault.New")
	}

	return provider, nil
}
