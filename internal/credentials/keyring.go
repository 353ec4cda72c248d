package credentials

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// KeyringService is the service name tokens are filed under in the system
// secret store.
const KeyringService = "ghsync"

// Keyring stores tokens in the operating system's secret store (Keychain,
// Secret Service, Credential Manager).
type Keyring struct {
	Service string
}

func NewKeyring() Keyring {
	return Keyring{Service: KeyringService}
}

func (k Keyring) Get(account string) (string, error) {
	token, err := keyring.Get(k.Service, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (k Keyring) Store(account, token string) error {
	return keyring.Set(k.Service, account, token)
}
