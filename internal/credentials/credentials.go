package credentials

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotFound means a source has no token for the account. A chain moves on
// to its next source when it sees this.
var ErrNotFound = errors.New("credential not found")

// ErrStoreNotSupported is returned by read-only sources.
var ErrStoreNotSupported = errors.New("source cannot store credentials")

// Source supplies and optionally persists the access token for an account.
// The reconciler receives one as a capability instead of reaching into the
// system keyring itself.
type Source interface {
	Get(account string) (string, error)
	Store(account, token string) error
}

// Static is a token supplied directly, e.g. via the --token flag.
type Static string

func (s Static) Get(string) (string, error) {
	if s == "" {
		return "", ErrNotFound
	}
	return string(s), nil
}

func (s Static) Store(string, string) error {
	return ErrStoreNotSupported
}

// Env reads the token from an environment variable.
type Env struct {
	Variable string
}

func (e Env) Get(string) (string, error) {
	token := os.Getenv(e.Variable)
	if token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

func (e Env) Store(string, string) error {
	return ErrStoreNotSupported
}

// Chain consults sources in order; the first hit wins. Store goes to the
// first source that supports storing.
type Chain []Source

func (c Chain) Get(account string) (string, error) {
	for _, source := range c {
		token, err := source.Get(account)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return "", err
		}
		return token, nil
	}
	return "", ErrNotFound
}

func (c Chain) Store(account, token string) error {
	for _, source := range c {
		err := source.Store(account, token)
		if errors.Is(err, ErrStoreNotSupported) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to store credential: %w", err)
		}
		return nil
	}
	return ErrStoreNotSupported
}
