// Package credentials stores and resolves the Canny API key and URL.
package credentials

import (
	"errors"
	"fmt"
	"sync"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/zalando/go-keyring"
)

// ErrNotFound is returned by Store.Get and Store.Delete when no entry exists.
var ErrNotFound = constants.ErrCredentialNotFound

// Store is a secret store addressed by service and account.
type Store interface {
	Get(service, account string) (string, error)
	// Set overwrites any existing entry.
	Set(service, account, secret string) error
	Delete(service, account string) error
}

// KeyringStore keeps secrets in the operating system keychain.
type KeyringStore struct{}

// NewKeyringStore creates a store backed by the OS keychain.
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{}
}

// Get implements Store.Get.
func (s *KeyringStore) Get(service, account string) (string, error) {
	secret, err := keyring.Get(service, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}

	if err != nil {
		return "", fmt.Errorf("reading %s from keychain: %w", account, err)
	}

	return secret, nil
}

// Set implements Store.Set.
func (s *KeyringStore) Set(service, account, secret string) error {
	err := keyring.Set(service, account, secret)
	if err != nil {
		return fmt.Errorf("writing %s to keychain: %w", account, err)
	}

	return nil
}

// Delete implements Store.Delete.
func (s *KeyringStore) Delete(service, account string) error {
	err := keyring.Delete(service, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}

	if err != nil {
		return fmt.Errorf("deleting %s from keychain: %w", account, err)
	}

	return nil
}

// MemoryStore keeps secrets in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	secrets map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{secrets: make(map[string]string)}
}

func memoryKey(service, account string) string {
	return service + "/" + account
}

// Get implements Store.Get.
func (s *MemoryStore) Get(service, account string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	secret, ok := s.secrets[memoryKey(service, account)]
	if !ok {
		return "", ErrNotFound
	}

	return secret, nil
}

// Set implements Store.Set.
func (s *MemoryStore) Set(service, account, secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.secrets[memoryKey(service, account)] = secret

	return nil
}

// Delete implements Store.Delete.
func (s *MemoryStore) Delete(service, account string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := memoryKey(service, account)
	if _, ok := s.secrets[key]; !ok {
		return ErrNotFound
	}

	delete(s.secrets, key)

	return nil
}
