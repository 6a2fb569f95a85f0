package credentials

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
)

// Resolver picks the API key and URL from explicit input or the store.
// Explicit values are the already merged flag, environment and config file
// settings; the store is consulted only when they are empty.
type Resolver struct {
	Store Store
}

// NewResolver creates a resolver over store.
func NewResolver(store Store) *Resolver {
	return &Resolver{Store: store}
}

// APIKey returns explicit if set, else the stored key.
func (r *Resolver) APIKey(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if r.Store != nil {
		key, err := r.Store.Get(constants.KeyringService, constants.KeyringAccountAPIKey)
		if err == nil && key != "" {
			return key, nil
		}

		if err != nil && !errors.Is(err, ErrNotFound) {
			return "", fmt.Errorf("%w (%w)", constants.ErrAPIKeyNotFound, err)
		}
	}

	return "", constants.ErrAPIKeyNotFound
}

// APIURL returns explicit if set, else the stored URL, else the default.
func (r *Resolver) APIURL(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if r.Store != nil {
		url, err := r.Store.Get(constants.KeyringService, constants.KeyringAccountAPIURL)
		if err == nil && url != "" {
			return url
		}
	}

	return constants.DefaultAPIURL
}

// Save stores the key and then the URL.
func (r *Resolver) Save(apiKey, apiURL string) error {
	if strings.TrimSpace(apiKey) == "" {
		return constants.ErrAPIKeyEmpty
	}

	err := r.Store.Set(constants.KeyringService, constants.KeyringAccountAPIKey, apiKey)
	if err != nil {
		return fmt.Errorf("saving API key: %w", err)
	}

	err = r.Store.Set(constants.KeyringService, constants.KeyringAccountAPIURL, apiURL)
	if err != nil {
		return fmt.Errorf("saving API URL: %w", err)
	}

	return nil
}

// Clear deletes the stored key, URL and legacy entry. It fails only when
// neither the key nor the URL could be deleted.
func (r *Resolver) Clear() error {
	keyErr := r.Store.Delete(constants.KeyringService, constants.KeyringAccountAPIKey)
	urlErr := r.Store.Delete(constants.KeyringService, constants.KeyringAccountAPIURL)
	_ = r.Store.Delete(constants.KeyringService, constants.KeyringAccountLegacy)

	if keyErr != nil && urlErr != nil {
		return constants.ErrNoStoredCredential
	}

	return nil
}

// Mask hides all but the first and last four characters of key.
func Mask(key string) string {
	if len(key) <= 2*constants.MaskVisibleChars {
		return "****"
	}

	return key[:constants.MaskVisibleChars] + "..." + key[len(key)-constants.MaskVisibleChars:]
}

// SubdomainURL builds the API URL for a company subdomain. An empty
// subdomain means the default one.
func SubdomainURL(subdomain string) string {
	subdomain = strings.TrimSpace(subdomain)
	if subdomain == "" {
		subdomain = constants.DefaultSubdomain
	}

	return fmt.Sprintf(constants.SubdomainURLFormat, subdomain)
}
