package cannyclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/canny-cli/internal/client"
	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
)

// New creates a Canny API client from config. config is not modified.
func New(config *canny.Config) (canny.Client, error) {
	if config == nil {
		return nil, canny.ErrConfigRequired
	}

	cfg := *config
	cfg.APIURL = NormalizeURL(cfg.APIURL)

	if cfg.UserAgent == "" {
		cfg.UserAgent = constants.DefaultUserAgent
	}

	c, err := client.New(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithAPIKey creates a client for the default API URL.
func NewWithAPIKey(apiKey string) (canny.Client, error) {
	return New(&canny.Config{
		APIURL: constants.DefaultAPIURL,
		APIKey: apiKey,
	})
}

// NewForSubdomain creates a client for https://<subdomain>.canny.io/api/v1.
func NewForSubdomain(subdomain, apiKey string) (canny.Client, error) {
	subdomain = strings.TrimSpace(subdomain)
	if subdomain == "" {
		return nil, canny.NewValidationError("subdomain", "must not be empty")
	}

	return New(&canny.Config{
		APIURL: fmt.Sprintf(constants.SubdomainURLFormat, subdomain),
		APIKey: apiKey,
	})
}

// NormalizeURL trims surrounding space and trailing slashes and adds an
// https scheme to a bare host. An empty URL stays empty.
func NormalizeURL(apiURL string) string {
	apiURL = strings.TrimRight(strings.TrimSpace(apiURL), "/")
	if apiURL == "" {
		return ""
	}

	if !strings.HasPrefix(apiURL, "http://") && !strings.HasPrefix(apiURL, "https://") {
		apiURL = "https://" + apiURL
	}

	return apiURL
}
