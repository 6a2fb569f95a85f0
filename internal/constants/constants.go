package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Configuration locations.
const (
	// ConfigDirName is the directory under $HOME holding the config file.
	ConfigDirName = ".canny"

	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"

	// ConfigFileType is the config file format.
	ConfigFileType = "yml"

	// EnvPrefix prefixes every environment variable read through viper.
	EnvPrefix = "CANNY"
)

// API endpoints.
const (
	// DefaultAPIURL is used when no URL is given or stored.
	DefaultAPIURL = "https://canny.io/api/v1"

	// DefaultSubdomain is offered by the auth prompt.
	DefaultSubdomain = "clickup"

	// SubdomainURLFormat builds an API URL from a company subdomain.
	SubdomainURLFormat = "https://%s.canny.io/api/v1"

	// APIVersion1 and APIVersion2 are the version path segments swapped for v2 endpoints.
	APIVersion1 = "/v1"
	APIVersion2 = "/v2"

	// DefaultUserAgent is sent with every request.
	DefaultUserAgent = "canny-cli"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultRetryWaitMin is the minimum wait between retries when retries are enabled.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Credential store keys.
const (
	// KeyringService is the service name credentials are stored under.
	KeyringService = "canny-cli"

	// KeyringAccountAPIKey holds the API key.
	KeyringAccountAPIKey = "api-key"

	// KeyringAccountAPIURL holds the API base URL.
	KeyringAccountAPIURL = "api-url"

	// KeyringAccountLegacy is the single account used by early releases.
	KeyringAccountLegacy = "default"
)

// List defaults per endpoint.
const (
	// DefaultListLimit is the page size for most offset listings.
	DefaultListLimit = 10

	// DefaultTaxonomyLimit is the page size for categories, tags and companies.
	DefaultTaxonomyLimit = 100
)

// Display.
const (
	// RuleWidth is the width of the rule under detail view titles.
	RuleWidth = 60

	// MaskVisibleChars is how many characters are shown at each end of a masked key.
	MaskVisibleChars = 4
)

// Boolean string values.
const (
	BooleanTrue  = "true"
	BooleanFalse = "false"
)
