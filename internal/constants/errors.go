package constants

import "errors"

// Credential errors.
var (
	ErrAPIKeyNotFound     = errors.New("API key not found. Run `canny auth` to configure, or provide --api-key / set CANNY_API_KEY.")
	ErrAPIKeyEmpty        = errors.New("API key cannot be empty")
	ErrNoStoredCredential = errors.New("no stored credentials to clear")
	ErrCredentialNotFound = errors.New("credential not found")
)

// Configuration errors.
var (
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrAPIKeyNotInConfig  = errors.New("the API key is kept in the credential store, use 'canny auth' instead")
	ErrInvalidOutputValue = errors.New("output must be one of table, json, yaml")
)
