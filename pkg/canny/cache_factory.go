package canny

import (
	"errors"
	"fmt"
	"time"
)

// CacheType represents the type of cache backend.
type CacheType string

const (
	// CacheTypeMemory represents in-memory cache.
	CacheTypeMemory CacheType = "memory"

	// CacheTypeNATS represents NATS KV cache.
	CacheTypeNATS CacheType = "nats"

	// CacheTypeNone represents no caching.
	CacheTypeNone CacheType = "none"
)

// Cache defaults.
const (
	DefaultCacheSize          = 1000
	DefaultCacheTTL           = 60 * time.Second
	DefaultNATSBucket         = "canny-cache"
	DefaultNATSConnectTimeout = 5 * time.Second
)

// Static errors for err113 compliance.
var (
	ErrNATSConfigRequired   = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCacheType = errors.New("unsupported cache type")
)

// CacheConfig configures cache backend.
type CacheConfig struct {
	// Type is the cache backend type
	Type CacheType

	// MaxSize bounds the memory cache.
	MaxSize int

	// NATS KV cache configuration
	NATS *NATSKVConfig
}

// ParseCacheType validates a cache type name. An empty name means none.
func ParseCacheType(name string) (CacheType, error) {
	switch CacheType(name) {
	case "", CacheTypeNone:
		return CacheTypeNone, nil
	case CacheTypeMemory, CacheTypeNATS:
		return CacheType(name), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedCacheType, name)
	}
}

// NewCacheFromConfig creates a cache backend from configuration.
// A nil config yields a no-op cache.
func NewCacheFromConfig(config *CacheConfig) (Cache, error) {
	if config == nil {
		return NewNoOpCache(), nil
	}

	switch config.Type {
	case CacheTypeMemory:
		return NewMemoryCache(config.MaxSize), nil

	case CacheTypeNATS:
		if config.NATS == nil {
			return nil, ErrNATSConfigRequired
		}

		return NewNATSKVCache(config.NATS)

	case CacheTypeNone, "":
		return NewNoOpCache(), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCacheType, config.Type)
	}
}
