// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration of the conformance suite.
// It is populated by merging environment variables, command-line flags, an
// optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// SUT describes the server under test and how to reach it.
	SUT SUT `envPrefix:"SUT_"`

	// Device is the identity the suite presents to the server.
	Device Device `envPrefix:"DEVICE_"`

	// Polling bounds the retry loops of Sync-for-subject and Search.
	Polling Polling `envPrefix:"POLLING_"`

	// Storage configures the requirement capture store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Suite holds run-level settings.
	Suite Suite `envPrefix:"SUITE_"`

	// JSONFilePath is the optional path to a JSON (with comments) file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// SUT holds the address and credentials of the server under test.
type SUT struct {
	// BaseURL is the scheme and host of the server, e.g.
	// "https://mail.example.com". The ActiveSync path is appended.
	// Env: SUT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// AutodiscoverURL overrides the autodiscover endpoint.
	// Env: SUT_AUTODISCOVER_URL
	AutodiscoverURL string `env:"AUTODISCOVER_URL"`

	// Env: SUT_USER
	User string `env:"USER"`
	// Env: SUT_PASSWORD
	Password string `env:"PASSWORD"`
	// Domain is prepended to the user for basic auth (DOMAIN\user).
	// Env: SUT_DOMAIN
	Domain string `env:"DOMAIN"`

	// RequestTimeout bounds a single HTTP exchange.
	// Env: SUT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// InsecureSkipVerify disables TLS certificate checks for lab servers.
	// Env: SUT_INSECURE_SKIP_VERIFY
	InsecureSkipVerify bool `env:"INSECURE_SKIP_VERIFY"`

	// SupportedVersions lists the protocol versions the SUT claims.
	// Env: SUT_SUPPORTED_VERSIONS (comma separated)
	SupportedVersions []string `env:"SUPPORTED_VERSIONS" envSeparator:","`
}

// Device is the ActiveSync device identity.
type Device struct {
	// Env: DEVICE_ID
	ID string `env:"ID"`
	// Env: DEVICE_TYPE
	Type string `env:"TYPE"`
	// Env: DEVICE_PROTOCOL_VERSION
	ProtocolVersion string `env:"PROTOCOL_VERSION"`
	// Locale is the Windows LCID sent in compact queries.
	// Env: DEVICE_LOCALE
	Locale uint16 `env:"LOCALE"`
	// Env: DEVICE_COMPACT_QUERY
	CompactQuery bool `env:"COMPACT_QUERY"`
	// Env: DEVICE_ACCEPT_LANGUAGE
	AcceptLanguage string `env:"ACCEPT_LANGUAGE"`
	// Env: DEVICE_ACCEPT_GZIP
	AcceptGzip bool `env:"ACCEPT_GZIP"`
	// Env: DEVICE_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// Polling bounds retry loops.
type Polling struct {
	// Env: POLLING_WAIT_TIME
	WaitTime time.Duration `env:"WAIT_TIME"`
	// Env: POLLING_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// Storage groups persistence settings.
type Storage struct {
	// DB holds the capture database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the capture database DSN. A postgres:// URL selects PostgreSQL,
// anything else is opened as a SQLite file. Empty disables persistence.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Suite holds run-level settings.
type Suite struct {
	// RunLabel tags every capture of the run.
	// Env: SUITE_RUN_LABEL
	RunLabel string `env:"RUN_LABEL"`
	// LogLevel is a zerolog level name.
	// Env: SUITE_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// GetStructuredConfig loads, merges and validates the configuration. Sources
// are consulted in this order, and the first non-zero value of a field
// wins:
//  1. Environment variables
//  2. Command-line flags bound with [BindFlags] on fs (nil skips them)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(fs *pflag.FlagSet, flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(fs, flags).
		withJSON().
		withDefaults().
		build()
}
