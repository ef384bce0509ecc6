package config

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default values applied to fields no other source set.
const (
	DefaultDeviceType      = "EASSuite"
	DefaultProtocolVersion = "14.1"
	DefaultLocale          = 0x0409
	DefaultRequestTimeout  = 30 * time.Second
	DefaultWaitTime        = 5 * time.Second
	DefaultRetryCount      = 3
	DefaultUserAgent       = "go-eas-suite"
	DefaultLogLevel        = "info"
)

// Defaults returns the built-in configuration. The device id is derived
// from a fresh UUID, so every call yields a different one.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		SUT: SUT{
			RequestTimeout:    DefaultRequestTimeout,
			SupportedVersions: []string{"12.1", "14.0", "14.1", "16.0", "16.1"},
		},
		Device: Device{
			ID:              NewDeviceID(),
			Type:            DefaultDeviceType,
			ProtocolVersion: DefaultProtocolVersion,
			Locale:          DefaultLocale,
			UserAgent:       DefaultUserAgent,
		},
		Polling: Polling{
			WaitTime:   DefaultWaitTime,
			RetryCount: DefaultRetryCount,
		},
		Suite: Suite{
			LogLevel: DefaultLogLevel,
		},
	}
}

// NewDeviceID returns a 32 character upper-case hex device id.
func NewDeviceID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}
