// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// KnownProtocolVersions are the ActiveSync versions the suite can speak.
var KnownProtocolVersions = []string{"2.5", "12.0", "12.1", "14.0", "14.1", "16.0", "16.1"}

// validate checks that the final merged [StructuredConfig] is usable before
// the suite starts.
func (cfg *StructuredConfig) validate() error {
	u, err := url.Parse(cfg.SUT.BaseURL)
	if cfg.SUT.BaseURL == "" || err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: base url %q", ErrInvalidSUTConfigs, cfg.SUT.BaseURL)
	}
	if cfg.SUT.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidSUTConfigs)
	}

	if cfg.Device.ID == "" || cfg.Device.Type == "" {
		return fmt.Errorf("%w: device id and type are required", ErrInvalidDeviceConfigs)
	}
	if !slices.Contains(KnownProtocolVersions, cfg.Device.ProtocolVersion) {
		return fmt.Errorf("%w: protocol version %q", ErrInvalidDeviceConfigs, cfg.Device.ProtocolVersion)
	}
	if cfg.Device.CompactQuery && (len(cfg.Device.ID) > 255 || len(cfg.Device.Type) > 255) {
		return fmt.Errorf("%w: device id or type too long for compact query", ErrInvalidDeviceConfigs)
	}

	if cfg.Polling.RetryCount < 1 || cfg.Polling.WaitTime < 0 {
		return ErrInvalidPollingConfigs
	}

	if strings.Contains(cfg.Storage.DB.DSN, ":memory:") || strings.Contains(cfg.Storage.DB.DSN, "mode=memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Suite.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.Suite.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSuiteConfigs, err)
		}
	}

	return nil
}
