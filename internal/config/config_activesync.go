package config

import (
	"github.com/MKhiriev/go-eas-suite/internal/activesync"
)

// Session returns the device session described by the configuration.
func (cfg *StructuredConfig) Session() activesync.Session {
	return activesync.Session{
		DeviceID:        cfg.Device.ID,
		DeviceType:      cfg.Device.Type,
		User:            cfg.SUT.User,
		ProtocolVersion: cfg.Device.ProtocolVersion,
		Locale:          cfg.Device.Locale,
		CompactQuery:    cfg.Device.CompactQuery,
		AcceptLanguage:  cfg.Device.AcceptLanguage,
		AcceptGzip:      cfg.Device.AcceptGzip,
	}
}

// Transport returns the HTTP transport settings.
func (cfg *StructuredConfig) Transport() activesync.HTTPTransportConfig {
	return activesync.HTTPTransportConfig{
		BaseURL:            cfg.SUT.BaseURL,
		AutodiscoverURL:    cfg.SUT.AutodiscoverURL,
		Domain:             cfg.SUT.Domain,
		Username:           cfg.SUT.User,
		Password:           cfg.SUT.Password,
		Timeout:            cfg.SUT.RequestTimeout,
		UserAgent:          cfg.Device.UserAgent,
		InsecureSkipVerify: cfg.SUT.InsecureSkipVerify,
	}
}

// PollingBudget returns the retry budget of polling commands.
func (cfg *StructuredConfig) PollingBudget() activesync.Polling {
	return activesync.Polling{
		WaitTime:   cfg.Polling.WaitTime,
		RetryCount: cfg.Polling.RetryCount,
	}
}
