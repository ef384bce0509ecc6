package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tailscale/hujson"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the file layout. The
// file may carry comments and trailing commas.
type StructuredJSONConfig struct {
	SUT struct {
		BaseURL            string   `json:"base_url"`
		AutodiscoverURL    string   `json:"autodiscover_url"`
		User               string   `json:"user"`
		Password           string   `json:"password"`
		Domain             string   `json:"domain"`
		RequestTimeout     Duration `json:"request_timeout"`
		InsecureSkipVerify bool     `json:"insecure_skip_verify"`
		SupportedVersions  []string `json:"supported_versions"`
	} `json:"sut,omitempty"`

	Device struct {
		ID              string `json:"id"`
		Type            string `json:"type"`
		ProtocolVersion string `json:"protocol_version"`
		Locale          uint16 `json:"locale"`
		CompactQuery    bool   `json:"compact_query"`
		AcceptLanguage  string `json:"accept_language"`
		AcceptGzip      bool   `json:"accept_gzip"`
		UserAgent       string `json:"user_agent"`
	} `json:"device,omitempty"`

	Polling struct {
		WaitTime   Duration `json:"wait_time"`
		RetryCount int      `json:"retry_count"`
	} `json:"polling,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Suite struct {
		RunLabel string `json:"run_label"`
		LogLevel string `json:"log_level"`
	} `json:"suite,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	data, err = hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("error standardizing json configs: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	if err := json.Unmarshal(data, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		SUT: SUT{
			BaseURL:            jsonCfg.SUT.BaseURL,
			AutodiscoverURL:    jsonCfg.SUT.AutodiscoverURL,
			User:               jsonCfg.SUT.User,
			Password:           jsonCfg.SUT.Password,
			Domain:             jsonCfg.SUT.Domain,
			RequestTimeout:     time.Duration(jsonCfg.SUT.RequestTimeout),
			InsecureSkipVerify: jsonCfg.SUT.InsecureSkipVerify,
			SupportedVersions:  jsonCfg.SUT.SupportedVersions,
		},
		Device: Device{
			ID:              jsonCfg.Device.ID,
			Type:            jsonCfg.Device.Type,
			ProtocolVersion: jsonCfg.Device.ProtocolVersion,
			Locale:          jsonCfg.Device.Locale,
			CompactQuery:    jsonCfg.Device.CompactQuery,
			AcceptLanguage:  jsonCfg.Device.AcceptLanguage,
			AcceptGzip:      jsonCfg.Device.AcceptGzip,
			UserAgent:       jsonCfg.Device.UserAgent,
		},
		Polling: Polling{
			WaitTime:   time.Duration(jsonCfg.Polling.WaitTime),
			RetryCount: jsonCfg.Polling.RetryCount,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Suite: Suite{
			RunLabel: jsonCfg.Suite.RunLabel,
			LogLevel: jsonCfg.Suite.LogLevel,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
