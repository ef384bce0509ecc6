package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the configuration flags on fs and returns the struct
// they write into. Pass both to [GetStructuredConfig] after parsing.
//
// Flags:
//
//	-c/--config JSON (with comments) file path
//	-u/--url SUT base URL
//	--autodiscover-url autodiscover endpoint
//	--user, --password, --domain credentials
//	--request-timeout HTTP timeout (e.g., "30s")
//	--insecure skip TLS verification
//	--supported-versions protocol versions of the SUT
//	--device-id, --device-type, --protocol-version, --locale device identity
//	--compact-query use the Base64 query string
//	--accept-language, --gzip, --user-agent request headers
//	--wait-time, --retry-count polling budget
//	-d/--dsn capture database DSN
//	--run-label, --log-level run settings
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	fs.StringVarP(&cfg.SUT.BaseURL, "url", "u", "", "SUT base URL, e.g. https://mail.example.com")
	fs.StringVar(&cfg.SUT.AutodiscoverURL, "autodiscover-url", "", "Autodiscover endpoint URL")
	fs.StringVar(&cfg.SUT.User, "user", "", "User name")
	fs.StringVar(&cfg.SUT.Password, "password", "", "Password")
	fs.StringVar(&cfg.SUT.Domain, "domain", "", "Windows domain for basic auth")
	fs.DurationVar(&cfg.SUT.RequestTimeout, "request-timeout", 0, "HTTP request timeout (e.g., 30s)")
	fs.BoolVar(&cfg.SUT.InsecureSkipVerify, "insecure", false, "Skip TLS certificate verification")
	fs.StringSliceVar(&cfg.SUT.SupportedVersions, "supported-versions", nil, "Protocol versions the SUT supports")

	fs.StringVar(&cfg.Device.ID, "device-id", "", "Device id (random by default)")
	fs.StringVar(&cfg.Device.Type, "device-type", "", "Device type")
	fs.StringVar(&cfg.Device.ProtocolVersion, "protocol-version", "", "ActiveSync protocol version")
	fs.Uint16Var(&cfg.Device.Locale, "locale", 0, "Locale id for compact queries")
	fs.BoolVar(&cfg.Device.CompactQuery, "compact-query", false, "Send the Base64 query string")
	fs.StringVar(&cfg.Device.AcceptLanguage, "accept-language", "", "Accept-Language header")
	fs.BoolVar(&cfg.Device.AcceptGzip, "gzip", false, "Ask for gzip responses")
	fs.StringVar(&cfg.Device.UserAgent, "user-agent", "", "User-Agent header")

	fs.DurationVar(&cfg.Polling.WaitTime, "wait-time", 0, "Wait between polling attempts")
	fs.IntVar(&cfg.Polling.RetryCount, "retry-count", 0, "Polling attempts")

	fs.StringVarP(&cfg.Storage.DB.DSN, "dsn", "d", "", "Capture database DSN")

	fs.StringVar(&cfg.Suite.RunLabel, "run-label", "", "Label stored with every capture")
	fs.StringVar(&cfg.Suite.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	return cfg
}

// flagFields maps each flag to the field it was bound to.
var flagFields = map[string]func(dst, src *StructuredConfig){
	"config":             func(d, s *StructuredConfig) { d.JSONFilePath = s.JSONFilePath },
	"url":                func(d, s *StructuredConfig) { d.SUT.BaseURL = s.SUT.BaseURL },
	"autodiscover-url":   func(d, s *StructuredConfig) { d.SUT.AutodiscoverURL = s.SUT.AutodiscoverURL },
	"user":               func(d, s *StructuredConfig) { d.SUT.User = s.SUT.User },
	"password":           func(d, s *StructuredConfig) { d.SUT.Password = s.SUT.Password },
	"domain":             func(d, s *StructuredConfig) { d.SUT.Domain = s.SUT.Domain },
	"request-timeout":    func(d, s *StructuredConfig) { d.SUT.RequestTimeout = s.SUT.RequestTimeout },
	"insecure":           func(d, s *StructuredConfig) { d.SUT.InsecureSkipVerify = s.SUT.InsecureSkipVerify },
	"supported-versions": func(d, s *StructuredConfig) { d.SUT.SupportedVersions = s.SUT.SupportedVersions },
	"device-id":          func(d, s *StructuredConfig) { d.Device.ID = s.Device.ID },
	"device-type":        func(d, s *StructuredConfig) { d.Device.Type = s.Device.Type },
	"protocol-version":   func(d, s *StructuredConfig) { d.Device.ProtocolVersion = s.Device.ProtocolVersion },
	"locale":             func(d, s *StructuredConfig) { d.Device.Locale = s.Device.Locale },
	"compact-query":      func(d, s *StructuredConfig) { d.Device.CompactQuery = s.Device.CompactQuery },
	"accept-language":    func(d, s *StructuredConfig) { d.Device.AcceptLanguage = s.Device.AcceptLanguage },
	"gzip":               func(d, s *StructuredConfig) { d.Device.AcceptGzip = s.Device.AcceptGzip },
	"user-agent":         func(d, s *StructuredConfig) { d.Device.UserAgent = s.Device.UserAgent },
	"wait-time":          func(d, s *StructuredConfig) { d.Polling.WaitTime = s.Polling.WaitTime },
	"retry-count":        func(d, s *StructuredConfig) { d.Polling.RetryCount = s.Polling.RetryCount },
	"dsn":                func(d, s *StructuredConfig) { d.Storage.DB.DSN = s.Storage.DB.DSN },
	"run-label":          func(d, s *StructuredConfig) { d.Suite.RunLabel = s.Suite.RunLabel },
	"log-level":          func(d, s *StructuredConfig) { d.Suite.LogLevel = s.Suite.LogLevel },
}

// changedFlags copies only the explicitly set flags out of bound.
func changedFlags(fs *pflag.FlagSet, bound *StructuredConfig) *StructuredConfig {
	out := &StructuredConfig{}
	fs.Visit(func(f *pflag.Flag) {
		if set, ok := flagFields[f.Name]; ok {
			set(out, bound)
		}
	})
	return out
}
