package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTestFlags(t *testing.T, args ...string) (*pflag.FlagSet, *StructuredConfig) {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs, cfg
}

func TestBindFlags_AllFlags(t *testing.T) {
	fs, bound := parseTestFlags(t,
		"-c", "/etc/eassuite.json",
		"-u", "https://mail.example.com",
		"--autodiscover-url", "https://ad.example.com/autodiscover/autodiscover.xml",
		"--user", "alice",
		"--password", "secret",
		"--domain", "CORP",
		"--request-timeout", "10s",
		"--insecure",
		"--supported-versions", "14.0,14.1",
		"--device-id", "DEV1",
		"--device-type", "SmartPhone",
		"--protocol-version", "12.1",
		"--locale", "1031",
		"--compact-query",
		"--accept-language", "de-DE",
		"--gzip",
		"--user-agent", "ua",
		"--wait-time", "250ms",
		"--retry-count", "9",
		"-d", "file:captures.db",
		"--run-label", "ci",
		"--log-level", "warn",
	)

	cfg := changedFlags(fs, bound)
	assert.Equal(t, bound, cfg)

	assert.Equal(t, "/etc/eassuite.json", cfg.JSONFilePath)
	assert.Equal(t, "https://mail.example.com", cfg.SUT.BaseURL)
	assert.Equal(t, "https://ad.example.com/autodiscover/autodiscover.xml", cfg.SUT.AutodiscoverURL)
	assert.Equal(t, "alice", cfg.SUT.User)
	assert.Equal(t, "secret", cfg.SUT.Password)
	assert.Equal(t, "CORP", cfg.SUT.Domain)
	assert.Equal(t, 10*time.Second, cfg.SUT.RequestTimeout)
	assert.True(t, cfg.SUT.InsecureSkipVerify)
	assert.Equal(t, []string{"14.0", "14.1"}, cfg.SUT.SupportedVersions)
	assert.Equal(t, "DEV1", cfg.Device.ID)
	assert.Equal(t, "SmartPhone", cfg.Device.Type)
	assert.Equal(t, "12.1", cfg.Device.ProtocolVersion)
	assert.Equal(t, uint16(1031), cfg.Device.Locale)
	assert.True(t, cfg.Device.CompactQuery)
	assert.Equal(t, "de-DE", cfg.Device.AcceptLanguage)
	assert.True(t, cfg.Device.AcceptGzip)
	assert.Equal(t, "ua", cfg.Device.UserAgent)
	assert.Equal(t, 250*time.Millisecond, cfg.Polling.WaitTime)
	assert.Equal(t, 9, cfg.Polling.RetryCount)
	assert.Equal(t, "file:captures.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "ci", cfg.Suite.RunLabel)
	assert.Equal(t, "warn", cfg.Suite.LogLevel)
}

func TestChangedFlags_OnlyExplicit(t *testing.T) {
	fs, bound := parseTestFlags(t, "--user", "bob")

	cfg := changedFlags(fs, bound)
	assert.Equal(t, &StructuredConfig{SUT: SUT{User: "bob"}}, cfg)
}

func TestBindFlags_EveryFlagIsMapped(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)

	fs.VisitAll(func(f *pflag.Flag) {
		_, ok := flagFields[f.Name]
		assert.True(t, ok, "flag %s is not mapped", f.Name)
	})
	assert.Len(t, flagFields, countFlags(fs))
}

func TestBindFlags_InvalidValue(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	assert.Error(t, fs.Parse([]string{"--locale", "70000"}))
}

func countFlags(fs *pflag.FlagSet) int {
	n := 0
	fs.VisitAll(func(*pflag.Flag) { n++ })
	return n
}
