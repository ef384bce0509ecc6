package client

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-eas-suite/internal/activesync"
	"github.com/MKhiriev/go-eas-suite/internal/config"
	stub "github.com/MKhiriev/go-eas-suite/internal/handler/http"
	"github.com/MKhiriev/go-eas-suite/internal/logger"
	"github.com/MKhiriev/go-eas-suite/internal/suite"
)

var _ Client = (*App)(nil)

func newStub(t *testing.T, script *stub.Script, versions ...string) string {
	t.Helper()
	h := stub.NewHandler(script, stub.Settings{Username: "alice", Password: "secret", Versions: versions}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv.URL
}

func testConfig(baseURL string) *config.StructuredConfig {
	return &config.StructuredConfig{
		SUT: config.SUT{
			BaseURL:        baseURL,
			User:           "alice",
			Password:       "secret",
			RequestTimeout: 5 * time.Second,
		},
		Device: config.Device{
			ID:              "APPTEST01",
			Type:            "SmartPhone",
			ProtocolVersion: "14.1",
			Locale:          activesync.DefaultLocale,
			CompactQuery:    true,
		},
		Polling: config.Polling{RetryCount: 1},
		Suite:   config.Suite{RunLabel: "app-test"},
	}
}

func TestApp_RunPasses(t *testing.T) {
	url := newStub(t, stub.DefaultScript(), "14.0", "14.1")
	var out bytes.Buffer

	app, err := NewApp(context.Background(), testConfig(url), nil, &out, logger.Nop())
	require.NoError(t, err)
	defer app.Close()

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "Run "+app.RunID())
	assert.Contains(t, out.String(), "passed 4")
	assert.Contains(t, out.String(), "sync-inbox-status")

	captures, err := app.Captures().ListByRun(context.Background(), app.RunID())
	require.NoError(t, err)
	assert.Len(t, captures, 4)
	for _, c := range captures {
		assert.Equal(t, "app-test", c.RunLabel)
	}
}

func TestApp_RunFails(t *testing.T) {
	url := newStub(t, stub.DefaultScript(), "12.1")
	var out bytes.Buffer

	scenarios, err := suite.Select([]string{"options"})
	require.NoError(t, err)
	app, err := NewApp(context.Background(), testConfig(url), scenarios, &out, logger.Nop())
	require.NoError(t, err)
	defer app.Close()

	err = app.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRunFailed)
	assert.Contains(t, err.Error(), "1 of 1")
	assert.Contains(t, out.String(), "failed 1")
}

func TestNewApp_InvalidConfig(t *testing.T) {
	cfg := testConfig("")
	_, err := NewApp(context.Background(), cfg, nil, &bytes.Buffer{}, logger.Nop())
	assert.ErrorIs(t, err, activesync.ErrInvalidSession)

	cfg = testConfig("http://127.0.0.1:1")
	cfg.Device.ID = ""
	_, err = NewActiveSyncClient(cfg, logger.Nop())
	assert.ErrorIs(t, err, activesync.ErrInvalidSession)
}
