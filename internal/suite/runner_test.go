package suite

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-eas-suite/internal/activesync"
	"github.com/MKhiriev/go-eas-suite/internal/logger"
	"github.com/MKhiriev/go-eas-suite/internal/mock"
	"github.com/MKhiriev/go-eas-suite/models"
)

// fakeScenario returns err from Run and appends its name to order.
type fakeScenario struct {
	name  string
	err   error
	order *[]string
}

func (f fakeScenario) Name() string { return f.name }

func (f fakeScenario) Requirement() models.Requirement {
	return models.Requirement{Protocol: "TEST", ID: f.name}
}

func (f fakeScenario) Run(_ context.Context, _ *activesync.Client, _ *State) error {
	if f.order != nil {
		*f.order = append(*f.order, f.name)
	}
	return f.err
}

func TestRunner_RecordsVerdictsInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	captures := mock.NewMockCaptureService(ctrl)

	var order []string
	pass := fakeScenario{name: "pass", order: &order}
	fail := fakeScenario{name: "fail", err: fmt.Errorf("%w: status 3", ErrCheckFailed), order: &order}
	skip := fakeScenario{name: "skip", err: fmt.Errorf("%w: no inbox", activesync.ErrPrecondition), order: &order}
	transport := fakeScenario{name: "transport", err: activesync.ErrServerError, order: &order}

	want := models.CaptureSummary{RunID: "run-1", Passed: 1, Failed: 2, Skipped: 1}
	gomock.InOrder(
		captures.EXPECT().Capture(gomock.Any(), pass.Requirement(), true, "").Return(nil),
		captures.EXPECT().Capture(gomock.Any(), fail.Requirement(), false, "suite: check failed: status 3").Return(nil),
		captures.EXPECT().Skip(gomock.Any(), skip.Requirement(), gomock.Any()).Return(nil),
		captures.EXPECT().Capture(gomock.Any(), transport.Requirement(), false, activesync.ErrServerError.Error()).Return(nil),
		captures.EXPECT().Summary(gomock.Any()).Return(want, nil),
	)

	r := NewRunner(nil, captures, logger.Nop(), pass, fail, skip, transport)
	got, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"pass", "fail", "skip", "transport"}, order)
}

func TestRunner_CaptureErrorStopsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	captures := mock.NewMockCaptureService(ctrl)

	var order []string
	first := fakeScenario{name: "first", order: &order}
	second := fakeScenario{name: "second", order: &order}
	storeErr := errors.New("disk full")

	captures.EXPECT().Capture(gomock.Any(), first.Requirement(), true, "").Return(storeErr)

	r := NewRunner(nil, captures, logger.Nop(), first, second)
	_, err := r.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), "record first")
	assert.Equal(t, []string{"first"}, order)
}

func TestRunner_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	captures := mock.NewMockCaptureService(ctrl)

	var order []string
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(nil, captures, logger.Nop(), fakeScenario{name: "never", order: &order})
	_, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, order)
}

func TestRunner_ScenarioCancelledMidway(t *testing.T) {
	ctrl := gomock.NewController(t)
	captures := mock.NewMockCaptureService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancelling := cancelScenario{cancel: cancel}

	r := NewRunner(nil, captures, logger.Nop(), cancelling)
	_, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

type cancelScenario struct {
	cancel context.CancelFunc
}

func (cancelScenario) Name() string { return "cancel" }

func (cancelScenario) Requirement() models.Requirement {
	return models.Requirement{Protocol: "TEST", ID: "cancel"}
}

func (c cancelScenario) Run(ctx context.Context, _ *activesync.Client, _ *State) error {
	c.cancel()
	return ctx.Err()
}

func TestNewRunner_DefaultCatalog(t *testing.T) {
	r := NewRunner(nil, nil, logger.Nop())
	names := make([]string, 0, len(r.Scenarios()))
	for _, s := range r.Scenarios() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"options", "provision", "foldersync", "sync-inbox"}, names)
}

func TestSelect(t *testing.T) {
	all, err := Select(nil)
	require.NoError(t, err)
	assert.Len(t, all, len(Default()))

	picked, err := Select([]string{"sync-inbox", "options"})
	require.NoError(t, err)
	require.Len(t, picked, 2)
	assert.Equal(t, "sync-inbox", picked[0].Name())
	assert.Equal(t, "options", picked[1].Name())

	_, err = Select([]string{"bogus"})
	assert.ErrorIs(t, err, ErrUnknownScenario)
}

func TestDefault_RequirementsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Default() {
		req := s.Requirement()
		assert.NotEmpty(t, req.Protocol, s.Name())
		assert.NotEmpty(t, req.Description, s.Name())
		key := req.Protocol + "/" + req.ID
		assert.False(t, seen[key], key)
		seen[key] = true
	}
}
