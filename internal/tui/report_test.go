package tui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-eas-suite/internal/store"
	"github.com/MKhiriev/go-eas-suite/models"
)

type stubLister struct {
	captures []models.Capture
	err      error
	runIDs   []string
}

func (s *stubLister) ListByRun(_ context.Context, runID string) ([]models.Capture, error) {
	s.runIDs = append(s.runIDs, runID)
	return s.captures, s.err
}

func testCaptures() []models.Capture {
	at := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	return []models.Capture{
		{RunID: "run-1", Protocol: "MS-ASHTTP", RequirementID: "options-protocol-versions", Verdict: models.VerdictPassed, CapturedAt: at},
		{RunID: "run-1", Protocol: "MS-ASCMD", RequirementID: "foldersync-status", Verdict: models.VerdictFailed,
			Detail: "activesync: server error", CapturedAt: at.Add(time.Second)},
		{RunID: "run-1", Protocol: "MS-ASCMD", RequirementID: "sync-inbox-status", Verdict: models.VerdictSkipped,
			Detail: "no Inbox folder known", CapturedAt: at.Add(2 * time.Second)},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m reportModel, msg tea.Msg) reportModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(reportModel)
	require.True(t, ok)
	return out
}

func loadedModel(t *testing.T) reportModel {
	t.Helper()
	lister := &stubLister{captures: testCaptures()}
	m := newReportModel(context.Background(), lister, "run-1")
	msg := m.cmdLoad()()
	assert.Equal(t, []string{"run-1"}, lister.runIDs)
	return update(t, m, msg)
}

func TestRenderReport(t *testing.T) {
	captures := testCaptures()
	out := RenderReport(summarize("run-1", captures), captures)

	assert.Contains(t, out, "Run run-1")
	assert.Contains(t, out, "REQUIREMENT")
	assert.Contains(t, out, "foldersync-status")
	assert.Contains(t, out, "activesync: server error")
	assert.Contains(t, out, "passed 1")
	assert.Contains(t, out, "failed 1")
	assert.Contains(t, out, "skipped 1")
	assert.Contains(t, out, "total 3")
}

func TestRenderReport_Empty(t *testing.T) {
	out := RenderReport(models.CaptureSummary{RunID: "r"}, nil)
	assert.NotContains(t, out, "REQUIREMENT")
	assert.Contains(t, out, "total 0")
}

func TestReportModel_LoadAndNavigate(t *testing.T) {
	m := loadedModel(t)
	assert.False(t, m.loading)
	require.Len(t, m.visible, 3)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.idx)

	m = update(t, m, runes("k"))
	assert.Equal(t, 1, m.idx)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.detail)
	view := m.View()
	assert.Contains(t, view, "MS-ASCMD foldersync-status")
	assert.Contains(t, view, "Verdict:     failed")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.detail)
}

func TestReportModel_FilterCycle(t *testing.T) {
	m := loadedModel(t)

	m = update(t, m, runes("f"))
	require.Len(t, m.visible, 1)
	assert.Equal(t, models.VerdictFailed, m.visible[0].Verdict)
	assert.Contains(t, m.View(), "filter: failed")

	m = update(t, m, runes("f"))
	require.Len(t, m.visible, 1)
	assert.Equal(t, models.VerdictSkipped, m.visible[0].Verdict)

	m = update(t, m, runes("f"))
	m = update(t, m, runes("f"))
	assert.Len(t, m.visible, 3)
	assert.NotContains(t, m.View(), "filter:")
}

func TestReportModel_Copy(t *testing.T) {
	m := loadedModel(t)
	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	m = update(t, m, runes("c"))
	assert.Contains(t, copied, "options-protocol-versions")
	assert.Equal(t, "copied options-protocol-versions", m.status)

	m.copyText = func(string) error { return errors.New("no clipboard") }
	m = update(t, m, runes("c"))
	assert.Equal(t, "copy failed: no clipboard", m.errMsg)
}

func TestReportModel_LoadError(t *testing.T) {
	lister := &stubLister{err: errors.New("dial tcp 127.0.0.1:5432: connection refused")}
	m := newReportModel(context.Background(), lister, "run-1")
	m = update(t, m, m.cmdLoad()())

	assert.Equal(t, "capture database is unreachable", m.errMsg)
	assert.Contains(t, m.View(), "no captures")
}

func TestReportModel_EmptyEnter(t *testing.T) {
	m := newReportModel(context.Background(), &stubLister{}, "run-1")
	m = update(t, m, m.cmdLoad()())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.detail)
	assert.Equal(t, "no captures", m.status)
}

func TestReportModel_Quit(t *testing.T) {
	m := loadedModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestReportModel_Reload(t *testing.T) {
	m := loadedModel(t)
	next, cmd := m.Update(runes("r"))
	assert.NotNil(t, cmd)
	assert.True(t, next.(reportModel).loading)
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "ab", fitText("abcdefgh", 2))
	assert.Equal(t, "абв...", fitText("абвгдежз", 6))
}

func TestHumanizeStoreError(t *testing.T) {
	assert.Empty(t, humanizeStoreError(nil))
	assert.Equal(t, "boom", humanizeStoreError(errors.New("boom")))
	assert.Equal(t, "capture database is unreachable", humanizeStoreError(errors.New("dial tcp: connection refused")))
	assert.Equal(t, "capture database is unreachable", humanizeStoreError(fmt.Errorf("list: %w", context.DeadlineExceeded)))
	assert.Equal(t, "capture database is unreachable", humanizeStoreError(&net.OpError{Op: "dial", Err: errors.New("timeout")}))
	assert.Equal(t, "capture rows are unreadable: "+store.ErrScanningRows.Error(), humanizeStoreError(store.ErrScanningRows))
}

func TestRenderBuildInfo(t *testing.T) {
	out := RenderBuildInfo(models.NewAppBuildInfo("1.2.3", "", "abc123"))
	assert.Contains(t, out, "Version:     1.2.3")
	assert.Contains(t, out, "Date:        N/A")
	assert.Contains(t, out, "Commit:      abc123")
}
