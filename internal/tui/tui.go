// Package tui renders requirement captures: a static report for the CLI
// and an interactive browser built on bubbletea.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-eas-suite/internal/logger"
)

var ErrNotBrowsable = errors.New("tui: unexpected final model")

type TUI struct {
	captures CaptureLister
	logger   *logger.Logger
}

func New(captures CaptureLister, logger *logger.Logger) *TUI {
	return &TUI{captures: captures, logger: logger}
}

// Browse opens the capture browser for runID and blocks until the user
// quits.
func (t *TUI) Browse(ctx context.Context, runID string) error {
	model := newReportModel(ctx, t.captures, runID)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	if _, ok := finalModel.(reportModel); !ok {
		return ErrNotBrowsable
	}
	t.logger.Debug().Str("run_id", runID).Msg("capture browser closed")
	return nil
}
