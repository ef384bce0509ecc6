package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-eas-suite/models"
)

var (
	appStyle     = lipgloss.NewStyle().Padding(1, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	passedStyle  = cellStyle.Foreground(lipgloss.Color("10"))
	failedStyle  = cellStyle.Foreground(lipgloss.Color("9")).Bold(true)
	skippedStyle = cellStyle.Foreground(lipgloss.Color("11"))
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
)

func verdictStyle(v models.Verdict) lipgloss.Style {
	switch v {
	case models.VerdictPassed:
		return passedStyle
	case models.VerdictFailed:
		return failedStyle
	case models.VerdictSkipped:
		return skippedStyle
	default:
		return cellStyle
	}
}
