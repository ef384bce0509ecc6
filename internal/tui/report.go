package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-eas-suite/models"
)

const maxDetailWidth = 60

// RenderReport formats the captures of a run as a table followed by the
// verdict counts.
func RenderReport(summary models.CaptureSummary, captures []models.Capture) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Run " + summary.RunID))
	b.WriteString("\n")
	if len(captures) > 0 {
		b.WriteString(captureTable(captures, -1))
		b.WriteString("\n")
	}
	b.WriteString(renderSummary(summary))
	b.WriteString("\n")
	return b.String()
}

// captureTable renders captures; the row at cursor (if any) is highlighted.
func captureTable(captures []models.Capture, cursor int) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("PROTOCOL", "REQUIREMENT", "VERDICT", "DETAIL").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(captures) {
				return cellStyle
			}
			style := cellStyle
			if col == 2 {
				style = verdictStyle(captures[row].Verdict)
			}
			if row == cursor {
				style = style.Inherit(cursorStyle)
			}
			return style
		})

	for _, c := range captures {
		t.Row(c.Protocol, c.RequirementID, string(c.Verdict), fitText(valueOrDash(c.Detail), maxDetailWidth))
	}
	return t.String()
}

func renderSummary(s models.CaptureSummary) string {
	return fmt.Sprintf("%s  %s  %s  total %d",
		passedStyle.Render(fmt.Sprintf("passed %d", s.Passed)),
		failedStyle.Render(fmt.Sprintf("failed %d", s.Failed)),
		skippedStyle.Render(fmt.Sprintf("skipped %d", s.Skipped)),
		s.Total())
}

func summarize(runID string, captures []models.Capture) models.CaptureSummary {
	s := models.CaptureSummary{RunID: runID}
	for _, c := range captures {
		s.Add(c.Verdict, 1)
	}
	return s
}
