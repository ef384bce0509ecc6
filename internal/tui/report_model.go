package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-eas-suite/models"
)

// filters is the cycle of the f key; the empty verdict shows everything.
var filters = []models.Verdict{"", models.VerdictFailed, models.VerdictSkipped, models.VerdictPassed}

type capturesLoadedMsg struct {
	captures []models.Capture
	err      error
}

type reportModel struct {
	ctx      context.Context
	captures CaptureLister
	runID    string
	copyText func(string) error

	all     []models.Capture
	visible []models.Capture
	filter  int
	idx     int
	loading bool
	detail  bool
	spinner spinner.Model
	status  string
	errMsg  string
}

func newReportModel(ctx context.Context, captures CaptureLister, runID string) reportModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return reportModel{
		ctx:      ctx,
		captures: captures,
		runID:    runID,
		copyText: clipboard.WriteAll,
		loading:  true,
		spinner:  s,
	}
}

func (m reportModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m reportModel) cmdLoad() tea.Cmd {
	ctx, lister, runID := m.ctx, m.captures, m.runID
	return func() tea.Msg {
		list, err := lister.ListByRun(ctx, runID)
		return capturesLoadedMsg{captures: list, err: err}
	}
}

func (m reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case capturesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeStoreError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.all = msg.captures
		m.applyFilter()
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m reportModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.detail {
		switch {
		case key.Matches(msg, keys.esc):
			m.detail = false
		case key.Matches(msg, keys.copy):
			m.copyCurrent()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.visible)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); !ok {
			m.status = "no captures"
			return m, nil
		}
		m.detail = true
	case key.Matches(msg, keys.filter):
		m.filter = (m.filter + 1) % len(filters)
		m.applyFilter()
	case key.Matches(msg, keys.copy):
		m.copyCurrent()
	case key.Matches(msg, keys.reload):
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	}
	return m, nil
}

func (m *reportModel) applyFilter() {
	want := filters[m.filter]
	m.visible = nil
	for _, c := range m.all {
		if want == "" || c.Verdict == want {
			m.visible = append(m.visible, c)
		}
	}
	if m.idx >= len(m.visible) {
		m.idx = len(m.visible) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *reportModel) copyCurrent() {
	c, ok := m.current()
	if !ok {
		m.status = "nothing to copy"
		return
	}
	if err := m.copyText(captureText(c)); err != nil {
		m.errMsg = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.status = "copied " + c.RequirementID
}

func (m reportModel) current() (models.Capture, bool) {
	if len(m.visible) == 0 || m.idx < 0 || m.idx >= len(m.visible) {
		return models.Capture{}, false
	}
	return m.visible[m.idx], true
}

func (m reportModel) View() string {
	if m.detail {
		if c, ok := m.current(); ok {
			return renderPage(c.Protocol+" "+c.RequirementID, captureText(c), "c copy  esc back  q quit")
		}
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" loading captures\n")
	case len(m.visible) == 0:
		b.WriteString("no captures\n")
	default:
		b.WriteString(captureTable(m.visible, m.idx))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderSummary(summarize(m.runID, m.all)))
	if want := filters[m.filter]; want != "" {
		b.WriteString("  filter: ")
		b.WriteString(string(want))
	}
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("Run "+m.runID, b.String(), "enter open  f filter  c copy  r reload  q quit")
}

func captureText(c models.Capture) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Requirement: %s %s\n", c.Protocol, c.RequirementID)
	fmt.Fprintf(&b, "Description: %s\n", valueOrDash(c.Description))
	fmt.Fprintf(&b, "Verdict:     %s\n", c.Verdict)
	fmt.Fprintf(&b, "Detail:      %s\n", valueOrDash(c.Detail))
	fmt.Fprintf(&b, "Run:         %s %s\n", c.RunID, c.RunLabel)
	fmt.Fprintf(&b, "Captured:    %s\n", c.CapturedAt.UTC().Format("2006-01-02 15:04:05Z"))
	return b.String()
}
