package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cumplesito/internal/i18n"
	"github.com/five82/cumplesito/internal/logtail"
)

// logLevels is the minimum-level cycle; "" shows everything.
var logLevels = []string{"", "debug", "info", "warn", "error"}

// logState holds the client log viewer.
type logState struct {
	entries   []logtail.Entry
	query     string
	searching bool
	input     textinput.Model
	minLevel  string
	follow    bool
	err       error
	viewport  viewport.Model
}

type logsLoadedMsg struct {
	lines []string
	err   error
}

func newLogState() logState {
	return logState{input: newInput(100), follow: true}
}

func (m *Model) initLogViewport() {
	m.logState.viewport = viewport.New(0, 0)
}

// updateLogViewport resizes the viewport and refills it with the entries
// that pass the level and search filters.
func (m *Model) updateLogViewport() {
	if m.width == 0 || m.height == 0 {
		return
	}
	// Box inner = content height - 2 borders - title - filter line
	m.logState.viewport.Width = max(m.width-4, 1)
	m.logState.viewport.Height = max(m.contentHeight()-4, 1)
	m.logState.viewport.SetContent(m.renderLogContent())

	if m.logState.follow {
		m.logState.viewport.GotoBottom()
	}
}

// visibleEntries applies the level and search filters.
func (l logState) visibleEntries() []logtail.Entry {
	out := make([]logtail.Entry, 0, len(l.entries))
	for _, e := range l.entries {
		if e.AtLeast(l.minLevel) && e.Matches(l.query) {
			out = append(out, e)
		}
	}
	return out
}

// refreshLogs reads the tail of the client log file.
func (m Model) refreshLogs() tea.Cmd {
	path := m.config.LogFile
	return func() tea.Msg {
		lines, err := logtail.Read(path, LogBufferLimit)
		return logsLoadedMsg{lines: lines, err: err}
	}
}

func (m *Model) handleLogsLoaded(msg logsLoadedMsg) {
	m.logState.err = msg.err
	if msg.err == nil {
		entries := make([]logtail.Entry, 0, len(msg.lines))
		for _, line := range msg.lines {
			entries = append(entries, logtail.Parse(line))
		}
		m.logState.entries = entries
	}
	m.updateLogViewport()
}

// handleLogsKey handles keys in the log view.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	vp := &m.logState.viewport
	switch {
	case key.Matches(msg, m.keys.ToggleFollow):
		m.logState.follow = !m.logState.follow
		if m.logState.follow {
			vp.GotoBottom()
			return m, m.refreshLogs()
		}
	case key.Matches(msg, m.keys.Search):
		m.logState.searching = true
		m.logState.input.SetValue(m.logState.query)
		m.logState.input.Focus()
	case key.Matches(msg, m.keys.CycleLevel):
		m.logState.minLevel = nextLevel(m.logState.minLevel)
		m.updateLogViewport()
	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshLogs()
	case key.Matches(msg, m.keys.Top):
		vp.GotoTop()
		m.logState.follow = false
	case key.Matches(msg, m.keys.Bottom):
		vp.GotoBottom()
		m.logState.follow = true
	case key.Matches(msg, m.keys.Down):
		vp.LineDown(1)
		m.logState.follow = false
	case key.Matches(msg, m.keys.Up):
		vp.LineUp(1)
		m.logState.follow = false
	case key.Matches(msg, m.keys.HalfPageDown):
		vp.HalfViewDown()
		m.logState.follow = false
	case key.Matches(msg, m.keys.HalfPageUp):
		vp.HalfViewUp()
		m.logState.follow = false
	}
	return m, nil
}

// handleLogSearchInput edits the search query. Enter applies it; esc
// abandons the edit.
func (m Model) handleLogSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.logState.searching = false
		m.logState.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.logState.searching = false
		m.logState.input.Blur()
		m.logState.query = strings.TrimSpace(m.logState.input.Value())
		m.updateLogViewport()
		return m, nil
	}
	var cmd tea.Cmd
	m.logState.input, cmd = m.logState.input.Update(msg)
	return m, cmd
}

func nextLevel(current string) string {
	for i, level := range logLevels {
		if level == current {
			return logLevels[(i+1)%len(logLevels)]
		}
	}
	return ""
}

// renderLogContent formats the visible entries, one per line.
func (m Model) renderLogContent() string {
	styles := m.theme.Styles()
	if m.logState.err != nil {
		return styles.DangerText.Render(m.logState.err.Error())
	}
	entries := m.logState.visibleEntries()
	if len(entries) == 0 {
		return styles.FaintText.Render(m.tr.T(i18n.LogsEmpty))
	}

	width := m.logState.viewport.Width
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, m.formatLogEntry(e, width))
	}
	return strings.Join(lines, "\n")
}

// formatLogEntry renders "15:04:05 LEVEL message key=value".
func (m Model) formatLogEntry(e logtail.Entry, width int) string {
	styles := m.theme.Styles()
	if e.Level == "" && e.Time == "" {
		return styles.MutedText.Render(truncate(e.Raw, width))
	}

	stamp := e.Time
	if i := strings.IndexByte(stamp, 'T'); i >= 0 && len(stamp) >= i+9 {
		stamp = stamp[i+1 : i+9]
	}
	levelStyle := styles.MutedText
	switch e.Level {
	case "error", "fatal", "panic":
		levelStyle = styles.DangerText
	case "warning", "warn":
		levelStyle = styles.WarningText
	case "info":
		levelStyle = styles.InfoText
	}

	var fields strings.Builder
	for _, f := range e.Fields {
		fields.WriteString(" " + f.Key + "=" + f.Value)
	}

	prefix := styles.FaintText.Render(stamp) + " " + levelStyle.Render(padRight(strings.ToUpper(e.Level), 5)) + " "
	rest := truncate(e.Message+fields.String(), max(width-lipgloss.Width(prefix), 8))
	return prefix + styles.Text.Render(rest)
}

// renderLogs renders the log view.
func (m Model) renderLogs(height int) string {
	styles := m.theme.Styles()

	var status []string
	level := m.logState.minLevel
	if level == "" {
		level = m.tr.T(i18n.LogAllLevels)
	}
	status = append(status, styles.MutedText.Render(m.tr.T(i18n.LogLevel)+": ")+styles.AccentText.Render(level))
	if m.logState.follow {
		status = append(status, styles.SuccessText.Render(m.tr.T(i18n.LogFollow)))
	}
	switch {
	case m.logState.searching:
		input := m.logState.input
		status = append(status, "/"+input.View())
	case m.logState.query != "":
		status = append(status, styles.MutedText.Render("/")+styles.AccentText.Render(m.logState.query))
	}
	filterLine := strings.Join(status, "  ")

	title := m.tr.T(i18n.LogsTitle) + " · " + truncateMiddle(m.config.LogFile, max(m.width-30, 10))
	return m.renderBox(title, filterLine+"\n"+m.logState.viewport.View(), m.width, height, true)
}
