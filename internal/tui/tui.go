// Package tui provides the Bubble Tea terminal user interface for songdrop.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/songdrop/internal/session"
)

// refreshInterval is how often the log pane is redrawn without input, so
// downloader output shows up while the user is idle.
const refreshInterval = 100 * time.Millisecond

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)
)

// Message types
type (
	// tickMsg triggers a periodic redraw.
	tickMsg struct{}

	// downloadDoneMsg is sent when a download task has returned.
	downloadDoneMsg struct{}
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	sess      *session.Session
	textInput textinput.Model
	logView   viewport.Model
	spinner   spinner.Model

	// Download context, cancelled when the program exits.
	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model driving sess.
func NewModel(sess *session.Session) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "song name"
	ti.Focus()
	ti.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		sess:      sess,
		textInput: ti,
		logView:   viewport.New(76, 16),
		spinner:   sp,
		ctx:       ctx,
		cancel:    cancel,
	}
	m.resize(80, 24)
	m.refreshLog()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, tick())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.refreshLog()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.cancel()
			return m, tea.Quit

		case tea.KeyEnter:
			line := m.textInput.Value()
			m.textInput.SetValue("")

			out := m.sess.Submit(line)
			m.refreshLog()
			if out.Quit {
				m.cancel()
				return m, tea.Quit
			}
			if out.Task != nil {
				return m, tea.Batch(m.runTask(out.Task), m.spinner.Tick)
			}
			return m, nil
		}

	case tickMsg:
		m.refreshLog()
		cmds = append(cmds, tick())

	case downloadDoneMsg:
		m.refreshLog()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Music Download Client"))
	b.WriteString("\n")
	b.WriteString(m.logView.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.textInput.View())

	return frameStyle.Width(m.width - 2).Render(b.String())
}

func (m Model) statusLine() string {
	switch m.sess.State() {
	case session.StateDownloading:
		return m.spinner.View() + " " + infoStyle.Render("Downloading... (q: stop waiting)")
	case session.StateOrganizing:
		return dimStyle.Render("number: move • n: new folder • q: leave in place")
	case session.StateCreatingFolder:
		return dimStyle.Render("type the new folder name")
	}
	return dimStyle.Render("enter: download • q: quit • ctrl+c: exit")
}

// resize lays the panes out for a terminal of the given size: two border
// rows, title, status and prompt lines around the log pane.
func (m *Model) resize(width, height int) {
	m.width = max(width, 20)
	m.height = max(height, 8)

	inner := m.width - 4
	m.logView.Width = inner
	m.logView.Height = m.height - 5
	m.textInput.Width = inner - len(m.textInput.Prompt) - 1
}

// refreshLog loads the trailing lines of the session log into the pane.
func (m *Model) refreshLog() {
	lines := m.sess.Log().Tail(m.logView.Height)
	clip := lipgloss.NewStyle().MaxWidth(m.logView.Width)
	for i, line := range lines {
		lines[i] = styleLine(clip.Render(line))
	}
	m.logView.SetContent(strings.Join(lines, "\n"))
	m.logView.GotoBottom()
}

func styleLine(line string) string {
	switch {
	case strings.HasPrefix(line, "Error"), strings.HasPrefix(line, "Could not"),
		strings.HasPrefix(line, "ERROR:"), strings.HasPrefix(line, "Filesystem error"):
		return errorStyle.Render(line)
	case strings.HasPrefix(line, "---"):
		return headerStyle.Render(line)
	case strings.HasPrefix(line, "File moved"), strings.HasPrefix(line, "Folder created"),
		strings.HasPrefix(line, "Cover art saved"):
		return successStyle.Render(line)
	}
	return line
}

// runTask runs a download on Bubble Tea's command goroutine and reports
// back when it returns.
func (m Model) runTask(task func(context.Context)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		task(ctx)
		return downloadDoneMsg{}
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Run starts the TUI application.
func Run(sess *session.Session) error {
	m := NewModel(sess)
	defer m.cancel()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
