package watch

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/statline/internal/theme"
)

const tickInterval = time.Second

// RenderFunc produces the current status lines.
type RenderFunc func(ctx context.Context) ([]string, error)

type linesMsg struct {
	lines []string
	err   error
}

type tickMsg struct{}

type repoChangedMsg struct{}

// Model is the bubbletea model for --watch.
type Model struct {
	render   RenderFunc
	watcher  *Watcher
	theme    *theme.Theme
	spinner  spinner.Model
	lines    []string
	err      error
	loaded   bool
	quitting bool
}

// NewModel builds the watch model. watcher may be nil outside a
// repository; the clock tick still refreshes the lines.
func NewModel(render RenderFunc, watcher *Watcher, th *theme.Theme) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(th.Dim)
	return &Model{
		render:  render,
		watcher: watcher,
		theme:   th,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.renderCmd(), tick()}
	if cmd := m.waitForRepoChange(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			if m.watcher != nil {
				m.watcher.Stop()
			}
			return m, tea.Quit
		case "r":
			return m, m.renderCmd()
		}

	case tickMsg:
		return m, tea.Batch(m.renderCmd(), tick())

	case repoChangedMsg:
		cmds := []tea.Cmd{}
		if m.watcher != nil && m.watcher.ShouldRefresh(time.Now()) {
			cmds = append(cmds, m.renderCmd())
		}
		if cmd := m.waitForRepoChange(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case linesMsg:
		m.loaded = true
		m.lines = msg.lines
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.loaded {
		return m.spinner.View() + " gathering status…\n"
	}

	var b strings.Builder
	if m.err != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Warn).Render("error: " + m.err.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(strings.Join(m.lines, "\n"))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Dim).Render("r refresh · q quit"))
	b.WriteString("\n")
	return b.String()
}

// Quitting reports whether the model exited via a quit key.
func (m *Model) Quitting() bool {
	return m.quitting
}

func (m *Model) renderCmd() tea.Cmd {
	return func() tea.Msg {
		lines, err := m.render(context.Background())
		return linesMsg{lines: lines, err: err}
	}
}

func (m *Model) waitForRepoChange() tea.Cmd {
	if m.watcher == nil || m.watcher.Events() == nil {
		return nil
	}
	events := m.watcher.Events()
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return repoChangedMsg{}
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}
