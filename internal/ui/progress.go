package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/winsweep/internal/clean"
)

// maxLogLines is how many recent status lines stay on screen.
const maxLogLines = 6

// ─── Messages ────────────────────────────────────────────────────────────────

type eventMsg clean.Event

type streamClosedMsg struct{}

// waitForEvent reads the next event off the stream. The model re-arms it
// after every event so the worker side never waits on rendering.
func waitForEvent(events <-chan clean.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return streamClosedMsg{}
		}
		return eventMsg(ev)
	}
}

// ─── Model ───────────────────────────────────────────────────────────────────

// ProgressModel renders a running scan or clean.
type ProgressModel struct {
	title    string
	events   <-chan clean.Event
	stop     func()
	bar      progress.Model
	spin     spinner.Model
	percent  int
	lines    []string
	final    clean.Event
	stopping bool
	finished bool
	width    int
}

// NewProgressModel creates a model reading events. stop is called once
// when the user presses q or ctrl+c; the model keeps draining the stream
// until the worker closes it.
func NewProgressModel(title string, events <-chan clean.Event, stop func()) ProgressModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return ProgressModel{
		title:  title,
		events: events,
		stop:   stop,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		spin:   sp,
		width:  80,
	}
}

// Final returns the terminal event, zero if the stream ended without one.
func (m ProgressModel) Final() clean.Event {
	return m.final
}

// Stopped reports whether the user asked to stop.
func (m ProgressModel) Stopped() bool {
	return m.stopping
}

func (m ProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, waitForEvent(m.events))
}

func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		barWidth := msg.Width - 20
		if barWidth > 60 {
			barWidth = 60
		}
		if barWidth < 10 {
			barWidth = 10
		}
		m.bar.Width = barWidth
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if !m.stopping {
				m.stopping = true
				if m.stop != nil {
					m.stop()
				}
				m.lines = appendLine(m.lines, "Stopping after the current file…")
			}
		}
		return m, nil

	case eventMsg:
		ev := clean.Event(msg)
		m.percent = ev.Percent
		if ev.Message != "" {
			m.lines = appendLine(m.lines, ev.Message)
		}
		if ev.Done() {
			m.final = ev
		}
		return m, waitForEvent(m.events)

	case streamClosedMsg:
		m.finished = true
		m.percent = 100
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m ProgressModel) View() string {
	if m.finished {
		return ""
	}

	var s strings.Builder
	s.WriteString("  " + TitleStyle().Render(IconDiamond+" "+m.title))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("  %s %s %3d%%\n\n", m.spin.View(), m.bar.ViewAs(float64(m.percent)/100), m.percent))

	for _, line := range m.lines {
		s.WriteString("  " + DimStyle().Render(line) + "\n")
	}

	s.WriteString("\n")
	hint := "q stop"
	if m.stopping {
		hint = "stopping…"
	}
	s.WriteString("  " + HintBarStyle().Render(hint) + "\n")
	return s.String()
}

func appendLine(lines []string, line string) []string {
	lines = append(lines, line)
	if len(lines) > maxLogLines {
		lines = lines[len(lines)-maxLogLines:]
	}
	return lines
}
