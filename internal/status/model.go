// Package status implements the system health dashboard shown by
// "ws status": a tabbed bubbletea view over gopsutil snapshots.
package status

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ─── Tab enumeration ─────────────────────────────────────────────────────────

// Tab identifies one of the dashboard sections.
type Tab int

const (
	TabOverview Tab = iota
	TabCPU
	TabMemory
	TabDisk
)

// TabNames is the display label for each tab.
var TabNames = []string{"Overview", "CPU", "Memory", "Disk"}

// historyLen is how many readings the sparklines keep.
const historyLen = 60

// ─── Messages ────────────────────────────────────────────────────────────────

type tickMsg time.Time

type metricsMsg struct {
	metrics *SystemMetrics
	err     error
}

// Collector produces one metrics snapshot. CollectMetrics is the real one.
type Collector func(ctx context.Context, sample time.Duration) (*SystemMetrics, error)

// ─── Model ───────────────────────────────────────────────────────────────────

// StatusModel is the bubbletea Model for the system health dashboard.
type StatusModel struct {
	Metrics         *SystemMetrics
	Tab             Tab
	Width           int
	Height          int
	Err             error
	CPUHistory      []float64
	MemHistory      []float64
	refreshInterval time.Duration
	collect         Collector
	ctx             context.Context
	quitting        bool
}

// NewStatusModel creates a StatusModel with the given refresh cadence.
// A nil collect uses CollectMetrics.
func NewStatusModel(ctx context.Context, refreshInterval time.Duration, collect Collector) StatusModel {
	if refreshInterval <= 0 {
		refreshInterval = time.Second
	}
	if collect == nil {
		collect = CollectMetrics
	}
	return StatusModel{
		Width:           80,
		Height:          24,
		refreshInterval: refreshInterval,
		collect:         collect,
		ctx:             ctx,
	}
}

func (m StatusModel) doTick() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m StatusModel) collectMetrics() tea.Cmd {
	ctx, collect := m.ctx, m.collect
	return func() tea.Msg {
		metrics, err := collect(ctx, 0)
		return metricsMsg{metrics: metrics, err: err}
	}
}

// ─── tea.Model interface ─────────────────────────────────────────────────────

func (m StatusModel) Init() tea.Cmd {
	// The first metricsMsg starts the tick loop, so collection and display
	// never overlap.
	return m.collectMetrics()
}

func (m StatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "tab", "right", "l":
			m.Tab = (m.Tab + 1) % Tab(len(TabNames))
		case "shift+tab", "left", "h":
			if m.Tab == 0 {
				m.Tab = Tab(len(TabNames) - 1)
			} else {
				m.Tab--
			}
		case "1":
			m.Tab = TabOverview
		case "2":
			m.Tab = TabCPU
		case "3":
			m.Tab = TabMemory
		case "4":
			m.Tab = TabDisk
		}
		return m, nil

	case tickMsg:
		return m, m.collectMetrics()

	case metricsMsg:
		if msg.err != nil {
			m.Err = msg.err
			return m, m.doTick()
		}
		m.Err = nil
		m.Metrics = msg.metrics
		m.CPUHistory = appendHistory(m.CPUHistory, msg.metrics.CPU.TotalPercent)
		m.MemHistory = appendHistory(m.MemHistory, msg.metrics.Memory.UsedPercent)
		return m, m.doTick()
	}

	return m, nil
}

func (m StatusModel) View() string {
	if m.quitting {
		return ""
	}
	return m.renderView()
}

func appendHistory(h []float64, v float64) []float64 {
	h = append(h, v)
	if len(h) > historyLen {
		h = h[1:]
	}
	return h
}
