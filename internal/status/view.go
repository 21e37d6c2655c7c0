package status

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/winsweep/internal/core"
	"github.com/lakshaymaurya-felt/winsweep/internal/ui"
)

var (
	clrGreen  = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	clrYellow = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	clrOrange = lipgloss.AdaptiveColor{Light: "#ea580c", Dark: "#fb923c"}
	clrRed    = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	clrCyan   = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}
)

// fullVolume is the usage above which a volume gets a warning tag.
const fullVolume = 90.0

func (m StatusModel) renderView() string {
	w := max(m.Width, 50)

	body := ui.MutedStyle().Render("  Collecting metrics…")
	if m.Metrics != nil {
		switch m.Tab {
		case TabOverview:
			body = m.renderOverview(w)
		case TabCPU:
			body = m.renderCPU(w)
		case TabMemory:
			body = m.renderMemory(w)
		case TabDisk:
			body = m.renderDisk(w)
		}
		body += "\n\n" + m.renderStatusFooter()
	}
	return m.renderTabs(w) + "\n" + body
}

// renderTabs draws "1 Overview  2 CPU ..." with the active tab highlighted,
// followed by a rule.
func (m StatusModel) renderTabs(w int) string {
	active := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary)
	idle := lipgloss.NewStyle().Foreground(ui.ColorMuted)

	labels := make([]string, len(TabNames))
	for i, name := range TabNames {
		style, marker := idle, " "
		if Tab(i) == m.Tab {
			style, marker = active, ui.IconBlock
		}
		labels[i] = style.Render(fmt.Sprintf("%s%d %s", marker, i+1, name))
	}
	return "  " + strings.Join(labels, "   ") + "\n" + ui.Rule(w)
}

func (m StatusModel) renderOverview(w int) string {
	met := m.Metrics
	score := HealthScore(met)
	label, color := grade(score)

	headline := lipgloss.NewStyle().Bold(true).Foreground(color).
		Render(fmt.Sprintf("  Health %d/100 %s %s", score, ui.IconBullet, label))

	hw := met.Hardware
	facts := keyValues([][2]string{
		{"Computer", hw.Hostname},
		{"OS", strings.TrimSpace(hw.OS + " " + hw.OSVersion)},
		{"CPU", fmt.Sprintf("%s (%d cores)", hw.CPUModel, hw.CPUCores)},
		{"RAM", core.FormatSize(hw.RAMTotal)},
		{"Arch", hw.Architecture},
	})

	width := barWidth(w, 24, 32)
	gauges := []string{
		gauge("CPU", met.CPU.TotalPercent, width, ""),
		gauge("Memory", met.Memory.UsedPercent, width,
			core.FormatSize(met.Memory.Used)+" of "+core.FormatSize(met.Memory.Total)),
	}
	if p, ok := fullest(met.Disk.Partitions); ok {
		gauges = append(gauges, gauge("Disk", p.UsedPercent, width,
			core.FormatSize(p.Free)+" free on "+p.Path))
	}

	return strings.Join([]string{"", headline, "", facts, "", strings.Join(gauges, "\n")}, "\n")
}

func (m StatusModel) renderCPU(w int) string {
	met := m.Metrics
	width := barWidth(w, 40, 56)

	lines := []string{"", gauge("Total", met.CPU.TotalPercent, width, "")}
	if len(m.CPUHistory) > 1 {
		lines = append(lines, fmt.Sprintf("  %-8s %s", "History", sparkline(m.CPUHistory, 30)))
	}
	lines = append(lines, "")
	for i, pct := range met.CPU.PerCore {
		lines = append(lines, gauge(fmt.Sprintf("Core %d", i), pct, width-10, ""))
	}
	return strings.Join(lines, "\n")
}

func (m StatusModel) renderMemory(w int) string {
	mm := m.Metrics.Memory
	width := barWidth(w, 40, 56)

	lines := []string{"", gauge("Used", mm.UsedPercent, width, "")}
	if len(m.MemHistory) > 1 {
		lines = append(lines, fmt.Sprintf("  %-8s %s", "History", sparkline(m.MemHistory, 30)))
	}
	lines = append(lines, "", keyValues([][2]string{
		{"Total", core.FormatSize(mm.Total)},
		{"Used", core.FormatSize(mm.Used)},
		{"Available", core.FormatSize(mm.Available)},
		{"Free", core.FormatSize(mm.Free)},
	}))
	if mm.SwapTotal > 0 {
		lines = append(lines, "", gauge("Swap", mm.SwapPercent, width,
			core.FormatSize(mm.SwapUsed)+" of "+core.FormatSize(mm.SwapTotal)))
	}
	return strings.Join(lines, "\n")
}

// renderDisk lists volumes fullest first, since those are the ones a
// cleanup helps.
func (m StatusModel) renderDisk(w int) string {
	d := m.Metrics.Disk
	width := barWidth(w, 36, 48)

	lines := []string{""}
	if len(d.Partitions) == 0 {
		lines = append(lines, ui.MutedStyle().Render("  (no volumes reported)"))
	}

	parts := append([]PartitionMetrics(nil), d.Partitions...)
	sort.SliceStable(parts, func(i, j int) bool {
		return parts[i].UsedPercent > parts[j].UsedPercent
	})
	for _, p := range parts {
		line := gauge(truncate(p.Path, 12), p.UsedPercent, width,
			fmt.Sprintf("%s free of %s", core.FormatSize(p.Free), core.FormatSize(p.Total)))
		if p.UsedPercent >= fullVolume {
			line += " " + ui.TagWarningStyle().Render(" FULL ")
		}
		lines = append(lines, line)
	}

	lines = append(lines, "", ui.DimStyle().Render(fmt.Sprintf("  Read %s %s Written %s",
		core.FormatSize(d.ReadBytes), ui.IconPipe, core.FormatSize(d.WriteBytes))))
	return strings.Join(lines, "\n")
}

func (m StatusModel) renderStatusFooter() string {
	footer := ui.HintBarStyle().Italic(true).
		Render("  tab/shift+tab switch " + ui.IconPipe + " 1-4 jump " + ui.IconPipe + " q quit")
	if m.Err == nil {
		return footer
	}
	return ui.ErrorStyle().Render("  "+ui.IconError+" "+m.Err.Error()) + "\n" + footer
}

// ─── Drawing helpers ─────────────────────────────────────────────────────────

// gauge renders one labelled bar line with an optional trailing detail.
func gauge(label string, pct float64, width int, detail string) string {
	line := fmt.Sprintf("  %-8s %s %5.1f%%", label, colorBar(pct, width), pct)
	if detail != "" {
		line += "  " + ui.DimStyle().Render(detail)
	}
	return line
}

// keyValues renders aligned "key  value" rows.
func keyValues(rows [][2]string) string {
	keyStyle := lipgloss.NewStyle().Foreground(ui.ColorSecondary)
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, "  "+keyStyle.Render(fmt.Sprintf("%-10s", r[0]))+" "+r[1])
	}
	return strings.Join(out, "\n")
}

func barWidth(w, narrow, wide int) int {
	if w > 100 {
		return wide
	}
	return narrow
}

// grade names a health score and picks its color.
func grade(score int) (string, lipgloss.AdaptiveColor) {
	switch {
	case score >= 90:
		return "EXCELLENT", clrGreen
	case score >= 70:
		return "GOOD", clrYellow
	case score >= 50:
		return "FAIR", clrOrange
	default:
		return "CRITICAL", clrRed
	}
}

// severity colors a usage percentage.
func severity(pct float64) lipgloss.AdaptiveColor {
	switch {
	case pct >= 90:
		return clrRed
	case pct >= 75:
		return clrOrange
	case pct >= 50:
		return clrYellow
	default:
		return clrGreen
	}
}

func fullest(parts []PartitionMetrics) (PartitionMetrics, bool) {
	if len(parts) == 0 {
		return PartitionMetrics{}, false
	}
	best := parts[0]
	for _, p := range parts[1:] {
		if p.UsedPercent > best.UsedPercent {
			best = p
		}
	}
	return best, true
}

// colorBar renders a filled/empty bar colored by severity.
func colorBar(pct float64, width int) string {
	pct = min(max(pct, 0), 100)
	width = max(width, 1)
	filled := int(pct / 100 * float64(width))

	return lipgloss.NewStyle().Foreground(severity(pct)).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(strings.Repeat("░", width-filled))
}

// sparkline renders percentages as block characters, newest on the right.
func sparkline(data []float64, width int) string {
	blocks := []rune("▁▂▃▄▅▆▇█")
	if len(data) > width {
		data = data[len(data)-width:]
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(string(blocks[0]), width-len(data)))
	for _, v := range data {
		idx := min(max(int(v/100*7), 0), 7)
		b.WriteRune(blocks[idx])
	}
	return lipgloss.NewStyle().Foreground(clrCyan).Render(b.String())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
