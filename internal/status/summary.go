package status

import (
	"fmt"
	"io"

	"github.com/lakshaymaurya-felt/winsweep/internal/core"
)

// PrintSummary writes a plain-text snapshot, used when stdout is not a
// terminal.
func PrintSummary(w io.Writer, m *SystemMetrics) {
	hw := m.Hardware
	fmt.Fprintf(w, "  Computer  %s\n", hw.Hostname)
	fmt.Fprintf(w, "  OS        %s %s (%s)\n", hw.OS, hw.OSVersion, hw.Architecture)
	fmt.Fprintf(w, "  CPU       %s, %d cores, %.1f%% used\n", hw.CPUModel, hw.CPUCores, m.CPU.TotalPercent)
	fmt.Fprintf(w, "  Memory    %s / %s (%.1f%%)\n",
		core.FormatSize(m.Memory.Used), core.FormatSize(m.Memory.Total), m.Memory.UsedPercent)
	for _, p := range m.Disk.Partitions {
		fmt.Fprintf(w, "  Disk      %s  %s free of %s (%.1f%% used)\n",
			p.Path, core.FormatSize(p.Free), core.FormatSize(p.Total), p.UsedPercent)
	}
	fmt.Fprintf(w, "  Health    %d/100\n", HealthScore(m))
}
