package status

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/lakshaymaurya-felt/winsweep/internal/logger"
)

// HardwareInfo is the static part of the dashboard.
type HardwareInfo struct {
	Hostname     string `json:"hostname"`
	OS           string `json:"os"`
	OSVersion    string `json:"os_version"`
	CPUModel     string `json:"cpu_model"`
	CPUCores     int    `json:"cpu_cores"`
	RAMTotal     uint64 `json:"ram_total"`
	Architecture string `json:"architecture"`
}

// CPUMetrics holds utilisation percentages.
type CPUMetrics struct {
	TotalPercent float64   `json:"total_percent"`
	PerCore      []float64 `json:"per_core"`
}

// MemoryMetrics holds RAM and swap usage in bytes.
type MemoryMetrics struct {
	Total       uint64  `json:"total"`
	Used        uint64  `json:"used"`
	Available   uint64  `json:"available"`
	Free        uint64  `json:"free"`
	UsedPercent float64 `json:"used_percent"`
	SwapTotal   uint64  `json:"swap_total"`
	SwapUsed    uint64  `json:"swap_used"`
	SwapPercent float64 `json:"swap_percent"`
}

// PartitionMetrics is the usage of one mounted volume.
type PartitionMetrics struct {
	Path        string  `json:"path"`
	FSType      string  `json:"fs_type"`
	Total       uint64  `json:"total"`
	Used        uint64  `json:"used"`
	Free        uint64  `json:"free"`
	UsedPercent float64 `json:"used_percent"`
}

// DiskMetrics holds per-volume usage and cumulative I/O counters.
type DiskMetrics struct {
	Partitions []PartitionMetrics `json:"partitions"`
	ReadBytes  uint64             `json:"read_bytes"`
	WriteBytes uint64             `json:"write_bytes"`
}

// SystemMetrics is one snapshot of the machine.
type SystemMetrics struct {
	Hardware    HardwareInfo  `json:"hardware"`
	CPU         CPUMetrics    `json:"cpu"`
	Memory      MemoryMetrics `json:"memory"`
	Disk        DiskMetrics   `json:"disk"`
	CollectedAt time.Time     `json:"collected_at"`
}

// CollectMetrics takes a snapshot. CPU usage is sampled over sample; a
// zero sample compares against the previous call, which is what the
// dashboard's refresh loop wants. CPU and memory failures are fatal;
// host and disk problems only leave their fields empty.
func CollectMetrics(ctx context.Context, sample time.Duration) (*SystemMetrics, error) {
	m := &SystemMetrics{CollectedAt: time.Now()}

	perCore, err := cpu.PercentWithContext(ctx, sample, true)
	if err != nil {
		return nil, fmt.Errorf("cpu usage: %w", err)
	}
	m.CPU = CPUMetrics{TotalPercent: average(perCore), PerCore: perCore}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("memory usage: %w", err)
	}
	m.Memory = MemoryMetrics{
		Total:       vm.Total,
		Used:        vm.Used,
		Available:   vm.Available,
		Free:        vm.Free,
		UsedPercent: vm.UsedPercent,
	}
	if sw, err := mem.SwapMemoryWithContext(ctx); err == nil {
		m.Memory.SwapTotal = sw.Total
		m.Memory.SwapUsed = sw.Used
		m.Memory.SwapPercent = sw.UsedPercent
	}

	m.Hardware = collectHardware(ctx, vm.Total)
	m.Disk = collectDisk(ctx)
	return m, nil
}

func collectHardware(ctx context.Context, ramTotal uint64) HardwareInfo {
	hw := HardwareInfo{
		OS:           runtime.GOOS,
		RAMTotal:     ramTotal,
		Architecture: runtime.GOARCH,
	}

	if info, err := host.InfoWithContext(ctx); err == nil {
		hw.Hostname = info.Hostname
		if info.Platform != "" {
			hw.OS = info.Platform
		}
		hw.OSVersion = info.PlatformVersion
		if info.KernelArch != "" {
			hw.Architecture = info.KernelArch
		}
	} else {
		logger.Get().Debug().Err(err).Msg("host info unavailable")
	}

	if name := osCaption(ctx); name != "" {
		hw.OS = name
	}

	if infos, err := cpu.InfoWithContext(ctx); err == nil && len(infos) > 0 {
		hw.CPUModel = infos[0].ModelName
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		hw.CPUCores = n
	}
	return hw
}

func collectDisk(ctx context.Context) DiskMetrics {
	var d DiskMetrics

	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		logger.Get().Debug().Err(err).Msg("partition list unavailable")
	}
	seen := make(map[string]bool)
	for _, p := range parts {
		if seen[p.Mountpoint] {
			continue
		}
		seen[p.Mountpoint] = true

		u, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil || u.Total == 0 {
			continue
		}
		d.Partitions = append(d.Partitions, PartitionMetrics{
			Path:        p.Mountpoint,
			FSType:      p.Fstype,
			Total:       u.Total,
			Used:        u.Used,
			Free:        u.Free,
			UsedPercent: u.UsedPercent,
		})
	}

	if counters, err := disk.IOCountersWithContext(ctx); err == nil {
		for _, c := range counters {
			d.ReadBytes += c.ReadBytes
			d.WriteBytes += c.WriteBytes
		}
	}
	return d
}

// HealthScore rates the machine from 0 to 100. Sustained CPU load, memory
// pressure, and a nearly full first volume each cost points.
func HealthScore(m *SystemMetrics) int {
	if m == nil {
		return 0
	}
	score := 100.0
	score -= penalty(m.CPU.TotalPercent, 70, 1, 30)
	score -= penalty(m.Memory.UsedPercent, 70, 1, 30)
	if len(m.Disk.Partitions) > 0 {
		score -= penalty(m.Disk.Partitions[0].UsedPercent, 80, 2, 40)
	}
	if score < 0 {
		score = 0
	}
	return int(score)
}

// penalty returns (value-threshold)*weight, clamped to [0,limit].
func penalty(value, threshold, weight, limit float64) float64 {
	if value <= threshold {
		return 0
	}
	p := (value - threshold) * weight
	if p > limit {
		return limit
	}
	return p
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
