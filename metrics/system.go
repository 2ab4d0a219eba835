package metrics

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/sensors"
)

// Compile-time interface compliance check.
var _ Provider = (*SystemProvider)(nil)

// SystemProvider implements Provider on gopsutil.
// CPU load is computed from deltas between successive cpu.Times samples, so
// the first CurrentLoad call after startup reports zero load while the
// counters are seeded.
type SystemProvider struct {
	logger *slog.Logger

	// mu protects the previous CPU times sample used for delta computation.
	mu        sync.Mutex
	prevTotal float64
	prevIdle  float64
	prevUser  float64
	prevSys   float64
	seeded    bool
}

// NewSystemProvider creates a SystemProvider.
// If logger is nil, a no-op logger is used.
func NewSystemProvider(logger *slog.Logger) *SystemProvider {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SystemProvider{logger: logger}
}

// cpuBusyTotal sums all accounted CPU time states.
func cpuBusyTotal(t cpu.TimesStat) (total, idle float64) {
	total = t.User + t.Nice + t.System + t.Idle + t.Iowait +
		t.Irq + t.Softirq + t.Steal + t.Guest + t.GuestNice
	idle = t.Idle + t.Iowait
	return total, idle
}

// CurrentLoad returns the current CPU load snapshot. The overall and
// user/system percentages come from the delta against the previous call;
// per-core percentages use gopsutil's internal last-call tracking.
func (p *SystemProvider) CurrentLoad(ctx context.Context) (*LoadStat, error) {
	times, err := cpu.TimesWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("metrics: cpu times: %w", err)
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("metrics: cpu times: empty sample")
	}

	total, idle := cpuBusyTotal(times[0])

	p.mu.Lock()
	var current, user, system float64
	if p.seeded {
		deltaTotal := total - p.prevTotal
		if deltaTotal > 0 {
			current = clampPct((1 - (idle-p.prevIdle)/deltaTotal) * 100)
			user = clampPct((times[0].User - p.prevUser) / deltaTotal * 100)
			system = clampPct((times[0].System - p.prevSys) / deltaTotal * 100)
		}
	}
	p.prevTotal = total
	p.prevIdle = idle
	p.prevUser = times[0].User
	p.prevSys = times[0].System
	p.seeded = true
	p.mu.Unlock()

	perCore, err := cpu.PercentWithContext(ctx, 0, true)
	if err != nil {
		return nil, fmt.Errorf("metrics: per-core load: %w", err)
	}

	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("metrics: core count: %w", err)
	}

	var avg float64
	if loadStat, err := load.AvgWithContext(ctx); err == nil && loadStat != nil {
		avg = loadStat.Load1
	} else if err != nil {
		// Load average is unsupported on some platforms; report zero.
		p.logger.Debug("metrics: load average unavailable", "error", err)
	}

	return &LoadStat{
		Current: current,
		User:    user,
		System:  system,
		PerCore: perCore,
		Avg:     avg,
		Cores:   cores,
	}, nil
}

// Memory returns the current virtual memory and swap snapshot.
func (p *SystemProvider) Memory(ctx context.Context) (*MemStat, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("metrics: virtual memory: %w", err)
	}

	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("metrics: swap memory: %w", err)
	}

	return &MemStat{
		Total:     vm.Total,
		Used:      vm.Used,
		Active:    vm.Active,
		Available: vm.Available,
		Free:      vm.Free,
		Cached:    vm.Cached,
		Buffers:   vm.Buffers,
		SwapTotal: swap.Total,
		SwapUsed:  swap.Used,
	}, nil
}

// FSSize returns one record per physical partition, in partition order.
// Partitions whose usage query fails are skipped rather than failing the
// whole call; pseudo filesystems are excluded.
func (p *SystemProvider) FSSize(ctx context.Context) ([]FSRecord, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("metrics: partitions: %w", err)
	}

	records := make([]FSRecord, 0, len(parts))
	for _, part := range parts {
		usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil {
			p.logger.Debug("metrics: skipping partition",
				"mount", part.Mountpoint,
				"error", err,
			)
			continue
		}
		records = append(records, FSRecord{
			Size:       usage.Total,
			Used:       usage.Used,
			UsePercent: usage.UsedPercent,
			Mount:      part.Mountpoint,
			Type:       part.Fstype,
		})
	}

	return records, nil
}

// OSInfo returns host identity information.
func (p *SystemProvider) OSInfo(ctx context.Context) (*OSStat, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("metrics: host info: %w", err)
	}

	return &OSStat{
		Platform:  info.OS,
		Distro:    info.Platform,
		Release:   info.PlatformVersion,
		Kernel:    info.KernelVersion,
		Arch:      info.KernelArch,
		Hostname:  info.Hostname,
		UptimeSec: info.Uptime,
	}, nil
}

// cpuSensorHints identify CPU package sensors across common platforms.
var cpuSensorHints = []string{"coretemp", "k10temp", "cpu", "soc", "tdie", "tctl"}

// CPUTemperature returns the main CPU sensor reading. Absent or unreadable
// sensors are a normal condition reported as ok=false, never an error.
func (p *SystemProvider) CPUTemperature(ctx context.Context) (float64, bool, error) {
	readings, err := sensors.TemperaturesWithContext(ctx)
	if err != nil || len(readings) == 0 {
		if err != nil {
			p.logger.Debug("metrics: temperature sensors unavailable", "error", err)
		}
		return 0, false, nil
	}

	for _, r := range readings {
		key := strings.ToLower(r.SensorKey)
		for _, hint := range cpuSensorHints {
			if strings.Contains(key, hint) && r.Temperature > 0 {
				return r.Temperature, true, nil
			}
		}
	}

	// No recognisable CPU sensor; fall back to the first positive reading.
	for _, r := range readings {
		if r.Temperature > 0 {
			return r.Temperature, true, nil
		}
	}

	return 0, false, nil
}

// Time issues a trivial provider call whose result is discarded. The monitor
// measures its wall-clock duration as the local response time.
func (p *SystemProvider) Time(ctx context.Context) error {
	if _, err := host.BootTimeWithContext(ctx); err != nil {
		return fmt.Errorf("metrics: time probe: %w", err)
	}
	return nil
}

// clampPct bounds a percentage to the 0-100 range.
func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
