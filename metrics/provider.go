// Package metrics defines the system metrics provider boundary and its
// gopsutil-backed implementation. The provider exposes exactly the calls the
// monitor needs: CPU load, memory, filesystem usage, OS identity, CPU
// temperature, and a trivial probe used purely for latency measurement.
package metrics

import "context"

// LoadStat holds a CPU load snapshot.
type LoadStat struct {
	// Current is the overall CPU load percentage (0-100).
	Current float64 `json:"current"`

	// User and System split the current load by origin.
	User   float64 `json:"user"`
	System float64 `json:"system"`

	// PerCore holds the per-core load percentages.
	PerCore []float64 `json:"per_core"`

	// Avg is the 1-minute rolling load average.
	Avg float64 `json:"avg"`

	// Cores is the logical core count.
	Cores int `json:"cores"`
}

// MemStat holds a memory snapshot in bytes.
type MemStat struct {
	Total     uint64 `json:"total"`
	Used      uint64 `json:"used"`
	Active    uint64 `json:"active"`
	Available uint64 `json:"available"`
	Free      uint64 `json:"free"`
	Cached    uint64 `json:"cached"`
	Buffers   uint64 `json:"buffers"`
	SwapTotal uint64 `json:"swap_total"`
	SwapUsed  uint64 `json:"swap_used"`
}

// UsedPercent returns used/total as a percentage, 0 when total is zero.
func (m *MemStat) UsedPercent() float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(m.Used) / float64(m.Total) * 100
}

// SwapPercent returns swap usage as a percentage, 0 when swap total is zero.
func (m *MemStat) SwapPercent() float64 {
	if m.SwapTotal == 0 {
		return 0
	}
	return float64(m.SwapUsed) / float64(m.SwapTotal) * 100
}

// FSRecord describes one mounted filesystem.
type FSRecord struct {
	// Size and Used are byte counts.
	Size uint64 `json:"size"`
	Used uint64 `json:"used"`

	// UsePercent is the provider-computed usage percentage.
	UsePercent float64 `json:"use_percent"`

	// Mount is the mount point path.
	Mount string `json:"mount"`

	// Type is the filesystem type (ext4, apfs, ...).
	Type string `json:"type"`
}

// OSStat holds host identity information.
type OSStat struct {
	Platform string `json:"platform"`
	Distro   string `json:"distro"`
	Release  string `json:"release"`
	Kernel   string `json:"kernel"`
	Arch     string `json:"arch"`
	Hostname string `json:"hostname"`

	// UptimeSec is the host uptime in seconds.
	UptimeSec uint64 `json:"uptime_sec"`
}

// Provider is the metrics source consumed by the monitor. Implementations
// must be safe for concurrent use; the monitor issues calls from overlapping
// sample goroutines.
type Provider interface {
	// CurrentLoad returns the current CPU load snapshot.
	CurrentLoad(ctx context.Context) (*LoadStat, error)

	// Memory returns the current memory snapshot.
	Memory(ctx context.Context) (*MemStat, error)

	// FSSize returns the ordered list of mounted filesystems.
	// An empty list is a normal condition, not an error.
	FSSize(ctx context.Context) ([]FSRecord, error)

	// OSInfo returns host identity information.
	OSInfo(ctx context.Context) (*OSStat, error)

	// CPUTemperature returns the main CPU sensor reading in Celsius.
	// ok is false when no sensor is available; that is not an error.
	CPUTemperature(ctx context.Context) (temp float64, ok bool, err error)

	// Time performs a trivial provider call. Callers use its wall-clock
	// duration as a response-time measurement; the result is discarded.
	Time(ctx context.Context) error
}
