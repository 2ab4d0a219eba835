package metrics

import "context"

// Compile-time interface compliance check.
var _ Provider = (*MockProvider)(nil)

// MockProvider implements Provider with overridable function fields.
// Nil fields fall back to the canned snapshots below, so tests only need to
// set the calls they care about. Useful for UI development without touching
// the real system.
type MockProvider struct {
	CurrentLoadFunc    func(ctx context.Context) (*LoadStat, error)
	MemoryFunc         func(ctx context.Context) (*MemStat, error)
	FSSizeFunc         func(ctx context.Context) ([]FSRecord, error)
	OSInfoFunc         func(ctx context.Context) (*OSStat, error)
	CPUTemperatureFunc func(ctx context.Context) (float64, bool, error)
	TimeFunc           func(ctx context.Context) error
}

// MockLoad returns a plausible CPU load snapshot.
func MockLoad() *LoadStat {
	return &LoadStat{
		Current: 23.456,
		User:    15.2,
		System:  8.3,
		PerCore: []float64{20.1, 26.8, 22.4, 24.5},
		Avg:     1.42,
		Cores:   4,
	}
}

// MockMemory returns a plausible 8 GiB memory snapshot at 50% usage.
func MockMemory() *MemStat {
	return &MemStat{
		Total:     8589934592,
		Used:      4294967296,
		Active:    3221225472,
		Available: 4294967296,
		Free:      2147483648,
		Cached:    1610612736,
		Buffers:   268435456,
		SwapTotal: 2147483648,
		SwapUsed:  536870912,
	}
}

// MockFS returns a single root filesystem record.
func MockFS() []FSRecord {
	return []FSRecord{
		{
			Size:       107374182400,
			Used:       64424509440,
			UsePercent: 60,
			Mount:      "/",
			Type:       "ext4",
		},
	}
}

// MockOS returns a plausible Linux host identity.
func MockOS() *OSStat {
	return &OSStat{
		Platform:  "linux",
		Distro:    "ubuntu",
		Release:   "24.04",
		Kernel:    "6.8.0-31-generic",
		Arch:      "x86_64",
		Hostname:  "devbox",
		UptimeSec: 93784,
	}
}

// CurrentLoad delegates to CurrentLoadFunc or returns MockLoad.
func (m *MockProvider) CurrentLoad(ctx context.Context) (*LoadStat, error) {
	if m.CurrentLoadFunc != nil {
		return m.CurrentLoadFunc(ctx)
	}
	return MockLoad(), nil
}

// Memory delegates to MemoryFunc or returns MockMemory.
func (m *MockProvider) Memory(ctx context.Context) (*MemStat, error) {
	if m.MemoryFunc != nil {
		return m.MemoryFunc(ctx)
	}
	return MockMemory(), nil
}

// FSSize delegates to FSSizeFunc or returns MockFS.
func (m *MockProvider) FSSize(ctx context.Context) ([]FSRecord, error) {
	if m.FSSizeFunc != nil {
		return m.FSSizeFunc(ctx)
	}
	return MockFS(), nil
}

// OSInfo delegates to OSInfoFunc or returns MockOS.
func (m *MockProvider) OSInfo(ctx context.Context) (*OSStat, error) {
	if m.OSInfoFunc != nil {
		return m.OSInfoFunc(ctx)
	}
	return MockOS(), nil
}

// CPUTemperature delegates to CPUTemperatureFunc or reports 52.5°C.
func (m *MockProvider) CPUTemperature(ctx context.Context) (float64, bool, error) {
	if m.CPUTemperatureFunc != nil {
		return m.CPUTemperatureFunc(ctx)
	}
	return 52.5, true, nil
}

// Time delegates to TimeFunc or succeeds immediately.
func (m *MockProvider) Time(ctx context.Context) error {
	if m.TimeFunc != nil {
		return m.TimeFunc(ctx)
	}
	return nil
}
