package monitor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/sysbar/metrics"
	"gitlab.com/tinyland/lab/sysbar/statusbar"
)

// TestDetailSnapshot verifies the five fetches land in one snapshot.
func TestDetailSnapshot(t *testing.T) {
	bar := statusbar.NewBar()
	m := New(&metrics.MockProvider{}, newFakeHost(false, ""), bar, Options{})

	snap, err := m.DetailSnapshot(t.Context())
	if err != nil {
		t.Fatalf("DetailSnapshot: %v", err)
	}

	if snap.Load == nil || snap.Load.Current != 23.456 {
		t.Errorf("Load = %+v", snap.Load)
	}
	if snap.Memory == nil || snap.Memory.Total != 8589934592 {
		t.Errorf("Memory = %+v", snap.Memory)
	}
	if len(snap.Filesystems) != 1 {
		t.Errorf("Filesystems = %+v", snap.Filesystems)
	}
	if snap.OS == nil || snap.OS.Hostname != "devbox" {
		t.Errorf("OS = %+v", snap.OS)
	}
	if !snap.TemperatureOK || snap.Temperature != 52.5 {
		t.Errorf("Temperature = %f ok=%v", snap.Temperature, snap.TemperatureOK)
	}
	if snap.ResponseMS != ResponseUnknown {
		t.Errorf("ResponseMS = %f, want sentinel before any measurement", snap.ResponseMS)
	}
	if snap.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
}

// TestShowDetailAbortsOnFailure verifies the all-or-nothing policy: one
// failing fetch aborts the view and surfaces a single notification carrying
// the underlying message.
func TestShowDetailAbortsOnFailure(t *testing.T) {
	bar := statusbar.NewBar()
	host := newFakeHost(false, "")
	provider := &metrics.MockProvider{
		OSInfoFunc: func(ctx context.Context) (*metrics.OSStat, error) {
			return nil, errors.New("os identity unavailable")
		},
	}
	m := New(provider, host, bar, Options{})

	m.ShowDetail(t.Context())

	if host.detailCount() != 0 {
		t.Error("partial detail view shown despite fetch failure")
	}
	if host.errorCount() != 1 {
		t.Fatalf("errorCount = %d, want 1", host.errorCount())
	}
	host.mu.Lock()
	msg := host.errors[0]
	host.mu.Unlock()
	if !strings.Contains(msg, "os identity unavailable") {
		t.Errorf("notification %q lacks the underlying message", msg)
	}
}

// TestShowDetailSuccess verifies the modal receives the full block.
func TestShowDetailSuccess(t *testing.T) {
	bar := statusbar.NewBar()
	host := newFakeHost(false, "")
	m := New(&metrics.MockProvider{}, host, bar, Options{})

	m.ShowDetail(t.Context())

	if host.errorCount() != 0 {
		t.Fatalf("unexpected errors: %v", host.errors)
	}
	if host.detailCount() != 1 {
		t.Fatalf("detailCount = %d, want 1", host.detailCount())
	}
	host.mu.Lock()
	title, body := host.titles[0], host.details[0]
	host.mu.Unlock()

	if title != detailTitle {
		t.Errorf("title = %q, want %q", title, detailTitle)
	}
	for _, want := range []string{"CPU", "Memory", "Disk", "OS", "Response Time"} {
		if !strings.Contains(body, want) {
			t.Errorf("body lacks %q section:\n%s", want, body)
		}
	}
}

// TestRenderDetail verifies section contents for the mock snapshot.
func TestRenderDetail(t *testing.T) {
	snap := &DetailSnapshot{
		ResponseMS:    12.5,
		Load:          metrics.MockLoad(),
		Memory:        metrics.MockMemory(),
		Filesystems:   metrics.MockFS(),
		OS:            metrics.MockOS(),
		Temperature:   52.5,
		TemperatureOK: true,
	}

	body := renderDetail(snap)

	for _, want := range []string{
		"12.50ms",
		"Load: 23.5%",
		"User / System: 15.2% / 8.3%",
		"Cores: 4",
		"Temperature: 52.5°C",
		"Used: 4 GB / 8 GB (50.0%)",
		"Swap: 512 MB / 2 GB (25.0%)",
		"Used: 60.00 GiB / 100.00 GiB (60.0%)",
		"Mount: /",
		"Type: ext4",
		"Distribution: ubuntu",
		"Hostname: devbox",
		"Uptime: 1d 2h",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body lacks %q:\n%s", want, body)
		}
	}
}

// TestRenderDetailOptionalFields verifies the normal-condition rendering of
// absent temperature, zero swap, and an empty filesystem list.
func TestRenderDetailOptionalFields(t *testing.T) {
	mem := metrics.MockMemory()
	mem.SwapTotal = 0
	mem.SwapUsed = 0

	snap := &DetailSnapshot{
		ResponseMS:  ResponseUnknown,
		Load:        metrics.MockLoad(),
		Memory:      mem,
		Filesystems: nil,
		OS:          metrics.MockOS(),
	}

	body := renderDetail(snap)

	for _, want := range []string{
		"Response Time\n  N/A",
		"Temperature: N/A",
		"Swap: 0 Bytes / 0 Bytes (0.0%)",
		"Used: 0.00 GiB / 0.00 GiB (0.0%)",
		"Mount: N/A",
		"Type: N/A",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body lacks %q:\n%s", want, body)
		}
	}

	if strings.Contains(body, "NaN") {
		t.Errorf("body contains NaN:\n%s", body)
	}
}
