package monitor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"gitlab.com/tinyland/lab/sysbar/internal/format"
	"gitlab.com/tinyland/lab/sysbar/metrics"
)

// detailTitle heads the on-demand detail view.
const detailTitle = "System Status"

// DetailSnapshot is the richer one-shot sample behind the detail view. It is
// JSON-serializable for the -json output mode.
type DetailSnapshot struct {
	// ResponseMS is the shared last-known response time; the
	// ResponseUnknown sentinel marks an unmeasured value.
	ResponseMS float64 `json:"response_ms"`

	Load        *metrics.LoadStat  `json:"load"`
	Memory      *metrics.MemStat   `json:"memory"`
	Filesystems []metrics.FSRecord `json:"filesystems"`
	OS          *metrics.OSStat    `json:"os"`

	Temperature   float64 `json:"temperature"`
	TemperatureOK bool    `json:"temperature_ok"`

	Timestamp time.Time `json:"timestamp"`
}

// DetailSnapshot gathers the five detail metrics concurrently. Any fetch
// failure fails the whole snapshot; no partial result is returned.
func (m *Monitor) DetailSnapshot(ctx context.Context) (*DetailSnapshot, error) {
	snap := &DetailSnapshot{}

	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		snap.Load, err = m.provider.CurrentLoad(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Memory, err = m.provider.Memory(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Filesystems, err = m.provider.FSSize(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.OS, err = m.provider.OSInfo(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Temperature, snap.TemperatureOK, err = m.provider.CPUTemperature(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("monitor: detail snapshot: %w", err)
	}

	snap.ResponseMS = m.LastResponseMS()
	snap.Timestamp = time.Now()
	return snap, nil
}

// ShowDetail gathers a detail snapshot and presents it through the host's
// modal view. On any fetch failure the whole action is aborted and a single
// error notification carries the underlying message.
func (m *Monitor) ShowDetail(ctx context.Context) {
	snap, err := m.DetailSnapshot(ctx)
	if err != nil {
		m.logger.Error("detail view failed", "error", err)
		m.host.ShowError(err.Error())
		return
	}
	m.host.ShowDetail(detailTitle, renderDetail(snap))
}

// renderDetail formats a snapshot as the five-section detail block.
// The disk section reports the first filesystem record; which volume that is
// depends entirely on provider ordering.
func renderDetail(s *DetailSnapshot) string {
	var b strings.Builder

	b.WriteString("Response Time\n")
	fmt.Fprintf(&b, "  %s\n", format.LatencyMS(s.ResponseMS))

	b.WriteString("\nCPU\n")
	fmt.Fprintf(&b, "  Load: %s\n", format.Percent1(s.Load.Current))
	fmt.Fprintf(&b, "  User / System: %s / %s\n", format.Percent1(s.Load.User), format.Percent1(s.Load.System))
	fmt.Fprintf(&b, "  Cores: %d\n", s.Load.Cores)
	fmt.Fprintf(&b, "  Load average: %.2f\n", s.Load.Avg)
	if s.TemperatureOK {
		fmt.Fprintf(&b, "  Temperature: %.1f°C\n", s.Temperature)
	} else {
		b.WriteString("  Temperature: N/A\n")
	}

	b.WriteString("\nMemory\n")
	fmt.Fprintf(&b, "  Used: %s / %s (%s)\n",
		format.Bytes(s.Memory.Used), format.Bytes(s.Memory.Total), format.Percent1(s.Memory.UsedPercent()))
	fmt.Fprintf(&b, "  Active: %s\n", format.Bytes(s.Memory.Active))
	fmt.Fprintf(&b, "  Available: %s\n", format.Bytes(s.Memory.Available))
	fmt.Fprintf(&b, "  Free: %s\n", format.Bytes(s.Memory.Free))
	fmt.Fprintf(&b, "  Cached: %s\n", format.Bytes(s.Memory.Cached))
	fmt.Fprintf(&b, "  Buffers: %s\n", format.Bytes(s.Memory.Buffers))
	fmt.Fprintf(&b, "  Swap: %s / %s (%s)\n",
		format.Bytes(s.Memory.SwapUsed), format.Bytes(s.Memory.SwapTotal), format.Percent1(s.Memory.SwapPercent()))

	b.WriteString("\nDisk\n")
	if len(s.Filesystems) > 0 {
		first := s.Filesystems[0]
		fmt.Fprintf(&b, "  Used: %s / %s (%s)\n",
			format.GiB(first.Used), format.GiB(first.Size), format.Percent1(first.UsePercent))
		fmt.Fprintf(&b, "  Mount: %s\n", first.Mount)
		fmt.Fprintf(&b, "  Type: %s\n", first.Type)
	} else {
		fmt.Fprintf(&b, "  Used: %s / %s (%s)\n", format.GiB(0), format.GiB(0), format.Percent1(0))
		b.WriteString("  Mount: N/A\n")
		b.WriteString("  Type: N/A\n")
	}

	b.WriteString("\nOS\n")
	fmt.Fprintf(&b, "  Platform: %s\n", s.OS.Platform)
	fmt.Fprintf(&b, "  Distribution: %s\n", s.OS.Distro)
	fmt.Fprintf(&b, "  Release: %s\n", s.OS.Release)
	fmt.Fprintf(&b, "  Kernel: %s\n", s.OS.Kernel)
	fmt.Fprintf(&b, "  Architecture: %s\n", s.OS.Arch)
	fmt.Fprintf(&b, "  Hostname: %s\n", s.OS.Hostname)
	fmt.Fprintf(&b, "  Uptime: %s", format.Duration(time.Duration(s.OS.UptimeSec)*time.Second))

	return b.String()
}
