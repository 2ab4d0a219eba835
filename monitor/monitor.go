// Package monitor implements the periodic metrics sampling and presentation
// pipeline: four status-bar slots refreshed on a fixed cadence, an on-demand
// detail view, and an environment-dependent remote-latency probe.
package monitor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"gitlab.com/tinyland/lab/sysbar/internal/format"
	"gitlab.com/tinyland/lab/sysbar/metrics"
	"gitlab.com/tinyland/lab/sysbar/statusbar"
)

const (
	// DefaultSampleInterval is the cadence of the periodic sampler.
	DefaultSampleInterval = 2000 * time.Millisecond

	// DefaultLatencyInterval is the cadence of the remote-latency probe.
	DefaultLatencyInterval = 30000 * time.Millisecond

	// DefaultProbePause separates the two remote round-trip probes.
	DefaultProbePause = 10 * time.Millisecond

	// DefaultProbePath is the path the remote probe stats.
	DefaultProbePath = "/"
)

// ResponseUnknown is the last-response-time sentinel written when the
// latency probe fails. Formatting renders it as "N/A".
const ResponseUnknown = -1.0

// DetailCommand is the command identifier bound to all four slots.
const DetailCommand = "sysbar.showDetails"

// Slot identifiers, in display order.
const (
	slotResponse = "response"
	slotCPU      = "cpu"
	slotMemory   = "memory"
	slotDisk     = "disk"
)

// Slot glyph prefixes.
const (
	glyphResponse = "⏱"
	glyphCPU      = "⚙"
	glyphMemory   = "▤"
	glyphDisk     = "◧"
)

// errorIndicator is the uniform text shown on all four slots when any fetch
// of a sampling pass fails.
const errorIndicator = "Error"

// unmeasurableIndicator is the distinct text shown on the response slot when
// the remote-latency probe fails. It never appears on the other slots.
const unmeasurableIndicator = glyphResponse + " ?ms"

// Options configures a Monitor. Zero values fall back to the defaults above.
type Options struct {
	SampleInterval  time.Duration
	LatencyInterval time.Duration
	ProbePause      time.Duration
	ProbePath       string
	Logger          *slog.Logger
}

// Monitor owns the four display slots and both sampling paths. It is
// constructed once per process; Start and Stop bracket its lifetime.
//
// Sampling passes are fire-and-forget: a new tick fires on schedule whether
// or not the previous pass completed, and overlapping passes resolve by
// last-writer-wins on the slots.
type Monitor struct {
	provider metrics.Provider
	host     statusbar.Host
	logger   *slog.Logger

	sampleInterval  time.Duration
	latencyInterval time.Duration
	probePause      time.Duration
	probePath       string

	respSlot *statusbar.Slot
	cpuSlot  *statusbar.Slot
	memSlot  *statusbar.Slot
	diskSlot *statusbar.Slot

	// remote and remoteLabel are fixed at construction from the host's
	// environment identity and never re-evaluated.
	remote      bool
	remoteLabel string

	// mu guards lastResponseMS, the only scalar shared between the two
	// sampling paths and the detail view.
	mu             sync.Mutex
	lastResponseMS float64

	// Injectable clock and sleep for deterministic latency tests.
	now   func() time.Time
	pause func(time.Duration)

	startMu sync.Mutex
	stop    chan struct{}
}

// New creates a Monitor, adds its four slots to the bar, registers the
// detail-view command on the host, and fixes the remote mode flag. The
// response slot starts hidden when the environment is local.
func New(provider metrics.Provider, host statusbar.Host, bar *statusbar.Bar, opts Options) *Monitor {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := &Monitor{
		provider:        provider,
		host:            host,
		logger:          logger,
		sampleInterval:  opts.SampleInterval,
		latencyInterval: opts.LatencyInterval,
		probePause:      opts.ProbePause,
		probePath:       opts.ProbePath,
		lastResponseMS:  ResponseUnknown,
		now:             time.Now,
		pause:           time.Sleep,
	}
	if m.sampleInterval <= 0 {
		m.sampleInterval = DefaultSampleInterval
	}
	if m.latencyInterval <= 0 {
		m.latencyInterval = DefaultLatencyInterval
	}
	if m.probePause <= 0 {
		m.probePause = DefaultProbePause
	}
	if m.probePath == "" {
		m.probePath = DefaultProbePath
	}

	m.respSlot = bar.Add(slotResponse, DetailCommand)
	m.cpuSlot = bar.Add(slotCPU, DetailCommand)
	m.memSlot = bar.Add(slotMemory, DetailCommand)
	m.diskSlot = bar.Add(slotDisk, DetailCommand)

	m.remoteLabel, m.remote = host.RemoteKind()
	if m.remote {
		// The remote prober owns the response slot; until its first
		// run the slot shows the unmeasured state.
		m.respSlot.SetText(unmeasurableIndicator)
	} else if m.remoteLabel == "" {
		m.remoteLabel = "local"
	}

	host.RegisterCommand(DetailCommand, func() {
		// Detail fetches run outside the UI loop; failures surface
		// through the host's error notification.
		go m.ShowDetail(context.Background())
	})

	return m
}

// Remote reports the mode fixed at construction.
func (m *Monitor) Remote() (label string, remote bool) {
	return m.remoteLabel, m.remote
}

// LastResponseMS returns the shared last-known response time in
// milliseconds, or the ResponseUnknown sentinel.
func (m *Monitor) LastResponseMS() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastResponseMS
}

func (m *Monitor) setLastResponseMS(ms float64) {
	m.mu.Lock()
	m.lastResponseMS = ms
	m.mu.Unlock()
}

// Start launches the periodic sampler and, in remote mode, the latency
// prober. In local mode the response slot is hidden and the latency timer is
// never created. Start is idempotent while running.
func (m *Monitor) Start(ctx context.Context) {
	m.startMu.Lock()
	defer m.startMu.Unlock()
	if m.stop != nil {
		return
	}
	m.stop = make(chan struct{})
	stop := m.stop

	if !m.remote {
		m.respSlot.Hide()
	}

	go func() {
		ticker := time.NewTicker(m.sampleInterval)
		defer ticker.Stop()

		go m.Sample(ctx)
		for {
			select {
			case <-stop:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				go m.Sample(ctx)
			}
		}
	}()

	if m.remote {
		go func() {
			ticker := time.NewTicker(m.latencyInterval)
			defer ticker.Stop()

			go m.ProbeLatency(ctx)
			for {
				select {
				case <-stop:
					return
				case <-ctx.Done():
					return
				case <-ticker.C:
					go m.ProbeLatency(ctx)
				}
			}
		}()
	}

	m.logger.Info("monitor started",
		"sample_interval", m.sampleInterval,
		"remote", m.remote,
		"remote_label", m.remoteLabel,
	)
}

// Stop clears both timers. In-flight sampling passes finish on their own;
// once the caller disposes the slots their late writes become no-ops.
func (m *Monitor) Stop() {
	m.startMu.Lock()
	defer m.startMu.Unlock()
	if m.stop == nil {
		return
	}
	close(m.stop)
	m.stop = nil
	m.logger.Info("monitor stopped")
}

// Sample performs one sampling pass: in local mode it measures the response
// probe and fetches CPU, memory, and filesystem usage concurrently; in
// remote mode the response slot belongs to the latency prober and only the
// three metric fetches run. If any fetch fails, no partial data is shown:
// all four slots are set to the uniform error indicator.
func (m *Monitor) Sample(ctx context.Context) {
	var (
		loadStat *metrics.LoadStat
		memStat  *metrics.MemStat
		fs       []metrics.FSRecord
		probe    time.Duration
	)

	g := new(errgroup.Group)
	if !m.remote {
		g.Go(func() error {
			start := m.now()
			if err := m.provider.Time(ctx); err != nil {
				return err
			}
			probe = m.now().Sub(start)
			return nil
		})
	}
	g.Go(func() error {
		var err error
		loadStat, err = m.provider.CurrentLoad(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		memStat, err = m.provider.Memory(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		fs, err = m.provider.FSSize(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		m.logger.Error("sampling pass failed", "error", err)
		m.setAllError(err)
		return
	}

	if !m.remote {
		ms := float64(probe.Microseconds()) / 1000
		m.setLastResponseMS(ms)
		m.respSlot.Set(
			glyphResponse+" "+format.LatencyMS(ms),
			"Response time ("+m.remoteLabel+")\nProbe: "+format.LatencyMS(ms),
		)
	}

	m.cpuSlot.Set(glyphCPU+" "+format.Percent1(loadStat.Current), cpuTooltip(loadStat))
	m.memSlot.Set(glyphMemory+" "+format.Percent1(memStat.UsedPercent()), memTooltip(memStat))

	diskPct := 0.0
	if len(fs) > 0 {
		diskPct = fs[0].UsePercent
	}
	m.diskSlot.Set(glyphDisk+" "+format.Percent1(diskPct), diskTooltip(fs))
}

// setAllError puts the uniform error indicator on all four slots. The
// underlying message goes to the tooltips only.
func (m *Monitor) setAllError(err error) {
	tooltip := fmt.Sprintf("Sampling failed: %v", err)
	for _, s := range []*statusbar.Slot{m.respSlot, m.cpuSlot, m.memSlot, m.diskSlot} {
		s.Set(errorIndicator, tooltip)
	}
}

func cpuTooltip(l *metrics.LoadStat) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CPU load: %s\n", format.Percent1(l.Current))
	fmt.Fprintf(&b, "User: %s / System: %s\n", format.Percent1(l.User), format.Percent1(l.System))
	fmt.Fprintf(&b, "Cores: %d\n", l.Cores)
	fmt.Fprintf(&b, "Load average: %.2f", l.Avg)
	return b.String()
}

func memTooltip(mem *metrics.MemStat) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Memory: %s / %s (%s)\n",
		format.Bytes(mem.Used), format.Bytes(mem.Total), format.Percent1(mem.UsedPercent()))
	fmt.Fprintf(&b, "Available: %s\n", format.Bytes(mem.Available))
	fmt.Fprintf(&b, "Swap: %s / %s (%s)",
		format.Bytes(mem.SwapUsed), format.Bytes(mem.SwapTotal), format.Percent1(mem.SwapPercent()))
	return b.String()
}

func diskTooltip(fs []metrics.FSRecord) string {
	if len(fs) == 0 {
		return "No filesystems reported"
	}
	first := fs[0]
	var b strings.Builder
	fmt.Fprintf(&b, "Disk: %s (%s)\n", first.Mount, first.Type)
	fmt.Fprintf(&b, "Used: %s / %s (%s)",
		format.Bytes(first.Used), format.Bytes(first.Size), format.Percent1(first.UsePercent))
	return b.String()
}
