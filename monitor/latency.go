package monitor

import (
	"context"
	"fmt"

	"gitlab.com/tinyland/lab/sysbar/internal/format"
)

// ProbeLatency measures the round-trip latency to the remote backend by
// timing two sequential file-metadata probes separated by a fixed pause, and
// halving the combined probe time for a one-way estimate. On success it
// updates the response slot and the shared last-known response time; on
// failure it shows the distinct unmeasurable indicator and writes the
// sentinel, leaving the other three slots untouched.
func (m *Monitor) ProbeLatency(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	start := m.now()
	if err := m.host.StatPath(m.probePath); err != nil {
		m.latencyFailed(err)
		return
	}
	first := m.now().Sub(start)

	m.pause(m.probePause)

	start = m.now()
	if err := m.host.StatPath(m.probePath); err != nil {
		m.latencyFailed(err)
		return
	}
	second := m.now().Sub(start)

	oneWay := float64((first + second).Microseconds()) / 1000 / 2
	m.setLastResponseMS(oneWay)

	text := glyphResponse + " " + format.LatencyMS(oneWay)
	tooltip := fmt.Sprintf("Remote latency (%s)\nOne-way estimate: %s", m.remoteLabel, format.LatencyMS(oneWay))
	m.respSlot.Set(text, tooltip)

	m.logger.Debug("latency probe complete",
		"one_way_ms", oneWay,
		"remote", m.remoteLabel,
	)
}

// latencyFailed isolates a probe failure to the response slot.
func (m *Monitor) latencyFailed(err error) {
	m.logger.Warn("latency probe failed", "error", err)
	m.setLastResponseMS(ResponseUnknown)
	m.respSlot.Set(
		unmeasurableIndicator,
		fmt.Sprintf("Remote latency (%s)\nProbe failed: %v", m.remoteLabel, err),
	)
}
