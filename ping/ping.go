// Package ping measures network latency by shelling out to the OS ping
// utility and parsing its platform-specific summary output. It is an
// alternative probe kept alongside the stat-based latency measurement; the
// startup sequence does not wire it in.
package ping

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"regexp"
	"runtime"
	"strconv"
)

// pingCount is the number of echo requests per measurement.
const pingCount = "3"

// Output parsers per platform family. Both are best-effort: ping output
// wording varies across versions and locales.
var (
	// unixAvgRe matches the round-trip summary line,
	// e.g. "round-trip min/avg/max/stddev = 0.053/0.067/0.084/0.013 ms".
	unixAvgRe = regexp.MustCompile(`= [\d.]+/([\d.]+)/`)

	// windowsAvgRe matches "Average = 12ms".
	windowsAvgRe = regexp.MustCompile(`Average = (\d+)ms`)
)

// Latency pings the given host and returns the average round-trip time in
// milliseconds. Failures are logged and returned; callers treat them as
// non-user-facing.
func Latency(ctx context.Context, host string, logger *slog.Logger) (float64, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	name, args := pingArgs(runtime.GOOS, host)
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		logger.Debug("ping command failed", "host", host, "error", err)
		return 0, fmt.Errorf("ping: run %s: %w", host, err)
	}

	ms, err := parseOutput(runtime.GOOS, string(out))
	if err != nil {
		logger.Debug("ping output unparsable", "host", host, "error", err)
		return 0, err
	}
	return ms, nil
}

// pingArgs returns the ping invocation for the platform.
func pingArgs(goos, host string) (string, []string) {
	if goos == "windows" {
		return "ping", []string{"-n", pingCount, host}
	}
	return "ping", []string{"-c", pingCount, host}
}

// parseOutput extracts the average round-trip time from ping output.
func parseOutput(goos, out string) (float64, error) {
	var re *regexp.Regexp
	if goos == "windows" {
		re = windowsAvgRe
	} else {
		re = unixAvgRe
	}

	match := re.FindStringSubmatch(out)
	if match == nil {
		return 0, fmt.Errorf("ping: no average in output")
	}

	ms, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, fmt.Errorf("ping: parse average %q: %w", match[1], err)
	}
	return ms, nil
}
