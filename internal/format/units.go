// Package format provides shared value formatting for slot text, tooltips,
// and the detail view.
package format

import (
	"fmt"
	"math"
	"strconv"
)

// byteUnits are the supported byte units, largest-first selection by
// powers of 1024.
var byteUnits = [...]string{"Bytes", "KB", "MB", "GB", "TB"}

// Bytes renders a byte count using the largest unit in which the value is
// at least 1, rounded to two decimals with trailing zeros trimmed.
// Zero bytes render as the literal "0 Bytes".
func Bytes(n uint64) string {
	if n == 0 {
		return "0 Bytes"
	}

	i := int(math.Floor(math.Log(float64(n)) / math.Log(1024)))
	if i < 0 {
		i = 0
	}
	if i >= len(byteUnits) {
		i = len(byteUnits) - 1
	}

	v := float64(n) / math.Pow(1024, float64(i))
	v = math.Round(v*100) / 100

	return strconv.FormatFloat(v, 'f', -1, 64) + " " + byteUnits[i]
}

// Percent1 renders a percentage with one decimal place ("23.5%").
func Percent1(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// LatencyMS renders a millisecond latency with two decimals ("20.00ms").
// Negative values are the unmeasured sentinel and render as "N/A".
func LatencyMS(ms float64) string {
	if ms < 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2fms", ms)
}

// GiB renders a byte count in GiB with two decimals for the detail view's
// disk section.
func GiB(n uint64) string {
	return fmt.Sprintf("%.2f GiB", float64(n)/(1<<30))
}
