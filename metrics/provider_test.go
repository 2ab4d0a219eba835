package metrics

import (
	"math"
	"testing"
)

// TestMemStatUsedPercent verifies used/total percentage derivation.
func TestMemStatUsedPercent(t *testing.T) {
	tests := []struct {
		name string
		mem  MemStat
		want float64
	}{
		{
			name: "half used",
			mem:  MemStat{Total: 8589934592, Used: 4294967296},
			want: 50,
		},
		{
			name: "zero total yields zero",
			mem:  MemStat{Total: 0, Used: 123},
			want: 0,
		},
		{
			name: "fully used",
			mem:  MemStat{Total: 1024, Used: 1024},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.mem.UsedPercent()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("UsedPercent() = %f, want %f", got, tt.want)
			}
		})
	}
}

// TestMemStatSwapPercent verifies the zero-swap guard: swap total 0 must
// yield 0, never NaN.
func TestMemStatSwapPercent(t *testing.T) {
	noSwap := MemStat{SwapTotal: 0, SwapUsed: 0}
	got := noSwap.SwapPercent()
	if math.IsNaN(got) {
		t.Fatal("SwapPercent() = NaN for zero swap total")
	}
	if got != 0 {
		t.Errorf("SwapPercent() = %f, want 0", got)
	}

	withSwap := MemStat{SwapTotal: 2147483648, SwapUsed: 536870912}
	if got := withSwap.SwapPercent(); math.Abs(got-25) > 1e-9 {
		t.Errorf("SwapPercent() = %f, want 25", got)
	}
}

// TestClampPct verifies percentage clamping bounds.
func TestClampPct(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-5, 0},
		{0, 0},
		{50, 50},
		{100, 100},
		{104.2, 100},
	}

	for _, tt := range tests {
		if got := clampPct(tt.in); got != tt.want {
			t.Errorf("clampPct(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

// TestMockProviderDefaults verifies nil function fields fall back to the
// canned snapshots.
func TestMockProviderDefaults(t *testing.T) {
	p := &MockProvider{}
	ctx := t.Context()

	loadStat, err := p.CurrentLoad(ctx)
	if err != nil {
		t.Fatalf("CurrentLoad: %v", err)
	}
	if loadStat.Current != 23.456 {
		t.Errorf("Current = %f, want 23.456", loadStat.Current)
	}

	memStat, err := p.Memory(ctx)
	if err != nil {
		t.Fatalf("Memory: %v", err)
	}
	if pct := memStat.UsedPercent(); math.Abs(pct-50) > 1e-9 {
		t.Errorf("UsedPercent = %f, want 50", pct)
	}

	fs, err := p.FSSize(ctx)
	if err != nil {
		t.Fatalf("FSSize: %v", err)
	}
	if len(fs) != 1 || fs[0].Mount != "/" {
		t.Errorf("FSSize = %+v, want single root record", fs)
	}

	temp, ok, err := p.CPUTemperature(ctx)
	if err != nil || !ok {
		t.Fatalf("CPUTemperature: ok=%v err=%v", ok, err)
	}
	if temp != 52.5 {
		t.Errorf("temp = %f, want 52.5", temp)
	}

	if err := p.Time(ctx); err != nil {
		t.Errorf("Time: %v", err)
	}
}
