// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloatToPCM(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    float32
		bitDepth int
		want     int
	}{
		{name: "zero 16-bit", input: 0, bitDepth: 16, want: 0},
		{name: "max positive 16-bit", input: 1, bitDepth: 16, want: math.MaxInt16},
		{name: "max negative 16-bit", input: -1, bitDepth: 16, want: -math.MaxInt16},
		{name: "half 16-bit", input: 0.5, bitDepth: 16, want: 16383},
		{name: "tone amplitude 16-bit", input: -0.5, bitDepth: 16, want: -16383},
		{name: "clamp over max", input: 1.5, bitDepth: 16, want: math.MaxInt16},
		{name: "clamp under min", input: -100, bitDepth: 16, want: -math.MaxInt16},
		{name: "max positive 8-bit", input: 1, bitDepth: 8, want: 127},
		{name: "max positive 24-bit", input: 1, bitDepth: 24, want: 8388607},
		{name: "unknown depth uses 16-bit", input: 1, bitDepth: 12, want: math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FloatToPCM(tt.input, tt.bitDepth)
			if diff := got - tt.want; diff > 1 || diff < -1 {
				t.Errorf("FloatToPCM(%v, %d) = %d, want %d", tt.input, tt.bitDepth, got, tt.want)
			}
		})
	}
}

func TestPCMToFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    int
		bitDepth int
		want     float32
	}{
		{name: "zero", input: 0, bitDepth: 16, want: 0},
		{name: "min 16-bit", input: math.MinInt16, bitDepth: 16, want: -1},
		{name: "half 16-bit", input: 16384, bitDepth: 16, want: 0.5},
		{name: "min 8-bit", input: -128, bitDepth: 8, want: -1},
		{name: "min 24-bit", input: -8388608, bitDepth: 24, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := PCMToFloat(tt.input, tt.bitDepth); got != tt.want {
				t.Errorf("PCMToFloat(%d, %d) = %v, want %v", tt.input, tt.bitDepth, got, tt.want)
			}
		})
	}
}

// TestPCMRoundTrip checks that a float survives conversion within one LSB.
func TestPCMRoundTrip(t *testing.T) {
	t.Parallel()

	for f := -1.0; f <= 1.0; f += 0.01 {
		back := PCMToFloat(FloatToPCM(float32(f), 16), 16)
		if diff := math.Abs(float64(back) - f); diff > 3.0/32768.0 {
			t.Errorf("round trip of %v = %v (diff %v)", f, back, diff)
		}
	}
}

func TestFloat32ToInt16Symmetry(t *testing.T) {
	t.Parallel()

	for _, val := range []float32{0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 1.0} {
		pos := Float32ToInt16(val)
		neg := Float32ToInt16(-val)

		if pos != -neg {
			t.Errorf("Float32ToInt16 not symmetric: +%v=%v, -%v=%v", val, pos, val, neg)
		}
	}
}

func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)
	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt16 not monotonic: f=%v gives %v, but previous was %v", f, curr, prev)
		}
		prev = curr
	}
}

func BenchmarkFloatToPCM(b *testing.B) {
	samples := make([]float32, 44100)
	out := make([]int, len(samples))
	for i := range samples {
		samples[i] = float32(0.5 * math.Sin(2*math.Pi*440*float64(i)/44100))
	}

	b.ResetTimer()
	b.ReportAllocs()
	for range b.N {
		for j, s := range samples {
			out[j] = FloatToPCM(s, 16)
		}
	}
}

func TestFloatToPCM_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = FloatToPCM(0.5, 16)
	})
	if allocs > 0 {
		t.Errorf("FloatToPCM allocated %v times, want 0", allocs)
	}
}
