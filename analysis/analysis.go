// SPDX-License-Identifier: EPL-2.0

// Package analysis estimates the pitch of rendered audio with an FFT from
// github.com/ktye/fft.
//
//	w := analysis.NewWindow(src, analysis.MaxWindow)
//	stats, _ := audio.Measure(w)
//	hz := analysis.DominantFrequency(w.Samples(), w.SampleRate())
package analysis

import (
	"math"
	"math/cmplx"

	"github.com/ktye/fft"
)

const (
	// MinWindow is the shortest input DominantFrequency will analyse.
	MinWindow = 256

	// MaxWindow caps the transform length, about 370 ms at 44.1 kHz.
	MaxWindow = 16384

	// silenceFloor is the bin magnitude below which a window counts as silent.
	silenceFloor = 1e-6
)

// WindowSize returns the largest power of two not above n, clamped to
// MaxWindow, or 0 when n is shorter than MinWindow.
func WindowSize(n int) int {
	if n < MinWindow {
		return 0
	}
	size := MinWindow
	for size*2 <= n && size*2 <= MaxWindow {
		size *= 2
	}
	return size
}

// DominantFrequency returns the strongest frequency in mono samples, in Hz.
// It returns 0 for silence or when there are too few samples.
func DominantFrequency(samples []float32, rate int) float64 {
	size := WindowSize(len(samples))
	if size == 0 || rate <= 0 {
		return 0
	}

	f, err := fft.New(size)
	if err != nil {
		return 0
	}

	// Hann window against leakage between neighbouring bins.
	buf := make([]complex128, size)
	for i := range buf {
		w := (1 - math.Cos(2*math.Pi*float64(i)/float64(size))) / 2
		buf[i] = complex(float64(samples[i])*w, 0)
	}
	buf = f.Transform(buf)

	peak, peakMag := 0, 0.0
	mags := make([]float64, size/2)
	for i := 1; i < size/2; i++ {
		mags[i] = cmplx.Abs(buf[i])
		if mags[i] > peakMag {
			peak, peakMag = i, mags[i]
		}
	}
	if peakMag < silenceFloor {
		return 0
	}

	// Parabolic interpolation over the peak and its neighbours.
	offset := 0.0
	if peak > 1 && peak < size/2-1 {
		a, b, c := mags[peak-1], mags[peak], mags[peak+1]
		if d := a - 2*b + c; d != 0 {
			offset = 0.5 * (a - c) / d
		}
	}

	return (float64(peak) + offset) * float64(rate) / float64(size)
}
