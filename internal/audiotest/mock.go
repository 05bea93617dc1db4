// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic sources for tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates frames from a waveform function.
// It satisfies audio.Source without importing it, so any package can use it.
type MockSource struct {
	sampleRate int
	channels   int
	total      int // frames
	generated  int // frames
	waveform   func(frame int, channel int) float32

	failAt   int // frame index at which ReadSamples fails; <0 disables
	failErr  error
	closed   int
	closeErr error
}

// NewMockSource creates a source of total frames.
func NewMockSource(sampleRate, channels, total int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		total:      total,
		waveform:   waveform,
		failAt:     -1,
	}
}

// NewSilentSource generates zeros.
func NewSilentSource(sampleRate, channels, total int) *MockSource {
	return NewConstantSource(sampleRate, channels, total, 0)
}

// NewConstantSource repeats value on every channel.
func NewConstantSource(sampleRate, channels, total int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, total, func(int, int) float32 { return value })
}

// NewSineSource generates a full-scale sine wave on every channel.
func NewSineSource(sampleRate, channels, total int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, total, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewRampSource returns frame index as the sample value, which makes
// ordering visible in tests.
func NewRampSource(sampleRate, channels, total int, offset float32) *MockSource {
	return NewMockSource(sampleRate, channels, total, func(frame int, _ int) float32 {
		return offset + float32(frame)
	})
}

// FailAt makes ReadSamples return err once frame has been reached.
func (m *MockSource) FailAt(frame int, err error) *MockSource {
	m.failAt = frame
	m.failErr = err
	return m
}

// FailClose makes Close return err.
func (m *MockSource) FailClose(err error) *MockSource {
	m.closeErr = err
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Len() int        { return m.total }

func (m *MockSource) Close() error {
	m.closed++
	return m.closeErr
}

// Closed reports how many times Close was called.
func (m *MockSource) Closed() int { return m.closed }

// Reset rewinds the source.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAt >= 0 && m.generated >= m.failAt {
		return 0, m.failErr
	}
	if m.generated >= m.total {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.total-m.generated)
	if m.failAt >= 0 {
		frames = min(frames, m.failAt-m.generated)
	}

	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += frames

	return frames * m.channels, nil
}
