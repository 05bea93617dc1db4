// SPDX-License-Identifier: EPL-2.0

package player

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/ik5/notesynth/audio"
)

// DefaultBuffer is the speaker latency used when none is configured.
const DefaultBuffer = 100 * time.Millisecond

// output is the slice of the beep speaker that Player drives.
type output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Clear()
	Close()
}

type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, n int) error { return speaker.Init(rate, n) }
func (speakerOutput) Play(s ...beep.Streamer)                { speaker.Play(s...) }
func (speakerOutput) Clear()                                 { speaker.Clear() }
func (speakerOutput) Close()                                 { speaker.Close() }

// Player writes sources to the default audio device.
type Player struct {
	rate   beep.SampleRate
	buffer time.Duration
	logger *slog.Logger
	out    output

	mu     sync.Mutex
	opened bool
}

type Option func(*Player)

// WithSampleRate sets the device rate. Sources at other rates are resampled.
func WithSampleRate(rate int) Option {
	return func(p *Player) {
		if rate > 0 {
			p.rate = beep.SampleRate(rate)
		}
	}
}

func WithBuffer(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.buffer = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Player) {
		if l != nil {
			p.logger = l
		}
	}
}

func New(opts ...Option) *Player {
	p := &Player{
		rate:   beep.SampleRate(audio.SampleRate),
		buffer: DefaultBuffer,
		logger: slog.New(slog.DiscardHandler),
		out:    speakerOutput{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Player) open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.opened {
		return nil
	}

	n := p.rate.N(p.buffer)
	if err := p.out.Init(p.rate, n); err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}
	p.logger.Debug("speaker ready", "rate", int(p.rate), "buffer", p.buffer, "frames", n)
	p.opened = true
	return nil
}

// Play queues src on the device and blocks until it has played out or ctx
// is done. src is closed before Play returns.
func (p *Player) Play(ctx context.Context, src audio.Source) error {
	if err := p.open(); err != nil {
		return err
	}
	defer src.Close()

	var stream audio.Source = src
	if src.SampleRate() != int(p.rate) {
		p.logger.Debug("resampling for device", "from", src.SampleRate(), "to", int(p.rate))
		stream = audio.NewResampler(src, int(p.rate))
	}

	st := NewStreamer(stream)
	done := make(chan struct{})
	p.out.Play(beep.Seq(st, beep.Callback(func() { close(done) })))

	start := time.Now()
	select {
	case <-done:
	case <-ctx.Done():
		p.out.Clear()
		p.logger.Debug("playback cancelled", "after", time.Since(start))
		return ctx.Err()
	}

	if err := st.Err(); err != nil {
		return fmt.Errorf("playback: %w", err)
	}

	// The callback fires once the last samples are queued; the device
	// still holds up to one buffer of them.
	tail := time.NewTimer(p.buffer)
	defer tail.Stop()
	select {
	case <-tail.C:
	case <-ctx.Done():
		p.out.Clear()
		return ctx.Err()
	}
	p.logger.Debug("playback finished", "elapsed", time.Since(start))
	return nil
}

// Close releases the device. The Player can be reopened by another Play.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.opened {
		p.out.Close()
		p.opened = false
	}
	return nil
}
