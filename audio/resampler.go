// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/notesynth/utils"
)

// Resampler converts src to another sample rate with Catmull-Rom
// interpolation, keeping the channel count. When downsampling, input frames
// go through a one-pole low-pass first to tame aliasing.
type Resampler struct {
	src      Source
	srcRate  int64
	dstRate  int
	channels int

	// window[1] and window[2] bracket the output position; real marks which
	// slots hold frames that came from src rather than edge padding.
	window [4][]float32
	real   [4]bool
	index  int64 // source frame held in window[1]
	out    int64 // output frames produced so far
	primed bool
	eof    bool

	frame      []float32
	lowpass    bool
	alpha      float32
	lowpassMem []float32
	warm       bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:        src,
		srcRate:    int64(src.SampleRate()),
		dstRate:    dstRate,
		channels:   channels,
		frame:      make([]float32, channels),
		lowpass:    src.SampleRate() > dstRate,
		alpha:      0.5,
		lowpassMem: make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame pulls one frame from src into r.frame. ok is false once src is
// exhausted.
func (r *Resampler) readFrame() (ok bool, err error) {
	if r.eof {
		return false, nil
	}

	got := 0
	for got < r.channels {
		n, err := r.src.ReadSamples(r.frame[got:])
		got += n

		if errors.Is(err, io.EOF) {
			r.eof = true
			break
		}
		if err != nil {
			return false, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}
	if got < r.channels {
		return false, nil
	}

	if r.lowpass {
		if !r.warm {
			// Start the filter on the first frame to avoid a ramp from zero.
			copy(r.lowpassMem, r.frame)
			r.warm = true
		}
		for c, v := range r.frame {
			r.lowpassMem[c] = r.alpha*v + (1-r.alpha)*r.lowpassMem[c]
			r.frame[c] = r.lowpassMem[c]
		}
	}

	return true, nil
}

// shift drops window[0] and loads the next frame into window[3], repeating
// the last frame once src runs out.
func (r *Resampler) shift() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	copy(r.real[:], r.real[1:])
	r.window[3] = first

	ok, err := r.readFrame()
	if err != nil {
		return err
	}

	if ok {
		copy(r.window[3], r.frame)
	} else {
		copy(r.window[3], r.window[2])
	}
	r.real[3] = ok

	return nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.readFrame()
	if err != nil || !ok {
		return err
	}
	copy(r.window[0], r.frame)
	copy(r.window[1], r.frame)
	r.real[1] = true

	for i := 2; i < 4; i++ {
		ok, err := r.readFrame()
		if err != nil {
			return err
		}
		if ok {
			copy(r.window[i], r.frame)
		} else {
			copy(r.window[i], r.window[i-1])
		}
		r.real[i] = ok
	}

	return nil
}

// ReadSamples produces samples at the destination rate.
// dst length should be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	dstRate := int64(r.dstRate)

	written := 0
	for written < len(dst) {
		// Output frame out sits at source position out*srcRate/dstRate.
		// Integer math keeps the position exact over long streams.
		num := r.out * r.srcRate
		for r.index < num/dstRate {
			if err := r.shift(); err != nil {
				return written, err
			}
			r.index++
		}

		if !r.real[1] {
			break
		}

		x := float32(float64(num%dstRate) / float64(dstRate))
		for c := range r.channels {
			dst[written+c] = utils.CubicInterpolate(
				r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}
		written += r.channels
		r.out++
	}

	if written == 0 && !r.real[1] {
		return 0, io.EOF
	}
	return written, nil
}
