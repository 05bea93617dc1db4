// SPDX-License-Identifier: EPL-2.0

package notesynth

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/notesynth/analysis"
	"github.com/ik5/notesynth/audio"
	"github.com/ik5/notesynth/formats/aiff"
	"github.com/ik5/notesynth/formats/mp3"
	"github.com/ik5/notesynth/formats/vorbis"
	"github.com/ik5/notesynth/formats/wav"
	"github.com/ik5/notesynth/pitch"
	"github.com/ik5/notesynth/sequencer"
	"github.com/ik5/notesynth/song"
	"github.com/ik5/notesynth/utils"
)

// RenderBitDepth is the sample size of rendered files.
const RenderBitDepth = 16

// Compose builds the playback sequence for notes.
func Compose(notes []song.Note, opts ...sequencer.Option) (*audio.Sequence, error) {
	return sequencer.New(opts...).Compose(notes)
}

// Convert adapts src to a mono stream at rate. Sources already in that
// shape are returned as is.
func Convert(src audio.Source, rate int) audio.Source {
	if src.Channels() != 1 {
		src = audio.NewMonoMixer(src)
	}
	if rate > 0 && src.SampleRate() != rate {
		src = audio.NewResampler(src, rate)
	}
	return src
}

// encodeFunc is the shape shared by the wav and aiff encoders.
type encodeFunc func(w io.WriteSeeker, src audio.Source, bitDepth int) error

func render(enc encodeFunc, w io.WriteSeeker, notes []song.Note, rate int, opts []sequencer.Option) error {
	seq, err := Compose(notes, opts...)
	if err != nil {
		return err
	}

	src := Convert(seq, rate)
	defer src.Close()

	return enc(w, src, RenderBitDepth)
}

// RenderWAV writes notes to w as 16-bit mono WAV at rate. A rate of 0
// keeps the native 44100 Hz.
func RenderWAV(w io.WriteSeeker, notes []song.Note, rate int, opts ...sequencer.Option) error {
	return render(wav.Encode, w, notes, rate, opts)
}

// RenderAIFF is RenderWAV for AIFF output.
func RenderAIFF(w io.WriteSeeker, notes []song.Note, rate int, opts ...sequencer.Option) error {
	return render(aiff.Encode, w, notes, rate, opts)
}

// RenderFile writes notes to path, choosing the container from its
// extension (.wav, .aiff or .aif). A failed render removes the file.
func RenderFile(path string, notes []song.Note, rate int, opts ...sequencer.Option) (err error) {
	var enc encodeFunc
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "wav":
		enc = wav.Encode
	case "aiff", "aif":
		enc = aiff.Encode
	default:
		return fmt.Errorf("%w: %q", audio.ErrUnknownFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("%w", cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return render(enc, f, notes, rate, opts)
}

// ResampleToMono16 drains src into mono 16-bit PCM at targetRate, reading
// bufferSize samples at a time.
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	if targetRate <= 0 {
		targetRate = src.SampleRate()
	}

	samples, err := audio.ReadAll(Convert(src, targetRate), bufferSize)
	if err != nil {
		return nil, targetRate, err
	}

	pcm16 := make([]int16, len(samples))
	for i, x := range samples {
		pcm16[i] = utils.Float32ToInt16(x)
	}
	return pcm16, targetRate, nil
}

// NewRegistry returns a registry with every bundled decoder, keyed by file
// extension without the dot.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	return reg
}

// Report describes a decoded file.
type Report struct {
	audio.Stats

	// Dominant is the strongest frequency near the start of the file in Hz,
	// or 0 when it is silent or too short to tell.
	Dominant float64
}

// Note names the pitch closest to Dominant and its offset in cents.
func (r Report) Note() (pitch.Pitch, float64, error) {
	return pitch.Nearest(r.Dominant)
}

// Inspect decodes the file at path with the decoder registered for its
// extension and measures it as mono.
func Inspect(reg *audio.Registry, path string) (Report, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	dec, ok := reg.Get(ext)
	if !ok {
		return Report{}, fmt.Errorf("%w: %q", audio.ErrUnknownFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return Report{}, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	defer src.Close()

	window := analysis.NewWindow(audio.NewMonoMixer(src), analysis.MaxWindow)
	stats, err := audio.Measure(window)
	if err != nil {
		return Report{Stats: stats}, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	return Report{
		Stats:    stats,
		Dominant: analysis.DominantFrequency(window.Samples(), stats.SampleRate),
	}, nil
}
