// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"io"
	"strings"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/notesynth/internal/audiotest"
	"github.com/ik5/notesynth/utils"
)

// fakeReader hands out data in PCMBuffer-sized pieces.
type fakeReader struct {
	data []int
	pos  int
	err  error
}

func (f *fakeReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := copy(buf.Data, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	dec := &fakeReader{data: []int{0, 16384, -16384, 32767, -32768}}
	src := NewSource(dec, &goaudio.Format{NumChannels: 1, SampleRate: 8000}, 16, 5)

	if src.SampleRate() != 8000 || src.Channels() != 1 || src.Len() != 5 || src.BitDepth() != 16 {
		t.Errorf("metadata = %d Hz/%d ch/%d frames/%d bit", src.SampleRate(), src.Channels(), src.Len(), src.BitDepth())
	}

	buf := make([]float32, 3)
	n, err := src.ReadSamples(buf)
	if n != 3 || err != nil {
		t.Fatalf("ReadSamples() = %d, %v; want 3, nil", n, err)
	}
	if buf[0] != 0 || buf[1] != 0.5 || buf[2] != -0.5 {
		t.Errorf("samples = %v, want [0 0.5 -0.5]", buf)
	}

	n, err = src.ReadSamples(buf)
	if n != 2 || err != nil {
		t.Fatalf("ReadSamples() = %d, %v; want 2, nil", n, err)
	}
	if buf[1] != -1 {
		t.Errorf("min sample = %v, want -1", buf[1])
	}

	n, err = src.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() at end = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestSource_DecoderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt chunk")
	src := NewSource(&fakeReader{err: boom}, &goaudio.Format{NumChannels: 2, SampleRate: 44100}, 16, 0)

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	src := NewSource(&fakeReader{data: []int{1}}, &goaudio.Format{NumChannels: 1, SampleRate: 8000}, 16, 1)
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestSeekable(t *testing.T) {
	t.Parallel()

	rs, err := Seekable(io.MultiReader(strings.NewReader("RIFF"), strings.NewReader("WAVE")))
	if err != nil {
		t.Fatalf("Seekable() error = %v", err)
	}

	if _, err := rs.Seek(4, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	rest, _ := io.ReadAll(rs)
	if string(rest) != "WAVE" {
		t.Errorf("after seek read %q, want %q", rest, "WAVE")
	}

	already := strings.NewReader("x")
	if got, _ := Seekable(already); got != io.ReadSeeker(already) {
		t.Error("Seekable() did not pass through an io.ReadSeeker")
	}
}

func TestSource_DecoderEOF(t *testing.T) {
	t.Parallel()

	src := NewSource(&fakeReader{err: io.EOF}, &goaudio.Format{NumChannels: 1, SampleRate: 8000}, 16, 0)

	if n, err := src.ReadSamples(make([]float32, 4)); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = %d, %v; want 0, io.EOF", n, err)
	}
}

type captureWriter struct {
	data   []int
	writes int
	err    error
}

func (c *captureWriter) Write(buf *goaudio.IntBuffer) error {
	if c.err != nil {
		return c.err
	}
	c.writes++
	c.data = append(c.data, buf.Data...)
	return nil
}

func TestDrain(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 2, 5000, 0.5)
	w := &captureWriter{}

	if err := Drain(w, src, 16); err != nil {
		t.Fatalf("Drain() error = %v", err)
	}
	if len(w.data) != 10000 {
		t.Fatalf("wrote %d samples, want 10000", len(w.data))
	}
	if w.writes < 2 {
		t.Errorf("writes = %d, want several chunks", w.writes)
	}
	if w.data[0] != utils.FloatToPCM(0.5, 16) {
		t.Errorf("first sample = %d, want %d", w.data[0], utils.FloatToPCM(0.5, 16))
	}
}

func TestDrain_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	t.Run("source", func(t *testing.T) {
		t.Parallel()

		src := audiotest.NewSilentSource(8000, 1, 100).FailAt(0, boom)
		if err := Drain(&captureWriter{}, src, 16); !errors.Is(err, boom) {
			t.Errorf("Drain() error = %v, want %v", err, boom)
		}
	})

	t.Run("writer", func(t *testing.T) {
		t.Parallel()

		src := audiotest.NewSilentSource(8000, 1, 100)
		if err := Drain(&captureWriter{err: boom}, src, 16); !errors.Is(err, boom) {
			t.Errorf("Drain() error = %v, want %v", err, boom)
		}
	})
}
