// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/ik5/notesynth/internal/audiotest"
)

func TestSequence_PreservesOrder(t *testing.T) {
	t.Parallel()

	first := audiotest.NewRampSource(8000, 1, 5, 0)
	second := audiotest.NewRampSource(8000, 1, 3, 100)
	third := audiotest.NewRampSource(8000, 1, 4, 200)

	seq, err := NewSequence(first, second, third)
	if err != nil {
		t.Fatalf("NewSequence() error = %v", err)
	}

	got, err := ReadAll(seq, 4)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	want := []float32{0, 1, 2, 3, 4, 100, 101, 102, 200, 201, 202, 203}
	if len(got) != len(want) {
		t.Fatalf("ReadAll() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSequence_ClosesDrainedSources(t *testing.T) {
	t.Parallel()

	first := audiotest.NewSilentSource(8000, 1, 10)
	second := audiotest.NewSilentSource(8000, 1, 10)
	seq, _ := NewSequence(first, second)

	buf := make([]float32, 15)
	if _, err := seq.ReadSamples(buf); err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if first.Closed() != 1 {
		t.Errorf("first source closed %d times, want 1", first.Closed())
	}
	if second.Closed() != 0 {
		t.Errorf("second source closed %d times before drain, want 0", second.Closed())
	}
	if seq.Remaining() != 1 {
		t.Errorf("Remaining() = %d, want 1", seq.Remaining())
	}

	if err := seq.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if second.Closed() != 1 {
		t.Errorf("second source closed %d times after Close, want 1", second.Closed())
	}
	if first.Closed() != 1 {
		t.Errorf("first source closed again by Close")
	}
}

func TestSequence_EOF(t *testing.T) {
	t.Parallel()

	seq, _ := NewSequence(audiotest.NewSilentSource(8000, 1, 4))

	buf := make([]float32, 8)
	n, err := seq.ReadSamples(buf)
	if n != 4 || err != nil {
		t.Fatalf("ReadSamples() = %d, %v; want 4, nil", n, err)
	}

	n, err = seq.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after drain = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestSequence_Empty(t *testing.T) {
	t.Parallel()

	seq, err := NewSequence()
	if err != nil {
		t.Fatalf("NewSequence() error = %v", err)
	}

	if seq.SampleRate() != SampleRate || seq.Channels() != 1 {
		t.Errorf("empty sequence format = %d Hz/%d ch, want %d Hz/1 ch", seq.SampleRate(), seq.Channels(), SampleRate)
	}

	n, err := seq.ReadSamples(make([]float32, 4))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestSequence_SkipsEmptySources(t *testing.T) {
	t.Parallel()

	empty, _ := NewTone(440, 0)
	tone, _ := NewTone(440, 0.001)
	seq, _ := NewSequence(empty, tone, empty)

	got, err := ReadAll(seq, 8)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != 44 {
		t.Errorf("ReadAll() len = %d, want 44", len(got))
	}
}

func TestSequence_FormatMismatch(t *testing.T) {
	t.Parallel()

	seq, _ := NewSequence(audiotest.NewSilentSource(44100, 1, 10))

	if err := seq.Append(audiotest.NewSilentSource(48000, 1, 10)); !errors.Is(err, ErrFormatMismatch) {
		t.Errorf("Append(other rate) error = %v, want ErrFormatMismatch", err)
	}
	if err := seq.Append(audiotest.NewSilentSource(44100, 2, 10)); !errors.Is(err, ErrFormatMismatch) {
		t.Errorf("Append(other channels) error = %v, want ErrFormatMismatch", err)
	}
	if len(seq.Sources()) != 1 {
		t.Errorf("Sources() len = %d, want 1", len(seq.Sources()))
	}
}

func TestSequence_LenAndDuration(t *testing.T) {
	t.Parallel()

	tone, _ := NewTone(440, 0.5)
	gap, _ := NewSilence(DefaultGap)
	seq, _ := NewSequence(tone, gap)

	if want := 22050 + SampleCount(0.005); seq.Len() != want {
		t.Errorf("Len() = %d, want %d", seq.Len(), want)
	}
	if want := 505 * time.Millisecond; seq.Duration() != want {
		t.Errorf("Duration() = %v, want %v", seq.Duration(), want)
	}
}

func TestSequence_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	seq, _ := NewSequence(
		audiotest.NewSilentSource(8000, 1, 4),
		audiotest.NewSilentSource(8000, 1, 10).FailAt(2, boom),
	)

	_, err := ReadAll(seq, 16)
	if !errors.Is(err, boom) {
		t.Errorf("ReadAll() error = %v, want %v", err, boom)
	}
}

func TestSequence_CloseErrorOnDrain(t *testing.T) {
	t.Parallel()

	boom := errors.New("close failed")
	seq, _ := NewSequence(audiotest.NewSilentSource(8000, 1, 2).FailClose(boom))

	_, err := seq.ReadSamples(make([]float32, 4))
	if !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestSequence_InvalidDstSize(t *testing.T) {
	t.Parallel()

	seq, _ := NewSequence(audiotest.NewSilentSource(8000, 2, 10))

	if _, err := seq.ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples(odd) error = %v, want ErrInvalidDstSize", err)
	}
}
