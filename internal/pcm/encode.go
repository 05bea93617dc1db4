// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/notesynth/utils"
)

// Writer is the part of go-audio's wav and aiff encoders that Drain needs.
type Writer interface {
	Write(buf *goaudio.IntBuffer) error
}

// source mirrors audio.Source so this package stays below audio in the
// import graph.
type source interface {
	SampleRate() int
	Channels() int
	BufSize() int
	ReadSamples(dst []float32) (int, error)
}

// Drain reads src until io.EOF and hands every chunk to w as integer PCM
// of bitDepth bits. Chunks always hold whole frames.
func Drain(w Writer, src source, bitDepth int) error {
	channels := max(src.Channels(), 1)
	size := max(src.BufSize()-src.BufSize()%channels, channels)

	samples := make([]float32, size)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: src.SampleRate()},
		Data:           make([]int, size),
		SourceBitDepth: bitDepth,
	}

	for {
		n, err := src.ReadSamples(samples)
		if n > 0 {
			buf.Data = buf.Data[:n]
			for i, v := range samples[:n] {
				buf.Data[i] = utils.FloatToPCM(v, bitDepth)
			}
			if werr := w.Write(buf); werr != nil {
				return fmt.Errorf("writing samples: %w", werr)
			}
			buf.Data = buf.Data[:cap(buf.Data)]
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading source: %w", err)
		}
		if n == 0 {
			return io.ErrNoProgress
		}
	}
}
