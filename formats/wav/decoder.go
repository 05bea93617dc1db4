// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/notesynth/audio"
	"github.com/ik5/notesynth/internal/pcm"
)

// pcmFormat is the WAVE_FORMAT_PCM tag.
const pcmFormat = 1

func supportedDepth(bits int) bool {
	switch bits {
	case 8, 16, 24, 32:
		return true
	}
	return false
}

// Decoder reads integer PCM WAV files.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.Seekable(r)
	if err != nil {
		return nil, err
	}

	// IsValidFile parses the RIFF and fmt headers.
	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: reading header: %w", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != pcmFormat {
		return nil, ErrUnsupportedEncoding
	}
	if !supportedDepth(int(dec.BitDepth)) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingData, err)
	}

	frames := 0
	if frameSize := int(dec.NumChans) * int(dec.BitDepth) / 8; frameSize > 0 {
		frames = dec.PCMSize / frameSize
	}

	return pcm.NewSource(dec, dec.Format(), int(dec.BitDepth), frames), nil
}
