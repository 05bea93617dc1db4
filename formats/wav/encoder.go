// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/notesynth/audio"
	"github.com/ik5/notesynth/internal/pcm"
)

// Encode drains src into w as integer PCM of bitDepth bits. The header is
// finalized once src is exhausted, which is why w must be seekable.
func Encode(w io.WriteSeeker, src audio.Source, bitDepth int) error {
	if !supportedDepth(bitDepth) {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	enc := wav.NewEncoder(w, src.SampleRate(), bitDepth, src.Channels(), pcmFormat)
	if err := pcm.Drain(enc, src, bitDepth); err != nil {
		return err
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing WAV: %w", err)
	}
	return nil
}
