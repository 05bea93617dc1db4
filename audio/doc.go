// SPDX-License-Identifier: EPL-2.0

// Package audio provides the pull-based sample streams notesynth is built on.
//
// # Source Interface
//
// Every stream implements Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Nothing is computed until ReadSamples is called. Sources of known length
// also implement Lengther and Durationer.
//
// # Tones
//
// Tone is a finite mono sine at SampleRate (44100 Hz), scaled by Amplitude
// (0.5) so every sample lies in [-0.5, 0.5]:
//
//	tone, err := audio.NewTone(440, 1.0) // 44100 samples
//	v, ok := tone.Next()                 // one sample at a time
//
// The sample count is SampleCount(seconds), which rounds half away from zero.
// A 0 Hz tone is silence; NewSilence is shorthand for it. A tone is read once
// and then discarded.
//
// # Sequences
//
// Sequence chains sources end to end. Each source is drained and closed
// before the next one is touched:
//
//	seq, _ := audio.NewSequence(tone, gap)
//	samples, _ := audio.ReadAll(seq, 4096)
//
// # Processing
//
// Resampler changes the sample rate with cubic interpolation and MonoMixer
// averages channels down to one:
//
//	out := audio.NewResampler(audio.NewMonoMixer(src), 8000)
//
// Measure drains a source and reports its length, peak and RMS level.
//
// # Format Registry
//
// Registry maps format keys to Decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get("WAV")
//
// # Error Handling
//
// ReadSamples returns io.EOF once a source is drained:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
