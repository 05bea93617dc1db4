// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"github.com/ik5/notesynth/audio"
)

// Window passes a source through unchanged while keeping a copy of its
// first samples for analysis.
type Window struct {
	audio.Source
	size int
	kept []float32
}

func NewWindow(src audio.Source, size int) *Window {
	return &Window{Source: src, size: size, kept: make([]float32, 0, size)}
}

func (w *Window) ReadSamples(dst []float32) (int, error) {
	n, err := w.Source.ReadSamples(dst)
	if room := w.size - len(w.kept); room > 0 && n > 0 {
		w.kept = append(w.kept, dst[:min(n, room)]...)
	}
	return n, err
}

// Samples returns what has been kept so far.
func (w *Window) Samples() []float32 { return w.kept }
