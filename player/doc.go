// SPDX-License-Identifier: EPL-2.0

// Package player sends audio sources to the system's default output device
// through github.com/gopxl/beep and its oto backend.
//
//	p := player.New(player.WithLogger(logger))
//	defer p.Close()
//	err := p.Play(ctx, seq)
//
// Play blocks until the whole source has been queued on the speaker, or
// until ctx is cancelled, in which case the speaker is cleared.
package player
