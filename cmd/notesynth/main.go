// SPDX-License-Identifier: EPL-2.0

// Command notesynth plays and renders JSON note songs.
//
//	notesynth               list songs and show usage
//	notesynth scale         play songs/scale.json
//	notesynth render scale -o scale.wav --rate 48000
//	notesynth inspect scale.wav
//	notesynth freq A4 C#5 Bb3
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/notesynth/audio"
	"github.com/ik5/notesynth/internal/config"
	"github.com/ik5/notesynth/player"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd(config.Load(), playOnDevice).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// playOnDevice sends src to the default output device.
func playOnDevice(ctx context.Context, cfg config.Config, logger *slog.Logger, src audio.Source) error {
	p := player.New(
		player.WithSampleRate(cfg.SampleRate),
		player.WithBuffer(cfg.Buffer),
		player.WithLogger(logger),
	)
	defer p.Close()

	return p.Play(ctx, src)
}
