// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/notesynth/audio"
	"github.com/ik5/notesynth/internal/config"
	"github.com/ik5/notesynth/internal/logging"
	"github.com/ik5/notesynth/sequencer"
	"github.com/ik5/notesynth/song"
)

var errNoSong = errors.New("no song given")

type playFunc func(ctx context.Context, cfg config.Config, logger *slog.Logger, src audio.Source) error

// app carries the state shared by every subcommand. Flags write straight
// into cfg, so after parsing it holds env defaults overridden by flags.
type app struct {
	cfg         config.Config
	play        playFunc
	logger      *slog.Logger
	verbose     bool
	skipInvalid bool
}

func newRootCmd(cfg config.Config, play playFunc) *cobra.Command {
	a := &app{
		cfg:    cfg,
		play:   play,
		logger: slog.New(slog.DiscardHandler),
	}

	root := &cobra.Command{
		Use:   "notesynth [song]",
		Short: "Play songs written as JSON note lists",
		Long: `notesynth plays songs stored as JSON arrays of {"note", "duration"} records.

Each note (A4, C#5, Bb3, ...) becomes a sine tone in equal temperament
with A4 = 440 Hz, followed by a short silence. Run without arguments to
list the songs in the songs directory.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if err := a.listSongs(cmd); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nUsage: %s <song>\n", cmd.Root().Name())
				return errNoSong
			}
			return a.playSong(cmd, args[0])
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfg.SongsDir, "songs-dir", cfg.SongsDir, "directory holding <song>.json files")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
	pf.BoolVar(&a.skipInvalid, "skip-invalid", false, "drop malformed notes instead of failing")
	pf.DurationVar(&a.cfg.Gap, "gap", cfg.Gap, "silence after every note")
	pf.IntVar(&a.cfg.SampleRate, "rate", cfg.SampleRate, "output sample rate in Hz")

	root.AddCommand(
		a.newListCmd(),
		a.newPlayCmd(),
		a.newRenderCmd(),
		a.newInspectCmd(),
		a.newFreqCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level, err := logging.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}
	if a.cfg.SampleRate <= 0 {
		return fmt.Errorf("--rate must be positive, got %d", a.cfg.SampleRate)
	}
	if a.cfg.Gap < 0 {
		return fmt.Errorf("--gap must not be negative, got %v", a.cfg.Gap)
	}

	a.logger = logging.New(cmd.ErrOrStderr(), level)
	a.logger.Debug("configuration",
		"songs_dir", a.cfg.SongsDir,
		"rate", a.cfg.SampleRate,
		"buffer", a.cfg.Buffer,
		"gap", a.cfg.Gap,
	)
	return nil
}

func (a *app) library() song.Library {
	return song.Library{Dir: a.cfg.SongsDir}
}

func (a *app) sequencerOptions() []sequencer.Option {
	return []sequencer.Option{
		sequencer.WithGap(a.cfg.Gap),
		sequencer.WithSkipInvalid(a.skipInvalid),
		sequencer.WithLogger(a.logger),
	}
}
