// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"time"

	"github.com/hako/durafmt"
	"github.com/spf13/cobra"

	"github.com/ik5/notesynth"
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

// formatLength renders d as its two largest units, e.g. "1 m 5 s".
func formatLength(d time.Duration) string {
	return durafmt.Parse(d).LimitFirstN(2).Format(shortUnits)
}

func (a *app) newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <song>",
		Short: "Play a song on the default output device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.playSong(cmd, args[0])
		},
	}
}

func (a *app) playSong(cmd *cobra.Command, name string) error {
	notes, err := a.library().Load(name)
	if err != nil {
		return err
	}

	seq, err := notesynth.Compose(notes, a.sequencerOptions()...)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Playing: %s (%s)\n", name, formatLength(seq.Duration()))
	a.logger.Info("playing", "song", name, "notes", len(notes), "duration", seq.Duration())

	return a.play(cmd.Context(), a.cfg, a.logger, seq)
}
