// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ik5/notesynth"
	"github.com/ik5/notesynth/song"
)

func (a *app) newRenderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <song>",
		Short: "Write a song to a WAV or AIFF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			notes, err := a.library().Load(name)
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = strings.TrimSuffix(name, song.Ext) + ".wav"
			}

			if err := notesynth.RenderFile(path, notes, a.cfg.SampleRate, a.sequencerOptions()...); err != nil {
				return err
			}

			size := "unknown size"
			if info, err := os.Stat(path); err == nil {
				size = humanize.Bytes(uint64(info.Size()))
			}

			a.logger.Info("rendered", "song", name, "file", path, "rate", a.cfg.SampleRate, "size", size)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", path, size)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, .wav or .aiff (default <song>.wav)")
	return cmd
}
