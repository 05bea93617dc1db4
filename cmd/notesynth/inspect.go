// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/remeh/sizedwaitgroup"
	"github.com/spf13/cobra"

	"github.com/ik5/notesynth"
)

func (a *app) newInspectCmd() *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "inspect <file>...",
		Short: "Print length, level and pitch of audio files",
		Long: `Decode WAV, AIFF, MP3 or Ogg Vorbis files and print their format, length,
peak and RMS level, and the note nearest to their dominant frequency.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := notesynth.NewRegistry()
			reports := make([]notesynth.Report, len(args))
			errs := make([]error, len(args))

			swg := sizedwaitgroup.New(max(jobs, 1))
			for i, path := range args {
				swg.Add()
				go func() {
					defer swg.Done()
					reports[i], errs[i] = notesynth.Inspect(reg, path)
				}()
			}
			swg.Wait()

			out := cmd.OutOrStdout()
			for i, path := range args {
				if errs[i] != nil {
					a.logger.Error("inspect failed", "file", path, "err", errs[i])
					continue
				}
				printReport(out, path, reports[i])
			}
			return errors.Join(errs...)
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "files decoded in parallel")
	return cmd
}

func printReport(w io.Writer, path string, r notesynth.Report) {
	fmt.Fprintf(w, "%s: %d Hz, %d frames, %v, peak %.4f, rms %.4f",
		path, r.SampleRate, r.Frames, r.Duration(), r.Peak, r.RMS)

	if note, cents, err := r.Note(); err == nil {
		fmt.Fprintf(w, ", dominant %.2f Hz (%s %+.0f cents)", r.Dominant, note, cents)
	}
	fmt.Fprintln(w)
}
