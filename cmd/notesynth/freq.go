// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/notesynth/pitch"
)

func (a *app) newFreqCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "freq <note>...",
		Short:   "Print the frequency of notes",
		Example: "  notesynth freq A4 C#5 Bb3",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range args {
				p, err := pitch.Parse(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%+d\t%.2f Hz\n", p, p.Semitones(), p.Frequency())
			}
			return nil
		},
	}
}
