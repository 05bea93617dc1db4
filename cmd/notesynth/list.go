// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available songs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.listSongs(cmd)
		},
	}
}

func (a *app) listSongs(cmd *cobra.Command) error {
	names, err := a.library().List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Available songs:")
	for _, name := range names {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}
