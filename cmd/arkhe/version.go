package main

import (
	"fmt"

	"github.com/aretw0/arkhe"
	"github.com/aretw0/arkhe/internal/presentation/tui"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var banner bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of arkhe",
		Run: func(cmd *cobra.Command, args []string) {
			if banner {
				tui.PrintBanner(cmd.OutOrStdout(), arkhe.Version)
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "arkhe version %s\n", arkhe.Version)
		},
	}
	cmd.Flags().BoolVar(&banner, "banner", false, "Print the banner")
	return cmd
}
