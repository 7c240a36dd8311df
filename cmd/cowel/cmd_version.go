package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags; defaults to "dev" for
// local builds.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cowel version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("cowel " + version)
		return nil
	},
}
