package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/sboard"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sboard",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sboard version %s\n", strings.TrimSpace(sboard.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
