package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/samuel"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of samuel",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "samuel version %s\n", strings.TrimSpace(samuel.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
