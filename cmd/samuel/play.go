package main

import (
	"os"

	"github.com/aretw0/samuel/internal/cli"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a four stage puzzle in the terminal",
	Long: `Generates a sequence for each stage and asks for the response.
Answer with a colour and a symbol ("y-", "red dot"); type 'exit' to stop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		auto, _ := cmd.Flags().GetBool("auto")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		return cli.RunPlay(ctx, os.Stdin, os.Stdout, cli.PlayOptions{
			Options: baseOptions(cmd),
			Auto:    auto,
		})
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().Bool("auto", false, "Print every stage with its answer instead of prompting")
}
