package main

import (
	"strings"

	"github.com/aretw0/samuel/internal/cli"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [sequence]",
	Short: "Compute the expected response for one stage",
	Long: `Runs the displayed sequence through the rule tables and prints the trace
and the expected response.

The sequence is a list of colour initials followed by a symbol, e.g.
  samuel solve --bomb bomb.yaml --stage 2 "r. y- g. b-"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stage, _ := cmd.Flags().GetInt("stage")
		format, _ := cmd.Flags().GetString("format")
		greenSeen, _ := cmd.Flags().GetBool("green-seen")
		redMissing, _ := cmd.Flags().GetBool("red-missing")

		return cli.RunSolve(cmd.Context(), cmd.OutOrStdout(), cli.SolveOptions{
			Options:    baseOptions(cmd),
			Displayed:  strings.Join(args, " "),
			Stage:      stage,
			GreenSeen:  greenSeen,
			RedMissing: redMissing,
			Format:     format,
		})
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().Int("stage", 1, "Stage number (1-4)")
	solveCmd.Flags().String("format", cli.FormatText, "Output format: text, json or mermaid")
	solveCmd.Flags().Bool("green-seen", false, "Green was displayed in an earlier stage")
	solveCmd.Flags().Bool("red-missing", false, "An earlier stage had no red")
}
