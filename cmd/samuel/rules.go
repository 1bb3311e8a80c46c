package main

import (
	"github.com/aretw0/samuel/internal/cli"
	"github.com/spf13/cobra"
)

// rulesCmd prints the rule tables.
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the rule tables",
	Long:  `Prints the twenty rules as text, JSON or a Mermaid diagram (graph TD).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return cli.RunRules(cmd.OutOrStdout(), format)
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)

	rulesCmd.Flags().String("format", cli.FormatText, "Output format: text, json or mermaid")
}
