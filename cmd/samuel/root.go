package main

import (
	"fmt"
	"os"

	"github.com/aretw0/samuel/internal/cli"
	"github.com/aretw0/samuel/internal/config"
	"github.com/spf13/cobra"
)

// cfg holds the environment settings; flags override them.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "samuel",
	Short: "Samuel Says is a sequence transformation solver",
	Long: `Samuel computes the expected response of the "Samuel Says" bomb module.
Describe the bomb in a YAML or JSON file, then solve single stages, play a
full puzzle in the terminal, or serve the solver over HTTP and MCP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("bomb", "", "Bomb description file (YAML or JSON)")
	rootCmd.PersistentFlags().String("snapshot", "", "Snapshot JSON, used instead of --bomb")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for generated sequences (0 picks a random seed)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log every rule decision")
}

// baseOptions merges the environment settings with the persistent flags.
func baseOptions(cmd *cobra.Command) cli.Options {
	opts := cli.Options{
		BombFile: cfg.BombFile,
		LogLevel: cfg.LogLevel,
		Seed:     cfg.Seed,
	}
	flags := cmd.Flags()
	if flags.Changed("bomb") {
		opts.BombFile, _ = flags.GetString("bomb")
	}
	if flags.Changed("log-level") {
		opts.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("seed") {
		opts.Seed, _ = flags.GetUint64("seed")
	}
	opts.Snapshot, _ = flags.GetString("snapshot")
	opts.Debug, _ = flags.GetBool("debug")
	return opts
}

// storeOptions reads the puzzle store settings from the environment.
func storeOptions() cli.StoreOptions {
	return cli.StoreOptions{
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
		PuzzleTTL:     cfg.PuzzleTTL,
	}
}
