package main

import (
	"github.com/aretw0/samuel/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the solver as a JSON API over HTTP. Puzzles live in memory and
are lost on restart unless SAMUEL_REDIS_ADDR is set. With Redis, replicas
share puzzles and entries expire after SAMUEL_PUZZLE_TTL.
Prometheus metrics are served on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.Addr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		return cli.RunServe(ctx, cli.ServeOptions{
			Options:         baseOptions(cmd),
			StoreOptions:    storeOptions(),
			Addr:            addr,
			ShutdownTimeout: cfg.ShutdownTimeout,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Address to listen on (overrides SAMUEL_ADDR)")
}
