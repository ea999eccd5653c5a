package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"qrforge/internal/app/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long:  `Applies pending migrations, then serves the API and short links until interrupted.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv, err := server.New(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := srv.Close(); err != nil {
				log.Error("close storage", "error", err)
			}
		}()

		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("address", "", "listen address, e.g. :8080")
	serveCmd.Flags().String("base-url", "", "public origin used in short links")
	addDatabaseFlags(serveCmd)
}
