package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"qrforge/internal/config"
	"qrforge/internal/utils/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "qrforge",
	Short: "QR code generation and short link redirect service",
	Long: `qrforge creates static and dynamic QR codes and serves the short links
printed in dynamic codes, recording every scan.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

// setup loads the configuration with the command's flags applied on top and
// builds the logger.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.WithLevel(cfg.Env, cfg.Logger.LogLevel), nil
}

func addDatabaseFlags(cmd *cobra.Command) {
	cmd.Flags().String("db-driver", "", "database driver: postgres or sqlite")
	cmd.Flags().String("database-uri", "", "database connection string")
	cmd.Flags().String("migrations", "", "directory with migration files (default: built-in schema)")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("env", "", "environment: local, dev or prod")

	rootCmd.AddCommand(serveCmd, migrateCmd, encodeCmd, tierCmd)
}
