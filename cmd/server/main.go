package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tejaswadiwala/torcc/internal/xslog"
)

var rootCmd = &cobra.Command{
	Use:          "torcc-server",
	Short:        "Shopify order webhook receiver that maintains a lifetime sales counter",
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the webhook HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context(), slog.Default())
	},
}

func main() {
	_ = godotenv.Load()

	logger := xslog.NewLoggerFromEnv(os.Stdout)
	slog.SetDefault(logger)

	rootCmd.AddCommand(serveCmd)

	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.ErrorContext(ctx, "fatal error", xslog.Error(err))
		os.Exit(1)
	}
}
