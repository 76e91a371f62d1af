package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"social-webbase/config"
	"social-webbase/internal/logging"

	"github.com/spf13/cobra"
)

// RootCmd is the base command; without a subcommand it serves the API.
var RootCmd = &cobra.Command{
	Use:           "social-webbase [command] [flags]",
	Short:         "Follow graph, likes and comment threads over posts",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd, indexesCmd, seedCmd, tokenCmd)
}

// Execute runs the command tree; it is called once by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup loads configuration and installs the process-wide logger.
func setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, nil, err
	}
	log := logging.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(log)
	return cfg, log, nil
}
