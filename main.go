package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-terminal/internal"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/setup"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		opts       setup.Options
	)

	cmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe in the terminal",
		Long: "An interactive terminal tic-tac-toe session against another person or the computer.\n" +
			"Anything not answered by flags is asked in the setup menu.",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			conf := initConfig(configPath)
			logger := initLogger(conf)

			return app.RunApp(logger, conf, opts)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config.yml")
	cmd.Flags().StringVar(&opts.PlayerX, "player-x", "", "player X: human|random|easy|medium|optimal")
	cmd.Flags().StringVar(&opts.PlayerO, "player-o", "", "player O: human|random|easy|medium|optimal")
	cmd.Flags().StringVar(&opts.Mode, "mode", "", "rule mode: normal|reverse")
	cmd.Flags().StringVar(&opts.Policy, "policy", "",
		"ending policy: unlimited|best-of-rounds|best-of-decisive-rounds|first-to-score")
	cmd.Flags().IntVar(&opts.Target, "target", 0, "round or score target for bounded policies")

	return cmd
}

// initialize config.
func initConfig(path string) *config.Config {
	if path == "" {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}
		path = filepath.Join(baseDir, "./config.yml")
	}

	return config.MustLoad(path)
}

// initialize logger. The terminal UI owns stdout, so logs go to the
// configured file.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var out io.Writer = io.Discard
	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			out = file
		}
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}
