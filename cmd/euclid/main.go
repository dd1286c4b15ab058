package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Davincible/euclid/internal/cli"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	rootCmd := cli.NewRootCommand(
		fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
		level,
	)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
