package main

import (
	"log"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/llehouerou/twinscroll/internal/config"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay a scripted gesture sequence on a virtual clock",
		Long: `Simulate drives two in-memory lists through a drag, a fling, idle
drift, a tap, a stop and a resume, without a terminal.

Examples:
  # Default configuration locations
  simulate

  # Specific config file, longer idle phases, controller transitions
  simulate --config=./config.toml --idle=30s -v
`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runSimulate,
	}

	cmd.Flags().String("config", "", "Config file (default: standard locations)")
	cmd.Flags().Duration("idle", 5*time.Second, "How long to let the idle drift run")
	cmd.Flags().BoolP("verbose", "v", false, "Log controller transitions")

	return cmd
}

// Execute runs the simulate command.
func Execute() error {
	return newRootCmd().Execute()
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	idle, _ := cmd.Flags().GetDuration("idle")
	verbose, _ := cmd.Flags().GetBool("verbose")

	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	opts := scriptOptions{
		Idle: idle,
		Out:  log.New(cmd.ErrOrStderr(), "", log.LstdFlags),
	}
	if verbose {
		opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	_, err = runScript(cfg, opts)
	return err
}
