package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/twinscroll/internal/app"
	"github.com/llehouerou/twinscroll/internal/config"
	"github.com/llehouerou/twinscroll/internal/errmsg"
)

// openLog sets up the file logger. The TUI owns stdout and stderr, so
// nothing is ever logged to the terminal.
func openLog(cfg *config.Config) (*slog.Logger, *os.File, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	path := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}

	logger, logFile, err := openLog(cfg)
	if err != nil {
		fmt.Println(errmsg.FormatWith(errmsg.OpLogOpen, cfg.LogPath(), err))
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)

	m, err := app.New(cfg, logger)
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpInitialize, err))
		logFile.Close()
		os.Exit(1)
	}
	defer m.Close()

	logger.Info("starting", "left_items", m.Left.Len(), "right_items", m.Right.Len())

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "error", err)
		fmt.Printf("Error running program: %v\n", err)
		logFile.Close()
		os.Exit(1)
	}
}
