package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-tab-picker/internal/backend"
	"github.com/atomicstack/tmux-tab-picker/internal/tmux"
	"github.com/atomicstack/tmux-tab-picker/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath   string
	Width        int
	Height       int
	ShowFooter   bool
	PollInterval time.Duration
	// Settings is the raw picker settings map (config file table plus --set).
	Settings map[string]string
}

// Run bootstraps and executes the Bubble Tea program. An invalid picker
// setting is returned before the program starts.
func Run(cfg Config) error {
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}
	defer tmux.Shutdown()

	interval := cfg.PollInterval
	if interval <= 0 {
		interval = backend.DefaultInterval
	}
	model, err := ui.NewModel(uiConfig(cfg, socketPath), nil)
	if err != nil {
		return err
	}
	watcher := backend.NewWatcher(socketPath, interval)
	defer watcher.Stop()
	model.AttachWatcher(watcher)

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func uiConfig(cfg Config, socketPath string) ui.Config {
	return ui.Config{
		SocketPath: socketPath,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Settings:   cfg.Settings,
	}
}
