package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/panes/internal/app"
	"github.com/llehouerou/panes/internal/batches"
	"github.com/llehouerou/panes/internal/config"
	"github.com/llehouerou/panes/internal/errmsg"
	"github.com/llehouerou/panes/internal/logging"
	"github.com/llehouerou/panes/internal/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logFile, err := logging.Setup(cfg.Log.File, cfg.LogLevel())
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
	}
	defer closeQuietly(logFile)

	store, err := openStore(cfg)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}

	source := batches.NewStatic(time.Now())
	source.Delay = 300 * time.Millisecond

	m := app.New(app.Options{
		Config: cfg,
		Store:  store,
		Source: source,
	})

	log.Info().Msg("starting")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := p.Run()
	if fm, ok := final.(app.Model); ok && err != nil {
		fm.Close()
	}
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	return nil
}

func openStore(cfg *config.Config) (*state.Manager, error) {
	if cfg.DataDir != "" {
		return state.OpenPath(filepath.Join(cfg.DataDir, "panes.db"))
	}
	return state.Open()
}

func closeQuietly(c io.Closer) {
	if err := c.Close(); err != nil {
		log.Warn().Err(err).Msg("close failed")
	}
}
