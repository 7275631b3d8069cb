package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/panes/internal/batches"
)

const loadTimeout = 5 * time.Second

// BatchesLoadedMsg carries the result of loading batches from the source.
type BatchesLoadedMsg struct {
	Batches []batches.Batch
	Err     error
}

func loadBatches(src batches.Source) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		list, err := src.List(ctx)
		return BatchesLoadedMsg{Batches: list, Err: err}
	}
}
