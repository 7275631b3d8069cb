// internal/state/interface.go
package state

import "github.com/llehouerou/panes/internal/resize"

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	resize.Store
	Flush() error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
