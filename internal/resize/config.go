// Package resize implements the interaction controller behind a resizable
// panel: pointer drag, keyboard steps, double-click reset, delayed hover
// tooltip, size persistence and a debounced size notification.
package resize

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Library defaults, in cells.
const (
	DefaultSize = 256
	DefaultMin  = 192
	DefaultMax  = 400

	DefaultKeyStep      = 10
	DefaultShiftKeyStep = 50
)

// Timings of the interaction state machine.
const (
	HoverDelay         = 200 * time.Millisecond
	TooltipDelay       = 400 * time.Millisecond
	KeyboardClearDelay = 300 * time.Millisecond
	ResetClearDelay    = 300 * time.Millisecond
	NotifyDebounce     = 300 * time.Millisecond
)

// Config is the per-mount configuration of a Controller.
// Callers are expected to keep MinSize <= DefaultSize <= MaxSize; the size
// is clamped to [MinSize, MaxSize] regardless.
type Config struct {
	DefaultSize float64
	MinSize     float64
	MaxSize     float64

	// OnSizeChange receives the committed size, debounced.
	OnSizeChange func(size float64)

	// VariableName mirrors the size into a named global dimension.
	VariableName string

	// PersistenceKey stores the last committed size under this key.
	PersistenceKey string

	KeyStep      float64 // 0 means DefaultKeyStep
	ShiftKeyStep float64 // 0 means DefaultShiftKeyStep
}

// DefaultConfig returns a Config using the library defaults.
func DefaultConfig() Config {
	return Config{
		DefaultSize: DefaultSize,
		MinSize:     DefaultMin,
		MaxSize:     DefaultMax,
	}
}

// Step returns the keyboard step, or the shift step when shift is held.
// Unset steps fall back to the defaults.
func (c Config) Step(shift bool) float64 {
	if shift {
		if c.ShiftKeyStep > 0 {
			return c.ShiftKeyStep
		}
		return DefaultShiftKeyStep
	}
	if c.KeyStep > 0 {
		return c.KeyStep
	}
	return DefaultKeyStep
}

// Clamp constrains v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ParseSize parses a persisted size. Only finite decimal numbers are valid.
func ParseSize(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FormatSize renders a size the way it is persisted.
func FormatSize(size float64) string {
	return strconv.FormatFloat(size, 'f', -1, 64)
}
