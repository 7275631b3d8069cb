package resize

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickFunc schedules msg to be produced after d. tea.Tick satisfies it.
type TickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

type timerKind int

const (
	timerHover timerKind = iota
	timerTooltip
	timerKeyboardClear
	timerResetClear
	timerNotify
)

func (k timerKind) String() string {
	switch k {
	case timerHover:
		return "hover"
	case timerTooltip:
		return "tooltip"
	case timerKeyboardClear:
		return "keyboard-clear"
	case timerResetClear:
		return "reset-clear"
	case timerNotify:
		return "notify"
	default:
		return "unknown"
	}
}

// TimerMsg is produced when one of a controller's timers fires. Route it
// to Controller.Update; messages for other controllers are ignored.
type TimerMsg struct {
	ID   int
	kind timerKind
	tag  int
}

func (c *Controller) schedule(d time.Duration, kind timerKind, tag int) tea.Cmd {
	id := c.id
	return c.tick(d, func(time.Time) tea.Msg {
		return TimerMsg{ID: id, kind: kind, tag: tag}
	})
}
