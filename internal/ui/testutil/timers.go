package testutil

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Timers is a manual clock standing in for tea.Tick. Timers register when
// scheduled and fire, in deadline order, when Advance passes them.
type Timers struct {
	now     time.Time
	pending []pendingTimer

	// Deliver receives every fired message.
	Deliver func(tea.Msg)
}

type pendingTimer struct {
	at  time.Time
	msg tea.Msg
}

// NewTimers returns a clock starting at a fixed instant.
func NewTimers() *Timers {
	return &Timers{now: time.Unix(1700000000, 0)}
}

// Tick has the signature of tea.Tick.
func (f *Timers) Tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	at := f.now.Add(d)
	f.pending = append(f.pending, pendingTimer{at: at, msg: fn(at)})
	return nil
}

// Now returns the current fake time.
func (f *Timers) Now() time.Time { return f.now }

// Pending returns the number of timers not yet fired.
func (f *Timers) Pending() int { return len(f.pending) }

// Advance moves the clock forward by d, firing due timers.
func (f *Timers) Advance(d time.Duration) {
	target := f.now.Add(d)
	for {
		sort.SliceStable(f.pending, func(i, j int) bool {
			return f.pending[i].at.Before(f.pending[j].at)
		})
		if len(f.pending) == 0 || f.pending[0].at.After(target) {
			break
		}
		next := f.pending[0]
		f.pending = f.pending[1:]
		f.now = next.at
		if f.Deliver != nil {
			f.Deliver(next.msg)
		}
	}
	f.now = target
}
