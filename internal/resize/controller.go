package resize

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Direction of a keyboard step.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) sign() float64 {
	if d == Left {
		return -1
	}
	return 1
}

// HoverState is the hover sub-state of a handle.
type HoverState int

const (
	HoverNone    HoverState = iota
	HoverPending            // pointer is over the handle, hover delay running
	HoverActive             // hovering, tooltip delay running or elapsed
	HoverTooltip            // tooltip visible
)

// State is a read-only snapshot of a controller.
type State struct {
	Size             float64
	Dragging         bool
	KeyboardResizing bool
	Resetting        bool
	Hover            HoverState
}

// dragSession exists only while a drag is in progress.
type dragSession struct {
	startPointer float64
	startSize    float64
}

// Option configures a Controller.
type Option func(*Controller)

// WithTick replaces tea.Tick as the timer source.
func WithTick(tick TickFunc) Option {
	return func(c *Controller) { c.tick = tick }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithLogger sets the logger used for interaction events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// Controller owns the size of one panel and coordinates every input
// channel that can change it. It is not safe for concurrent use; all calls
// are expected from the bubbletea update loop.
type Controller struct {
	id      int
	cfg     Config
	ports   Ports
	surface Surface
	tick    TickFunc
	now     func() time.Time
	log     zerolog.Logger

	size             float64
	drag             *dragSession
	keyboardResizing bool
	resetting        bool
	hover            HoverState

	// Tags invalidate superseded timers: a TimerMsg whose tag differs from
	// the current one is dropped.
	hoverTag    int
	keyboardTag int
	notifyTag   int

	notifyPending bool
	notifyDue     time.Time
	notifySize    float64
	onSizeChange  func(float64)

	closed bool
}

// New creates a controller. The initial size comes from the store when a
// persistence key is configured and a valid value is stored, clamped into
// range; otherwise it is the configured default.
func New(cfg Config, ports Ports, opts ...Option) *Controller {
	c := &Controller{
		id:           nextID(),
		cfg:          cfg,
		ports:        ports,
		tick:         tea.Tick,
		now:          time.Now,
		log:          log.Logger,
		onSizeChange: cfg.OnSizeChange,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.size = c.initialSize()
	c.writeVar()
	return c
}

func (c *Controller) initialSize() float64 {
	if c.cfg.PersistenceKey != "" && c.ports.Store != nil {
		if raw, ok := c.ports.Store.Get(c.cfg.PersistenceKey); ok {
			if v, ok := ParseSize(raw); ok {
				return c.clamp(v)
			}
			c.log.Debug().
				Str("key", c.cfg.PersistenceKey).
				Str("value", raw).
				Msg("resize: ignoring invalid persisted size")
		}
	}
	return c.clamp(c.cfg.DefaultSize)
}

// ID identifies the controller in TimerMsg.
func (c *Controller) ID() int { return c.id }

// Config returns the controller configuration.
func (c *Controller) Config() Config { return c.cfg }

// Size returns the committed size.
func (c *Controller) Size() float64 { return c.size }

// IsDragging reports whether a pointer drag is in progress.
func (c *Controller) IsDragging() bool { return c.drag != nil }

// IsKeyboardResizing reports whether a keyboard step happened within the
// last KeyboardClearDelay.
func (c *Controller) IsKeyboardResizing() bool { return c.keyboardResizing }

// IsDoubleClickResetting reports whether a double-click reset is animating.
func (c *Controller) IsDoubleClickResetting() bool { return c.resetting }

// IsHovering reports whether the hover delay has elapsed.
func (c *Controller) IsHovering() bool { return c.hover >= HoverActive }

// ShowTooltip reports whether the tooltip should be visible.
func (c *Controller) ShowTooltip() bool { return c.hover == HoverTooltip }

// Hover returns the hover sub-state.
func (c *Controller) Hover() HoverState { return c.hover }

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool { return c.closed }

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	return State{
		Size:             c.size,
		Dragging:         c.drag != nil,
		KeyboardResizing: c.keyboardResizing,
		Resetting:        c.resetting,
		Hover:            c.hover,
	}
}

// Bind hands the controller the surface it writes its size to. The current
// size is written immediately.
func (c *Controller) Bind(s Surface) {
	c.surface = s
	if s != nil && !c.closed {
		s.SetWidth(c.size)
	}
}

// SetOnSizeChange replaces the notify callback. A pending notification is
// delivered to the latest callback.
func (c *Controller) SetOnSizeChange(fn func(float64)) {
	c.onSizeChange = fn
}

// DragStart begins a pointer drag at x.
func (c *Controller) DragStart(pointerID int, x float64) {
	if c.closed {
		return
	}
	c.drag = &dragSession{startPointer: x, startSize: c.size}
	if c.hover == HoverTooltip {
		c.hover = HoverActive
	}
	c.cancelHoverTimer()
	if c.ports.Host != nil {
		c.ports.Host.BeginResize(pointerID)
	}
	c.log.Debug().Int("panel", c.id).Float64("size", c.size).Msg("resize: drag start")
}

// DragMove resizes relative to the drag start. It is a no-op unless a
// drag is in progress.
func (c *Controller) DragMove(x float64) tea.Cmd {
	if c.closed || c.drag == nil {
		return nil
	}
	return c.updateSize(c.drag.startSize + (x - c.drag.startPointer))
}

// DragEnd finishes a drag. It is a no-op unless a drag is in progress.
func (c *Controller) DragEnd() {
	if c.closed || c.drag == nil {
		return
	}
	c.drag = nil
	if c.ports.Host != nil {
		c.ports.Host.EndResize()
	}
	c.log.Debug().Int("panel", c.id).Float64("size", c.size).Msg("resize: drag end")
}

// KeyStep grows (Right) or shrinks (Left) the panel by one step, or by a
// shift step when shift is held. Callers filter out keys that must not
// resize, such as keys typed into a text input.
func (c *Controller) KeyStep(dir Direction, shift bool) tea.Cmd {
	if c.closed {
		return nil
	}
	c.keyboardResizing = true
	cmd := c.updateSize(c.size + dir.sign()*c.cfg.Step(shift))
	c.keyboardTag++
	return tea.Batch(cmd, c.schedule(KeyboardClearDelay, timerKeyboardClear, c.keyboardTag))
}

// DoubleClickReset returns the panel to its default size.
//
// The flag clear is not cancelable: a reset-clear scheduled by an earlier
// reset also ends a later one if it fires first.
func (c *Controller) DoubleClickReset() tea.Cmd {
	if c.closed {
		return nil
	}
	c.hover = HoverNone
	c.hoverTag++
	c.resetting = true
	cmd := c.updateSize(c.cfg.DefaultSize)
	c.log.Debug().Int("panel", c.id).Float64("size", c.size).Msg("resize: reset")
	return tea.Batch(cmd, c.schedule(ResetClearDelay, timerResetClear, 0))
}

// HoverEnter starts the hover delay, followed by the tooltip delay.
func (c *Controller) HoverEnter() tea.Cmd {
	if c.closed {
		return nil
	}
	c.hoverTag++
	if c.hover == HoverNone {
		c.hover = HoverPending
	}
	return c.schedule(HoverDelay, timerHover, c.hoverTag)
}

// HoverLeave clears hovering and the tooltip and cancels both delays.
func (c *Controller) HoverLeave() {
	if c.closed {
		return
	}
	c.hover = HoverNone
	c.hoverTag++
}

func (c *Controller) cancelHoverTimer() {
	c.hoverTag++
	if c.hover == HoverPending {
		c.hover = HoverNone
	}
}

// Close cancels every pending timer. The controller ignores all input and
// timer messages afterwards.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	if c.drag != nil && c.ports.Host != nil {
		c.ports.Host.EndResize()
	}
	c.drag = nil
	c.hoverTag++
	c.keyboardTag++
	c.notifyTag++
	c.notifyPending = false
	c.closed = true
}

// Update handles the controller's own timer messages.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(TimerMsg)
	if !ok || m.ID != c.id || c.closed {
		return nil
	}

	switch m.kind {
	case timerHover:
		if m.tag != c.hoverTag {
			return nil
		}
		if c.hover < HoverActive {
			c.hover = HoverActive
		}
		return c.schedule(TooltipDelay, timerTooltip, c.hoverTag)

	case timerTooltip:
		if m.tag != c.hoverTag {
			return nil
		}
		if c.drag == nil && c.hover >= HoverActive {
			c.hover = HoverTooltip
		}

	case timerKeyboardClear:
		if m.tag == c.keyboardTag {
			c.keyboardResizing = false
		}

	case timerResetClear:
		c.resetting = false

	case timerNotify:
		if m.tag != c.notifyTag || !c.notifyPending {
			return nil
		}
		if wait := c.notifyDue.Sub(c.now()); wait > 0 {
			return c.schedule(wait, timerNotify, c.notifyTag)
		}
		c.notifyPending = false
		if fn := c.onSizeChange; fn != nil {
			fn(c.notifySize)
		}
	}
	return nil
}

func (c *Controller) clamp(v float64) float64 {
	return Clamp(v, c.cfg.MinSize, c.cfg.MaxSize)
}

// updateSize commits a clamped size: surface and variable are written
// before returning, the store is written immediately and the notify
// callback is debounced.
func (c *Controller) updateSize(candidate float64) tea.Cmd {
	c.size = c.clamp(candidate)
	if c.surface != nil {
		c.surface.SetWidth(c.size)
	}
	c.writeVar()
	if c.cfg.PersistenceKey != "" && c.ports.Store != nil {
		c.ports.Store.Set(c.cfg.PersistenceKey, FormatSize(c.size))
	}
	return c.debounceNotify()
}

func (c *Controller) writeVar() {
	if c.cfg.VariableName != "" && c.ports.Vars != nil {
		c.ports.Vars.SetVar(c.cfg.VariableName, c.size)
	}
}

// debounceNotify keeps at most one notify timer outstanding. Each update
// pushes the deadline; when the timer fires early it re-arms for the rest.
func (c *Controller) debounceNotify() tea.Cmd {
	c.notifySize = c.size
	c.notifyDue = c.now().Add(NotifyDebounce)
	if c.notifyPending {
		return nil
	}
	c.notifyPending = true
	return c.schedule(NotifyDebounce, timerNotify, c.notifyTag)
}
