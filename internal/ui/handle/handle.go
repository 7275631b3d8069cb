// Package handle adapts terminal mouse and key events to a resize
// controller and renders the drag handle of a panel edge.
package handle

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/panes/internal/keymap"
	"github.com/llehouerou/panes/internal/resize"
	"github.com/llehouerou/panes/internal/ui/styles"
)

// Side is the panel edge the handle sits on.
type Side int

const (
	// SideRight puts the handle on the panel's right edge. Dragging right grows.
	SideRight Side = iota
	// SideLeft puts the handle on the panel's left edge. Dragging left grows.
	SideLeft
)

// ParseSide maps "left" to SideLeft and everything else to SideRight.
func ParseSide(s string) Side {
	if strings.EqualFold(strings.TrimSpace(s), "left") {
		return SideLeft
	}
	return SideRight
}

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

const (
	// DoubleClickWindow is the longest gap between two releases that still
	// counts as a double click.
	DoubleClickWindow = 400 * time.Millisecond

	// TooltipOffset is the column distance between pointer and tooltip.
	TooltipOffset = 2

	// hitSlop widens the hit area on each side of the handle column.
	hitSlop = 1

	// pointerID identifies the terminal's only pointer to the host.
	pointerID = 1
)

// Model is the drag handle of one panel.
type Model struct {
	ctrl *resize.Controller
	side Side
	keys *keymap.Resolver
	now  func() time.Time

	x, y, height int

	inside       bool
	pointerX     int
	pointerY     int
	lastRelease  time.Time
	inputFocused bool
}

// New creates a handle driving ctrl.
func New(ctrl *resize.Controller, side Side) Model {
	return Model{
		ctrl: ctrl,
		side: side,
		keys: keymap.Default,
		now:  time.Now,
	}
}

// WithClock replaces time.Now for double-click detection.
func (m Model) WithClock(now func() time.Time) Model {
	m.now = now
	return m
}

// Side returns the edge the handle sits on.
func (m Model) Side() Side { return m.side }

// SetBounds places the handle column on screen.
func (m *Model) SetBounds(x, y, height int) {
	m.x, m.y, m.height = x, y, max(height, 0)
}

// Bounds returns the handle column and rows.
func (m Model) Bounds() (x, y, height int) { return m.x, m.y, m.height }

// SetInputFocused disables key handling while a text input has focus.
func (m *Model) SetInputFocused(focused bool) { m.inputFocused = focused }

// Hit reports whether a pointer at (x, y) is inside the hit area.
func (m Model) Hit(x, y int) bool {
	return m.height > 0 &&
		y >= m.y && y < m.y+m.height &&
		x >= m.x-hitSlop && x <= m.x+hitSlop
}

// axis maps a screen column to the coordinate the controller measures.
func (m Model) axis(x int) float64 {
	if m.side == SideLeft {
		return -float64(x)
	}
	return float64(x)
}

// Update forwards mouse and key events to the controller.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	wasInside := m.inside
	m.inside = m.Hit(msg.X, msg.Y)
	m.pointerX, m.pointerY = msg.X, msg.Y

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.inside {
			m.ctrl.DragStart(pointerID, m.axis(msg.X))
		}
		return m, nil

	case tea.MouseActionMotion:
		if m.ctrl.IsDragging() {
			return m, m.ctrl.DragMove(m.axis(msg.X))
		}
		switch {
		case m.inside && !wasInside:
			return m, m.ctrl.HoverEnter()
		case !m.inside && wasInside:
			m.ctrl.HoverLeave()
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.ctrl.IsDragging() {
			m.ctrl.DragEnd()
		}
		if !m.inside {
			m.lastRelease = time.Time{}
			if m.ctrl.Hover() != resize.HoverNone {
				m.ctrl.HoverLeave()
			}
			return m, nil
		}
		now := m.now()
		if !m.lastRelease.IsZero() && now.Sub(m.lastRelease) <= DoubleClickWindow {
			m.lastRelease = time.Time{}
			return m, m.ctrl.DoubleClickReset()
		}
		m.lastRelease = now
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.inputFocused {
		return nil
	}
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionShrink:
		return m.ctrl.KeyStep(resize.Left, false)
	case keymap.ActionShrinkLarge:
		return m.ctrl.KeyStep(resize.Left, true)
	case keymap.ActionGrow:
		return m.ctrl.KeyStep(resize.Right, false)
	case keymap.ActionGrowLarge:
		return m.ctrl.KeyStep(resize.Right, true)
	}
	return nil
}

// Active reports whether the handle is highlighted.
func (m Model) Active() bool {
	return m.ctrl.IsHovering() || m.ctrl.IsDragging() || m.ctrl.IsKeyboardResizing()
}

// View renders the handle column, one cell wide and height rows tall.
func (m Model) View() string {
	if m.height == 0 {
		return ""
	}
	s := styles.T().S()
	glyph, style := "│", s.HandleIdle
	switch {
	case m.ctrl.IsDoubleClickResetting():
		glyph, style = "┃", s.HandleReset
	case m.Active():
		glyph, style = "┃", s.HandleActive
	}
	cell := style.Render(glyph)
	rows := make([]string, m.height)
	for i := range rows {
		rows[i] = cell
	}
	return strings.Join(rows, "\n")
}

// TooltipText is the help shown next to the pointer.
func (m Model) TooltipText() string {
	cfg := m.ctrl.Config()
	return strings.Join([]string{
		"Drag to resize",
		"Double-click to reset",
		fmt.Sprintf("Arrow keys: %s (Shift: %s)",
			resize.FormatSize(cfg.Step(false)), resize.FormatSize(cfg.Step(true))),
	}, "\n")
}

// Tooltip returns the rendered tooltip and its anchor. ok is false when no
// tooltip should be shown, which includes any time a drag is in progress.
func (m Model) Tooltip() (box string, x, y int, ok bool) {
	if !m.ctrl.ShowTooltip() || m.ctrl.IsDragging() {
		return "", 0, 0, false
	}
	box = styles.T().S().Tooltip.Render(m.TooltipText())
	return box, m.pointerX + TooltipOffset, m.pointerY, true
}
