// Package panel is a resizable terminal panel: content plus a drag handle
// on one edge, with its width owned by a resize controller.
package panel

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/panes/internal/resize"
	"github.com/llehouerou/panes/internal/ui/handle"
	"github.com/llehouerou/panes/internal/ui/render"
	"github.com/llehouerou/panes/internal/ui/styles"
)

// Content renders the inside of a panel.
type Content interface {
	View(width, height int) string
}

// ContentFunc adapts a function to Content.
type ContentFunc func(width, height int) string

// View calls f.
func (f ContentFunc) View(width, height int) string { return f(width, height) }

// Options configures a panel.
type Options struct {
	Config    resize.Config
	Side      handle.Side
	Resizable bool
	Title     string
}

// Model is a resizable panel. It is the controller's Surface: the
// controller writes the width directly.
type Model struct {
	opts    Options
	ctrl    *resize.Controller
	handle  handle.Model
	content Content

	width  float64
	x, y   int
	height int
}

// New creates a panel and its controller. Non-resizable panels keep the
// configured default width and never show a handle.
func New(opts Options, ports resize.Ports, content Content, ctrlOpts ...resize.Option) *Model {
	p := &Model{
		opts:    opts,
		content: content,
		width:   opts.Config.DefaultSize,
	}
	p.ctrl = resize.New(opts.Config, ports, ctrlOpts...)
	p.handle = handle.New(p.ctrl, opts.Side)
	if opts.Resizable {
		p.ctrl.Bind(p)
	}
	return p
}

// SetWidth implements resize.Surface.
func (p *Model) SetWidth(size float64) { p.width = size }

// Width returns the rendered width in cells, handle included.
func (p *Model) Width() int {
	return max(int(math.Round(p.width)), 0)
}

// Height returns the rendered height in rows.
func (p *Model) Height() int { return p.height }

// Controller returns the panel's resize controller.
func (p *Model) Controller() *resize.Controller { return p.ctrl }

// Handle returns the panel's drag handle.
func (p *Model) Handle() handle.Model { return p.handle }

// Title returns the panel title.
func (p *Model) Title() string { return p.opts.Title }

// Resizable reports whether the panel has a handle.
func (p *Model) Resizable() bool { return p.opts.Resizable }

// SetBounds places the panel on screen and moves its handle to the edge.
func (p *Model) SetBounds(x, y, height int) {
	p.x, p.y, p.height = x, y, max(height, 0)
	if !p.opts.Resizable {
		p.handle.SetBounds(0, 0, 0)
		return
	}
	col := x + p.Width() - 1
	if p.opts.Side == handle.SideLeft {
		col = x
	}
	p.handle.SetBounds(col, y, p.height)
}

// SetInputFocused stops the handle from reacting to keys.
func (p *Model) SetInputFocused(focused bool) { p.handle.SetInputFocused(focused) }

// Transitioning reports whether a width change should be eased rather than
// followed live: true unless a drag or keyboard resize is in progress, and
// always true during a double-click reset.
func (p *Model) Transitioning() bool {
	return (!p.ctrl.IsDragging() && !p.ctrl.IsKeyboardResizing()) || p.ctrl.IsDoubleClickResetting()
}

// Update routes timer messages to the controller and, for resizable panels,
// pointer and key events to the handle.
func (p *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case resize.TimerMsg:
		return p.ctrl.Update(msg)
	case tea.MouseMsg, tea.KeyMsg:
		if !p.opts.Resizable {
			return nil
		}
		var cmd tea.Cmd
		p.handle, cmd = p.handle.Update(msg)
		// A keyboard step or drag may have moved the edge.
		p.SetBounds(p.x, p.y, p.height)
		return cmd
	}
	return nil
}

// Tooltip returns the handle tooltip and its screen anchor.
func (p *Model) Tooltip() (box string, x, y int, ok bool) {
	if !p.opts.Resizable {
		return "", 0, 0, false
	}
	return p.handle.Tooltip()
}

// View renders the panel at its current width and height.
func (p *Model) View() string {
	w, h := p.Width(), p.height
	if w == 0 || h == 0 {
		return ""
	}
	inner := w
	if p.opts.Resizable {
		inner = max(w-1, 0)
	}

	var body string
	if p.opts.Title != "" {
		title := styles.T().S().Title.Render(render.Truncate(p.opts.Title, inner))
		rest := render.Block(p.content.View(inner, max(h-1, 0)), inner, h-1)
		body = strings.TrimSuffix(title+"\n"+rest, "\n")
	} else {
		body = p.content.View(inner, h)
	}
	body = render.Block(body, inner, h)

	if !p.opts.Resizable {
		return body
	}
	if inner == 0 {
		return p.handle.View()
	}
	if p.opts.Side == handle.SideLeft {
		return lipgloss.JoinHorizontal(lipgloss.Top, p.handle.View(), body)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, body, p.handle.View())
}

// Close stops the controller. Pending timers become no-ops.
func (p *Model) Close() { p.ctrl.Close() }
