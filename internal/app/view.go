package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/panes/internal/keymap"
	"github.com/llehouerou/panes/internal/ui/headerbar"
	"github.com/llehouerou/panes/internal/ui/overlay"
	"github.com/llehouerou/panes/internal/ui/render"
	"github.com/llehouerou/panes/internal/ui/styles"
)

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))

// View renders the application UI.
func (m Model) View() string {
	if m.quitting || m.width == 0 || m.height == 0 {
		return ""
	}

	rows := []string{m.headerView()}
	if m.filterHeight() > 0 {
		rows = append(rows, render.Block(m.filter.View(), m.width, 1))
	}

	h := m.panels[panelList].Height()
	if h > 0 {
		var cols []string
		if m.cols.Left > 0 {
			cols = append(cols, render.Block(m.panels[panelList].View(), m.cols.Left, h))
		}
		if m.cols.Centre > 0 {
			cols = append(cols, render.Block(m.cat.cardView(m.cols.Centre, h), m.cols.Centre, h))
		}
		if !m.cols.Narrow && m.cols.Right > 0 {
			cols = append(cols, render.Block(m.panels[panelDetails].View(), m.cols.Right, h))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}

	rows = append(rows, m.statusView())
	if m.help.ShowAll {
		rows = append(rows, m.help.View(keymap.Help{}))
	}
	view := strings.Join(rows, "\n")

	for _, i := range m.visiblePanels() {
		if box, x, y, ok := m.panels[i].Tooltip(); ok {
			view = overlay.Place(view, box, x, y)
		}
	}
	return view
}

func (m Model) headerView() string {
	tabs := make([]headerbar.Tab, 0, len(m.panels))
	for _, i := range m.visiblePanels() {
		p := m.panels[i]
		tabs = append(tabs, headerbar.Tab{
			Name:   p.Title(),
			Width:  p.Width(),
			Active: i == m.active && p.Resizable(),
		})
	}
	return headerbar.Render(appTitle, tabs, m.width)
}

// statusView shows the settled panel sizes, or the last error, with the
// short help on the right.
func (m Model) statusView() string {
	s := styles.T().S()

	var left string
	switch {
	case m.errMsg != "":
		left = errStyle.Render(m.errMsg)
	default:
		parts := make([]string, 0, len(m.panels))
		for i, p := range m.panels {
			parts = append(parts, fmt.Sprintf("%s %s", p.Title(), formatCells(m.sizes[m.names[i]])))
		}
		left = s.Status.Render(strings.Join(parts, " · "))
		if m.host.resizing {
			left += s.HandleActive.Render("  ↔ resizing")
		}
	}

	if m.help.ShowAll {
		return render.Block(left, m.width, 1)
	}
	return render.Block(render.Row(left, m.help.View(keymap.Help{}), m.width), m.width, 1)
}

func formatCells(size float64) string {
	return fmt.Sprintf("%.0f", size)
}
