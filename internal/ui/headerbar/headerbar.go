// Package headerbar renders the top line: one tab per panel, the tab that
// receives resize keys highlighted.
package headerbar

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/panes/internal/ui/render"
	"github.com/llehouerou/panes/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Tab is one panel entry in the header.
type Tab struct {
	Name   string
	Width  int
	Active bool
}

var separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// Render returns the header bar for the given width. The application name
// sits on the left, panel tabs with their current widths on the right.
func Render(title string, tabs []Tab, width int) string {
	if width <= 0 {
		return ""
	}
	s := styles.T().S()

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		label := t.Name + " " + strconv.Itoa(t.Width)
		if t.Active {
			parts = append(parts, s.HandleActive.Render("▸ "+label))
		} else {
			parts = append(parts, s.Muted.Render("  "+label))
		}
	}
	right := strings.Join(parts, separatorStyle.Render(" │ "))
	left := s.Title.Render(title)

	if lipgloss.Width(left)+lipgloss.Width(right)+1 > width {
		return render.Block(right, width, 1)
	}
	return render.Block(render.Row(left, right, width), width, 1)
}
