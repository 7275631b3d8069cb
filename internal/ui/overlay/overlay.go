// Package overlay composites floating boxes such as tooltips onto a
// rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place draws box over base with its top-left corner at column x, row y.
// The box is shifted left and up to stay inside the base view; rows that
// fall outside are dropped. Styling on both sides is preserved.
func Place(base, box string, x, y int) string {
	if box == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")

	width := 0
	for _, l := range baseLines {
		width = max(width, ansi.StringWidth(l))
	}
	boxWidth := 0
	for _, l := range boxLines {
		boxWidth = max(boxWidth, ansi.StringWidth(l))
	}

	if x+boxWidth > width {
		x = width - boxWidth
	}
	if y+len(boxLines) > len(baseLines) {
		y = len(baseLines) - len(boxLines)
	}
	x = max(x, 0)
	y = max(y, 0)

	for i, boxLine := range boxLines {
		row := y + i
		if row >= len(baseLines) {
			break
		}
		line := baseLines[row]
		if w := ansi.StringWidth(line); w < x {
			line += strings.Repeat(" ", x-w)
		}
		end := x + ansi.StringWidth(boxLine)
		out := ansi.Cut(line, 0, x) + boxLine
		if lw := ansi.StringWidth(line); end < lw {
			out += ansi.Cut(line, end, lw)
		}
		baseLines[row] = out
	}
	return strings.Join(baseLines, "\n")
}
