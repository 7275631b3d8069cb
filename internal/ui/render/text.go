// Package render provides text layout helpers for fixed-width cells.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Clean drops control characters, keeping tabs as spaces.
func Clean(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, s)
}

// Truncate shortens s to at most width cells, ending with "…" when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(Clean(s), width, "…")
}

// Fit truncates s and pads it with spaces to exactly width cells.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(Truncate(s, width), width)
}

// Center places s in the middle of width cells.
func Center(s string, width int) string {
	s = Truncate(s, width)
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// Wrap breaks s into at most maxLines lines of width cells. The last line
// is truncated when the text does not fit.
func Wrap(s string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	curWidth := 0
	words := strings.Fields(Clean(s))
	for i, w := range words {
		ww := runewidth.StringWidth(w)
		switch {
		case curWidth == 0:
			cur.WriteString(w)
			curWidth = ww
		case curWidth+1+ww <= width:
			cur.WriteByte(' ')
			cur.WriteString(w)
			curWidth += 1 + ww
		default:
			if len(lines) == maxLines-1 {
				rest := cur.String() + " " + strings.Join(words[i:], " ")
				return append(lines, Truncate(rest, width))
			}
			lines = append(lines, Truncate(cur.String(), width))
			cur.Reset()
			cur.WriteString(w)
			curWidth = ww
		}
	}
	if curWidth > 0 {
		lines = append(lines, Truncate(cur.String(), width))
	}
	return lines
}

// Row puts left and right at the two ends of width cells.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Rule returns a horizontal line of width cells.
func Rule(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("─", width)
}

// Block fits styled text into a width by height box: each line is cut or
// padded to width cells and the block is cut or padded to height lines.
func Block(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = ansi.Truncate(lines[i], width, "")
		}
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}
