// Package batchcard renders a course batch as a bordered card.
package batchcard

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/panes/internal/batches"
	"github.com/llehouerou/panes/internal/ui/render"
	"github.com/llehouerou/panes/internal/ui/styles"
)

// Size selects the card width.
type Size int

const (
	SizeMedium Size = iota
	SizeSmall
	SizeLarge
)

// Width returns the outer width of a card of this size, border included.
func (s Size) Width() int {
	switch s {
	case SizeSmall:
		return 24
	case SizeLarge:
		return 36
	default:
		return 30
	}
}

// SizeFor returns the largest size that fits in width, or SizeSmall.
func SizeFor(width int) Size {
	switch {
	case width >= SizeLarge.Width():
		return SizeLarge
	case width >= SizeMedium.Width():
		return SizeMedium
	default:
		return SizeSmall
	}
}

// Options controls card rendering.
type Options struct {
	Size        Size
	Interactive bool // selectable cards highlight their border when Selected
	Selected    bool
	Now         time.Time
}

const (
	imageRows    = 3
	titleLines   = 2
	eduLines     = 2
	noImagesText = "No educator images"
)

// StartLabel describes when a batch starts relative to now.
func StartLabel(b batches.Batch, now time.Time) string {
	date := b.StartsAt.Format("2 Jan, 2006")
	if b.Started(now) {
		return "Ongoing · started " + humanize.RelTime(b.StartsAt, now, "ago", "from now") + " · " + date
	}
	return "Starts " + humanize.RelTime(b.StartsAt, now, "ago", "from now") + " · " + date
}

// Render draws the card.
func Render(b batches.Batch, opts Options) string {
	t := styles.T()
	s := t.S()
	outer := opts.Size.Width()
	inner := outer - 4

	var lines []string
	lines = append(lines, images(b, inner)...)

	header := render.Truncate(b.Language, 4)
	if header != "" {
		header = s.Badge.Render(header) + " "
	}
	topicWidth := max(inner-lipgloss.Width(header), 0)
	lines = append(lines, header+styles.Gradient(render.Truncate(b.Topic, topicWidth), t.Primary, t.Secondary))

	for _, l := range render.Wrap(b.Title, inner, titleLines) {
		lines = append(lines, s.Title.Render(l))
	}
	lines = append(lines,
		meta("◷", StartLabel(b, opts.Now), inner, 1),
		meta("◔", b.Timing, inner, 1),
		meta("◉", strings.Join(b.Educators, ", "), inner, eduLines),
	)

	card := s.Card
	if opts.Interactive && opts.Selected {
		card = s.CardActive
	}
	return card.Width(outer - 2).Render(strings.Join(lines, "\n"))
}

func images(b batches.Batch, width int) []string {
	s := styles.T().S()
	rows := make([]string, imageRows)
	if len(b.EducatorImages) == 0 {
		for i := range rows {
			rows[i] = strings.Repeat(" ", width)
		}
		rows[imageRows/2] = s.Subtle.Render(render.Center(noImagesText, width))
		return rows
	}
	n := min(len(b.EducatorImages), 2)
	tile := max((width-(n-1))/n, 1)
	for i := range rows {
		var parts []string
		for j := 0; j < n; j++ {
			cell := strings.Repeat("░", tile)
			if i == imageRows/2 {
				cell = render.Center(render.Truncate(b.EducatorImages[j], tile), tile)
			}
			parts = append(parts, cell)
		}
		rows[i] = s.Muted.Render(strings.Join(parts, " "))
	}
	return rows
}

// meta renders an icon followed by text wrapped into at most maxLines,
// continuation lines indented under the text.
func meta(icon, text string, width, maxLines int) string {
	s := styles.T().S()
	body := render.Wrap(text, max(width-2, 1), maxLines)
	if len(body) == 0 {
		body = []string{""}
	}
	out := make([]string, len(body))
	for i, l := range body {
		prefix := "  "
		if i == 0 {
			prefix = icon + " "
		}
		out[i] = prefix + s.Muted.Render(l)
	}
	return strings.Join(out, "\n")
}
