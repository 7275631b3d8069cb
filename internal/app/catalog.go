package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/panes/internal/batches"
	"github.com/llehouerou/panes/internal/ui/batchcard"
	"github.com/llehouerou/panes/internal/ui/render"
	"github.com/llehouerou/panes/internal/ui/styles"
)

// rowsPerBatch is the height of one entry in the batch list.
const rowsPerBatch = 2

// catalog holds the loaded batches and the selection. Panels render from it
// through content functions, so it lives behind a pointer shared by every
// copy of the model.
type catalog struct {
	all      []batches.Batch
	visible  []batches.Batch
	selected int
	query    string
	loading  bool
	now      func() time.Time
}

func newCatalog(now func() time.Time) *catalog {
	return &catalog{loading: true, now: now}
}

func (c *catalog) set(list []batches.Batch) {
	c.all = list
	c.loading = false
	c.refilter()
}

func (c *catalog) setQuery(q string) {
	if q == c.query {
		return
	}
	c.query = q
	c.refilter()
}

// refilter applies the query and keeps the selected batch selected when it
// is still visible.
func (c *catalog) refilter() {
	prev, hadPrev := c.current()
	c.visible = batches.Filter(c.all, c.query)
	c.selected = 0
	if !hadPrev {
		return
	}
	for i, b := range c.visible {
		if b.ID == prev.ID {
			c.selected = i
			return
		}
	}
}

func (c *catalog) move(delta int) {
	if len(c.visible) == 0 {
		return
	}
	c.selected = max(0, min(len(c.visible)-1, c.selected+delta))
}

func (c *catalog) current() (batches.Batch, bool) {
	if c.selected < 0 || c.selected >= len(c.visible) {
		return batches.Batch{}, false
	}
	return c.visible[c.selected], true
}

// offset returns the first visible entry for a list of the given height.
func (c *catalog) offset(height int) int {
	per := max(height/rowsPerBatch, 1)
	return max(c.selected-per+1, 0)
}

// selectRow selects the entry drawn at list row (0 is the first content row).
func (c *catalog) selectRow(row, height int) {
	if row < 0 {
		return
	}
	i := c.offset(height) + row/rowsPerBatch
	if i < len(c.visible) {
		c.selected = i
	}
}

func (c *catalog) empty(width, height int) string {
	s := styles.T().S()
	msg := "No batches"
	switch {
	case c.loading:
		msg = "Loading…"
	case c.query != "":
		msg = "No batches match " + c.query
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.Subtle.Render(render.Truncate(msg, width)))
}

// listView renders the batch list: title, then language and topic.
func (c *catalog) listView(width, height int) string {
	if len(c.visible) == 0 {
		return c.empty(width, height)
	}
	s := styles.T().S()
	var lines []string
	for i := c.offset(height); i < len(c.visible) && len(lines) < height; i++ {
		b := c.visible[i]
		marker := "  "
		title := s.Base.Render(render.Truncate(b.Title, width-2))
		if i == c.selected {
			marker = s.HandleActive.Render("▸ ")
			title = s.Title.Render(render.Truncate(b.Title, width-2))
		}
		lines = append(lines,
			marker+title,
			"  "+s.Muted.Render(render.Truncate(b.Language+" · "+b.Topic, width-2)),
		)
	}
	return strings.Join(lines, "\n")
}

// detailsView renders every field of the selected batch.
func (c *catalog) detailsView(width, height int) string {
	b, ok := c.current()
	if !ok {
		return c.empty(width, height)
	}
	s := styles.T().S()
	var lines []string
	for _, l := range render.Wrap(b.Title, width, 3) {
		lines = append(lines, s.Title.Render(l))
	}
	field := func(label, value string) {
		lines = append(lines, "", s.Muted.Render(label))
		for _, l := range render.Wrap(value, width, 3) {
			lines = append(lines, s.Base.Render(l))
		}
	}
	field("Topic", b.Topic)
	field("Language", b.Language)
	field("Starts", batchcard.StartLabel(b, c.now()))
	field("Timing", b.Timing)
	field("Educators", strings.Join(b.Educators, ", "))
	return strings.Join(lines, "\n")
}

// cardView renders the selected batch as a card centred in the area.
func (c *catalog) cardView(width, height int) string {
	b, ok := c.current()
	if !ok {
		return c.empty(width, height)
	}
	card := batchcard.Render(b, batchcard.Options{
		Size:        batchcard.SizeFor(width),
		Interactive: true,
		Selected:    true,
		Now:         c.now(),
	})
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
