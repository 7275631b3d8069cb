// Package layout provides pure functions for UI dimension calculations.
package layout

// MinCentreWidth is the narrowest the centre pane may get before the
// layout switches to narrow mode.
const MinCentreWidth = 20

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight int
	FilterHeight int // 0 unless the filter input is shown
	StatusHeight int
	HelpHeight   int // extra rows of the expanded help
}

// ContentHeight calculates the available height for the panel row. This is
// the terminal height minus header, filter, status and help rows.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.FilterHeight
	height -= opts.StatusHeight
	height -= opts.HelpHeight
	return max(height, 0)
}

// Columns holds the rendered widths of the three panes.
type Columns struct {
	Left   int
	Centre int
	Right  int
	Narrow bool // right pane hidden
}

// IsNarrowMode reports whether both side panels and a usable centre pane
// cannot fit in the window.
func IsNarrowMode(windowWidth, left, right int) bool {
	return windowWidth < left+right+MinCentreWidth
}

// ColumnWidths splits the window between the left panel, the centre pane
// and the right panel. Panel widths are the panels' own sizes; the centre
// takes the rest. In narrow mode the right panel is hidden and the left
// panel gives up width until the centre fits, or the window runs out.
func ColumnWidths(windowWidth, left, right int) Columns {
	windowWidth = max(windowWidth, 0)
	left, right = max(left, 0), max(right, 0)

	if !IsNarrowMode(windowWidth, left, right) {
		return Columns{Left: left, Centre: windowWidth - left - right, Right: right}
	}
	left = min(left, max(windowWidth-MinCentreWidth, 0))
	return Columns{Left: left, Centre: windowWidth - left, Narrow: true}
}

// RightOffset returns the screen column where the right panel starts.
func (c Columns) RightOffset() int {
	return c.Left + c.Centre
}
