// Package styles holds the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Primary   lipgloss.Color // handle highlight, focused cards
	Secondary lipgloss.Color // reset flash, topic gradient end

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgTooltip lipgloss.Color
	BgBadge   lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles.
type Styles struct {
	Base   lipgloss.Style
	Muted  lipgloss.Style
	Subtle lipgloss.Style
	Title  lipgloss.Style

	HandleIdle   lipgloss.Style
	HandleActive lipgloss.Style
	HandleReset  lipgloss.Style
	Tooltip      lipgloss.Style

	Badge      lipgloss.Style
	Card       lipgloss.Style
	CardActive lipgloss.Style
	Status     lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgTooltip: lipgloss.Color("#1f2937"),
	BgBadge:   lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	card := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),

		HandleIdle:   lipgloss.NewStyle().Foreground(t.FgSubtle),
		HandleActive: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		HandleReset:  lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Tooltip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(t.BgTooltip).
			Padding(0, 1),

		Badge: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Background(t.BgBadge).
			Padding(0, 1),
		Card:       card,
		CardActive: card.BorderForeground(t.BorderFocus),
		Status:     lipgloss.NewStyle().Foreground(t.FgMuted),
	}
}
