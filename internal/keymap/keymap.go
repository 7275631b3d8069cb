package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// Binding maps keys to an action, with a description for help.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "list", "resize", "filter"
}

// All contains all key bindings. Resize keys carry no modifiers other than
// shift: alt+left or ctrl+right never resize a panel.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionSwitchPanel, []string{"tab"}, "Switch panel", "global"},
	{ActionFilter, []string{"/"}, "Filter batches", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Batch list
	{ActionMoveUp, []string{"k", "up"}, "Previous batch", "list"},
	{ActionMoveDown, []string{"j", "down"}, "Next batch", "list"},

	// Resizing
	{ActionShrink, []string{"left"}, "Shrink panel", "resize"},
	{ActionShrinkLarge, []string{"shift+left"}, "Shrink panel more", "resize"},
	{ActionGrow, []string{"right"}, "Grow panel", "resize"},
	{ActionGrowLarge, []string{"shift+right"}, "Grow panel more", "resize"},

	// Filter input
	{ActionConfirm, []string{"enter"}, "Apply filter", "filter"},
	{ActionCancel, []string{"esc"}, "Clear filter", "filter"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Key converts a binding to a bubbles key binding for help rendering.
func (b Binding) Key() key.Binding {
	help := ""
	if len(b.Keys) > 0 {
		help = b.Keys[0]
	}
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(help, b.Description),
	)
}

// Help implements help.KeyMap over All.
type Help struct{}

// ShortHelp returns the bindings shown in the status line.
func (Help) ShortHelp() []key.Binding {
	return []key.Binding{
		find(ActionSwitchPanel).Key(),
		find(ActionFilter).Key(),
		find(ActionGrow).Key(),
		find(ActionShrink).Key(),
		find(ActionHelp).Key(),
		find(ActionQuit).Key(),
	}
}

// FullHelp returns all bindings grouped by context.
func (Help) FullHelp() [][]key.Binding {
	contexts := []string{"global", "list", "resize", "filter"}
	groups := make([][]key.Binding, 0, len(contexts))
	for _, ctx := range contexts {
		var group []key.Binding
		for _, b := range ByContext(ctx) {
			group = append(group, b.Key())
		}
		groups = append(groups, group)
	}
	return groups
}

func find(action Action) Binding {
	for _, b := range All {
		if b.Action == action {
			return b
		}
	}
	return Binding{Action: action}
}
