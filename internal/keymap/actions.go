// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchPanel Action = "switch_panel"
	ActionFilter      Action = "filter"
	ActionHelp        Action = "help"

	// Batch list
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"

	// Panel resizing
	ActionShrink      Action = "shrink"
	ActionShrinkLarge Action = "shrink_large"
	ActionGrow        Action = "grow"
	ActionGrowLarge   Action = "grow_large"

	// Filter input
	ActionConfirm Action = "confirm"
	ActionCancel  Action = "cancel"
)
