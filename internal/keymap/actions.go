// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Animation actions
	ActionToggleAnimation Action = "toggle_animation"
	ActionFaster          Action = "faster"
	ActionSlower          Action = "slower"
	ActionEasing          Action = "toggle_easing"

	// Scrolling actions
	ActionScrollUp   Action = "scroll_up"
	ActionScrollDown Action = "scroll_down"
	ActionPageUp     Action = "page_up"
	ActionPageDown   Action = "page_down"
)
