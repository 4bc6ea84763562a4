package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding maps keys to an action.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "animation", "scroll"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
	{ActionHelp, []string{"?"}, "help", "global"},

	// Animation
	{ActionToggleAnimation, []string{" "}, "start/stop drift", "animation"},
	{ActionFaster, []string{"+", "="}, "faster", "animation"},
	{ActionSlower, []string{"-"}, "slower", "animation"},
	{ActionEasing, []string{"e"}, "toggle easing", "animation"},

	// Scroll
	{ActionScrollDown, []string{"j", "down"}, "scroll down", "scroll"},
	{ActionScrollUp, []string{"k", "up"}, "scroll up", "scroll"},
	{ActionPageDown, []string{"pgdown", "ctrl+d"}, "fling down", "scroll"},
	{ActionPageUp, []string{"pgup", "ctrl+u"}, "fling up", "scroll"},
}

// Help adapts a resolver's bindings to help.KeyMap.
type Help struct {
	Short []key.Binding
	Full  [][]key.Binding
}

// Help groups the bindings for the help overlay.
func (r *Resolver) Help() Help {
	return Help{
		Short: []key.Binding{
			r.Key(ActionToggleAnimation),
			r.Key(ActionFaster),
			r.Key(ActionSlower),
			r.Key(ActionHelp),
			r.Key(ActionQuit),
		},
		Full: [][]key.Binding{
			r.Context("scroll"),
			r.Context("animation"),
			r.Context("global"),
		},
	}
}

// ShortHelp implements help.KeyMap.
func (h Help) ShortHelp() []key.Binding {
	return h.Short
}

// FullHelp implements help.KeyMap.
func (h Help) FullHelp() [][]key.Binding {
	return h.Full
}
