package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// Resolver maps pressed keys to actions. Help rendering reads the same
// table, so a key shown in the help overlay is always one that dispatches.
type Resolver struct {
	actions  map[string]Action   // key -> action
	bindings map[Action]Binding  // action -> merged binding
	contexts map[string][]Action // context -> actions in declaration order
}

// NewResolver creates a resolver from bindings. An action declared in
// several contexts keeps the first description and the union of its keys.
// A key bound twice dispatches to the last action declaring it.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions:  make(map[string]Action),
		bindings: make(map[Action]Binding),
		contexts: make(map[string][]Action),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.actions[k] = b.Action
		}

		merged, ok := r.bindings[b.Action]
		if !ok {
			merged = Binding{Action: b.Action, Description: b.Description, Context: b.Context}
		}
		for _, k := range b.Keys {
			if !slices.Contains(merged.Keys, k) {
				merged.Keys = append(merged.Keys, k)
			}
		}
		r.bindings[b.Action] = merged

		if !slices.Contains(r.contexts[b.Context], b.Action) {
			r.contexts[b.Context] = append(r.contexts[b.Context], b.Action)
		}
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys that dispatch to an action, in declaration
// order. Keys later rebound to another action are left out.
func (r *Resolver) KeysFor(action Action) []string {
	b, ok := r.bindings[action]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(b.Keys))
	for _, k := range b.Keys {
		if r.actions[k] == action {
			keys = append(keys, k)
		}
	}
	return keys
}

// Key returns the help entry for an action. The first dispatching key is
// the label; an action with no keys left is disabled.
func (r *Resolver) Key(action Action) key.Binding {
	keys := r.KeysFor(action)
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keyLabel(keys[0]), r.bindings[action].Description),
	)
}

// Context returns the help entries of one context in declaration order.
func (r *Resolver) Context(context string) []key.Binding {
	actions := r.contexts[context]
	out := make([]key.Binding, 0, len(actions))
	for _, a := range actions {
		out = append(out, r.Key(a))
	}
	return out
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
