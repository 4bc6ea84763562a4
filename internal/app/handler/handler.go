// Package handler provides a result type and chain function for input handlers.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result represents the outcome of a handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler doesn't handle the input.
var NotHandled = Result{}

// HandledNoCmd is a convenience for handlers that handle but return no command.
var HandledNoCmd = Result{Handled: true}

// Handled creates a Result indicating the input was handled with a command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle one input value.
type Handler[T any] func(T) Result

// Chain offers in to each handler in order until one handles it.
func Chain[T any](in T, handlers ...Handler[T]) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(in); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
