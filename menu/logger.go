// SPDX-License-Identifier: MIT

package menu

// Logger receives structural events from a menu tree.
// *slog.Logger satisfies it.
//
// Debug: attaches that move a submenu, removals, memento capture.
// Info:  restores.
// Warn:  payloads that could not be deep-copied and are shared instead.
// Error: render output that could not be written.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// logger returns the Logger of the root menu above m.
func (m *Menu[T]) logger() Logger {
	if l := m.top().opts.Logger; l != nil {
		return l
	}

	return nopLogger{}
}

// top returns the outermost menu reachable through parent links.
func (m *Menu[T]) top() *Menu[T] {
	t := m
	for t.parent != nil {
		t = t.parent
	}

	return t
}
