package diagnostic

import "log/slog"

// Notifier receives advisory deprecation notices. Notices never affect
// control flow; delivery is fire-and-forget.
type Notifier interface {
	Deprecated(message string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(message string)

func (f NotifierFunc) Deprecated(message string) {
	f(message)
}

// Discard drops all notices.
var Discard Notifier = NotifierFunc(func(string) {})

// Collector records notices in order. Intended for tests.
type Collector struct {
	Messages []string
}

func (c *Collector) Deprecated(message string) {
	c.Messages = append(c.Messages, message)
}

// Slog returns a Notifier that logs notices at warning level.
func Slog(logger *slog.Logger) Notifier {
	return NotifierFunc(func(message string) {
		logger.Warn("deprecated", "message", message)
	})
}
