// Package screen holds the headless controllers behind each view of the
// client. A screen owns its view state (filters, pagination, form, busy
// flags), talks to the stores or the API client, and reports outcomes
// through a Toaster. Rendering is out of scope.
package screen

import (
	"github.com/kart-io/logger"
)

// ToastLevel classifies a toast.
type ToastLevel string

const (
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
	ToastInfo    ToastLevel = "info"
)

// Toaster receives user-facing one-shot messages from screens.
type Toaster interface {
	Show(message string, level ToastLevel)
}

// logToaster writes toasts to the structured log. Used when no UI is
// attached, e.g. in the demo server.
type logToaster struct{}

// NewLogToaster returns a Toaster backed by the global logger.
func NewLogToaster() Toaster {
	return logToaster{}
}

func (logToaster) Show(message string, level ToastLevel) {
	switch level {
	case ToastError:
		logger.Warnw("toast", "level", level, "message", message)
	default:
		logger.Infow("toast", "level", level, "message", message)
	}
}
