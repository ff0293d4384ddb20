package types

import "time"

// Toast is a transient status line shown under the board or dashboard,
// used for load confirmations and store errors.
type Toast struct {
	Level   ToastLevel
	Message string
	Expires time.Time
}

// Expired reports whether the toast has outlived its display window.
func (t Toast) Expired(now time.Time) bool {
	return !t.Expires.After(now)
}

// ToastLevel indicates the severity of a toast
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)
