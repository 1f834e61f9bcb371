// Package calculator computes technical indicators as pure functions over an
// immutable price series.
package calculator

import "errors"

// ErrInvalidWindow is returned when a window is not positive or exceeds the
// available data.
var ErrInvalidWindow = errors.New("invalid window")
