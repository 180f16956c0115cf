// Package clock provides the host time source.
package clock

import (
	"time"

	"nudge/internal/domain/service"
)

type systemClock struct{}

// New returns a clock reading the host's local time, which decides active windows.
func New() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
