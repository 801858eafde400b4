// Package clock provides an injectable time source so that expiry and
// rate-limit logic can be tested without real time passing.
package clock

import "time"

// Clock is a source of the current time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// New returns a Clock backed by the system time.
func New() Clock { return realClock{} }
