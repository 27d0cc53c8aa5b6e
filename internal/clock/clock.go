package clock

import "time"

// Timer represents a pending callback that can be stopped
type Timer interface {
	Stop() bool
}

// Clock schedules one-shot callbacks
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

// System is the Clock backed by the runtime timers
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func (systemClock) Now() time.Time {
	return time.Now()
}
