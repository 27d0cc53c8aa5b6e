package model

import (
	"fmt"
	"strconv"
)

// TimerState is the persisted record owned by one countdown widget
type TimerState struct {
	Label       DurationLabel `json:"timerMenuValue"`
	DurationMs  int64         `json:"timerValue"`
	RemainingMs int64         `json:"timeRemaining"`
	IsRunning   bool          `json:"isRunning"`
	Arc         ArcData       `json:"arcData"`
}

// DefaultTimerState returns the record of a freshly placed widget
func DefaultTimerState() TimerState {
	return NewTimerState(DefaultDurationLabel)
}

// NewTimerState returns an idle record for the given label
func NewTimerState(label DurationLabel) TimerState {
	ms := label.Millis()
	return TimerState{
		Label:       label,
		DurationMs:  ms,
		RemainingMs: ms,
		IsRunning:   false,
		Arc:         FullArc(),
	}
}

// Status derives the lifecycle state from the record
func (s TimerState) Status() TimerStatus {
	switch {
	case s.IsRunning:
		return TimerStatusRunning
	case s.RemainingMs <= 0:
		return TimerStatusFinished
	case s.RemainingMs >= s.DurationMs:
		return TimerStatusIdle
	default:
		return TimerStatusPaused
	}
}

// Readout returns the MM:SS text shown on the dial
func (s TimerState) Readout() string {
	return FormatRemaining(s.RemainingMs)
}

// ArcConsistent reports whether the stored arc matches the one derived from the
// remaining time. Idle records carry the full arc.
func (s TimerState) ArcConsistent() bool {
	return s.Arc == ArcFor(s.RemainingMs, s.DurationMs)
}

// FormatRemaining renders milliseconds as MM:SS. Overshoot below zero shows 00:00.
func FormatRemaining(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	minutes := (ms / 60000) % 60
	seconds := (ms / 1000) % 60
	return fmt.Sprintf("%s:%s", padClock(minutes), padClock(seconds))
}

func padClock(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	s := strconv.FormatInt(n, 10)
	if len(s) > 2 {
		s = s[:2]
	}
	return s
}
