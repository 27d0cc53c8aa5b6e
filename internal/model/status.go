package model

// TimerStatus is the derived lifecycle state of a countdown
type TimerStatus string

const (
	// TimerStatusIdle means the countdown sits at its full duration
	TimerStatusIdle TimerStatus = "Idle"

	// TimerStatusRunning means ticks are being armed
	TimerStatusRunning TimerStatus = "Running"

	// TimerStatusPaused means the countdown was stopped part way
	TimerStatusPaused TimerStatus = "Paused"

	// TimerStatusFinished means the countdown reached zero
	TimerStatusFinished TimerStatus = "Finished"
)

// String returns the string representation of TimerStatus
func (ts TimerStatus) String() string {
	return string(ts)
}

// IsActive returns true if ticks are expected to fire
func (ts TimerStatus) IsActive() bool {
	return ts == TimerStatusRunning
}

// CanStart returns true if a start request would change the status
func (ts TimerStatus) CanStart() bool {
	return ts != TimerStatusRunning
}

// IsFinished returns true once the countdown has run out
func (ts TimerStatus) IsFinished() bool {
	return ts == TimerStatusFinished
}
