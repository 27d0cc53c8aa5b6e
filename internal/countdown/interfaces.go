package countdown

import (
	"time"

	"github.com/ytget/pomodoro-widget/internal/model"
)

// Controller defines the interface hosts drive the countdown through.
type Controller interface {
	ID() string
	SetUpdateCallback(func(model.TimerState))
	Snapshot() model.TimerState

	Start()
	Pause()
	Toggle()

	// Reset stops the countdown and restores the full duration after the default grace delay
	Reset()

	// ResetWith restores targetMs (or the full duration when zero) after grace
	ResetWith(grace time.Duration, targetMs int64)

	// SelectDuration switches to another label, pausing first when running
	SelectDuration(label model.DurationLabel)

	Close()
}

// Host is the embedding environment's external representation of the widget.
// Implementations should treat a vanished widget as a no-op.
type Host interface {
	SetLabel(label string)
	Reveal()
}

type noopHost struct{}

func (noopHost) SetLabel(string) {}
func (noopHost) Reveal()         {}
