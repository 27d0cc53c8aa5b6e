package metrics

// Transition names recorded by IncTransition
const (
	TransitionStart          = "start"
	TransitionPause          = "pause"
	TransitionReset          = "reset"
	TransitionSelectDuration = "select_duration"
	TransitionComplete       = "complete"
)

// Recorder defines observability hooks for the countdown loop. Implementations
// must be safe for concurrent use.
type Recorder interface {
	IncTick()
	IncStaleTick()
	IncTransition(name string)
	SetRemaining(ms int64)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncTick()             {}
func (NoopRecorder) IncStaleTick()        {}
func (NoopRecorder) IncTransition(string) {}
func (NoopRecorder) SetRemaining(int64)   {}
