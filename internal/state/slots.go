package state

import (
	"github.com/ytget/pomodoro-widget/internal/model"
)

// Slot keys, shared with the original widget's synced state names
const (
	KeyTimerMenuValue   = "timerMenuValue"
	KeyTimerValue       = "timerValue"
	KeyIsRunning        = "isRunning"
	KeyTimeRemaining    = "timeRemaining"
	KeyArcStartingAngle = "arcData.startingAngle"
	KeyArcEndingAngle   = "arcData.endingAngle"
	KeyArcInnerRadius   = "arcData.innerRadius"
)

// Slots reads and writes one widget's record. A non-empty namespace prefixes
// every key so several widgets can share a store.
type Slots struct {
	store     Store
	namespace string
}

// NewSlots creates slots over store for the widget namespace
func NewSlots(store Store, namespace string) *Slots {
	return &Slots{store: store, namespace: namespace}
}

// Store returns the underlying store
func (s *Slots) Store() Store {
	return s.store
}

func (s *Slots) key(name string) string {
	if s.namespace == "" {
		return name
	}
	return s.namespace + "." + name
}

// Load returns the persisted record, filling unset slots with defaults.
// A stored label outside the closed set falls back to the default label.
func (s *Slots) Load() model.TimerState {
	def := model.DefaultTimerState()

	label, err := model.ParseDurationLabel(s.store.StringWithFallback(s.key(KeyTimerMenuValue), string(def.Label)))
	if err != nil {
		label = def.Label
	}
	duration := int64(s.store.IntWithFallback(s.key(KeyTimerValue), int(label.Millis())))

	return model.TimerState{
		Label:       label,
		DurationMs:  duration,
		RemainingMs: int64(s.store.IntWithFallback(s.key(KeyTimeRemaining), int(duration))),
		IsRunning:   s.store.BoolWithFallback(s.key(KeyIsRunning), def.IsRunning),
		Arc: model.ArcData{
			StartingAngle: s.store.FloatWithFallback(s.key(KeyArcStartingAngle), def.Arc.StartingAngle),
			EndingAngle:   s.store.FloatWithFallback(s.key(KeyArcEndingAngle), def.Arc.EndingAngle),
			InnerRadius:   s.store.FloatWithFallback(s.key(KeyArcInnerRadius), def.Arc.InnerRadius),
		},
	}
}

// Save writes every slot of the record
func (s *Slots) Save(st model.TimerState) {
	s.SetLabel(st.Label, st.DurationMs)
	s.SetRemaining(st.RemainingMs)
	s.SetRunning(st.IsRunning)
	s.SetArc(st.Arc)
}

// SetLabel writes the selected label and its duration
func (s *Slots) SetLabel(label model.DurationLabel, durationMs int64) {
	s.store.SetString(s.key(KeyTimerMenuValue), string(label))
	s.store.SetInt(s.key(KeyTimerValue), int(durationMs))
}

// SetRemaining writes the remaining milliseconds
func (s *Slots) SetRemaining(ms int64) {
	s.store.SetInt(s.key(KeyTimeRemaining), int(ms))
}

// SetRunning writes the running flag
func (s *Slots) SetRunning(running bool) {
	s.store.SetBool(s.key(KeyIsRunning), running)
}

// SetArc writes the dial arc
func (s *Slots) SetArc(arc model.ArcData) {
	s.store.SetFloat(s.key(KeyArcStartingAngle), arc.StartingAngle)
	s.store.SetFloat(s.key(KeyArcEndingAngle), arc.EndingAngle)
	s.store.SetFloat(s.key(KeyArcInnerRadius), arc.InnerRadius)
}

// Clear removes every slot of the record
func (s *Slots) Clear() {
	for _, k := range []string{
		KeyTimerMenuValue, KeyTimerValue, KeyIsRunning, KeyTimeRemaining,
		KeyArcStartingAngle, KeyArcEndingAngle, KeyArcInnerRadius,
	} {
		s.store.RemoveValue(s.key(k))
	}
}

// Initialized reports whether a record has been written for the widget
func (s *Slots) Initialized() bool {
	return s.store.StringWithFallback(s.key(KeyTimerMenuValue), "") != ""
}
