package countdown

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/pomodoro-widget/internal/clock"
	"github.com/ytget/pomodoro-widget/internal/metrics"
	"github.com/ytget/pomodoro-widget/internal/model"
	"github.com/ytget/pomodoro-widget/internal/state"
)

// Loop timing
const (
	// TickInterval is the period of the countdown loop
	TickInterval = 500 * time.Millisecond

	// ResetGrace delays a manual reset past any in-flight tick
	ResetGrace = 500 * time.Millisecond

	// PauseSettleDelay lets a paused loop settle before a duration change
	PauseSettleDelay = 500 * time.Millisecond

	// DurationResetGrace is the reset grace used by a duration change
	DurationResetGrace = 100 * time.Millisecond
)

// External label texts
const (
	Title         = "Pomodoro Timer"
	FinishedLabel = Title + " - Finished"
)

const tickMs = int64(TickInterval / time.Millisecond)

// RunningLabel returns the external label shown while counting down
func RunningLabel(remainingMs int64) string {
	return Title + " " + model.FormatRemaining(remainingMs)
}

// Options configures a Timer. Zero values fall back to the system clock,
// a no-op host, slog.Default and a no-op recorder.
type Options struct {
	ID       string
	Clock    clock.Clock
	Host     Host
	Logger   *slog.Logger
	Recorder metrics.Recorder
}

type field uint8

const (
	fieldLabel field = 1 << iota
	fieldRemaining
	fieldRunning
	fieldArc

	fieldAll = fieldLabel | fieldRemaining | fieldRunning | fieldArc
)

// change collects what a handler touched so it can be committed after the
// state lock is released.
type change struct {
	fields     field
	label      string
	reveal     bool
	transition string
}

// Timer is the countdown state machine
type Timer struct {
	// mu serialises handlers; commitMu orders store writes and host effects.
	// commitMu is always taken before mu is released.
	mu       sync.Mutex
	commitMu sync.Mutex

	id      string
	state   model.TimerState
	epoch   uint64
	pending clock.Timer
	closed  bool

	slots    *state.Slots
	clock    clock.Clock
	host     Host
	logger   *slog.Logger
	recorder metrics.Recorder
	onUpdate func(model.TimerState)
}

// New creates a timer over the widget's slots in store. The persisted record is
// loaded (defaults on first use) and written back; a record that was running
// when it was saved resumes ticking.
func New(store state.Store, opts Options) *Timer {
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}
	if opts.Clock == nil {
		opts.Clock = clock.System
	}
	if opts.Host == nil {
		opts.Host = noopHost{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}

	t := &Timer{
		id:       opts.ID,
		slots:    state.NewSlots(store, opts.ID),
		clock:    opts.Clock,
		host:     opts.Host,
		logger:   opts.Logger.With("widget_id", opts.ID),
		recorder: opts.Recorder,
	}

	t.mu.Lock()
	t.state = t.slots.Load()
	t.state.Arc = model.ArcFor(t.state.RemainingMs, t.state.DurationMs)
	if t.state.IsRunning {
		t.logger.Info("Resuming countdown", "remaining_ms", t.state.RemainingMs)
		t.arm()
	}
	t.finish(change{fields: fieldAll})

	return t
}

// ID returns the widget instance id
func (t *Timer) ID() string {
	return t.id
}

// SetUpdateCallback sets the callback invoked after every committed change.
// The callback must not call back into the timer synchronously.
func (t *Timer) SetUpdateCallback(callback func(model.TimerState)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onUpdate = callback
}

// Snapshot returns a copy of the current record
func (t *Timer) Snapshot() model.TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Start begins or resumes the countdown. A finished countdown is first reset to
// its full duration. No-op while running.
func (t *Timer) Start() {
	t.mu.Lock()
	if t.closed || t.state.IsRunning {
		t.mu.Unlock()
		return
	}

	ch := change{fields: fieldRunning, transition: metrics.TransitionStart}
	if t.state.RemainingMs <= 0 {
		t.applyReset(0)
		ch.fields = fieldAll
		ch.label = Title
	}
	t.state.IsRunning = true
	t.arm()

	t.logger.Debug("Countdown started", "remaining_ms", t.state.RemainingMs, "duration_ms", t.state.DurationMs)
	t.finish(ch)
}

// Pause stops the countdown without touching the remaining time. The pending
// tick stays armed and turns into a no-op when it fires.
func (t *Timer) Pause() {
	t.mu.Lock()
	if !t.state.IsRunning {
		t.mu.Unlock()
		return
	}

	t.state.IsRunning = false
	t.disarm()

	t.logger.Debug("Countdown paused", "remaining_ms", t.state.RemainingMs)
	t.finish(change{fields: fieldRunning, transition: metrics.TransitionPause})
}

// Toggle pauses a running countdown and starts any other
func (t *Timer) Toggle() {
	if t.Snapshot().IsRunning {
		t.Pause()
		return
	}
	t.Start()
}

// Reset stops the countdown and restores the full duration after ResetGrace
func (t *Timer) Reset() {
	t.ResetWith(ResetGrace, 0)
}

// ResetWith stops the countdown immediately and, once grace has elapsed, sets
// the remaining time to targetMs (the full duration when targetMs is zero).
func (t *Timer) ResetWith(grace time.Duration, targetMs int64) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}

	t.state.IsRunning = false
	t.disarm()

	if grace <= 0 {
		t.applyReset(targetMs)
		t.finish(change{fields: fieldAll, label: Title, transition: metrics.TransitionReset})
		return
	}

	t.finish(change{fields: fieldRunning})
	t.after(grace, func() {
		t.applyReset(targetMs)
		t.finish(change{fields: fieldAll, label: Title, transition: metrics.TransitionReset})
	})
}

// SelectDuration switches the countdown to label. A running countdown is paused
// and given PauseSettleDelay before the change; the change itself lands after
// DurationResetGrace and leaves the timer idle at the new full duration.
func (t *Timer) SelectDuration(label model.DurationLabel) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}

	delay := DurationResetGrace
	ch := change{}
	if t.state.IsRunning {
		t.state.IsRunning = false
		t.disarm()
		delay += PauseSettleDelay
		ch.fields = fieldRunning
		ch.transition = metrics.TransitionPause
	}
	t.logger.Debug("Duration change requested", "label", label.String(), "delay", delay)
	t.finish(ch)

	t.after(delay, func() {
		t.state.Label = label
		t.state.DurationMs = label.Millis()
		t.state.IsRunning = false
		t.disarm()
		t.applyReset(0)
		t.finish(change{fields: fieldAll, label: Title, transition: metrics.TransitionSelectDuration})
	})
}

// Close disarms the loop. Callbacks that fire afterwards are discarded and
// further operations are ignored. Persisted slots are left as they are.
func (t *Timer) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	t.disarm()
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}

// tick runs one step of the countdown loop for the arm generation epoch.
func (t *Timer) tick(epoch uint64) {
	t.mu.Lock()
	if t.closed || !t.state.IsRunning || epoch != t.epoch {
		t.mu.Unlock()
		t.recorder.IncStaleTick()
		return
	}

	updated := t.state.RemainingMs - tickMs
	t.state.RemainingMs = updated
	t.state.Arc = model.ArcFor(updated, t.state.DurationMs)
	t.recorder.IncTick()

	ch := change{fields: fieldRemaining | fieldArc}
	// Only whole ticks refresh the readout label.
	if updated%tickMs == 0 {
		ch.label = RunningLabel(updated)
	}

	if updated <= 0 {
		t.complete(&ch)
	} else {
		t.arm()
	}

	t.finish(ch)
}

// complete stops a countdown that ran out. Caller holds t.mu.
func (t *Timer) complete(ch *change) {
	t.state.IsRunning = false
	t.disarm()

	ch.fields |= fieldRunning
	ch.label = FinishedLabel
	ch.reveal = true
	ch.transition = metrics.TransitionComplete

	t.logger.Info("Countdown finished", "duration_ms", t.state.DurationMs)
}

// applyReset restores the remaining time and the full arc. Caller holds t.mu.
func (t *Timer) applyReset(targetMs int64) {
	if targetMs == 0 {
		targetMs = t.state.DurationMs
	}
	t.state.RemainingMs = targetMs
	t.state.Arc = model.ArcFor(targetMs, t.state.DurationMs)
}

// arm schedules the next tick and makes it the only live one. Caller holds t.mu.
func (t *Timer) arm() {
	t.epoch++
	epoch := t.epoch
	t.pending = t.clock.AfterFunc(TickInterval, func() { t.tick(epoch) })
}

// disarm invalidates the pending tick without stopping it. Caller holds t.mu.
func (t *Timer) disarm() {
	t.epoch++
}

// after runs fn under t.mu once d has elapsed. fn must end with t.finish.
func (t *Timer) after(d time.Duration, fn func()) {
	t.clock.AfterFunc(d, func() {
		t.mu.Lock()
		if t.closed {
			t.mu.Unlock()
			return
		}
		fn()
	})
}

// finish releases t.mu and commits ch. Caller holds t.mu.
func (t *Timer) finish(ch change) {
	snap := t.state
	callback := t.onUpdate

	t.commitMu.Lock()
	t.mu.Unlock()
	defer t.commitMu.Unlock()

	t.commit(snap, ch, callback)
}

func (t *Timer) commit(snap model.TimerState, ch change, callback func(model.TimerState)) {
	if ch.fields&fieldLabel != 0 {
		t.slots.SetLabel(snap.Label, snap.DurationMs)
	}
	if ch.fields&fieldRemaining != 0 {
		t.slots.SetRemaining(snap.RemainingMs)
	}
	if ch.fields&fieldRunning != 0 {
		t.slots.SetRunning(snap.IsRunning)
	}
	if ch.fields&fieldArc != 0 {
		t.slots.SetArc(snap.Arc)
	}

	if ch.label != "" {
		t.host.SetLabel(ch.label)
	}
	if ch.reveal {
		t.host.Reveal()
	}
	if ch.transition != "" {
		t.recorder.IncTransition(ch.transition)
	}
	t.recorder.SetRemaining(snap.RemainingMs)

	if callback != nil && ch.fields != 0 {
		callback(snap)
	}
}
