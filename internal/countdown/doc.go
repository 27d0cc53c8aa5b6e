package countdown

// Package countdown implements the pomodoro countdown state machine. A Timer
// owns one persisted record, arms a single one-shot tick on its clock while
// running, and pushes every change to the slot store, the host and an optional
// update callback.
