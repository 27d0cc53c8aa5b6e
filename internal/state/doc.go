package state

// Package state persists the countdown record as named key-value slots. Store is
// the host surface (fyne.Preferences satisfies it directly); SQLiteStore backs
// headless runs; Slots maps the timer record onto slot keys.
