package ui

// Package ui contains the Fyne-based desktop host for the countdown widget.
// It draws the widget tree, routes clicks and menu picks to the timer, and
// reflects the external label in the window title. All UI strings are
// localized via Localization.
