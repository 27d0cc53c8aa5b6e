package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/ytget/pomodoro-widget/internal/config"
)

// WindowHost shows the timer's external label in the window title and brings
// the window forward when the countdown finishes
type WindowHost struct {
	app          fyne.App
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
}

// NewWindowHost creates a host for window
func NewWindowHost(app fyne.App, window fyne.Window, settings *config.Settings, localization *Localization) *WindowHost {
	return &WindowHost{
		app:          app,
		window:       window,
		settings:     settings,
		localization: localization,
	}
}

// SetLabel implements countdown.Host
func (h *WindowHost) SetLabel(label string) {
	if h.window == nil {
		return
	}
	fyne.Do(func() {
		h.window.SetTitle(label)
	})
}

// Reveal implements countdown.Host
func (h *WindowHost) Reveal() {
	if h.window == nil {
		return
	}

	if h.app != nil {
		h.app.SendNotification(fyne.NewNotification(
			h.localization.GetText(KeyAppTitle),
			h.localization.GetText(KeyFinished),
		))
	}

	if h.settings != nil && !h.settings.GetAutoRevealOnComplete() {
		slog.Debug("Auto-reveal disabled, leaving window in place")
		return
	}
	fyne.Do(func() {
		h.window.Show()
		h.window.RequestFocus()
	})
}
