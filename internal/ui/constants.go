package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Window sizing
const (
	WindowWidth  float32 = 220
	WindowHeight float32 = 260
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 300
)

// Tooltip behavior
const (
	SettingsSavedAutoHide = 1500 * time.Millisecond
)
