package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pomodoro-widget/internal/config"
	"github.com/ytget/pomodoro-widget/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	durationSelect *widget.Select
	languageSelect *widget.Select
	revealCheck    *widget.Check

	durationByText map[string]model.DurationLabel
	languageByText map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings were written.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Default duration selection
	sd.durationByText = make(map[string]model.DurationLabel)
	durationOptions := []string{}
	for _, label := range sd.settings.GetDurationOptions() {
		text := l.DurationText(label)
		sd.durationByText[text] = label
		durationOptions = append(durationOptions, text)
	}
	sd.durationSelect = widget.NewSelect(durationOptions, nil)

	// Language selection, system default first
	sd.languageByText = make(map[string]string)
	languageLabels := sd.settings.GetLanguageOptions()
	codes := make([]string, 0, len(languageLabels))
	for code := range languageLabels {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if codes[i] == config.DefaultLanguage || codes[j] == config.DefaultLanguage {
			return codes[i] == config.DefaultLanguage
		}
		return codes[i] < codes[j]
	})
	languageOptions := []string{}
	for _, code := range codes {
		sd.languageByText[languageLabels[code]] = code
		languageOptions = append(languageOptions, languageLabels[code])
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.revealCheck = widget.NewCheck(l.GetText(KeyRevealOnComplete), nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyTimerSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyDefaultDuration)+":"),
		sd.durationSelect,
		sd.revealCheck,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.durationSelect.SetSelected(sd.localization.DurationText(sd.settings.GetDefaultDuration()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.revealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if label, ok := sd.durationByText[sd.durationSelect.Selected]; ok {
		sd.settings.SetDefaultDuration(label)
	}

	if code, ok := sd.languageByText[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	sd.settings.SetAutoRevealOnComplete(sd.revealCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
