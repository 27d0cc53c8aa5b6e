package ui

import (
	"log/slog"
	"sort"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pomodoro-widget/internal/config"
	"github.com/ytget/pomodoro-widget/internal/countdown"
	"github.com/ytget/pomodoro-widget/internal/model"
	"github.com/ytget/pomodoro-widget/internal/view"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	timer        countdown.Controller
	settings     *config.Settings
	localization *Localization

	panel       *TimerPanel
	settingsBtn *widget.Button

	// label the duration menu was last built for
	menuLabel model.DurationLabel
}

// NewRootUI creates and initializes the main UI around timer
func NewRootUI(window fyne.Window, app fyne.App, timer countdown.Controller, settings *config.Settings, localization *Localization) *RootUI {
	ui := &RootUI{
		window:       window,
		app:          app,
		timer:        timer,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// Set up callback for timer updates
	timer.SetUpdateCallback(ui.onTimerUpdate)

	ui.applyDefaultDuration()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.panel = NewTimerPanel(ui.timer, ui.localization)
	ui.menuLabel = ui.panel.State().Label

	ui.createMenu()

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewHBox(layout.NewSpacer(), ui.settingsBtn)

	ui.window.SetContent(container.NewBorder(topPanel, nil, nil, nil, container.NewCenter(ui.panel.Content())))
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Timer submenu mirrors the widget's property menu
	timerMenu := fyne.NewMenu(ui.localization.GetText(KeyTimer))
	for _, item := range view.DurationMenu(ui.menuLabel) {
		propertyName := item.PropertyName
		for _, option := range item.Options {
			value := option.Option
			text := option.Label
			if label, err := model.ParseDurationLabel(value); err == nil {
				text = ui.localization.DurationText(label)
			}
			menuItem := fyne.NewMenuItem(text, func() {
				view.HandleMenuChange(propertyName, value, ui.timer)
			})
			menuItem.Checked = value == item.SelectedOption
			timerMenu.Items = append(timerMenu.Items, menuItem)
		}
	}

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		timerMenu,
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.panel.RefreshTexts()

	// Recreate menu to update texts and checkmarks
	ui.createMenu()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.applyDefaultDuration()

		popup := widget.NewPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
		popup.Show()
		time.AfterFunc(SettingsSavedAutoHide, func() {
			fyne.Do(popup.Hide)
		})
	})
}

// applyDefaultDuration switches an idle timer to the configured default.
// A paused, running or finished countdown keeps its duration.
func (ui *RootUI) applyDefaultDuration() {
	s := ui.timer.Snapshot()
	def := ui.settings.GetDefaultDuration()
	if s.Status() != model.TimerStatusIdle || s.Label == def {
		return
	}

	slog.Debug("Applying default duration", "from", s.Label.String(), "to", def.String())
	ui.timer.SelectDuration(def)
}

// onTimerUpdate handles record updates from the timer
func (ui *RootUI) onTimerUpdate(s model.TimerState) {
	fyne.Do(func() {
		ui.applyState(s)
	})
}

// applyState shows s. Call on the UI goroutine.
func (ui *RootUI) applyState(s model.TimerState) {
	ui.panel.Apply(s)

	if s.Label != ui.menuLabel {
		ui.menuLabel = s.Label
		ui.createMenu()
	}
}
