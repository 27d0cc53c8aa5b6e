package config

import (
	"fyne.io/fyne/v2"
	"github.com/google/uuid"

	"github.com/ytget/pomodoro-widget/internal/model"
	"github.com/ytget/pomodoro-widget/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyWidgetID           = "widget_id"
	KeyDefaultDuration    = "default_duration"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultLanguage           = platform.LanguageSystem
	DefaultAutoRevealComplete = true
)

// SupportedLanguages are the UI languages with translations, fallback first
var SupportedLanguages = []string{"en", "ru", "pt"}

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetWidgetID returns the widget instance id, generating one on first use
func (s *Settings) GetWidgetID() string {
	id := s.app.Preferences().String(KeyWidgetID)
	if id == "" {
		id = uuid.NewString()
		s.app.Preferences().SetString(KeyWidgetID, id)
	}
	return id
}

// GetDefaultDuration returns the duration an idle widget starts with
func (s *Settings) GetDefaultDuration() model.DurationLabel {
	label, err := model.ParseDurationLabel(s.app.Preferences().String(KeyDefaultDuration))
	if err != nil {
		s.SetDefaultDuration(model.DefaultDurationLabel)
		return model.DefaultDurationLabel
	}
	return label
}

// SetDefaultDuration sets the duration an idle widget starts with
func (s *Settings) SetDefaultDuration(label model.DurationLabel) {
	s.app.Preferences().SetString(KeyDefaultDuration, label.String())
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// ResolvedLanguage returns the supported language the UI should use
func (s *Settings) ResolvedLanguage() string {
	return platform.ResolveLanguage(s.GetLanguage(), SupportedLanguages)
}

// GetAutoRevealOnComplete returns whether a finished countdown brings the window forward
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether a finished countdown brings the window forward
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetDurationOptions returns the selectable durations in menu order
func (s *Settings) GetDurationOptions() []model.DurationLabel {
	return model.DurationLabels()
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
