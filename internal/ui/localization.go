package ui

import (
	"fmt"

	"github.com/ytget/pomodoro-widget/internal/config"
	"github.com/ytget/pomodoro-widget/internal/model"
	"github.com/ytget/pomodoro-widget/internal/platform"
	"github.com/ytget/pomodoro-widget/internal/view"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyStart             = "start"
	KeyPause             = "pause"
	KeyReset             = "reset"
	KeyTimer             = "timer"
	KeyMinutesFormat     = "minutes_format"
	KeyFinished          = "finished"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyDefaultDuration   = "default_duration"
	KeyRevealOnComplete  = "reveal_on_complete"
	KeyTimerSettings     = "timer_settings"
	KeyInterfaceSettings = "interface_settings"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: platform.FallbackLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" follows the OS locale.
func (l *Localization) SetLanguage(lang string) {
	lang = platform.ResolveLanguage(lang, config.SupportedLanguages)

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[platform.FallbackLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// DurationText returns the localized menu text of a duration label
func (l *Localization) DurationText(label model.DurationLabel) string {
	return fmt.Sprintf(l.GetText(KeyMinutesFormat), label.String())
}

// WidgetTexts returns the captions the widget tree needs
func (l *Localization) WidgetTexts() view.Texts {
	return view.Texts{
		Start: l.GetText(KeyStart),
		Pause: l.GetText(KeyPause),
		Reset: l.GetText(KeyReset),
	}
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Pomodoro Timer",
		KeyStart:             "Start",
		KeyPause:             "Pause",
		KeyReset:             "Reset",
		KeyTimer:             "Timer",
		KeyMinutesFormat:     "%s minutes",
		KeyFinished:          "Time is up",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyDefaultDuration:   "Default Duration",
		KeyRevealOnComplete:  "Bring window forward when finished",
		KeyTimerSettings:     "Timer Settings",
		KeyInterfaceSettings: "Interface Settings",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Помодоро таймер",
		KeyStart:             "Старт",
		KeyPause:             "Пауза",
		KeyReset:             "Сброс",
		KeyTimer:             "Таймер",
		KeyMinutesFormat:     "%s минут",
		KeyFinished:          "Время вышло",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyDefaultDuration:   "Длительность по умолчанию",
		KeyRevealOnComplete:  "Показывать окно по окончании",
		KeyTimerSettings:     "Настройки таймера",
		KeyInterfaceSettings: "Настройки интерфейса",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Temporizador Pomodoro",
		KeyStart:             "Iniciar",
		KeyPause:             "Pausar",
		KeyReset:             "Reiniciar",
		KeyTimer:             "Temporizador",
		KeyMinutesFormat:     "%s minutos",
		KeyFinished:          "O tempo acabou",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyDefaultDuration:   "Duração Padrão",
		KeyRevealOnComplete:  "Trazer a janela para frente ao terminar",
		KeyTimerSettings:     "Configurações do Temporizador",
		KeyInterfaceSettings: "Configurações da Interface",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
	}
}
