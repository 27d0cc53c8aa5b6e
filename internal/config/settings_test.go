package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/google/uuid"

	"github.com/ytget/pomodoro-widget/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestWidgetID(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	id := settings.GetWidgetID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("Generated widget id should be a UUID, got %q: %v", id, err)
	}

	// Stable across calls
	if again := settings.GetWidgetID(); again != id {
		t.Errorf("Expected widget id %s to persist, got %s", id, again)
	}
}

func TestDefaultDuration(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if label := settings.GetDefaultDuration(); label != model.DefaultDurationLabel {
		t.Errorf("Expected default duration %s, got %s", model.DefaultDurationLabel, label)
	}

	settings.SetDefaultDuration(model.Duration45)
	if label := settings.GetDefaultDuration(); label != model.Duration45 {
		t.Errorf("Expected duration %s, got %s", model.Duration45, label)
	}

	// Corrupt value falls back
	app.Preferences().SetString(KeyDefaultDuration, "15")
	if label := settings.GetDefaultDuration(); label != model.DefaultDurationLabel {
		t.Errorf("Unknown duration should fall back to %s, got %s", model.DefaultDurationLabel, label)
	}
	if stored := app.Preferences().String(KeyDefaultDuration); stored != model.DefaultDurationLabel.String() {
		t.Errorf("Fallback should be written back, got %q", stored)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")

	if retrievedLang := settings.GetLanguage(); retrievedLang != "ru" {
		t.Errorf("Expected language 'ru', got %s", retrievedLang)
	}
	if resolved := settings.ResolvedLanguage(); resolved != "ru" {
		t.Errorf("Expected resolved language 'ru', got %s", resolved)
	}
}

func TestAutoRevealOnComplete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetAutoRevealOnComplete() {
		t.Error("Auto reveal should default to enabled")
	}

	settings.SetAutoRevealOnComplete(false)
	if settings.GetAutoRevealOnComplete() {
		t.Error("Auto reveal should be disabled after SetAutoRevealOnComplete(false)")
	}
}

func TestGetDurationOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetDurationOptions()
	expectedOptions := []model.DurationLabel{model.Duration45, model.Duration25, model.Duration10, model.Duration5}

	if len(options) != len(expectedOptions) {
		t.Fatalf("Expected %d duration options, got %d", len(expectedOptions), len(options))
	}

	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Duration option %d: expected %s, got %s", i, expected, options[i])
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
