package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/pomodoro-widget/internal/clock"
	"github.com/ytget/pomodoro-widget/internal/config"
	"github.com/ytget/pomodoro-widget/internal/countdown"
	"github.com/ytget/pomodoro-widget/internal/model"
)

func newTestRoot(t *testing.T, configure func(*config.Settings)) (*RootUI, *countdown.Timer, *clock.Manual) {
	t.Helper()

	app := test.NewApp()
	settings := config.NewSettings(app)
	settings.SetLanguage("en")
	if configure != nil {
		configure(settings)
	}

	manual := clock.NewManual(time.Unix(0, 0))
	timer := countdown.New(app.Preferences(), countdown.Options{ID: "root", Clock: manual})
	t.Cleanup(timer.Close)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	w := app.NewWindow("")
	t.Cleanup(w.Close)

	return NewRootUI(w, app, timer, settings, localization), timer, manual
}

func TestNewRootUI(t *testing.T) {
	root, _, manual := newTestRoot(t, nil)

	assert.Equal(t, "Pomodoro Timer", root.window.Title())
	assert.Equal(t, 0, manual.Pending(), "default duration already selected")

	menu := root.window.MainMenu()
	require.NotNil(t, menu)
	require.Len(t, menu.Items, 3)

	timerMenu := menu.Items[1]
	assert.Equal(t, "Timer", timerMenu.Label)
	require.Len(t, timerMenu.Items, 4)
	for _, item := range timerMenu.Items {
		assert.Equal(t, item.Label == "25 minutes", item.Checked, item.Label)
	}
}

func TestRootUI_TimerMenuSelectsDuration(t *testing.T) {
	root, timer, manual := newTestRoot(t, nil)

	timerMenu := root.window.MainMenu().Items[1]
	timerMenu.Items[3].Action() // 5 minutes
	manual.Advance(countdown.DurationResetGrace)

	got := timer.Snapshot()
	assert.Equal(t, model.Duration5, got.Label)
	assert.Equal(t, model.FiveMinutesMs, got.RemainingMs)
}

func TestRootUI_AppliesDefaultDurationWhenIdle(t *testing.T) {
	_, timer, manual := newTestRoot(t, func(s *config.Settings) {
		s.SetDefaultDuration(model.Duration45)
	})

	manual.Advance(countdown.DurationResetGrace)
	assert.Equal(t, model.Duration45, timer.Snapshot().Label)
}

func TestRootUI_LanguageChange(t *testing.T) {
	root, _, _ := newTestRoot(t, nil)

	root.onLanguageChange("pt")

	assert.Equal(t, "pt", root.settings.GetLanguage())
	assert.Equal(t, "Iniciar", root.panel.toggleBtn.Text)
	assert.Equal(t, "Temporizador", root.window.MainMenu().Items[1].Label)
}

func TestRootUI_ApplyStateRebuildsMenu(t *testing.T) {
	root, _, _ := newTestRoot(t, nil)

	root.applyState(model.NewTimerState(model.Duration10))

	assert.Equal(t, model.Duration10, root.menuLabel)
	for _, item := range root.window.MainMenu().Items[1].Items {
		assert.Equal(t, item.Label == "10 minutes", item.Checked, item.Label)
	}
}
