package main

import (
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/pomodoro-widget/internal/config"
	"github.com/ytget/pomodoro-widget/internal/countdown"
	"github.com/ytget/pomodoro-widget/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "io.github.ytget.pomodoro"
)

func main() {
	logger := config.NewLogger(os.Stderr, config.NormalizeLogLevel(os.Getenv("POMODORO_LOG_LEVEL")), config.LogFormatText)
	slog.SetDefault(logger)
	slog.Info("Pomodoro widget starting", "version", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewWidgetTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(countdown.Title)

	settings := config.NewSettings(myApp)
	localization := ui.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	host := ui.NewWindowHost(myApp, myWindow, settings, localization)

	// Fyne preferences persist the widget's slots between launches
	timer := countdown.New(myApp.Preferences(), countdown.Options{
		ID:     settings.GetWidgetID(),
		Host:   host,
		Logger: logger,
	})
	defer timer.Close()

	ui.NewRootUI(myWindow, myApp, timer, settings, localization)

	myWindow.ShowAndRun()
}
