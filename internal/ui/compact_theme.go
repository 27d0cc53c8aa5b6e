package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/pomodoro-widget/internal/view"
)

// WidgetTheme is a compact dark theme in the widget's palette
type WidgetTheme struct{}

// NewWidgetTheme creates a new widget theme
func NewWidgetTheme() fyne.Theme {
	return &WidgetTheme{}
}

// Color returns theme colors. The widget is always drawn dark.
func (t *WidgetTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return view.ColorAccent
	case theme.ColorNameBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return view.ColorBackground
	case theme.ColorNameButton, theme.ColorNameInputBackground, theme.ColorNameSeparator:
		return view.ColorTrack
	case theme.ColorNameForeground:
		return view.ColorText
	case theme.ColorNameForegroundOnPrimary:
		return view.ColorButtonText
	case theme.ColorNameShadow:
		return view.ColorShadow
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *WidgetTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *WidgetTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *WidgetTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 4 // button padding 4x2 in the widget
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return view.ReadoutFontSize
	case theme.SizeNameInputRadius:
		return view.ButtonRadius
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
