package view

import (
	"image/color"

	"github.com/ytget/pomodoro-widget/internal/model"
)

// Palette
var (
	ColorBackground = color.NRGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF}
	ColorTrack      = color.NRGBA{R: 0x35, G: 0x35, B: 0x35, A: 0xFF}
	ColorAccent     = color.NRGBA{R: 0xFB, G: 0xA4, B: 0x21, A: 0xFF}
	ColorText       = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorButtonText = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	ColorShadow     = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x33}
)

// Layout sizing
const (
	FrameWidth        float32 = 150
	FramePadding      float32 = 16
	FrameSpacing      float32 = 12
	FrameCornerRadius float32 = 8
	FrameStrokeWidth  float32 = 3
	DialSize          float32 = 100
	ReadoutWidth      float32 = 55
	ReadoutFontSize   float32 = 18
	ButtonSpacing     float32 = 12
	ButtonRadius      float32 = 4
)

// Action identifies what a button does when clicked
type Action string

const (
	ActionToggle Action = "toggle"
	ActionReset  Action = "reset"
)

// Texts are the localized captions the tree needs
type Texts struct {
	Start string
	Pause string
	Reset string
}

// DefaultTexts are the English captions
var DefaultTexts = Texts{Start: "Start", Pause: "Pause", Reset: "Reset"}

// Tree is the full visual description of one widget
type Tree struct {
	Frame   Frame
	Dial    Dial
	Readout Text
	Buttons []Button
}

// Frame is the rounded card the widget sits on
type Frame struct {
	Width        float32
	Padding      float32
	Spacing      float32
	CornerRadius float32
	StrokeWidth  float32
	Fill         color.NRGBA
	Stroke       color.NRGBA
	Shadow       color.NRGBA
}

// Dial is the circular progress indicator: a full track arc with the
// progress arc painted over it
type Dial struct {
	Size         float32
	Track        model.ArcData
	TrackFill    color.NRGBA
	Progress     model.ArcData
	ProgressFill color.NRGBA
}

// Text is a single line of text
type Text struct {
	Value    string
	Width    float32
	FontSize float32
	Bold     bool
	Fill     color.NRGBA
}

// Button is a clickable caption
type Button struct {
	Label    string
	Action   Action
	Fill     color.NRGBA
	Stroke   color.NRGBA
	TextFill color.NRGBA
	Radius   float32
	Outlined bool
}

// Render builds the tree for the given record
func Render(s model.TimerState, texts Texts) Tree {
	toggle := Button{
		Label:    texts.Start,
		Action:   ActionToggle,
		Fill:     ColorAccent,
		TextFill: ColorButtonText,
		Radius:   ButtonRadius,
	}
	if s.IsRunning {
		toggle.Label = texts.Pause
	}

	reset := Button{
		Label:    texts.Reset,
		Action:   ActionReset,
		Stroke:   ColorText,
		TextFill: ColorText,
		Radius:   ButtonRadius,
		Outlined: true,
	}

	return Tree{
		Frame: Frame{
			Width:        FrameWidth,
			Padding:      FramePadding,
			Spacing:      FrameSpacing,
			CornerRadius: FrameCornerRadius,
			StrokeWidth:  FrameStrokeWidth,
			Fill:         ColorBackground,
			Stroke:       ColorTrack,
			Shadow:       ColorShadow,
		},
		Dial: Dial{
			Size:         DialSize,
			Track:        model.FullArc(),
			TrackFill:    ColorTrack,
			Progress:     s.Arc,
			ProgressFill: ColorAccent,
		},
		Readout: Text{
			Value:    s.Readout(),
			Width:    ReadoutWidth,
			FontSize: ReadoutFontSize,
			Bold:     true,
			Fill:     ColorText,
		},
		Buttons: []Button{toggle, reset},
	}
}

// Controls is what button clicks drive
type Controls interface {
	Toggle()
	Reset()
}

// Dispatch runs the action of a clicked button. Unknown actions are ignored.
func Dispatch(action Action, c Controls) {
	switch action {
	case ActionToggle:
		c.Toggle()
	case ActionReset:
		c.Reset()
	}
}
