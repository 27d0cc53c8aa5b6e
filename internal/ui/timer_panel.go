package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pomodoro-widget/internal/countdown"
	"github.com/ytget/pomodoro-widget/internal/model"
	"github.com/ytget/pomodoro-widget/internal/view"
)

// TimerPanel is the widget card: dial, Start/Pause and Reset buttons and the
// duration selector
type TimerPanel struct {
	timer        countdown.Controller
	localization *Localization

	dial           *Dial
	toggleBtn      *widget.Button
	resetBtn       *widget.Button
	durationSelect *widget.Select
	frame          *canvas.Rectangle
	content        fyne.CanvasObject

	state     model.TimerState
	optionMap map[string]model.DurationLabel
	syncing   bool
}

// NewTimerPanel builds the card for timer
func NewTimerPanel(timer countdown.Controller, localization *Localization) *TimerPanel {
	p := &TimerPanel{
		timer:        timer,
		localization: localization,
		state:        timer.Snapshot(),
	}
	p.createUI()
	p.Apply(p.state)
	return p
}

// Content returns the card's canvas object
func (p *TimerPanel) Content() fyne.CanvasObject {
	return p.content
}

func (p *TimerPanel) createUI() {
	p.dial = NewDial()

	p.toggleBtn = widget.NewButton("", func() { view.Dispatch(view.ActionToggle, p.timer) })
	p.toggleBtn.Importance = widget.HighImportance

	p.resetBtn = widget.NewButton("", func() { view.Dispatch(view.ActionReset, p.timer) })
	p.resetBtn.Importance = widget.MediumImportance

	p.durationSelect = widget.NewSelect(nil, p.onDurationSelected)
	p.rebuildDurationOptions()

	tree := view.Render(p.state, p.localization.WidgetTexts())
	p.frame = canvas.NewRectangle(tree.Frame.Fill)
	p.frame.StrokeColor = tree.Frame.Stroke
	p.frame.StrokeWidth = tree.Frame.StrokeWidth
	p.frame.CornerRadius = tree.Frame.CornerRadius

	buttons := container.NewHBox(layout.NewSpacer(), p.toggleBtn, p.resetBtn, layout.NewSpacer())
	card := container.NewVBox(
		container.NewCenter(p.dial),
		buttons,
		p.durationSelect,
	)

	padding := tree.Frame.Padding
	p.content = container.NewStack(
		p.frame,
		container.New(layout.NewCustomPaddedLayout(padding, padding, padding, padding), card),
	)
}

// Apply shows s. Call on the UI goroutine.
func (p *TimerPanel) Apply(s model.TimerState) {
	p.state = s
	tree := view.Render(s, p.localization.WidgetTexts())

	p.dial.SetTree(tree.Dial, tree.Readout)

	for _, b := range tree.Buttons {
		switch b.Action {
		case view.ActionToggle:
			p.toggleBtn.SetText(b.Label)
		case view.ActionReset:
			p.resetBtn.SetText(b.Label)
		}
	}

	p.syncing = true
	p.durationSelect.SetSelected(p.localization.DurationText(s.Label))
	p.syncing = false
}

// State returns the record last applied
func (p *TimerPanel) State() model.TimerState {
	return p.state
}

// RefreshTexts re-reads every caption after a language change
func (p *TimerPanel) RefreshTexts() {
	p.rebuildDurationOptions()
	p.Apply(p.state)
}

func (p *TimerPanel) rebuildDurationOptions() {
	items := view.DurationMenu(p.state.Label)
	p.optionMap = make(map[string]model.DurationLabel)

	p.durationSelect.PlaceHolder = p.localization.GetText(KeyTimer)

	var options []string
	for _, item := range items {
		for _, option := range item.Options {
			label, err := model.ParseDurationLabel(option.Option)
			if err != nil {
				continue
			}
			text := p.localization.DurationText(label)
			p.optionMap[text] = label
			options = append(options, text)
		}
	}

	p.durationSelect.Options = options
	p.durationSelect.Refresh()
}

func (p *TimerPanel) onDurationSelected(text string) {
	if p.syncing {
		return
	}
	label, ok := p.optionMap[text]
	if !ok {
		return
	}
	view.HandleMenuChange(view.MenuPropertyName, label.String(), p.timer)
}
