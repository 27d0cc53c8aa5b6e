package ui

import (
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pomodoro-widget/internal/model"
	"github.com/ytget/pomodoro-widget/internal/view"
)

// Dial draws the circular progress ring with the readout in its centre
type Dial struct {
	widget.BaseWidget

	mu      sync.RWMutex
	dial    view.Dial
	readout view.Text
}

// NewDial creates a dial showing an idle default countdown
func NewDial() *Dial {
	tree := view.Render(model.DefaultTimerState(), view.DefaultTexts)
	d := &Dial{dial: tree.Dial, readout: tree.Readout}
	d.ExtendBaseWidget(d)
	return d
}

// SetTree updates the dial from a rendered widget tree. Call on the UI goroutine.
func (d *Dial) SetTree(dial view.Dial, readout view.Text) {
	d.mu.Lock()
	d.dial = dial
	d.readout = readout
	d.mu.Unlock()

	d.Refresh()
}

// Readout returns the text shown in the centre
func (d *Dial) Readout() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.readout.Value
}

// CreateRenderer implements fyne.Widget
func (d *Dial) CreateRenderer() fyne.WidgetRenderer {
	r := &dialRenderer{
		dial: d,
		ring: canvas.NewRasterWithPixels(d.pixelColor),
		text: canvas.NewText("", view.ColorText),
	}
	r.text.Alignment = fyne.TextAlignCenter
	r.text.TextStyle = fyne.TextStyle{Bold: true}
	r.Refresh()
	return r
}

func (d *Dial) pixelColor(x, y, w, h int) color.Color {
	d.mu.RLock()
	ring := d.dial
	d.mu.RUnlock()
	return ringColor(ring, x, y, w, h)
}

// ringColor returns the colour of pixel (x, y) in a w×h raster. Angles are
// measured clockwise from the positive x axis, y pointing down.
func ringColor(ring view.Dial, x, y, w, h int) color.Color {
	size := math.Min(float64(w), float64(h))
	if size <= 0 {
		return color.Transparent
	}

	radius := size / 2
	dx := float64(x) + 0.5 - float64(w)/2
	dy := float64(y) + 0.5 - float64(h)/2
	dist := math.Hypot(dx, dy) / radius
	if dist > 1 {
		return color.Transparent
	}

	angle := math.Atan2(dy, dx)
	if dist >= ring.Progress.InnerRadius && ring.Progress.Covers(angle) {
		return ring.ProgressFill
	}
	if dist >= ring.Track.InnerRadius && ring.Track.Covers(angle) {
		return ring.TrackFill
	}
	return color.Transparent
}

type dialRenderer struct {
	dial *Dial
	ring *canvas.Raster
	text *canvas.Text
}

func (r *dialRenderer) Layout(size fyne.Size) {
	side := fyne.Min(size.Width, size.Height)
	ringPos := fyne.NewPos((size.Width-side)/2, (size.Height-side)/2)
	r.ring.Move(ringPos)
	r.ring.Resize(fyne.NewSize(side, side))

	textSize := r.text.MinSize()
	r.text.Move(fyne.NewPos((size.Width-textSize.Width)/2, (size.Height-textSize.Height)/2))
	r.text.Resize(textSize)
}

func (r *dialRenderer) MinSize() fyne.Size {
	r.dial.mu.RLock()
	side := r.dial.dial.Size
	r.dial.mu.RUnlock()
	return fyne.NewSize(side, side)
}

func (r *dialRenderer) Refresh() {
	r.dial.mu.RLock()
	readout := r.dial.readout
	r.dial.mu.RUnlock()

	r.text.Text = readout.Value
	r.text.TextSize = readout.FontSize
	r.text.Color = readout.Fill
	r.text.TextStyle.Bold = readout.Bold

	r.ring.Refresh()
	r.text.Refresh()
	r.Layout(r.dial.Size())
}

func (r *dialRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.ring, r.text}
}

func (r *dialRenderer) Destroy() {}
