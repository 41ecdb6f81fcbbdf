package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// NameCard is a custom widget that displays a student name in large centered
// text over a colored background, used by the random-call dialog.
type NameCard struct {
	widget.BaseWidget
	text      string
	bgColor   color.Color
	textColor color.Color
	textSize  float32
	textObj   *canvas.Text
	bgRect    *canvas.Rectangle
	container *fyne.Container
}

// NewNameCard creates a new name card
func NewNameCard(text string, bgColor, textColor color.Color, textSize float32) *NameCard {
	nc := &NameCard{
		text:      text,
		bgColor:   bgColor,
		textColor: textColor,
		textSize:  textSize,
	}
	nc.ExtendBaseWidget(nc)
	return nc
}

// CreateRenderer implements fyne.Widget
func (nc *NameCard) CreateRenderer() fyne.WidgetRenderer {
	nc.textObj = canvas.NewText(nc.text, nc.textColor)
	nc.textObj.TextStyle = fyne.TextStyle{Bold: true}
	nc.textObj.TextSize = nc.textSize
	nc.textObj.Alignment = fyne.TextAlignCenter

	nc.bgRect = canvas.NewRectangle(nc.bgColor)

	nc.container = container.NewStack(nc.bgRect, nc.textObj)

	return &nameCardRenderer{
		card:      nc,
		container: nc.container,
		bgRect:    nc.bgRect,
		textObj:   nc.textObj,
	}
}

// SetText updates the displayed name
func (nc *NameCard) SetText(text string) {
	nc.text = text
	if nc.textObj != nil {
		nc.textObj.Text = text
		nc.textObj.Refresh()
	}
}

// SetColors updates the card colors
func (nc *NameCard) SetColors(bgColor, textColor color.Color) {
	nc.bgColor = bgColor
	nc.textColor = textColor
	if nc.bgRect != nil {
		nc.bgRect.FillColor = bgColor
		nc.bgRect.Refresh()
	}
	if nc.textObj != nil {
		nc.textObj.Color = textColor
		nc.textObj.Refresh()
	}
}

// nameCardRenderer implements fyne.WidgetRenderer
type nameCardRenderer struct {
	card      *NameCard
	container *fyne.Container
	bgRect    *canvas.Rectangle
	textObj   *canvas.Text
}

func (r *nameCardRenderer) MinSize() fyne.Size {
	return r.container.MinSize()
}

func (r *nameCardRenderer) Layout(size fyne.Size) {
	r.container.Resize(size)
}

func (r *nameCardRenderer) Refresh() {
	r.textObj.Text = r.card.text
	r.textObj.Color = r.card.textColor
	r.bgRect.FillColor = r.card.bgColor
	r.textObj.Refresh()
	r.bgRect.Refresh()
}

func (r *nameCardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.container}
}

func (r *nameCardRenderer) Destroy() {
	// Nothing to destroy
}
