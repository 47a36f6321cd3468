package widgets

import (
	"github.com/go-drift/progressring/pkg/graphics"
	"github.com/go-drift/progressring/pkg/layout"
)

// Label is a render box that draws one line of text centered in its size.
//
// Label has no intrinsic size: it fills whatever its parent gives it, which
// suits content pinned inside a progress ring.
type Label struct {
	layout.RenderBoxBase
	text     string
	fontSize float64
	color    graphics.Color
}

// NewLabel creates a label.
func NewLabel(text string, fontSize float64, color graphics.Color) *Label {
	l := &Label{text: text, fontSize: fontSize, color: color}
	l.SetSelf(l)
	return l
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the label text. Only paint is invalidated.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.MarkNeedsPaint()
}

// SetFontSize changes the font size.
func (l *Label) SetFontSize(size float64) {
	if l.fontSize == size {
		return
	}
	l.fontSize = size
	l.MarkNeedsPaint()
}

// SetColor changes the text color.
func (l *Label) SetColor(c graphics.Color) {
	if l.color == c {
		return
	}
	l.color = c
	l.MarkNeedsPaint()
}

func (l *Label) PerformLayout() {
	l.SetSize(l.Constraints().Biggest())
}

func (l *Label) Paint(ctx *layout.PaintContext) {
	if l.text == "" || l.fontSize <= 0 {
		return
	}
	ctx.Canvas.DrawText(l.text, l.Size().Center(), graphics.TextStyle{
		Color:    l.color,
		FontSize: l.fontSize,
	})
}

func (l *Label) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, l.Size()) {
		return false
	}
	result.Add(l)
	return true
}
