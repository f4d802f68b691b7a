// Package display renders menu text on a pixel panel with tinyfont.
package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

// Inverter is implemented by panels that can invert the whole screen in hardware
type Inverter interface {
	InvertDisplay(on bool)
}

// bufferClearer is implemented by panels with a fast buffer clear (ssd1306)
type bufferClearer interface {
	ClearBuffer()
}

// Text is a cursor-based text sink over any drivers.Displayer.
// Characters occupy a fixed cell; rows are addressed in pixels.
type Text struct {
	dev  drivers.Displayer
	font tinyfont.Fonter

	cellW, cellH int16
	baseline     int16

	x, y     int16
	inverted bool
	invert   func(on bool)
}

// NewText creates a sink drawing font on dev. The cell height is the
// font's line advance; the cell width is the advance of "0".
func NewText(dev drivers.Displayer, font *tinyfont.Font) *Text {
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	cellH := int16(font.YAdvance)
	if cellH <= 0 {
		cellH = 8
	}

	t := &Text{
		dev:      dev,
		font:     font,
		cellW:    int16(outboxWidth),
		cellH:    cellH,
		baseline: cellH - cellH/4,
	}
	if inv, ok := dev.(Inverter); ok {
		t.invert = inv.InvertDisplay
	}
	return t
}

// SetPanelInverter overrides how InvertDisplay reaches the hardware
func (t *Text) SetPanelInverter(invert func(on bool)) {
	t.invert = invert
}

// CellSize returns the character cell in pixels
func (t *Text) CellSize() (w, h int16) {
	return t.cellW, t.cellH
}

// Clear blanks the back buffer and homes the cursor
func (t *Text) Clear() {
	if c, ok := t.dev.(bufferClearer); ok {
		c.ClearBuffer()
	} else {
		w, h := t.dev.Size()
		fillRect(t.dev, 0, 0, w, h, black)
	}
	t.x, t.y = 0, 0
}

// SetCursor moves the text origin (top-left of the next cell)
func (t *Text) SetCursor(x, y int16) {
	t.x, t.y = x, y
}

// SetInverted selects dark-on-light text
func (t *Text) SetInverted(inverted bool) {
	t.inverted = inverted
}

// Print draws s at the cursor and advances it
func (t *Text) Print(s string) {
	if s == "" {
		return
	}
	_, outboxWidth := tinyfont.LineWidth(t.font, s)
	w := int16(outboxWidth)

	fg, bg := white, black
	if t.inverted {
		fg, bg = black, white
	}
	fillRect(t.dev, t.x, t.y, w, t.cellH, bg)
	tinyfont.WriteLine(t.dev, t.font, t.x, t.y+t.baseline, s, fg)

	t.x += w
}

// Display pushes the back buffer to the panel
func (t *Text) Display() error {
	return t.dev.Display()
}

// InvertDisplay inverts the whole panel if the hardware supports it
func (t *Text) InvertDisplay(on bool) {
	if t.invert != nil {
		t.invert(on)
	}
}

func fillRect(dev drivers.Displayer, x, y, w, h int16, c color.RGBA) {
	sw, sh := dev.Size()
	for py := y; py < y+h && py < sh; py++ {
		if py < 0 {
			continue
		}
		for px := x; px < x+w && px < sw; px++ {
			if px < 0 {
				continue
			}
			dev.SetPixel(px, py, c)
		}
	}
}
