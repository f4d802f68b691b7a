// Package sim emulates the signal generator's hardware on a terminal.
package sim

import (
	"image/color"
	"sync"
	"sync/atomic"

	"siggen/core"
)

// Panel is a monochrome pixel panel implementing drivers.Displayer.
// Drawing goes to a back buffer; Display copies it to the front buffer
// that the terminal view reads.
type Panel struct {
	w, h int16
	back []bool

	mu       sync.Mutex
	front    []bool
	inverted bool
	frames   int
}

// NewPanel creates a blank w x h panel
func NewPanel(w, h int16) *Panel {
	n := int(w) * int(h)
	return &Panel{
		w:     w,
		h:     h,
		back:  make([]bool, n),
		front: make([]bool, n),
	}
}

// Size returns the panel size in pixels
func (p *Panel) Size() (x, y int16) {
	return p.w, p.h
}

// SetPixel lights the pixel for any non-black color
func (p *Panel) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return
	}
	p.back[int(y)*int(p.w)+int(x)] = c.R != 0 || c.G != 0 || c.B != 0
}

// ClearBuffer blanks the back buffer
func (p *Panel) ClearBuffer() {
	for i := range p.back {
		p.back[i] = false
	}
}

// Display publishes the back buffer
func (p *Panel) Display() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(p.front, p.back)
	p.frames++
	return nil
}

// InvertDisplay inverts the visible panel immediately, like the SSD1306 command
func (p *Panel) InvertDisplay(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inverted = on
}

// Pixel reports whether the visible pixel is lit, inversion applied
func (p *Panel) Pixel(x, y int16) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pixel(x, y)
}

func (p *Panel) pixel(x, y int16) bool {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return false
	}
	return p.front[int(y)*int(p.w)+int(x)] != p.inverted
}

// Inverted reports the whole-panel inversion state
func (p *Panel) Inverted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inverted
}

// Frames returns how many times Display was called
func (p *Panel) Frames() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}

// Render draws the visible panel with half-block characters, two pixel
// rows per text line
func (p *Panel) Render() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	lines := make([]string, 0, (p.h+1)/2)
	row := make([]rune, p.w)
	for y := int16(0); y < p.h; y += 2 {
		for x := int16(0); x < p.w; x++ {
			top, bottom := p.pixel(x, y), p.pixel(x, y+1)
			switch {
			case top && bottom:
				row[x] = '█'
			case top:
				row[x] = '▀'
			case bottom:
				row[x] = '▄'
			default:
				row[x] = ' '
			}
		}
		lines = append(lines, string(row))
	}
	return lines
}

// Knob is a simulated quadrature encoder with push switch
type Knob struct {
	stepsPerNotch int
	pos           atomic.Int64
	down          atomic.Bool
}

// NewKnob creates a knob producing stepsPerNotch counts per detent
func NewKnob(stepsPerNotch int) *Knob {
	return &Knob{stepsPerNotch: stepsPerNotch}
}

// Turn rotates by detents (negative is counter-clockwise)
func (k *Knob) Turn(detents int) {
	k.pos.Add(int64(detents * k.stepsPerNotch))
}

// SetDown presses or releases the switch
func (k *Knob) SetDown(down bool) {
	k.down.Store(down)
}

func (k *Knob) Position() int    { return int(k.pos.Load()) }
func (k *Knob) ButtonDown() bool { return k.down.Load() }

// Scope captures the generator output level
type Scope struct {
	level atomic.Uint32
}

// SetLevel is called from the tick context
func (s *Scope) SetLevel(value core.Level) {
	s.level.Store(uint32(value))
}

// Level returns the most recent output level
func (s *Scope) Level() core.Level {
	return core.Level(s.level.Load())
}
