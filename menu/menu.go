// Package menu implements the navigate/edit state machine over the
// parameter registry and renders it as a scrolling list.
package menu

import (
	"time"

	"siggen/input"
	"siggen/param"
)

// Display is the text sink the menu draws on
type Display interface {
	Clear()
	SetCursor(x, y int16)

	// SetInverted sets the text polarity for subsequent Print calls
	SetInverted(inverted bool)
	Print(s string)

	// Display flips the buffer to the panel
	Display() error

	// InvertDisplay inverts the whole panel, used by Flash
	InvertDisplay(on bool)

	// CellSize returns the fixed character cell in pixels
	CellSize() (w, h int16)
}

// Mode is the menu state
type Mode uint8

const (
	Navigate Mode = iota
	Edit
)

func (m Mode) String() string {
	if m == Edit {
		return "Edit"
	}
	return "Navigate"
}

// Menu tracks the cursor and mode. Cooperative loop only.
type Menu struct {
	reg    *param.Registry
	disp   Display
	rows   int
	cursor int
	mode   Mode

	flashFor time.Duration
	sleep    func(time.Duration)

	buf [48]byte
}

// New creates a menu showing at most rows items, and installs itself as
// the registry's saturation alert.
func New(reg *param.Registry, disp Display, rows int, flashFor time.Duration) *Menu {
	if rows <= 0 {
		rows = 1
	}
	m := &Menu{
		reg:      reg,
		disp:     disp,
		rows:     rows,
		flashFor: flashFor,
		sleep:    time.Sleep,
	}
	reg.SetAlerter(m)
	return m
}

// SetSleep replaces the delay used by Flash (tests, simulators)
func (m *Menu) SetSleep(sleep func(time.Duration)) {
	m.sleep = sleep
}

// Cursor returns the selected index
func (m *Menu) Cursor() int { return m.cursor }

// Mode returns the current state
func (m *Menu) Mode() Mode { return m.mode }

// Move handles relative encoder motion: cursor movement while navigating,
// a value change while editing. Zero motion is ignored.
func (m *Menu) Move(delta int) {
	if delta == 0 {
		return
	}
	if m.mode == Edit {
		m.reg.ChangeValue(m.cursor, delta)
		return
	}

	last := m.reg.Len() - 1
	cursor := m.cursor + delta
	if delta > last+1 || cursor > last {
		cursor = last
	}
	if delta < -(last+1) || cursor < 0 {
		cursor = 0
	}
	m.cursor = cursor
}

// Press handles a button event. Only Clicked does anything: it toggles
// between Navigate and Edit. Reports whether the mode changed.
func (m *Menu) Press(b input.Button) bool {
	if b != input.Clicked {
		return false
	}
	if m.mode == Navigate {
		m.mode = Edit
	} else {
		m.mode = Navigate
	}
	return true
}

// Flash blinks the whole panel once. It blocks for the flash duration;
// the tick context keeps running meanwhile.
func (m *Menu) Flash() {
	m.disp.InvertDisplay(true)
	_ = m.disp.Display()
	m.sleep(m.flashFor)
	m.disp.InvertDisplay(false)
	_ = m.disp.Display()
}

// Window returns the visible index range [first, last)
func (m *Menu) Window() (first, last int) {
	first = m.cursor - m.rows/2
	if first < 0 {
		first = 0
	}
	last = m.cursor + m.rows - m.rows/2
	if n := m.reg.Len(); last > n {
		last = n
	}
	return first, last
}

// Render draws the visible rows. The name field of the selected row is
// highlighted while navigating, its value field while editing.
func (m *Menu) Render() error {
	d := m.disp
	_, cellH := d.CellSize()

	d.Clear()
	d.SetInverted(false)

	first, last := m.Window()
	for i := first; i < last; i++ {
		selected := i == m.cursor

		d.SetCursor(0, cellH*int16(1+i-first))

		d.SetInverted(selected && m.mode == Navigate)
		d.Print(string(m.reg.AppendName(m.buf[:0], i)))

		d.SetInverted(false)
		d.Print(" ")

		d.SetInverted(selected && m.mode == Edit)
		d.Print(string(m.reg.AppendValue(m.buf[:0], i)))
	}
	d.SetInverted(false)

	return d.Display()
}
