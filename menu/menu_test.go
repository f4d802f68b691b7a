package menu

import (
	"strings"
	"testing"
	"time"

	"siggen/config"
	"siggen/input"
	"siggen/param"
)

type printed struct {
	text     string
	inverted bool
	y        int16
}

// recordingDisplay logs every call
type recordingDisplay struct {
	ops      []string
	prints   []printed
	inverted bool
	y        int16
}

func (d *recordingDisplay) Clear() {
	d.ops = append(d.ops, "clear")
	d.prints = nil
}

func (d *recordingDisplay) SetCursor(x, y int16) { d.y = y }

func (d *recordingDisplay) SetInverted(inverted bool) { d.inverted = inverted }

func (d *recordingDisplay) Print(s string) {
	d.prints = append(d.prints, printed{s, d.inverted, d.y})
}

func (d *recordingDisplay) Display() error {
	d.ops = append(d.ops, "display")
	return nil
}

func (d *recordingDisplay) InvertDisplay(on bool) {
	if on {
		d.ops = append(d.ops, "invert")
	} else {
		d.ops = append(d.ops, "normal")
	}
}

func (d *recordingDisplay) CellSize() (w, h int16) { return 6, 10 }

func newTestMenu(t *testing.T) (*Menu, *recordingDisplay, *param.Registry) {
	t.Helper()

	reg, err := param.NewRegistry(config.DefaultConfig())
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	disp := &recordingDisplay{}
	m := New(reg, disp, 5, 100*time.Millisecond)
	m.SetSleep(func(d time.Duration) {
		disp.ops = append(disp.ops, "sleep "+d.String())
	})
	return m, disp, reg
}

func TestMenuNavigateClamps(t *testing.T) {
	m, _, _ := newTestMenu(t)

	m.Move(2)
	if m.Cursor() != 2 {
		t.Errorf("Expected cursor 2, got %d", m.Cursor())
	}

	m.Move(100)
	if m.Cursor() != 4 {
		t.Errorf("Expected cursor clamped to 4, got %d", m.Cursor())
	}

	m.Move(-100)
	if m.Cursor() != 0 {
		t.Errorf("Expected cursor clamped to 0, got %d", m.Cursor())
	}

	m.Move(int(^uint(0) >> 1))
	if m.Cursor() != 4 {
		t.Errorf("Expected cursor clamped to 4 on overflow, got %d", m.Cursor())
	}
}

func TestMenuNavigateDoesNotFlash(t *testing.T) {
	m, disp, _ := newTestMenu(t)

	m.Move(-1)
	m.Move(10)
	for _, op := range disp.ops {
		if op == "invert" {
			t.Fatal("Cursor clamping must not flash the panel")
		}
	}
}

func TestMenuModeToggle(t *testing.T) {
	m, _, _ := newTestMenu(t)

	if m.Mode() != Navigate {
		t.Fatalf("Expected initial mode Navigate, got %v", m.Mode())
	}

	if !m.Press(input.Clicked) || m.Mode() != Edit {
		t.Fatalf("Expected Clicked to enter Edit, got %v", m.Mode())
	}
	if !m.Press(input.Clicked) || m.Mode() != Navigate {
		t.Fatalf("Expected Clicked to return to Navigate, got %v", m.Mode())
	}
}

func TestMenuIgnoresOtherButtons(t *testing.T) {
	m, _, _ := newTestMenu(t)

	for _, b := range []input.Button{input.Open, input.Held, input.Released, input.DoubleClicked} {
		if m.Press(b) {
			t.Errorf("Expected %v to be ignored", b)
		}
		if m.Mode() != Navigate {
			t.Errorf("Expected mode unchanged after %v, got %v", b, m.Mode())
		}
	}
}

func TestMenuEditChangesValue(t *testing.T) {
	m, _, reg := newTestMenu(t)

	m.Move(2) // Duty Cycle
	m.Press(input.Clicked)
	m.Move(-5)

	if m.Cursor() != 2 {
		t.Errorf("Expected cursor to stay at 2 while editing, got %d", m.Cursor())
	}
	if got := reg.Item(2).(*param.IntItem).Value(); got != 45 {
		t.Errorf("Expected duty 45, got %d", got)
	}
	if got := reg.Signal().Duty(); got != 45 {
		t.Errorf("Expected published duty 45, got %d", got)
	}
}

func TestMenuSaturationFlash(t *testing.T) {
	m, disp, _ := newTestMenu(t)

	m.Move(4) // High
	m.Press(input.Clicked)
	m.Move(1000)

	want := []string{"invert", "display", "sleep 100ms", "normal", "display"}
	if strings.Join(disp.ops, ",") != strings.Join(want, ",") {
		t.Errorf("Expected flash sequence %v, got %v", want, disp.ops)
	}
}

func TestMenuZeroMotionIgnored(t *testing.T) {
	m, disp, _ := newTestMenu(t)

	m.Move(4)
	m.Press(input.Clicked)
	m.Move(1000)
	disp.ops = nil

	// Already at max: a zero delta must not flash again
	m.Move(0)
	if len(disp.ops) != 0 {
		t.Errorf("Expected no display activity, got %v", disp.ops)
	}
}

func TestMenuWindow(t *testing.T) {
	m, _, _ := newTestMenu(t)

	tests := []struct {
		cursor      int
		first, last int
	}{
		{0, 0, 3},
		{1, 0, 4},
		{2, 0, 5},
		{3, 1, 5},
		{4, 2, 5},
	}

	for _, tt := range tests {
		m.cursor = tt.cursor
		first, last := m.Window()
		if first != tt.first || last != tt.last {
			t.Errorf("cursor %d: expected [%d, %d), got [%d, %d)", tt.cursor, tt.first, tt.last, first, last)
		}
	}
}

func TestMenuRenderHighlight(t *testing.T) {
	m, disp, _ := newTestMenu(t)
	m.Move(1)

	if err := m.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// Rows 0..3, three prints each
	if len(disp.prints) != 12 {
		t.Fatalf("Expected 12 prints, got %d", len(disp.prints))
	}

	row := disp.prints[3:6]
	if row[0].text != "Pulse/sec     :" || !row[0].inverted {
		t.Errorf("Expected inverted name while navigating, got %+v", row[0])
	}
	if row[1].text != " " || row[1].inverted {
		t.Errorf("Expected plain separator, got %+v", row[1])
	}
	if row[2].text != "0.50" || row[2].inverted {
		t.Errorf("Expected plain value while navigating, got %+v", row[2])
	}
	if row[0].y != 20 {
		t.Errorf("Expected second row at y=20, got %d", row[0].y)
	}

	for i, p := range disp.prints {
		if i >= 3 && i < 6 {
			continue
		}
		if p.inverted {
			t.Errorf("Unexpected inverted text on unselected row: %+v", p)
		}
	}

	m.Press(input.Clicked)
	if err := m.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	row = disp.prints[3:6]
	if row[0].inverted {
		t.Errorf("Expected plain name while editing, got %+v", row[0])
	}
	if !row[2].inverted {
		t.Errorf("Expected inverted value while editing, got %+v", row[2])
	}
}
