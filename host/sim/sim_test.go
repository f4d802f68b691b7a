package sim

import (
	"image/color"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"siggen/core"
)

var white = color.RGBA{255, 255, 255, 255}

func TestPanelDisplayPublishes(t *testing.T) {
	p := NewPanel(8, 4)

	p.SetPixel(1, 0, white)
	if p.Pixel(1, 0) {
		t.Error("Expected back buffer to stay hidden until Display")
	}

	if err := p.Display(); err != nil {
		t.Fatalf("Display failed: %v", err)
	}
	if !p.Pixel(1, 0) {
		t.Error("Expected pixel lit after Display")
	}
	if p.Frames() != 1 {
		t.Errorf("Expected 1 frame, got %d", p.Frames())
	}

	p.ClearBuffer()
	p.Display()
	if p.Pixel(1, 0) {
		t.Error("Expected pixel cleared")
	}
}

func TestPanelInvert(t *testing.T) {
	p := NewPanel(8, 4)
	p.InvertDisplay(true)

	if !p.Inverted() || !p.Pixel(0, 0) {
		t.Error("Expected an inverted blank panel to read lit")
	}
	if p.Pixel(-1, 0) || p.Pixel(8, 0) {
		t.Error("Expected out-of-range pixels to read dark")
	}
}

func TestPanelRender(t *testing.T) {
	p := NewPanel(4, 4)
	p.SetPixel(0, 0, white)
	p.SetPixel(0, 1, white)
	p.SetPixel(1, 0, white)
	p.SetPixel(2, 1, white)
	p.Display()

	lines := p.Render()
	if len(lines) != 2 {
		t.Fatalf("Expected 2 text lines, got %d", len(lines))
	}
	if lines[0] != "█▀▄ " {
		t.Errorf("Unexpected first line %q", lines[0])
	}
	if lines[1] != "    " {
		t.Errorf("Unexpected second line %q", lines[1])
	}
}

func TestKnob(t *testing.T) {
	k := NewKnob(4)

	k.Turn(3)
	k.Turn(-1)
	if got := k.Position(); got != 8 {
		t.Errorf("Expected position 8, got %d", got)
	}

	k.SetDown(true)
	if !k.ButtonDown() {
		t.Error("Expected switch down")
	}
}

func TestModelKeys(t *testing.T) {
	knob := NewKnob(4)
	m := NewModel(NewPanel(8, 4), knob, &Scope{})

	var model tea.Model = m
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("J")})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	if got := knob.Position(); got != 40 {
		t.Errorf("Expected 10 detents (40 counts), got %d", got)
	}

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !knob.ButtonDown() || cmd == nil {
		t.Fatal("Expected enter to press the switch and schedule a release")
	}

	model.Update(releaseMsg{})
	if knob.ButtonDown() {
		t.Error("Expected release message to open the switch")
	}

	if _, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Error("Expected quit command")
	}
}

func TestModelScopeHistory(t *testing.T) {
	scope := &Scope{}
	var model tea.Model = NewModel(NewPanel(8, 4), NewKnob(4), scope)

	scope.SetLevel(100)
	for i := 0; i < scopeWidth+10; i++ {
		model, _ = model.Update(frameMsg{})
	}

	m := model.(Model)
	if len(m.history) != scopeWidth {
		t.Errorf("Expected history capped at %d, got %d", scopeWidth, len(m.history))
	}
	if !strings.Contains(m.View(), "100%") {
		t.Error("Expected current level in the view")
	}
}

func TestSparkline(t *testing.T) {
	got := sparkline([]core.Level{0, 50, 100, 255})
	if got != "▁▄██" {
		t.Errorf("Unexpected sparkline %q", got)
	}
}

func TestModelShowsUptime(t *testing.T) {
	core.SetTime(12345)
	defer core.SetTime(0)

	m := NewModel(NewPanel(8, 4), NewKnob(4), &Scope{})
	if !strings.Contains(m.View(), "up 12.3s") {
		t.Error("Expected uptime from the tick clock in the view")
	}
}
