package serial

import (
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	ev := ParseLine("Button: Clicked\r\n")
	if ev.Button != "Clicked" {
		t.Errorf("Expected button 'Clicked', got '%s'", ev.Button)
	}
	if ev.Line != "Button: Clicked" {
		t.Errorf("Expected trimmed line, got '%s'", ev.Line)
	}

	ev = ParseLine("Acceleration is enabled")
	if ev.Button != "" {
		t.Errorf("Expected no button, got '%s'", ev.Button)
	}
}

func TestReadEvents(t *testing.T) {
	input := "Acceleration is enabled\r\n\r\nButton: Clicked\r\nButton: Held\n"

	var events []Event
	err := ReadEvents(strings.NewReader(input), func(ev Event) {
		events = append(events, ev)
	})
	if err != nil {
		t.Fatalf("ReadEvents failed: %v", err)
	}

	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	if events[1].Button != "Clicked" || events[2].Button != "Held" {
		t.Errorf("Unexpected buttons: %q, %q", events[1].Button, events[2].Button)
	}
}
