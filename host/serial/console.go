package serial

import (
	"bufio"
	"io"
	"strings"
)

// Event is one diagnostic line from the device
type Event struct {
	Line   string
	Button string // set for "Button: <name>" lines
}

// ParseLine classifies a diagnostic line
func ParseLine(line string) Event {
	line = strings.TrimRight(line, "\r\n")
	ev := Event{Line: line}
	if name, ok := strings.CutPrefix(line, "Button: "); ok {
		ev.Button = strings.TrimSpace(name)
	}
	return ev
}

// ReadEvents scans r line by line and calls fn for each non-empty line
// until r is exhausted or fails
func ReadEvents(r io.Reader, fn func(Event)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fn(ParseLine(line))
	}
	return scanner.Err()
}
