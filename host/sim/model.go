package sim

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"siggen/core"
)

const (
	frameInterval = 30 * time.Millisecond
	clickHold     = 60 * time.Millisecond
	scopeWidth    = 64
)

var (
	scopeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFDC00"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type frameMsg time.Time

type releaseMsg struct{}

// Model is the bubbletea front end: it draws the panel and turns keys
// into knob motion and switch presses.
type Model struct {
	panel *Panel
	knob  *Knob
	scope *Scope

	history []core.Level
}

// NewModel creates the simulator view
func NewModel(panel *Panel, knob *Knob, scope *Scope) Model {
	return Model{
		panel:   panel,
		knob:    knob,
		scope:   scope,
		history: make([]core.Level, 0, scopeWidth),
	}
}

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return nextFrame()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "up", "k", "left", "h":
			m.knob.Turn(-1)

		case "down", "j", "right", "l":
			m.knob.Turn(1)

		case "pgup", "K":
			m.knob.Turn(-10)

		case "pgdown", "J":
			m.knob.Turn(10)

		case "enter", " ":
			m.knob.SetDown(true)
			return m, tea.Tick(clickHold, func(time.Time) tea.Msg {
				return releaseMsg{}
			})
		}

	case releaseMsg:
		m.knob.SetDown(false)

	case frameMsg:
		m.history = append(m.history, m.scope.Level())
		if len(m.history) > scopeWidth {
			m.history = m.history[len(m.history)-scopeWidth:]
		}
		return m, nextFrame()
	}

	return m, nil
}

func (m Model) View() string {
	panelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7FDBFF")).
		Background(lipgloss.Color("#000000")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	var b strings.Builder

	b.WriteString(panelStyle.Render(strings.Join(m.panel.Render(), "\n")))
	b.WriteString("\n")
	b.WriteString(scopeStyle.Render(sparkline(m.history)))
	b.WriteString("  ")
	b.WriteString(core.Itoa(int(m.scope.Level())))
	b.WriteString("%  up ")
	b.WriteString(uptime(core.GetTime()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ turn  PgUp/PgDn turn fast  enter click  q quit"))
	b.WriteString("\n")

	return b.String()
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// sparkline maps 0..100 levels to block heights
func sparkline(levels []core.Level) string {
	out := make([]rune, len(levels))
	for i, lv := range levels {
		idx := int(lv) * (len(sparkRunes) - 1) / core.LevelMax
		if idx >= len(sparkRunes) {
			idx = len(sparkRunes) - 1
		}
		out[i] = sparkRunes[idx]
	}
	return string(out)
}

// uptime renders milliseconds as seconds with one decimal
func uptime(ms uint32) string {
	var buf [16]byte
	out := core.AppendInt(buf[:0], int(ms/1000))
	out = append(out, '.')
	out = core.AppendInt(out, int(ms%1000/100))
	return string(append(out, 's'))
}
