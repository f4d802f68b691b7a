// Package wave drives the pulse output from the published parameters.
package wave

import (
	"siggen/core"
	"siggen/param"
)

// Output is the level sink: 0..100 on a designated channel
type Output interface {
	SetLevel(value core.Level)
}

// Generator recomputes the output level on every tick.
// It keeps no state of its own.
type Generator struct {
	signal param.SignalView
	out    Output
}

// NewGenerator creates a generator reading signal and writing out
func NewGenerator(signal param.SignalView, out Output) *Generator {
	return &Generator{signal: signal, out: out}
}

// Level returns the level the output should have at time now (ms).
// PeriodMs is never zero: the rate item's minimum is validated > 0 at
// startup and the rate maximum keeps the rounded period >= 1ms.
func (g *Generator) Level(now uint32) core.Level {
	period := g.signal.PeriodMs()
	phase := now % period

	if phase < g.signal.Duty()*period/100 {
		return core.Level(g.signal.High())
	}
	return core.Level(g.signal.Low())
}

// Tick drives the output. Safe to call from the tick context: it only
// loads published words and writes the sink.
func (g *Generator) Tick(now uint32) {
	g.out.SetLevel(g.Level(now))
}
