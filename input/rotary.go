// Package input turns raw encoder and switch samples into menu input.
package input

import "sync/atomic"

// Acceleration tuning: the accumulator grows per detent and decays per sample
const (
	accelInc = 25
	accelDec = 2
	accelTop = 3072
)

// Pins is the raw hardware read by Service on every tick
type Pins interface {
	// Position returns the accumulated quadrature count
	Position() int

	// ButtonDown reports whether the switch is currently closed
	ButtonDown() bool
}

// Rotary is the rotary input source. Service runs in the tick context;
// Motion and Button are polled by the cooperative loop.
type Rotary struct {
	pins          Pins
	stepsPerNotch int
	tickMS        int

	// Tick context state
	lastPos      int
	acceleration int
	sinceButton  int
	classifier   buttonClassifier

	// Shared between contexts
	accel  atomic.Bool
	motion atomic.Int32
	button atomic.Uint32
}

// NewRotary creates an input source sampling pins every tickMS milliseconds
func NewRotary(pins Pins, stepsPerNotch int, tickMS int) *Rotary {
	if stepsPerNotch <= 0 {
		stepsPerNotch = 1
	}
	if tickMS <= 0 {
		tickMS = 1
	}
	return &Rotary{
		pins:          pins,
		stepsPerNotch: stepsPerNotch,
		tickMS:        tickMS,
		lastPos:       pins.Position(),
	}
}

// SetAccelerationEnabled toggles motion scaling at high turn speed
func (r *Rotary) SetAccelerationEnabled(enabled bool) {
	r.accel.Store(enabled)
}

// AccelerationEnabled reports whether acceleration is on
func (r *Rotary) AccelerationEnabled() bool {
	return r.accel.Load()
}

// Service samples the pins. Tick context: short and non-blocking.
func (r *Rotary) Service() {
	accel := r.accel.Load()
	if accel {
		r.acceleration -= accelDec * r.tickMS
		if r.acceleration < 0 {
			r.acceleration = 0
		}
	}

	pos := r.pins.Position()
	notches := (pos - r.lastPos) / r.stepsPerNotch
	if notches != 0 {
		r.lastPos += notches * r.stepsPerNotch

		steps := notches
		if accel {
			r.acceleration += accelInc
			if r.acceleration > accelTop {
				r.acceleration = accelTop
			}
			steps *= 1 + r.acceleration>>8
		}
		r.motion.Add(int32(steps))
	}

	r.sinceButton += r.tickMS
	if r.sinceButton >= ButtonIntervalMS {
		r.sinceButton = 0
		current := Button(r.button.Load())
		if event := r.classifier.sample(r.pins.ButtonDown(), current); event != Open {
			r.button.Store(uint32(event))
		}
	}
}

// Motion returns the relative motion accumulated since the last call
func (r *Rotary) Motion() int {
	return int(r.motion.Swap(0))
}

// Button returns and clears the pending button event.
// Held is sticky until the switch is released.
func (r *Rotary) Button() Button {
	b := Button(r.button.Load())
	if b != Held && b != Open {
		r.button.CompareAndSwap(uint32(b), uint32(Open))
	}
	return b
}
