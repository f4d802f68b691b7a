//go:build rp2040

package main

import (
	"machine"

	"tinygo.org/x/drivers/encoders"
)

// encoderPins feeds the quadrature count and the push switch to input.Rotary
type encoderPins struct {
	enc    *encoders.QuadratureDevice
	button machine.Pin
}

func newEncoderPins(pinA, pinB, pinSw machine.Pin) *encoderPins {
	enc := encoders.NewQuadratureViaInterrupt(pinA, pinB)
	// Full resolution: input.Rotary divides by steps_per_notch
	enc.Configure(encoders.QuadratureConfig{Precision: 1})

	pinSw.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	return &encoderPins{enc: enc, button: pinSw}
}

func (p *encoderPins) Position() int {
	return p.enc.Position()
}

// ButtonDown is active low (pull-up, switch to ground)
func (p *encoderPins) ButtonDown() bool {
	return !p.button.Get()
}
