//go:build rp2040

package main

import (
	"errors"
	"machine"

	"siggen/core"
)

// pwmPeripheral is an interface for PWM hardware peripherals
// This abstracts over TinyGo's unexported *pwmGroup type
type pwmPeripheral interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

type pwmOutput struct {
	slice   pwmPeripheral
	channel uint8
}

// RP2040LevelDriver implements core.LevelDriver on the RP2040 PWM slices.
// GPIO pin N maps to slice (N >> 1) & 7, channel N & 1.
type RP2040LevelDriver struct {
	outputs map[core.OutputPin]pwmOutput
}

// NewRP2040LevelDriver creates a new RP2040 level driver
func NewRP2040LevelDriver() *RP2040LevelDriver {
	return &RP2040LevelDriver{
		outputs: make(map[core.OutputPin]pwmOutput),
	}
}

// ConfigureOutput configures a pin for PWM output with the given carrier period
func (d *RP2040LevelDriver) ConfigureOutput(pin core.OutputPin, periodNS uint64) error {
	slice := getPWMPeripheral(uint8((uint32(pin) >> 1) & 0x7))

	err := slice.Configure(machine.PWMConfig{
		Period: periodNS,
	})
	if err != nil {
		return err
	}

	channel, err := slice.Channel(machine.Pin(pin))
	if err != nil {
		return err
	}

	d.outputs[pin] = pwmOutput{slice: slice, channel: channel}
	return nil
}

// SetLevel sets the duty cycle for a pin: 0 (off) to core.LevelMax (fully on).
// Called from the tick interrupt; it only writes the compare register.
func (d *RP2040LevelDriver) SetLevel(pin core.OutputPin, value core.Level) error {
	out, exists := d.outputs[pin]
	if !exists {
		return errors.New("output pin not configured")
	}

	// Use 32-bit math: Top() is at most 0xFFFF
	top := out.slice.Top()
	out.slice.Set(out.channel, uint32(value)*top/core.LevelMax)
	return nil
}

// getPWMPeripheral returns the PWM peripheral for a given slice number
func getPWMPeripheral(sliceNum uint8) pwmPeripheral {
	switch sliceNum {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}
