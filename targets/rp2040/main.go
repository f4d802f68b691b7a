//go:build rp2040

package main

import (
	"context"
	"machine"
	"time"

	"siggen/app"
	"siggen/config"
	"siggen/core"
)

// Board wiring
const (
	pinA   = machine.GP3
	pinB   = machine.GP4
	pinSw  = machine.GP2
	pinOut = machine.GP11
	pinSDA = machine.GP16
	pinSCL = machine.GP17

	// PWM carrier for the level output
	carrierPeriodNS = 10_000 // 100kHz
)

func main() {
	// Diagnostics go to the USB serial console
	core.SetDebugWriter(func(s string) {
		println(s)
	})
	core.SetDebugEnabled(true)
	core.InitAsyncDebug()

	cfg := config.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		fatal()
	}

	levelDriver := NewRP2040LevelDriver()
	core.SetLevelDriver(levelDriver)
	if err := levelDriver.ConfigureOutput(core.OutputPin(pinOut), carrierPeriodNS); err != nil {
		fatal()
	}

	text, err := initDisplay(cfg.Display)
	if err != nil {
		fatal()
	}

	pins := newEncoderPins(pinA, pinB, pinSw)

	a, err := app.New(cfg, text, pins, core.LevelChannel{Pin: core.OutputPin(pinOut)})
	if err != nil {
		fatal()
	}

	_ = a.Menu.Render()

	if err := a.Start(&ticker); err != nil {
		fatal()
	}
	core.DebugPrintln(a.AccelerationMessage())

	time.Sleep(1 * time.Second)

	// Returns only if the context ends, which it never does here
	_ = a.Serve(context.Background())
}

// fatal flashes the LED rapidly forever to indicate an init error
func fatal() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.High()
		time.Sleep(100 * time.Millisecond)
		led.Low()
		time.Sleep(100 * time.Millisecond)
	}
}
