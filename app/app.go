// Package app wires the registry, menu, input and waveform generator into
// one application state shared by the tick context and the main loop.
package app

import (
	"context"
	"errors"
	"time"

	"siggen/config"
	"siggen/core"
	"siggen/input"
	"siggen/menu"
	"siggen/param"
	"siggen/wave"
)

var errPanic = errors.New("main loop panic")

// App is the whole process state. Tick runs in the tick context and only
// reads published words; Step runs in the cooperative loop and owns every
// mutation.
type App struct {
	Config    *config.Config
	Registry  *param.Registry
	Menu      *menu.Menu
	Rotary    *input.Rotary
	Generator *wave.Generator
}

// New builds the application from a validated configuration
func New(cfg *config.Config, disp menu.Display, pins input.Pins, out wave.Output) (*App, error) {
	reg, err := param.NewRegistry(cfg)
	if err != nil {
		return nil, err
	}

	// Validate guarantees a whole number of milliseconds
	tickMS := int(cfg.TickUS / 1000)

	a := &App{
		Config:    cfg,
		Registry:  reg,
		Menu:      menu.New(reg, disp, cfg.Display.Rows, time.Duration(cfg.FlashMS)*time.Millisecond),
		Rotary:    input.NewRotary(pins, cfg.StepsPerNotch, tickMS),
		Generator: wave.NewGenerator(reg.Signal(), out),
	}
	a.Rotary.SetAccelerationEnabled(cfg.AccelerationEnabled())
	return a, nil
}

// Tick services the encoder and recomputes the output. Tick context.
func (a *App) Tick(now uint32) {
	a.Rotary.Service()
	a.Generator.Tick(now)
}

// Start registers Tick with the tick source
func (a *App) Start(src core.TickSource) error {
	return src.Start(a.Config.TickUS, a.Tick)
}

// Step runs one pass of the cooperative loop: apply motion, apply the
// pending button event, redraw.
func (a *App) Step() error {
	a.Menu.Move(a.Rotary.Motion())

	if b := a.Rotary.Button(); b != input.Open {
		core.DebugAsync("Button: " + b.String())
		a.Menu.Press(b)
	}

	return a.Menu.Render()
}

// AccelerationMessage is the startup diagnostic line
func (a *App) AccelerationMessage() string {
	if a.Rotary.AccelerationEnabled() {
		return "Acceleration is enabled"
	}
	return "Acceleration is disabled"
}

// Run repeats Step until ctx is done, pausing RefreshMS between passes
func (a *App) Run(ctx context.Context) error {
	pause := time.Duration(a.Config.RefreshMS) * time.Millisecond
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := a.Step(); err != nil {
			return err
		}
		time.Sleep(pause)
	}
}

// Serve keeps the cooperative loop alive: a panic or a display error is
// logged and the loop restarts. The tick context keeps running meanwhile.
// Serve returns once ctx is done.
func (a *App) Serve(ctx context.Context) error {
	for {
		err := a.runRecovered(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			core.DebugPrintln("main loop stopped: " + err.Error() + ", restarting")
		}
	}
}

func (a *App) runRecovered(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errPanic
		}
	}()
	return a.Run(ctx)
}
