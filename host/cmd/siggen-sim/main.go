package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"tinygo.org/x/tinyfont/proggy"

	"siggen/app"
	"siggen/config"
	"siggen/core"
	"siggen/display"
	"siggen/host/sim"
)

var (
	configPath = flag.String("config", "", "JSON menu configuration (default: built-in)")
	logPath    = flag.String("log", "", "Write diagnostics to this file")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		logger := slog.New(slog.NewTextHandler(f, nil))
		core.SetDebugWriter(func(s string) {
			logger.Info(s)
		})
		core.SetDebugEnabled(true)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	panel := sim.NewPanel(cfg.Display.Width, cfg.Display.Height)
	knob := sim.NewKnob(cfg.StepsPerNotch)
	scope := &sim.Scope{}

	a, err := app.New(cfg, display.NewText(panel, &proggy.TinySZ8pt7b), knob, scope)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := a.Menu.Render(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := a.Start(core.NewHostTicker(ctx)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	core.DebugPrintln(a.AccelerationMessage())

	go func() {
		if err := a.Run(ctx); err != nil && err != context.Canceled {
			core.DebugPrintln("main loop stopped: " + err.Error())
		}
	}()

	p := tea.NewProgram(sim.NewModel(panel, knob, scope), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && err != tea.ErrProgramKilled {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return config.LoadConfig(data)
}
