// Package config describes the parameter menu and device settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"siggen/core"
)

// ItemKind selects the parameter variant
type ItemKind string

const (
	KindInt      ItemKind = "int"
	KindFraction ItemKind = "fraction"
	KindPeriod   ItemKind = "period"
	KindLabel    ItemKind = "label"
)

// Item describes one menu row
type Item struct {
	Kind  ItemKind `json:"kind"`
	Name  string   `json:"name"`
	Unit  string   `json:"unit,omitempty"`
	Value float64  `json:"value,omitempty"`
	Min   float64  `json:"min,omitempty"`
	Max   float64  `json:"max,omitempty"`
	Ref   string   `json:"ref,omitempty"` // period only: name of the frequency item
}

// Signal names the items feeding the waveform generator
type Signal struct {
	Rate string `json:"rate"`
	Duty string `json:"duty"`
	Low  string `json:"low"`
	High string `json:"high"`
}

// Display holds the OLED geometry
type Display struct {
	Width     int16  `json:"width"`
	Height    int16  `json:"height"`
	Address   uint16 `json:"address"`
	Rows      int    `json:"rows"`       // visible menu rows
	NameWidth int    `json:"name_width"` // name field width in characters
}

// Config is the complete device configuration
type Config struct {
	TickUS        uint32  `json:"tick_us"`
	FlashMS       uint32  `json:"flash_ms"`
	RefreshMS     uint32  `json:"refresh_ms"`
	Acceleration  *bool   `json:"acceleration,omitempty"`
	StepsPerNotch int     `json:"steps_per_notch"`
	Display       Display `json:"display"`
	Items         []Item  `json:"items"`
	Signal        Signal  `json:"signal"`
}

const (
	// MaxReciprocal bounds 1/min of the rate item so the period stays renderable
	MaxReciprocal = 1e6

	// MillisPerSec is the waveform clock resolution
	MillisPerSec = 1000
)

// LoadConfig parses a JSON configuration and returns a validated Config
func LoadConfig(jsonData []byte) (*Config, error) {
	var config Config

	err := json.Unmarshal(jsonData, &config)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Apply defaults
	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// applyDefaults fills in missing configuration values with sensible defaults
func applyDefaults(config *Config) {
	def := DefaultConfig()

	if config.TickUS == 0 {
		config.TickUS = def.TickUS
	}
	if config.FlashMS == 0 {
		config.FlashMS = def.FlashMS
	}
	if config.RefreshMS == 0 {
		config.RefreshMS = def.RefreshMS
	}
	if config.Acceleration == nil {
		config.Acceleration = def.Acceleration
	}
	if config.StepsPerNotch == 0 {
		config.StepsPerNotch = def.StepsPerNotch
	}

	if config.Display.Width == 0 {
		config.Display.Width = def.Display.Width
	}
	if config.Display.Height == 0 {
		config.Display.Height = def.Display.Height
	}
	if config.Display.Address == 0 {
		config.Display.Address = def.Display.Address
	}
	if config.Display.Rows == 0 {
		config.Display.Rows = def.Display.Rows
	}
	if config.Display.NameWidth == 0 {
		config.Display.NameWidth = def.Display.NameWidth
	}

	// An empty menu means the stock one
	if len(config.Items) == 0 {
		config.Items = def.Items
		config.Signal = def.Signal
	}
}

// DefaultConfig returns the stock single-channel pulse generator menu
func DefaultConfig() *Config {
	accel := true
	return &Config{
		TickUS:        core.TickPeriodUS,
		FlashMS:       100,
		RefreshMS:     10,
		Acceleration:  &accel,
		StepsPerNotch: 4,
		Display: Display{
			Width:     128,
			Height:    64,
			Address:   0x3C,
			Rows:      5,
			NameWidth: 14,
		},
		Items: []Item{
			// Period bounds mirror the Pulse/sec bounds: 1/10 .. 1/0.1
			{Kind: KindPeriod, Name: "Period", Unit: "s", Ref: "Pulse/sec", Min: 0.1, Max: 10},
			{Kind: KindFraction, Name: "Pulse/sec", Value: 0.5, Min: 0.1, Max: 10},
			{Kind: KindInt, Name: "Duty Cycle", Unit: "%", Value: 50, Min: 0, Max: 100},
			{Kind: KindInt, Name: "Low", Unit: "%", Value: 0, Min: 0, Max: 100},
			{Kind: KindInt, Name: "High", Unit: "%", Value: 3, Min: 0, Max: 100},
		},
		Signal: Signal{
			Rate: "Pulse/sec",
			Duty: "Duty Cycle",
			Low:  "Low",
			High: "High",
		},
	}
}

// AccelerationEnabled reports the acceleration setting (default on)
func (c *Config) AccelerationEnabled() bool {
	return c.Acceleration == nil || *c.Acceleration
}

// IndexOf returns the registry position of the named item, or -1
func (c *Config) IndexOf(name string) int {
	for i := range c.Items {
		if c.Items[i].Name == name {
			return i
		}
	}
	return -1
}

// Validate runs the startup checks. Every violation is reported.
func (c *Config) Validate() error {
	var errs []error

	if c.TickUS == 0 || c.TickUS%1000 != 0 {
		errs = append(errs, errors.New("tick_us must be a non-zero multiple of 1000"))
	}
	if c.StepsPerNotch <= 0 {
		errs = append(errs, errors.New("steps_per_notch must be positive"))
	}
	if c.Display.Rows <= 0 {
		errs = append(errs, errors.New("display.rows must be positive"))
	}
	if len(c.Items) == 0 {
		errs = append(errs, errors.New("menu has no items"))
	}

	seen := make(map[string]bool, len(c.Items))
	for i := range c.Items {
		it := &c.Items[i]
		if it.Name == "" {
			errs = append(errs, fmt.Errorf("item %d: empty name", i))
		}
		if seen[it.Name] {
			errs = append(errs, fmt.Errorf("item %q: duplicate name", it.Name))
		}
		seen[it.Name] = true

		switch it.Kind {
		case KindInt, KindFraction, KindPeriod:
			if it.Min > it.Max {
				errs = append(errs, fmt.Errorf("item %q: min %v > max %v", it.Name, it.Min, it.Max))
			}
		case KindLabel:
		default:
			errs = append(errs, fmt.Errorf("item %q: unknown kind %q", it.Name, it.Kind))
		}

		switch it.Kind {
		case KindInt:
			if it.Value != math.Trunc(it.Value) || it.Min != math.Trunc(it.Min) || it.Max != math.Trunc(it.Max) {
				errs = append(errs, fmt.Errorf("item %q: int item needs whole numbers", it.Name))
			}
			fallthrough
		case KindFraction:
			if it.Value < it.Min || it.Value > it.Max {
				errs = append(errs, fmt.Errorf("item %q: value %v outside [%v, %v]", it.Name, it.Value, it.Min, it.Max))
			}
		case KindPeriod:
			errs = append(errs, c.validatePeriod(it)...)
		}
	}

	errs = append(errs, c.validateSignal()...)

	return errors.Join(errs...)
}

func (c *Config) validatePeriod(it *Item) []error {
	var errs []error

	ref := c.IndexOf(it.Ref)
	if ref < 0 || c.Items[ref].Kind != KindFraction {
		return append(errs, fmt.Errorf("item %q: ref %q is not a fraction item", it.Name, it.Ref))
	}
	freq := &c.Items[ref]

	if it.Min <= 0 {
		errs = append(errs, fmt.Errorf("item %q: period min must be > 0", it.Name))
		return errs
	}
	if freq.Min <= 0 {
		errs = append(errs, fmt.Errorf("item %q: referenced %q must have min > 0", it.Name, freq.Name))
		return errs
	}

	// Every period the item can reach must map to a frequency the
	// referenced item accepts.
	lo, hi := 1/it.Max, 1/it.Min
	if (lo < freq.Min && !closeEnough(lo, freq.Min)) || (hi > freq.Max && !closeEnough(hi, freq.Max)) {
		errs = append(errs, fmt.Errorf("item %q: period bounds [%v, %v] imply frequency [%v, %v] outside %q bounds [%v, %v]",
			it.Name, it.Min, it.Max, lo, hi, freq.Name, freq.Min, freq.Max))
	}
	return errs
}

func (c *Config) validateSignal() []error {
	var errs []error

	rate := c.IndexOf(c.Signal.Rate)
	if rate < 0 {
		errs = append(errs, fmt.Errorf("signal.rate: no item %q", c.Signal.Rate))
	} else {
		it := &c.Items[rate]
		switch {
		case it.Kind != KindFraction:
			errs = append(errs, fmt.Errorf("signal.rate: %q must be a fraction item", it.Name))
		case it.Min <= 0:
			errs = append(errs, fmt.Errorf("signal.rate: %q min must be > 0", it.Name))
		case 1/it.Min > MaxReciprocal:
			errs = append(errs, fmt.Errorf("signal.rate: %q min %v makes the period unrenderable", it.Name, it.Min))
		case math.Round(MillisPerSec/it.Max) < 1:
			errs = append(errs, fmt.Errorf("signal.rate: %q max %v is faster than the 1ms clock", it.Name, it.Max))
		}
	}

	for _, role := range []struct{ field, name string }{
		{"signal.duty", c.Signal.Duty},
		{"signal.low", c.Signal.Low},
		{"signal.high", c.Signal.High},
	} {
		idx := c.IndexOf(role.name)
		if idx < 0 {
			errs = append(errs, fmt.Errorf("%s: no item %q", role.field, role.name))
			continue
		}
		it := &c.Items[idx]
		if it.Kind != KindInt {
			errs = append(errs, fmt.Errorf("%s: %q must be an int item", role.field, it.Name))
			continue
		}
		if it.Min < 0 || it.Max > core.LevelMax {
			errs = append(errs, fmt.Errorf("%s: %q bounds must lie within [0, %d]", role.field, it.Name, core.LevelMax))
		}
	}
	return errs
}

func closeEnough(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}
