// Package serial reads the signal generator's USB diagnostic console.
package serial

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// Config holds serial port settings
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (USB CDC ignores this)
	Baud int

	// ReadTimeout of 0 blocks until data arrives
	ReadTimeout time.Duration
}

// DefaultConfig returns the console settings for device
func DefaultConfig(device string) *Config {
	return &Config{
		Device: device,
		Baud:   115200,
	}
}

// Console is an open diagnostic stream
type Console struct {
	name string
	port io.ReadWriteCloser
}

// Open opens the console on a native serial port
func Open(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}
	return NewConsole(cfg.Device, port), nil
}

// NewConsole wraps an already open stream (pipes, tests)
func NewConsole(name string, port io.ReadWriteCloser) *Console {
	return &Console{name: name, port: port}
}

// Name returns the device the console reads from
func (c *Console) Name() string {
	return c.name
}

// Events calls fn for every diagnostic line until the stream ends
func (c *Console) Events(fn func(Event)) error {
	return ReadEvents(c.port, fn)
}

// Close releases the port
func (c *Console) Close() error {
	if c.port == nil {
		return nil
	}
	return c.port.Close()
}
