package core

// OutputPin identifies a hardware pin capable of level (PWM) output
type OutputPin uint32

// Level is an output intensity on a 0..LevelMax scale
type Level uint8

// LevelMax is the full-scale output level
const LevelMax = 100

// LevelDriver is the abstract output interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type LevelDriver interface {
	// ConfigureOutput prepares a pin for level output with the given
	// carrier period in nanoseconds.
	ConfigureOutput(pin OutputPin, periodNS uint64) error

	// SetLevel sets the output level for a pin.
	// value: 0 (fully off) to LevelMax (fully on). Must be safe to call
	// from the tick context.
	SetLevel(pin OutputPin, value Level) error
}

// Global singleton used by core code.
var levelDriver LevelDriver

// SetLevelDriver is called by target-specific code to register its driver.
func SetLevelDriver(d LevelDriver) {
	levelDriver = d
}

// MustLevel returns the configured driver or panics if missing.
func MustLevel() LevelDriver {
	if levelDriver == nil {
		panic("level driver not configured")
	}
	return levelDriver
}

// LevelChannel binds a pin to the registered driver.
type LevelChannel struct {
	Pin OutputPin
}

// SetLevel drives the bound pin. Values above LevelMax saturate.
func (c LevelChannel) SetLevel(value Level) {
	if value > LevelMax {
		value = LevelMax
	}
	// Errors are dropped: this runs in the tick context with nobody to report to
	_ = MustLevel().SetLevel(c.Pin, value)
}
