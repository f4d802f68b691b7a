package param

import "sync/atomic"

// SignalView is the read-only, tick-safe view of the waveform parameters.
// Every field is a single machine word.
type SignalView interface {
	PeriodMs() uint32 // round(1000 / rate), always >= 1
	Duty() uint32     // 0..100
	Low() uint32      // 0..100
	High() uint32     // 0..100
}

// Signal holds the words published by the Registry
type Signal struct {
	periodMs atomic.Uint32
	duty     atomic.Uint32
	low      atomic.Uint32
	high     atomic.Uint32
}

func (s *Signal) PeriodMs() uint32 { return s.periodMs.Load() }
func (s *Signal) Duty() uint32     { return s.duty.Load() }
func (s *Signal) Low() uint32      { return s.low.Load() }
func (s *Signal) High() uint32     { return s.high.Load() }
