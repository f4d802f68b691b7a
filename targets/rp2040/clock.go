//go:build rp2040

package main

import (
	"device/rp"
	"errors"
	"runtime/interrupt"

	"siggen/core"
)

// The TinyGo runtime sleeps on ALARM0; the tick uses ALARM1.
// The RP2040 timer counts microseconds.
type alarmTicker struct {
	periodUS uint32
	handler  core.TickHandler
}

var ticker alarmTicker

// Start arms ALARM1 to fire every periodUS and calls handler from its interrupt
func (t *alarmTicker) Start(periodUS uint32, handler core.TickHandler) error {
	if t.handler != nil {
		return errors.New("tick source already started")
	}
	if periodUS == 0 || handler == nil {
		return errors.New("invalid tick configuration")
	}
	t.periodUS = periodUS
	t.handler = handler

	intr := interrupt.New(rp.IRQ_TIMER_IRQ_1, timerISR)
	rp.TIMER.INTE.SetBits(rp.TIMER_INTE_ALARM_1)
	rp.TIMER.ALARM1.Set(rp.TIMER.TIMERAWL.Get() + periodUS)
	intr.Enable()
	return nil
}

// timerISR is the tick context: clear, re-arm, then run the handler.
// The alarm only fires on an exact match with TIMERAWL, so the next
// deadline must lie ahead of the counter.
func timerISR(interrupt.Interrupt) {
	rp.TIMER.INTR.Set(rp.TIMER_INTR_ALARM_1)
	rp.TIMER.ALARM1.Set(core.NextDeadline(rp.TIMER.ALARM1.Get(), rp.TIMER.TIMERAWL.Get(), ticker.periodUS))

	now := uint32(hardwareUptime() / 1000)
	core.SetTime(now)
	ticker.handler(now)
}

// hardwareUptime reads the full 64-bit microsecond counter
func hardwareUptime() uint64 {
	// Must read high first, then low, then high again to detect rollover
	for {
		high1 := rp.TIMER.TIMERAWH.Get()
		low := rp.TIMER.TIMERAWL.Get()
		high2 := rp.TIMER.TIMERAWH.Get()

		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
	}
}
