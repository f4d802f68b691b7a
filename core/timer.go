package core

import "sync/atomic"

// TickPeriodUS is the default tick: 1ms, fast enough for encoder sampling
const TickPeriodUS = 1000

var systemMillis atomic.Uint32

// GetTime returns the current monotonic time in milliseconds.
// It wraps after ~49 days; phase math only needs differences.
func GetTime() uint32 {
	return systemMillis.Load()
}

// SetTime sets the current time (from the tick context or tests)
func SetTime(ms uint32) {
	systemMillis.Store(ms)
}

// TickHandler runs once per tick period in the tick context.
// It must not block.
type TickHandler func(now uint32)

// TickSource invokes exactly one handler at a constant period.
type TickSource interface {
	// Start registers the handler and begins ticking.
	// The period cannot be changed afterwards.
	Start(periodUS uint32, handler TickHandler) error
}

// NextDeadline returns the alarm value following deadline. It stays on the
// drift-free grid while that point is still ahead of now; a late service
// restarts the grid from now so the alarm is never set in the past.
func NextDeadline(deadline, now, periodUS uint32) uint32 {
	next := deadline + periodUS
	if int32(next-now) <= 0 {
		return now + periodUS
	}
	return next
}
