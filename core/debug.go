package core

import "sync"

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

var (
	debugMu sync.Mutex

	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	// Async debug output channel
	debugChan chan string
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, a log file, etc.
func SetDebugWriter(writer DebugWriter) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	debugMu.Lock()
	defer debugMu.Unlock()
	return debugEnabled
}

// InitAsyncDebug starts the async debug output goroutine
// Call this from main() after SetDebugWriter
func InitAsyncDebug() {
	debugMu.Lock()
	defer debugMu.Unlock()
	if debugChan != nil {
		return
	}
	debugChan = make(chan string, 16) // Buffer 16 messages
	go debugOutputWorker(debugChan)
}

// debugOutputWorker runs in background, drains debug channel
func debugOutputWorker(ch <-chan string) {
	for msg := range ch {
		DebugPrintln(msg)
	}
}

// DebugPrintln writes a debug message using the platform-specific writer.
// Never call it from the tick context.
func DebugPrintln(msg string) {
	debugMu.Lock()
	w, on := debugPrintln, debugEnabled
	debugMu.Unlock()

	if on && w != nil {
		w(msg)
	}
}

// DebugAsync queues a debug message for async output (non-blocking)
// Returns immediately even if channel is full (drops message)
func DebugAsync(msg string) {
	debugMu.Lock()
	ch := debugChan
	debugMu.Unlock()

	if ch == nil {
		DebugPrintln(msg)
		return
	}
	select {
	case ch <- msg:
	default:
		// Channel full, drop message
	}
}
