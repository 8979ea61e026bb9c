//go:build !tinygo

package slave

// intState is a placeholder for interrupt state on regular Go.
type intState uintptr

// disableInterrupts is a no-op on regular Go, where the "interrupt"
// handlers run synchronously on the test goroutine.
func disableInterrupts() intState {
	return 0
}

// restoreInterrupts restores the interrupt state.
func restoreInterrupts(intState) {
}
