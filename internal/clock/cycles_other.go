//go:build !amd64 && !arm64

package clock

const cycleCounterSupported = false

// Never reached: NewCycle falls back to the monotonic source when the
// architecture has no raw counter.
func readCycles() uint64 {
	return 0
}

func hardwareFrequencyMHz() (uint64, bool) {
	return 0, false
}
