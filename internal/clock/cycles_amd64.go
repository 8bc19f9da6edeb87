//go:build amd64

package clock

const cycleCounterSupported = true

// rdtsc reads the timestamp counter.
// Implemented in cycles_amd64.s
func rdtsc() uint64

func readCycles() uint64 {
	return rdtsc()
}

// The TSC rate is not architecturally discoverable on amd64; callers
// calibrate it externally (cpuinfo, known base clock, or a timed spin).
func hardwareFrequencyMHz() (uint64, bool) {
	return 0, false
}
