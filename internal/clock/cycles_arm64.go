//go:build arm64

package clock

const cycleCounterSupported = true

// cntvct reads the virtual counter via CNTVCT_EL0.
// Implemented in cycles_arm64.s
func cntvct() uint64

// cntfrq reads the counter frequency via CNTFRQ_EL0.
// Implemented in cycles_arm64.s
func cntfrq() uint64

func readCycles() uint64 {
	return cntvct()
}

// arm64 publishes the counter rate directly, so no external calibration
// is needed. CNTFRQ_EL0 is in Hz; a zero read means firmware never
// programmed it and the caller must calibrate after all.
func hardwareFrequencyMHz() (uint64, bool) {
	hz := cntfrq()
	if hz == 0 {
		return 0, false
	}
	return hz / 1_000_000, true
}
