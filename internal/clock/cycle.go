package clock

import (
	"fmt"
	"time"
)

// Cycle is a Clock over the CPU's raw cycle counter (TSC on amd64,
// CNTVCT_EL0 on arm64). It has the lowest capture overhead of any
// source, but ticks must be converted to time with an externally
// supplied frequency, and readings are only comparable within one
// logical run on one core.
type Cycle struct {
	freqMHz uint64
}

// NewCycle returns a cycle-counter clock on architectures that expose
// one, and falls back to the monotonic source everywhere else. Use
// CycleCounterSupported to find out which you got.
func NewCycle() Clock {
	if !cycleCounterSupported {
		return NewMonotonic()
	}
	return &Cycle{}
}

// CycleCounterSupported reports whether this architecture has a usable
// raw cycle counter.
func CycleCounterSupported() bool {
	return cycleCounterSupported
}

// HardwareFrequencyMHz returns the counter's self-reported tick rate in
// MHz on architectures that publish one (arm64 via CNTFRQ_EL0). The
// second result is false when the rate must be calibrated externally.
func HardwareFrequencyMHz() (uint64, bool) {
	return hardwareFrequencyMHz()
}

// Now captures the current cycle count.
func (c *Cycle) Now() Reading {
	return Reading{raw: readCycles()}
}

// SetFrequency records the tick rate in MHz. It must be called before
// the first Duration computation.
func (c *Cycle) SetFrequency(mhz uint64) {
	c.freqMHz = mhz
}

// Duration converts the tick difference between two readings into a
// duration: diff ticks at freq MHz is diff*1000/freq nanoseconds.
func (c *Cycle) Duration(earlier, later Reading) time.Duration {
	if c.freqMHz == 0 {
		panic("clock: cycle clock frequency not set; call SetFrequency before Duration")
	}
	if earlier.raw > later.raw {
		panic(fmt.Sprintf("clock: readings out of order (earlier=%d later=%d); were they taken from the same clock?",
			earlier.raw, later.raw))
	}
	diff := later.raw - earlier.raw
	return time.Duration(diff * 1000 / c.freqMHz)
}
