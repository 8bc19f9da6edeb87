package clock

import (
	"fmt"
	"time"
)

// Monotonic is a Clock over the operating system's monotonic clock.
// Readings are nanoseconds elapsed since the clock was constructed, so
// they are self-scaled and SetFrequency is a no-op.
type Monotonic struct {
	base time.Time
}

// NewMonotonic returns a monotonic-clock source anchored at now.
func NewMonotonic() *Monotonic {
	return &Monotonic{base: time.Now()}
}

// Now captures nanoseconds since the clock's construction. time.Since
// reads the runtime's monotonic clock and does not allocate.
func (c *Monotonic) Now() Reading {
	return Reading{raw: uint64(time.Since(c.base))}
}

// SetFrequency is a no-op: monotonic readings are already nanoseconds.
func (c *Monotonic) SetFrequency(uint64) {}

// Duration returns the elapsed time from earlier to later.
func (c *Monotonic) Duration(earlier, later Reading) time.Duration {
	if earlier.raw > later.raw {
		panic(fmt.Sprintf("clock: readings out of order (earlier=%d later=%d); were they taken from the same clock?",
			earlier.raw, later.raw))
	}
	return time.Duration(later.raw - earlier.raw)
}
