package clock

import (
	"fmt"
	"time"
)

// Reading is an opaque timestamp captured by a Clock. Readings are only
// comparable to other readings taken from the same clock instance; the
// raw value is ticks for the cycle source and nanoseconds for the
// monotonic source.
type Reading struct {
	raw uint64
}

// Clock is the capability set benchmarked call sites depend on. Call
// sites never name a concrete source; the source is chosen once, at
// construction.
//
// Clocks are not safe for concurrent use. Readings from the cycle
// source are only meaningful within a single run on one core.
type Clock interface {
	// Now captures a timestamp with minimal overhead. It must not
	// allocate or touch unrelated subsystems, since a pair of Now calls
	// brackets every measured operation.
	Now() Reading

	// SetFrequency records the tick rate in MHz used to convert tick
	// differences into durations. It is a no-op for sources that are
	// already expressed in wall-clock units.
	SetFrequency(mhz uint64)

	// Duration returns the elapsed time from earlier to later. The
	// earlier reading must not come after later; a reversed pair means
	// readings from unrelated clocks were mixed, or a caller bug, and
	// panics. The cycle source additionally panics if no frequency has
	// been set: there is no defensible default divisor.
	Duration(earlier, later Reading) time.Duration
}

// Source names a concrete clock implementation.
type Source string

const (
	// SourceCycle reads the CPU's raw cycle counter. Lowest overhead,
	// requires an externally calibrated tick frequency, and is not
	// comparable across cores.
	SourceCycle Source = "cycle"

	// SourceMonotonic reads the OS monotonic clock. Portable and
	// self-scaled, at marginally higher capture cost.
	SourceMonotonic Source = "monotonic"
)

// New constructs a clock for the named source. Unknown source names are
// a configuration problem, not a programmer error, and return an error.
func New(source Source) (Clock, error) {
	switch source {
	case SourceCycle:
		return NewCycle(), nil
	case SourceMonotonic:
		return NewMonotonic(), nil
	default:
		return nil, fmt.Errorf("clock: unknown source %q (want %q or %q)", source, SourceCycle, SourceMonotonic)
	}
}
