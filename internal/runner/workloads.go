package runner

import (
	"fmt"
	"os"
	"time"
)

// Workload is one operation the measurement loop times. Workloads take
// no arguments and return nothing so that the call site around them
// stays as small as the timing brackets allow.
type Workload func()

// spinSink defeats dead-code elimination of the spin loop.
var spinSink uint64

// LookupWorkload resolves a configured workload name. The built-ins
// cover the common calibration cases: pure CPU, allocator pressure, a
// kernel round trip, and a scheduler sleep.
func LookupWorkload(name string) (Workload, error) {
	switch name {
	case "spin":
		return func() {
			var x uint64
			for i := uint64(0); i < 1000; i++ {
				x += i * i
			}
			spinSink = x
		}, nil
	case "alloc":
		return func() {
			b := make([]byte, 4096)
			for i := 0; i < len(b); i += 512 {
				b[i] = byte(i)
			}
			spinSink += uint64(b[0])
		}, nil
	case "syscall":
		return func() {
			// Getpid is the classic cheap kernel round trip.
			spinSink += uint64(os.Getpid())
		}, nil
	case "sleep":
		return func() {
			time.Sleep(50 * time.Microsecond)
		}, nil
	default:
		return nil, fmt.Errorf("runner: unknown workload %q", name)
	}
}
