// Package runner executes measurement runs.
//
// A run wires the three core pieces together: a clock brackets each
// workload execution, the elapsed nanoseconds land in a memory-locked
// sample buffer, and once the loop finishes the samples are handed to
// the statistics engine. Meminfo snapshots taken before and after the
// loop give the report memory context.
//
// The whole run is single-threaded and synchronous on the calling
// goroutine; for cycle-clock runs the caller should additionally pin
// that thread to one core.
package runner
