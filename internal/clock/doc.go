// Package clock provides pluggable, minimal-overhead timestamping for
// benchmarked call sites.
//
// Two concrete sources implement the Clock capability set:
//
//   - Cycle: the CPU's raw cycle counter (RDTSC on amd64, CNTVCT_EL0 on
//     arm64). Cheapest to capture, but callers must supply the tick
//     frequency and keep the measured loop pinned to one core.
//   - Monotonic: the OS monotonic clock. Portable, self-scaled, and a
//     little more expensive per capture.
//
// Call sites depend only on the Clock interface, so the source is
// swappable without touching the measurement loop:
//
//	clk, _ := clock.New(clock.SourceMonotonic)
//	start := clk.Now()
//	op()
//	elapsed := clk.Duration(start, clk.Now())
//
// # Frequency
//
// The cycle source converts ticks to time with the frequency set via
// SetFrequency (in MHz). Computing a duration before the frequency is
// set panics. On arm64 the hardware publishes its own rate, available
// through HardwareFrequencyMHz.
//
// # Thread Safety
//
// Clocks are not safe for concurrent use, and cycle readings taken on
// different cores are not comparable. Pin the measurement loop.
package clock
