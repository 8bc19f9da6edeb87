package runner

import (
	"fmt"
	"time"

	"github.com/wesleyorama2/sampler/internal/buffer"
	"github.com/wesleyorama2/sampler/internal/clock"
	"github.com/wesleyorama2/sampler/internal/config"
	"github.com/wesleyorama2/sampler/internal/procfs"
	"github.com/wesleyorama2/sampler/internal/stats"
)

// Result carries everything a report needs from one finished run. The
// sample slice is owned by the Result (copied out of the locked buffer
// before teardown); Stats caches are computed over it lazily.
type Result struct {
	Name        string
	ClockSource clock.Source
	Iterations  int
	Workload    string

	// Samples are elapsed nanoseconds per iteration, in run order.
	Samples []uint64

	// Stats is the exact memoizing engine over Samples.
	Stats *stats.TimingStats

	// Histogram is the streaming HDR summary, as a cross-check.
	Histogram stats.HistogramSummary

	// MemBefore and MemAfter are meminfo snapshots bracketing the
	// measured loop; nil when /proc is unreadable.
	MemBefore *procfs.Meminfo
	MemAfter  *procfs.Meminfo

	Elapsed time.Duration
}

// Run executes one measurement run: build the clock, map and lock the
// sample buffer, warm up, then time cfg.Iterations executions of the
// workload back to back on the calling goroutine.
//
// Setup problems a user can fix (bad clock name, missing frequency,
// unknown workload) return errors. Violations of the core packages'
// documented preconditions propagate as panics.
func Run(cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	workload, err := LookupWorkload(cfg.Workload)
	if err != nil {
		return nil, err
	}

	source := clock.Source(cfg.Clock)
	clk, err := clock.New(source)
	if err != nil {
		return nil, err
	}
	if err := calibrate(clk, source, cfg.FrequencyMHz); err != nil {
		return nil, err
	}

	capacity := cfg.Capacity
	if capacity == 0 {
		capacity = cfg.Iterations
	}
	buf := buffer.New[uint64](buffer.AlignedCapacity[uint64](capacity))
	defer buf.Close()

	for i := 0; i < cfg.Warmup; i++ {
		workload()
	}

	memBefore, _ := procfs.ReadMeminfo() // best effort, nil on failure

	runStart := time.Now()
	for i := 0; i < cfg.Iterations; i++ {
		start := clk.Now()
		workload()
		end := clk.Now()
		buf.Push(uint64(clk.Duration(start, end)))
	}
	elapsed := time.Since(runStart)

	memAfter, _ := procfs.ReadMeminfo()

	samples := make([]uint64, buf.Len())
	copy(samples, buf.Slice())

	hist := stats.NewHistogram()
	for _, ns := range samples {
		hist.Record(time.Duration(ns))
	}

	return &Result{
		Name:        cfg.Name,
		ClockSource: source,
		Iterations:  cfg.Iterations,
		Workload:    cfg.Workload,
		Samples:     samples,
		Stats:       stats.New(samples),
		Histogram:   hist.Summary(),
		MemBefore:   memBefore,
		MemAfter:    memAfter,
		Elapsed:     elapsed,
	}, nil
}

// calibrate wires a tick frequency into cycle clocks. Explicit config
// wins; otherwise the hardware-reported rate is used where one exists.
// The monotonic source (including the fallback NewCycle hands back on
// architectures without a counter) needs none.
func calibrate(clk clock.Clock, source clock.Source, freqMHz uint64) error {
	if source != clock.SourceCycle || !clock.CycleCounterSupported() {
		return nil
	}
	if freqMHz == 0 {
		hw, ok := clock.HardwareFrequencyMHz()
		if !ok {
			return fmt.Errorf("runner: cycle clock needs frequencyMhz: this architecture cannot report its own tick rate")
		}
		freqMHz = hw
	}
	clk.SetFrequency(freqMHz)
	return nil
}
