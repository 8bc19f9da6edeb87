package output

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/wesleyorama2/sampler/internal/config"
	"github.com/wesleyorama2/sampler/internal/procfs"
	"github.com/wesleyorama2/sampler/internal/runner"
	"github.com/wesleyorama2/sampler/internal/stats"
)

// Report is the serializable form of one finished run. It carries the
// exact order statistics the caller asked for plus the HDR cross-check
// summary; raw samples stay out of the report on purpose.
type Report struct {
	Name       string    `json:"name"`
	Clock      string    `json:"clock"`
	Workload   string    `json:"workload"`
	Iterations int       `json:"iterations"`
	ElapsedNs  int64     `json:"elapsedNs"`
	Timestamp  time.Time `json:"timestamp"`

	Stats     ReportStats            `json:"stats"`
	Histogram stats.HistogramSummary `json:"histogram"`
	Memory    *MemoryDelta           `json:"memory,omitempty"`
}

// ReportStats holds the exact statistics, in nanoseconds.
type ReportStats struct {
	MeanNs   float64 `json:"meanNs"`
	StdDevNs float64 `json:"stdDevNs"`
	MaxNs    uint64  `json:"maxNs"`

	// Keys are "p50" style for percentiles and "q999000" style for
	// permicrotiles, matching the query surface.
	Percentiles   map[string]uint64 `json:"percentiles"`
	Permicrotiles map[string]uint64 `json:"permicrotiles,omitempty"`
}

// MemoryDelta summarizes the meminfo movement across the measured loop.
type MemoryDelta struct {
	AvailableBeforeKb uint64 `json:"availableBeforeKb"`
	AvailableAfterKb  uint64 `json:"availableAfterKb"`
	FreeBeforeKb      uint64 `json:"freeBeforeKb"`
	FreeAfterKb       uint64 `json:"freeAfterKb"`
}

// BuildReport reduces a run result to its report, pulling exactly the
// order statistics the configuration asked for.
func BuildReport(res *runner.Result, cfg *config.Config) *Report {
	rs := ReportStats{
		MeanNs:        res.Stats.Mean(),
		StdDevNs:      res.Stats.StdDev(),
		MaxNs:         res.Stats.Max(),
		Percentiles:   make(map[string]uint64, len(cfg.Percentiles)),
		Permicrotiles: make(map[string]uint64, len(cfg.Permicrotiles)),
	}
	for _, p := range cfg.Percentiles {
		rs.Percentiles[fmt.Sprintf("p%d", p)] = res.Stats.Percentile(p)
	}
	for _, q := range cfg.Permicrotiles {
		rs.Permicrotiles[fmt.Sprintf("q%d", q)] = res.Stats.Permicrotile(q)
	}

	return &Report{
		Name:       res.Name,
		Clock:      string(res.ClockSource),
		Workload:   res.Workload,
		Iterations: res.Iterations,
		ElapsedNs:  res.Elapsed.Nanoseconds(),
		Timestamp:  time.Now().UTC(),
		Stats:      rs,
		Histogram:  res.Histogram,
		Memory:     memoryDelta(res.MemBefore, res.MemAfter),
	}
}

func memoryDelta(before, after *procfs.Meminfo) *MemoryDelta {
	if before == nil || after == nil {
		return nil
	}
	return &MemoryDelta{
		AvailableBeforeKb: before.MemAvailable.Kilobytes(),
		AvailableAfterKb:  after.MemAvailable.Kilobytes(),
		FreeBeforeKb:      before.MemFree.Kilobytes(),
		FreeAfterKb:       after.MemFree.Kilobytes(),
	}
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("output: marshal report: %w", err)
	}
	return data, nil
}
