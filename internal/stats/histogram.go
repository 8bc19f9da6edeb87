package stats

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Histogram is a streaming duration summarizer backed by an HDR
// histogram. Unlike TimingStats it trades exactness for constant
// memory: percentiles come back within the histogram's significant
// figures rather than as true order statistics, which makes it a cheap
// cross-check on the exact numbers and a way to summarize runs too long
// to keep every sample for.
//
// Histogram is not safe for concurrent use.
type Histogram struct {
	hist *hdrhistogram.Histogram
}

// Histogram bounds: 1ns to 1 hour at 3 significant figures.
const (
	histogramMin     = int64(1)
	histogramMax     = int64(time.Hour)
	histogramSigFigs = 3
)

// NewHistogram returns an empty histogram covering 1ns to 1h.
func NewHistogram() *Histogram {
	return &Histogram{
		hist: hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs),
	}
}

// Record adds one duration, clamped to the recordable range.
func (h *Histogram) Record(d time.Duration) {
	ns := d.Nanoseconds()
	if ns < histogramMin {
		ns = histogramMin
	}
	if ns > histogramMax {
		ns = histogramMax
	}
	h.hist.RecordValue(ns)
}

// Summary returns the current aggregate view.
func (h *Histogram) Summary() HistogramSummary {
	return HistogramSummary{
		Min:    time.Duration(h.hist.Min()),
		Max:    time.Duration(h.hist.Max()),
		Mean:   time.Duration(h.hist.Mean()),
		StdDev: time.Duration(h.hist.StdDev()),
		P50:    time.Duration(h.hist.ValueAtQuantile(50)),
		P90:    time.Duration(h.hist.ValueAtQuantile(90)),
		P95:    time.Duration(h.hist.ValueAtQuantile(95)),
		P99:    time.Duration(h.hist.ValueAtQuantile(99)),
		Count:  h.hist.TotalCount(),
	}
}

// HistogramSummary contains duration statistics from a Histogram.
type HistogramSummary struct {
	Min    time.Duration `json:"min"`
	Max    time.Duration `json:"max"`
	Mean   time.Duration `json:"mean"`
	StdDev time.Duration `json:"stdDev"`
	P50    time.Duration `json:"p50"`
	P90    time.Duration `json:"p90"`
	P95    time.Duration `json:"p95"`
	P99    time.Duration `json:"p99"`
	Count  int64         `json:"count"`
}
