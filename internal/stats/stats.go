package stats

import (
	"fmt"
	"math"
	"slices"
)

// TimingStats reduces one finished batch of samples to summary
// statistics, computing each derived value at most once. The sorted
// copy backing the order statistics is built on first use and shared by
// Max, Percentile, and Permicrotile.
//
// The input slice is never mutated, but it is also never copied at
// construction: the caches stay correct only as long as the caller does
// not mutate the slice between queries. There is no invalidation; build
// a new TimingStats to force recomputation.
//
// TimingStats is not safe for concurrent use.
type TimingStats struct {
	samples []uint64

	mean   *float64
	stdDev *float64
	sorted []uint64

	// Separate caches: percentile arguments live in [0,100) and
	// permicrotile arguments in (990000,1000000), but keeping them
	// apart avoids leaning on that coincidence.
	percentiles   map[uint32]uint64
	permicrotiles map[uint32]uint64
}

// New returns a TimingStats over samples. Units are whatever the caller
// recorded (cycles, nanoseconds); nothing here assumes one.
func New(samples []uint64) *TimingStats {
	return &TimingStats{
		samples:       samples,
		percentiles:   make(map[uint32]uint64),
		permicrotiles: make(map[uint32]uint64),
	}
}

// Count returns the number of samples.
func (s *TimingStats) Count() int { return len(s.samples) }

// Mean returns the arithmetic mean, cached after the first call.
func (s *TimingStats) Mean() float64 {
	if s.mean == nil {
		var sum float64
		for _, v := range s.samples {
			sum += float64(v)
		}
		m := sum / float64(len(s.samples))
		s.mean = &m
	}
	return *s.mean
}

// StdDev returns the population standard deviation (squared deviations
// divided by n, not n-1), cached after the first call.
func (s *TimingStats) StdDev() float64 {
	if s.stdDev == nil {
		mean := s.Mean()
		var sumSq float64
		for _, v := range s.samples {
			d := float64(v) - mean
			sumSq += d * d
		}
		sd := math.Sqrt(sumSq / float64(len(s.samples)))
		s.stdDev = &sd
	}
	return *s.stdDev
}

// Max returns the largest sample. It panics on an empty sample set.
func (s *TimingStats) Max() uint64 {
	sorted := s.sortedSamples()
	if len(sorted) == 0 {
		panic("stats: max of empty sample set")
	}
	return sorted[len(sorted)-1]
}

// Percentile returns the value at zero-based sorted index
// floor(n*p/100). The argument must satisfy 0 <= p < 100; anything else
// is a caller bug and panics, as does an empty sample set.
func (s *TimingStats) Percentile(p uint32) uint64 {
	if p >= 100 {
		panic(fmt.Sprintf("stats: percentile %d out of range [0,100)", p))
	}
	if v, ok := s.percentiles[p]; ok {
		return v
	}

	sorted := s.sortedSamples()
	idx := int(uint64(len(sorted)) * uint64(p) / 100)
	if idx >= len(sorted) {
		panic(fmt.Sprintf("stats: percentile index %d out of bounds for %d samples", idx, len(sorted)))
	}

	v := sorted[idx]
	s.percentiles[p] = v
	return v
}

// Permicrotile returns the value at zero-based sorted index
// floor(n*q/1000000). It resolves the extreme upper tail at finer than
// whole-percentile granularity, so the argument is restricted to
// 990000 < q < 1000000 (99.0000% to 100%, exclusive); anything else
// panics, as does an empty sample set.
func (s *TimingStats) Permicrotile(q uint32) uint64 {
	if q <= 990000 || q >= 1000000 {
		panic(fmt.Sprintf("stats: permicrotile %d out of range (990000,1000000)", q))
	}
	if v, ok := s.permicrotiles[q]; ok {
		return v
	}

	sorted := s.sortedSamples()
	idx := int(uint64(len(sorted)) * uint64(q) / 1000000)
	if idx >= len(sorted) {
		panic(fmt.Sprintf("stats: permicrotile index %d out of bounds for %d samples", idx, len(sorted)))
	}

	v := sorted[idx]
	s.permicrotiles[q] = v
	return v
}

// sortedSamples returns the shared ascending copy, building it once.
func (s *TimingStats) sortedSamples() []uint64 {
	if s.sorted == nil {
		s.sorted = make([]uint64, len(s.samples))
		copy(s.sorted, s.samples)
		slices.Sort(s.sorted)
	}
	return s.sorted
}
