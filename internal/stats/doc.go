// Package stats reduces finished sample batches to summary statistics.
//
// TimingStats is the exact engine: it works over one immutable slice of
// unsigned 64-bit samples and memoizes every derived value, so a report
// that asks for the mean three times pays for it once. Order statistics
// (max, percentile, permicrotile) share a single cached ascending sort.
//
//	ts := stats.New(samples)
//	fmt.Printf("mean=%.1f sd=%.1f max=%d p99=%d\n",
//	    ts.Mean(), ts.StdDev(), ts.Max(), ts.Percentile(99))
//
// Permicrotile resolves the extreme upper tail more finely than whole
// percentiles: Permicrotile(999900) is the 99.99th percentile.
//
// Histogram is the streaming companion, backed by an HDR histogram; it
// summarizes arbitrarily long runs in constant memory at bounded
// precision and serves as a sanity cross-check on TimingStats output.
//
// Out-of-range arguments and queries against an empty sample set are
// programmer errors and panic; see the method comments for the exact
// preconditions.
package stats
