package output

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/wesleyorama2/sampler/internal/procfs"
)

// Formatter renders reports and procfs snapshots as human-readable
// text. JSON output goes through Report.JSON instead.
type Formatter struct {
	scheme *ColorScheme
}

// NewFormatter creates a formatter; pass noColor to strip escape codes
// (set automatically when stdout is not a terminal).
func NewFormatter(noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Formatter{scheme: scheme}
}

// FormatReport renders one run report.
func (f *Formatter) FormatReport(r *Report) string {
	var buf strings.Builder

	buf.WriteString(f.scheme.Title.Sprintf("▶ %s", r.Name))
	buf.WriteString(fmt.Sprintf("  (%s clock, %s workload, %d iterations)\n",
		r.Clock, r.Workload, r.Iterations))

	buf.WriteString(f.line("mean", durationNs(r.Stats.MeanNs)))
	buf.WriteString(f.line("stddev", durationNs(r.Stats.StdDevNs)))
	buf.WriteString(f.line("max", time.Duration(r.Stats.MaxNs).String()))

	for _, key := range sortedKeys(r.Stats.Percentiles) {
		buf.WriteString(f.line(key, time.Duration(r.Stats.Percentiles[key]).String()))
	}
	for _, key := range sortedKeys(r.Stats.Permicrotiles) {
		buf.WriteString(f.line(key, time.Duration(r.Stats.Permicrotiles[key]).String()))
	}

	buf.WriteString(f.scheme.Label.Sprint("  histogram"))
	buf.WriteString(fmt.Sprintf(": p50=%v p90=%v p95=%v p99=%v (n=%d)\n",
		r.Histogram.P50, r.Histogram.P90, r.Histogram.P95, r.Histogram.P99, r.Histogram.Count))

	if r.Memory != nil {
		buf.WriteString(f.scheme.Label.Sprint("  mem available"))
		buf.WriteString(fmt.Sprintf(": %d kB -> %d kB\n",
			r.Memory.AvailableBeforeKb, r.Memory.AvailableAfterKb))
	}

	buf.WriteString(fmt.Sprintf("  elapsed: %v\n", time.Duration(r.ElapsedNs)))
	return buf.String()
}

// FormatMeminfo renders the headline fields of a meminfo snapshot.
func (f *Formatter) FormatMeminfo(m *procfs.Meminfo) string {
	var buf strings.Builder

	buf.WriteString(f.scheme.Title.Sprint("▶ /proc/meminfo"))
	buf.WriteByte('\n')

	rows := []struct {
		label string
		value procfs.Kilobytes
	}{
		{"MemTotal", m.MemTotal},
		{"MemFree", m.MemFree},
		{"MemAvailable", m.MemAvailable},
		{"Buffers", m.Buffers},
		{"Cached", m.Cached},
		{"Active", m.Active},
		{"Inactive", m.Inactive},
		{"Mlocked", m.Mlocked},
		{"SwapTotal", m.SwapTotal},
		{"SwapFree", m.SwapFree},
		{"Dirty", m.Dirty},
		{"AnonPages", m.AnonPages},
		{"Slab", m.Slab},
	}
	for _, row := range rows {
		buf.WriteString(f.line(row.label, row.value.String()))
	}
	return buf.String()
}

// FormatPidStat renders the fields of a process stat record that matter
// when sizing a benchmark target.
func (f *Formatter) FormatPidStat(s *procfs.PidStat) string {
	var buf strings.Builder

	buf.WriteString(f.scheme.Title.Sprintf("▶ %s (pid %d)", s.Comm, s.Pid))
	buf.WriteByte('\n')

	buf.WriteString(f.line("state", string(s.State)))
	buf.WriteString(f.line("ppid", fmt.Sprintf("%d", s.PPid)))
	buf.WriteString(f.line("threads", fmt.Sprintf("%d", s.NumThreads)))
	buf.WriteString(f.line("utime", fmt.Sprintf("%d ticks", s.UTime)))
	buf.WriteString(f.line("stime", fmt.Sprintf("%d ticks", s.STime)))
	buf.WriteString(f.line("minflt", fmt.Sprintf("%d", s.MinFlt)))
	buf.WriteString(f.line("majflt", fmt.Sprintf("%d", s.MajFlt)))
	buf.WriteString(f.line("vsize", fmt.Sprintf("%d bytes", s.VSize)))
	buf.WriteString(f.line("rss", fmt.Sprintf("%d pages", s.RSS)))
	buf.WriteString(f.line("processor", fmt.Sprintf("%d", s.Processor)))
	return buf.String()
}

func (f *Formatter) line(label, value string) string {
	return fmt.Sprintf("  %s: %s\n", f.scheme.Label.Sprint(label), f.scheme.Value.Sprint(value))
}

// durationNs formats fractional nanoseconds the way whole durations
// print.
func durationNs(ns float64) string {
	if ns < 1000 {
		return fmt.Sprintf("%.1fns", ns)
	}
	return time.Duration(ns).String()
}

func sortedKeys(m map[string]uint64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
