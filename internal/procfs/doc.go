// Package procfs parses the kernel accounting files a benchmarking run
// samples for context: system-wide memory from /proc/meminfo and
// per-process counters from /proc/[pid]/stat, plus a thin pgrep wrapper
// for resolving a process name to a pid.
//
// These readers are deliberately dumb: fixed-format text in, typed
// numeric records out. Reads use bounded one-page buffers so that
// taking a snapshot disturbs the measured process as little as
// possible.
//
// Unlike the measurement core, everything here can legitimately fail at
// runtime (missing files, permissions, absent processes), so every
// function returns an error instead of panicking. A missing process is
// the ErrProcessNotFound sentinel.
package procfs
