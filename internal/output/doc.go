// Package output renders run reports and procfs snapshots.
//
// Two surfaces: Formatter for colorized terminal text (colors disable
// themselves when stdout is not a TTY), and Report for the JSON form
// that `sampler report` can query and validate later.
package output
