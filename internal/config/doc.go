// Package config loads and validates measurement-run configurations.
//
// Configurations are YAML or JSON, chosen by file extension:
//
//	name: syscall latency
//	clock: cycle
//	frequencyMhz: 2400
//	iterations: 100000
//	warmup: 1000
//	workload: syscall
//	percentiles: [50, 90, 99]
//	permicrotiles: [999000, 999900]
//	output: report.json
//
// Unset fields fall back to DefaultConfig. Validate reports every
// problem at once rather than stopping at the first.
package config
