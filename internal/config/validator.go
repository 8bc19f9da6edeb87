package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

var validWorkloads = map[string]bool{
	"spin":    true,
	"alloc":   true,
	"syscall": true,
	"sleep":   true,
}

// Validate checks the run configuration.
//
// Returns nil if valid, or a ValidationErrors containing all problems
// found. Range rules for percentile arguments mirror the statistics
// engine's preconditions so that a bad report request is caught before
// the run rather than mid-analysis.
func (c *Config) Validate() error {
	errs := &ValidationErrors{}

	switch c.Clock {
	case "cycle", "monotonic":
	case "":
		errs.Add("clock", "clock source is required (\"cycle\" or \"monotonic\")")
	default:
		errs.Add("clock", fmt.Sprintf("unknown clock source %q (want \"cycle\" or \"monotonic\")", c.Clock))
	}

	if c.Iterations <= 0 {
		errs.Add("iterations", "must be positive")
	}
	if c.Warmup < 0 {
		errs.Add("warmup", "must not be negative")
	}
	if c.Capacity < 0 {
		errs.Add("capacity", "must not be negative")
	}
	if c.Capacity > 0 && c.Capacity < c.Iterations {
		errs.Add("capacity", fmt.Sprintf("capacity %d cannot hold %d iterations", c.Capacity, c.Iterations))
	}

	if !validWorkloads[c.Workload] {
		errs.Add("workload", fmt.Sprintf("unknown workload %q (want spin, alloc, syscall, or sleep)", c.Workload))
	}

	for _, p := range c.Percentiles {
		if p >= 100 {
			errs.Add("percentiles", fmt.Sprintf("percentile %d out of range [0,100)", p))
		}
	}
	for _, q := range c.Permicrotiles {
		if q <= 990000 || q >= 1000000 {
			errs.Add("permicrotiles", fmt.Sprintf("permicrotile %d out of range (990000,1000000)", q))
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
