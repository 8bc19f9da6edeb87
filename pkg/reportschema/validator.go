// Package reportschema validates saved run reports against the report
// JSON schema, so downstream tooling can reject truncated or
// hand-edited files before trusting their numbers.
package reportschema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema is the JSON Schema every sampler report must satisfy.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "clock", "workload", "iterations", "stats", "histogram"],
  "properties": {
    "name": {"type": "string"},
    "clock": {"enum": ["cycle", "monotonic"]},
    "workload": {"type": "string"},
    "iterations": {"type": "integer", "minimum": 1},
    "elapsedNs": {"type": "integer", "minimum": 0},
    "timestamp": {"type": "string"},
    "stats": {
      "type": "object",
      "required": ["meanNs", "stdDevNs", "maxNs", "percentiles"],
      "properties": {
        "meanNs": {"type": "number", "minimum": 0},
        "stdDevNs": {"type": "number", "minimum": 0},
        "maxNs": {"type": "integer", "minimum": 0},
        "percentiles": {
          "type": "object",
          "additionalProperties": {"type": "integer", "minimum": 0}
        },
        "permicrotiles": {
          "type": "object",
          "additionalProperties": {"type": "integer", "minimum": 0}
        }
      }
    },
    "histogram": {
      "type": "object",
      "required": ["count"],
      "properties": {
        "count": {"type": "integer", "minimum": 0}
      }
    },
    "memory": {
      "type": "object",
      "properties": {
        "availableBeforeKb": {"type": "integer", "minimum": 0},
        "availableAfterKb": {"type": "integer", "minimum": 0},
        "freeBeforeKb": {"type": "integer", "minimum": 0},
        "freeAfterKb": {"type": "integer", "minimum": 0}
      }
    }
  }
}`

// ValidationErrors represents a collection of validation errors
type ValidationErrors []error

// Error implements the error interface for ValidationErrors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, err := range ve {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Validate checks a report JSON document against the report schema.
// It returns true when the document conforms; schema-level violations
// come back as a ValidationErrors listing every problem, while an
// undecodable document is reported as a single error.
func Validate(reportJSON []byte) (bool, ValidationErrors) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("report.json", strings.NewReader(Schema)); err != nil {
		return false, ValidationErrors{fmt.Errorf("invalid schema: %w", err)}
	}
	schema, err := compiler.Compile("report.json")
	if err != nil {
		return false, ValidationErrors{fmt.Errorf("invalid schema: %w", err)}
	}

	var doc interface{}
	if err := json.Unmarshal(reportJSON, &doc); err != nil {
		return false, ValidationErrors{fmt.Errorf("invalid JSON: %w", err)}
	}

	if err := schema.Validate(doc); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return false, extractValidationErrors(validationErr)
		}
		return false, ValidationErrors{err}
	}

	return true, nil
}

// extractValidationErrors flattens a jsonschema.ValidationError tree.
func extractValidationErrors(err *jsonschema.ValidationError) ValidationErrors {
	var errors ValidationErrors

	if err.Message != "" {
		errors = append(errors, fmt.Errorf("validation error at %s: %s", err.InstanceLocation, err.Message))
	}
	for _, childErr := range err.Causes {
		errors = append(errors, extractValidationErrors(childErr)...)
	}

	return errors
}
