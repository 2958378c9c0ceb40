package match

import (
	"fmt"
	"math"
	"strings"
)

// InvalidInputError reports a label source with nothing usable to compare:
// a missing label column, or no non-blank labels at all.
type InvalidInputError struct {
	// Source identifies the input (usually a file path). May be empty.
	Source string
	// Column is the requested label column, if one was named.
	Column string
	// Reason is the human-readable cause.
	Reason string
}

func (e *InvalidInputError) Error() string {
	var prefix []string
	if e.Source != "" {
		prefix = append(prefix, fmt.Sprintf("%q", e.Source))
	}

	if e.Column != "" {
		prefix = append(prefix, "column "+e.Column)
	}

	if len(prefix) > 0 {
		return "invalid input " + strings.Join(prefix, " ") + ": " + e.Reason
	}

	return "invalid input: " + e.Reason
}

// InvalidThresholdError reports a similarity threshold outside [0, 100].
type InvalidThresholdError struct {
	Value float64
}

func (e *InvalidThresholdError) Error() string {
	return fmt.Sprintf("invalid similarity threshold %v: must be a number between 0 and 100", e.Value)
}

// ValidateThreshold rejects NaN and values outside [0, 100]. It never clamps.
func ValidateThreshold(threshold float64) error {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 100 {
		return &InvalidThresholdError{Value: threshold}
	}

	return nil
}
