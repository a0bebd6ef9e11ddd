package ascent

import (
	"fmt"
	"math"
)

// ConfigurationError is returned when a flight is configured with physically meaningless values.
// No record is ever computed for such a configuration.
type ConfigurationError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s=%g %s", e.Field, e.Value, e.Reason)
}

func mustBePositive(field string, value float64) error {
	if value > 0 && !math.IsInf(value, 0) {
		return nil
	}
	return &ConfigurationError{field, value, "must be positive and finite"}
}
