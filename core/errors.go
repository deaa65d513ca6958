package core

import (
	"errors"
	"fmt"
)

// InvalidParameterError is a custom error type for inputs that violate a
// model's domain constraints (negative cost, read ratio outside [0,1],
// non-positive throughput rates, an empty disk list).
type InvalidParameterError struct {
	Param   string // e.g., "read_ratio", "server_cost", "disks"
	Value   string // The offending value, formatted for display.
	Message string
}

func (e *InvalidParameterError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Message)
	}
	return fmt.Sprintf("invalid parameter %s '%s': %s", e.Param, e.Value, e.Message)
}

// IsInvalidParameter checks if an error is an InvalidParameterError.
func IsInvalidParameter(err error) bool {
	var invalidParameterError *InvalidParameterError
	// Use errors.As to check if the error (or any error in its chain) is an InvalidParameterError.
	return errors.As(err, &invalidParameterError)
}

// InvalidParamf builds an InvalidParameterError for a numeric input.
func InvalidParamf(param string, value float64, message string) error {
	return &InvalidParameterError{Param: param, Value: fmt.Sprintf("%g", value), Message: message}
}
