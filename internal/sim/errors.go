package sim

import (
	"errors"
	"fmt"
)

// Domain errors for lap simulation.
var (
	// ErrInvalidConfig indicates integration parameters that prevent a run
	// from starting. It is raised before any integration step.
	ErrInvalidConfig = errors.New("sim: invalid configuration")

	// ErrIncomplete indicates the lap did not reach the finish line within
	// the step budget (for example a vehicle that cannot move).
	ErrIncomplete = errors.New("sim: lap did not complete within step budget")
)

// ConfigError wraps ErrInvalidConfig with the offending field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("sim: invalid configuration: %s %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
