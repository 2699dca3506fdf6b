package framework

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is wrapped by every configuration rejection.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrUnevaluated means an agent took part in ranking before its fitness was computed.
	ErrUnevaluated = errors.New("agent has not been evaluated")
)

// EvaluationError reports an objective value that cannot be ordered.
type EvaluationError struct {
	Position float64
	Value    float64
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("objective returned non-comparable value %v at x=%v", e.Value, e.Position)
}
