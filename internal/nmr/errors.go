package nmr

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a non-positive physical parameter or a
// malformed time domain. It is the only error kind the core raises.
var ErrInvalidParameter = errors.New("nmr: invalid parameter")

// ParameterError wraps ErrInvalidParameter with the offending name and value.
type ParameterError struct {
	Name  string
	Value float64
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("nmr: invalid parameter %s=%g", e.Name, e.Value)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

func invalidParam(name string, value float64) error {
	return &ParameterError{Name: name, Value: value}
}
