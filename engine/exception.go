package engine

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when a divisor is zero or absent.
var ErrDivisionByZero = errors.New("division by zero")

// UnsupportedOperandTypeError is returned when an operand is not of a recognized numeric kind.
type UnsupportedOperandTypeError struct {
	Left, Right Kind
}

func (e UnsupportedOperandTypeError) Error() string {
	return fmt.Sprintf("unsupported operand type: %s or %s", e.Left, e.Right)
}

// InvalidNumericConversionError is returned when a value has no representation in the target kind.
type InvalidNumericConversionError struct {
	Value string
	To    Kind
	Err   error
}

func (e InvalidNumericConversionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid numeric conversion: %s to %s", e.Value, e.To)
	}
	return fmt.Sprintf("invalid numeric conversion: %s to %s: %v", e.Value, e.To, e.Err)
}

func (e InvalidNumericConversionError) Unwrap() error {
	return e.Err
}

// UnknownOperatorError is returned when an operator isn't in the operator table.
type UnknownOperatorError struct {
	Op    string
	Arity int
}

func (e UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator: %s/%d", e.Op, e.Arity)
}
