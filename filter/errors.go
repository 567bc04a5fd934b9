package filter

import "fmt"

// ErrUnsupportedOperator indicates a field/operator combination that has no
// defined semantics, e.g. a range bound on the hazard flag.
type ErrUnsupportedOperator struct {
	Field    Field
	Operator Operator
}

func (e *ErrUnsupportedOperator) Error() string {
	return fmt.Sprintf("filter: operator %q is not supported for field %q", e.Operator, e.Field)
}

// ErrInvalidOperand indicates an operand of the wrong type or with an
// unusable value (NaN or infinite bound, empty string, zero time).
type ErrInvalidOperand struct {
	Field Field
	Value any
}

func (e *ErrInvalidOperand) Error() string {
	return fmt.Sprintf("filter: invalid operand for field %q: %v", e.Field, e.Value)
}
