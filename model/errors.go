package model

import (
	"errors"
	"fmt"
)

// ErrEmptyDesignation is returned when an entity is constructed without a
// primary designation.
var ErrEmptyDesignation = errors.New("model: designation must not be empty")

// ErrInvalidValue indicates a numeric attribute that is not representable in
// the dataset's domain (negative or infinite). NaN is not invalid; it is the
// sentinel for an unknown value.
type ErrInvalidValue struct {
	Field string
	Value float64
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("model: invalid %s: %v", e.Field, e.Value)
}
