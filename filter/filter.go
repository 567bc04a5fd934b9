package filter

import (
	"fmt"
	"math"
	"time"

	"github.com/skywatch/neodb/model"
)

// Field identifies the approach attribute a filter applies to. Date,
// distance and velocity are read from the approach itself; diameter, the
// hazard flag and the name require the linked NEO.
type Field uint8

const (
	// FieldDate is the calendar date (UTC) of the approach.
	FieldDate Field = iota + 1
	// FieldDistance is the approach distance in astronomical units.
	FieldDistance
	// FieldVelocity is the approach velocity in kilometers per second.
	FieldVelocity
	// FieldDiameter is the diameter of the linked NEO in kilometers.
	FieldDiameter
	// FieldHazardous is the hazard classification of the linked NEO.
	FieldHazardous
	// FieldDesignation is the primary designation carried by the approach.
	FieldDesignation
	// FieldName is the IAU name of the linked NEO.
	FieldName
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldDate:
		return "date"
	case FieldDistance:
		return "distance"
	case FieldVelocity:
		return "velocity"
	case FieldDiameter:
		return "diameter"
	case FieldHazardous:
		return "hazardous"
	case FieldDesignation:
		return "designation"
	case FieldName:
		return "name"
	default:
		return "invalid"
	}
}

// Operator represents a comparison operator.
type Operator string

const (
	// OpEqual represents an exact match.
	OpEqual Operator = "eq"
	// OpMin represents an inclusive lower bound.
	OpMin Operator = "min"
	// OpMax represents an inclusive upper bound.
	OpMax Operator = "max"
)

// Filter is a single immutable criterion over a close approach.
// The zero value is not a valid filter; use New or a sugar constructor.
type Filter struct {
	field Field
	op    Operator

	timeVal time.Time
	numVal  float64
	strVal  string
	boolVal bool
}

// New creates a filter after validating that the field, operator and operand
// fit together. Equality-only fields (designation, name, hazardous) reject
// range operators, numeric fields reject equality, and operands must be of
// the field's type with a usable value (no NaN or infinite bounds, no empty
// strings, no zero times).
func New(field Field, op Operator, value any) (Filter, error) {
	f := Filter{field: field, op: op}

	switch field {
	case FieldDate:
		if op != OpEqual && op != OpMin && op != OpMax {
			return Filter{}, &ErrUnsupportedOperator{Field: field, Operator: op}
		}
		t, ok := value.(time.Time)
		if !ok || t.IsZero() {
			return Filter{}, &ErrInvalidOperand{Field: field, Value: value}
		}
		f.timeVal = dateOnly(t)

	case FieldDistance, FieldVelocity, FieldDiameter:
		if op != OpMin && op != OpMax {
			return Filter{}, &ErrUnsupportedOperator{Field: field, Operator: op}
		}
		v, ok := value.(float64)
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			return Filter{}, &ErrInvalidOperand{Field: field, Value: value}
		}
		f.numVal = v

	case FieldHazardous:
		if op != OpEqual {
			return Filter{}, &ErrUnsupportedOperator{Field: field, Operator: op}
		}
		b, ok := value.(bool)
		if !ok {
			return Filter{}, &ErrInvalidOperand{Field: field, Value: value}
		}
		f.boolVal = b

	case FieldDesignation, FieldName:
		if op != OpEqual {
			return Filter{}, &ErrUnsupportedOperator{Field: field, Operator: op}
		}
		s, ok := value.(string)
		if !ok || s == "" {
			return Filter{}, &ErrInvalidOperand{Field: field, Value: value}
		}
		f.strVal = s

	default:
		return Filter{}, &ErrUnsupportedOperator{Field: field, Operator: op}
	}

	return f, nil
}

// MustNew is like New but panics on a malformed filter. Intended for
// package-level filter tables and tests.
func MustNew(field Field, op Operator, value any) Filter {
	f, err := New(field, op, value)
	if err != nil {
		panic(err)
	}
	return f
}

// Field returns the field the filter applies to.
func (f Filter) Field() Field { return f.field }

// Operator returns the filter's comparison operator.
func (f Filter) Operator() Operator { return f.op }

// String returns a compact representation, e.g. "distance max 0.05".
func (f Filter) String() string {
	switch f.field {
	case FieldDate:
		return fmt.Sprintf("%s %s %s", f.field, f.op, f.timeVal.Format("2006-01-02"))
	case FieldDistance, FieldVelocity, FieldDiameter:
		return fmt.Sprintf("%s %s %v", f.field, f.op, f.numVal)
	case FieldHazardous:
		return fmt.Sprintf("%s %s %t", f.field, f.op, f.boolVal)
	default:
		return fmt.Sprintf("%s %s %s", f.field, f.op, f.strVal)
	}
}

// Matches reports whether the approach satisfies the criterion. It is pure
// and never fails: missing data (unknown time, NaN values, unlinked or
// unnamed NEO) resolves to false.
func (f Filter) Matches(ca *model.CloseApproach) bool {
	switch f.field {
	case FieldDate:
		t, ok := ca.Time()
		if !ok {
			return false
		}
		return f.compareDate(dateOnly(t))

	case FieldDistance:
		return f.compareNum(ca.Distance())

	case FieldVelocity:
		return f.compareNum(ca.Velocity())

	case FieldDiameter:
		neo, ok := ca.NEO()
		if !ok {
			return false
		}
		return f.compareNum(neo.Diameter())

	case FieldHazardous:
		neo, ok := ca.NEO()
		if !ok {
			return false
		}
		return neo.Hazardous() == f.boolVal

	case FieldDesignation:
		return ca.Designation() == f.strVal

	case FieldName:
		neo, ok := ca.NEO()
		if !ok {
			return false
		}
		name, ok := neo.Name()
		if !ok {
			return false
		}
		return name == f.strVal

	default:
		return false
	}
}

func (f Filter) compareDate(d time.Time) bool {
	switch f.op {
	case OpEqual:
		return d.Equal(f.timeVal)
	case OpMin:
		return !d.Before(f.timeVal)
	case OpMax:
		return !d.After(f.timeVal)
	default:
		return false
	}
}

// compareNum evaluates an inclusive bound. NaN operands fail every
// comparison, so unknown values never fall inside a range.
func (f Filter) compareNum(v float64) bool {
	switch f.op {
	case OpMin:
		return v >= f.numVal
	case OpMax:
		return v <= f.numVal
	default:
		return false
	}
}

// dateOnly truncates a timestamp to its UTC calendar date. Date criteria
// have day granularity; the minute-precision approach time is compared by
// date, matching the source dataset's query semantics.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateEquals matches approaches occurring on the given UTC calendar date.
func DateEquals(t time.Time) Filter { return MustNew(FieldDate, OpEqual, t) }

// DateMin matches approaches occurring on or after the given UTC date.
func DateMin(t time.Time) Filter { return MustNew(FieldDate, OpMin, t) }

// DateMax matches approaches occurring on or before the given UTC date.
func DateMax(t time.Time) Filter { return MustNew(FieldDate, OpMax, t) }

// DistanceMin matches approaches at or beyond the given distance in au.
func DistanceMin(au float64) (Filter, error) { return New(FieldDistance, OpMin, au) }

// DistanceMax matches approaches at or within the given distance in au.
func DistanceMax(au float64) (Filter, error) { return New(FieldDistance, OpMax, au) }

// VelocityMin matches approaches at or above the given velocity in km/s.
func VelocityMin(kms float64) (Filter, error) { return New(FieldVelocity, OpMin, kms) }

// VelocityMax matches approaches at or below the given velocity in km/s.
func VelocityMax(kms float64) (Filter, error) { return New(FieldVelocity, OpMax, kms) }

// DiameterMin matches approaches of NEOs at least the given diameter in km.
func DiameterMin(km float64) (Filter, error) { return New(FieldDiameter, OpMin, km) }

// DiameterMax matches approaches of NEOs at most the given diameter in km.
func DiameterMax(km float64) (Filter, error) { return New(FieldDiameter, OpMax, km) }

// Hazardous matches approaches of NEOs with the given hazard classification.
func Hazardous(hazardous bool) Filter { return MustNew(FieldHazardous, OpEqual, hazardous) }

// Designation matches approaches referencing the given primary designation.
func Designation(designation string) (Filter, error) {
	return New(FieldDesignation, OpEqual, designation)
}

// Name matches approaches of the NEO with the given IAU name. Unnamed NEOs
// never match.
func Name(name string) (Filter, error) { return New(FieldName, OpEqual, name) }

// Set is a collection of filters that must all match (AND logic).
type Set []Filter

// NewSet creates a new filter set.
func NewSet(filters ...Filter) Set { return Set(filters) }

// Matches reports whether the approach satisfies every filter in the set.
// Evaluation short-circuits at the first failing filter; an empty set
// matches without evaluating anything.
func (s Set) Matches(ca *model.CloseApproach) bool {
	for _, f := range s {
		if !f.Matches(ca) {
			return false
		}
	}
	return true
}
