package model

import (
	"fmt"
	"math"
)

// NEOOptions holds the optional attributes of a NearEarthObject.
// The zero value of each field is the documented default.
type NEOOptions struct {
	// Name is the IAU name. Empty means the object has no name.
	Name string

	// Diameter is the diameter in kilometers. NaN (the default) means the
	// diameter is unknown. Zero is not a valid stand-in for unknown.
	Diameter float64

	// Hazardous reports whether the object is classified as potentially
	// hazardous.
	Hazardous bool
}

// NearEarthObject represents a catalogued near-Earth object.
//
// The primary designation is required, unique across the dataset, and
// immutable after construction. All other attributes are optional.
type NearEarthObject struct {
	designation string
	name        string
	hasName     bool
	diameter    float64
	hazardous   bool

	// approaches is populated once, by the database during its linking
	// pass. Append-only, never removed.
	approaches []*CloseApproach
}

// NewNearEarthObject creates a new NearEarthObject with the given primary
// designation.
func NewNearEarthObject(designation string, optFns ...func(o *NEOOptions)) (*NearEarthObject, error) {
	opts := NEOOptions{
		Diameter: math.NaN(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if designation == "" {
		return nil, ErrEmptyDesignation
	}
	if math.IsInf(opts.Diameter, 0) || opts.Diameter < 0 {
		return nil, &ErrInvalidValue{Field: "diameter", Value: opts.Diameter}
	}

	return &NearEarthObject{
		designation: designation,
		name:        opts.Name,
		hasName:     opts.Name != "",
		diameter:    opts.Diameter,
		hazardous:   opts.Hazardous,
	}, nil
}

// Designation returns the primary designation.
func (n *NearEarthObject) Designation() string { return n.designation }

// Name returns the IAU name and whether the object has one.
func (n *NearEarthObject) Name() (string, bool) { return n.name, n.hasName }

// Diameter returns the diameter in kilometers, or NaN if unknown.
func (n *NearEarthObject) Diameter() float64 { return n.diameter }

// Hazardous reports whether the object is potentially hazardous.
func (n *NearEarthObject) Hazardous() bool { return n.hazardous }

// Approaches returns the close approaches linked to this object, in the
// order they were linked. The returned slice must not be mutated.
func (n *NearEarthObject) Approaches() []*CloseApproach { return n.approaches }

// Fullname returns the designation, followed by the name when present,
// e.g. "433 (Eros)".
func (n *NearEarthObject) Fullname() string {
	if n.hasName {
		return fmt.Sprintf("%s (%s)", n.designation, n.name)
	}
	return n.designation
}

// String returns a human-readable description of the object.
func (n *NearEarthObject) String() string {
	status := "is not"
	if n.hazardous {
		status = "is"
	}
	if !math.IsNaN(n.diameter) {
		return fmt.Sprintf("NEO %s has a diameter of %.3f km and %s potentially hazardous.", n.Fullname(), n.diameter, status)
	}
	return fmt.Sprintf("NEO %s %s potentially hazardous.", n.Fullname(), status)
}

// Serialize returns the externally visible fields by stable key names,
// suitable for export. The name key is an empty string for unnamed objects
// and diameter_km is NaN when unknown; output formatting is left to the
// exporter.
func (n *NearEarthObject) Serialize() map[string]any {
	return map[string]any{
		"designation":           n.designation,
		"name":                  n.name,
		"diameter_km":           n.diameter,
		"potentially_hazardous": n.hazardous,
	}
}
