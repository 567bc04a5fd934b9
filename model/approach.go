package model

import (
	"fmt"
	"math"
	"time"
)

// approachTimeLayout is the calendar-date format used by the NASA close
// approach dataset, e.g. "2020-Jan-01 12:30". Times are UTC with minute
// precision.
const approachTimeLayout = "2006-Jan-02 15:04"

// ParseApproachTime parses a timestamp in the NASA calendar-date format.
func ParseApproachTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(approachTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("model: parse approach time %q: %w", s, err)
	}
	return t, nil
}

// ApproachOptions holds the optional attributes of a CloseApproach.
type ApproachOptions struct {
	// Time is the UTC time of closest approach. The zero time means the
	// time is unknown.
	Time time.Time

	// Distance is the nominal approach distance in astronomical units.
	// NaN (the default) means unknown.
	Distance float64

	// Velocity is the relative approach velocity in kilometers per second.
	// NaN (the default) means unknown.
	Velocity float64
}

// CloseApproach represents a single close approach to Earth by an NEO.
//
// It initially holds only the NEO's primary designation as a foreign key;
// the back-reference is set once by the database during linking and stays
// nil for approaches whose designation matches no catalogued object.
type CloseApproach struct {
	designation string
	time        time.Time
	distance    float64
	velocity    float64
	neo         *NearEarthObject
}

// NewCloseApproach creates a new CloseApproach referencing the NEO with the
// given primary designation.
func NewCloseApproach(designation string, optFns ...func(o *ApproachOptions)) (*CloseApproach, error) {
	opts := ApproachOptions{
		Distance: math.NaN(),
		Velocity: math.NaN(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if designation == "" {
		return nil, ErrEmptyDesignation
	}
	if math.IsInf(opts.Distance, 0) || opts.Distance < 0 {
		return nil, &ErrInvalidValue{Field: "distance", Value: opts.Distance}
	}
	if math.IsInf(opts.Velocity, 0) || opts.Velocity < 0 {
		return nil, &ErrInvalidValue{Field: "velocity", Value: opts.Velocity}
	}

	return &CloseApproach{
		designation: designation,
		time:        opts.Time,
		distance:    opts.Distance,
		velocity:    opts.Velocity,
	}, nil
}

// Designation returns the primary designation of the referenced NEO.
func (ca *CloseApproach) Designation() string { return ca.designation }

// Time returns the UTC time of closest approach and whether it is known.
func (ca *CloseApproach) Time() (time.Time, bool) { return ca.time, !ca.time.IsZero() }

// Distance returns the nominal approach distance in astronomical units,
// or NaN if unknown.
func (ca *CloseApproach) Distance() float64 { return ca.distance }

// Velocity returns the relative approach velocity in kilometers per second,
// or NaN if unknown.
func (ca *CloseApproach) Velocity() float64 { return ca.velocity }

// NEO returns the linked NearEarthObject and whether the approach has been
// linked. Approaches whose designation matched no catalogued object report
// false for the lifetime of the database.
func (ca *CloseApproach) NEO() (*NearEarthObject, bool) { return ca.neo, ca.neo != nil }

// TimeStr returns the approach time formatted as "2006-01-02 15:04" in UTC,
// or "an unknown time" when the time is absent. Seconds are omitted to match
// the precision of the source dataset.
func (ca *CloseApproach) TimeStr() string {
	if ca.time.IsZero() {
		return "an unknown time"
	}
	return ca.time.UTC().Format("2006-01-02 15:04")
}

// String returns a human-readable description of the approach.
func (ca *CloseApproach) String() string {
	who := ca.designation
	if ca.neo != nil {
		who = ca.neo.Fullname()
	}
	return fmt.Sprintf("At %s, %q approaches Earth at a distance of %.2f au and a velocity of %.2f km/s.", ca.TimeStr(), who, ca.distance, ca.velocity)
}

// Serialize returns the externally visible fields by stable key names,
// suitable for export.
func (ca *CloseApproach) Serialize() map[string]any {
	return map[string]any{
		"datetime_utc":  ca.TimeStr(),
		"distance_au":   ca.distance,
		"velocity_km_s": ca.velocity,
		"designation":   ca.designation,
	}
}

// Link sets the back-reference of ca to neo and appends ca to neo's
// approach list. It is called exactly once per approach, by the database
// during its linking pass.
func Link(neo *NearEarthObject, ca *CloseApproach) error {
	if neo == nil || ca == nil {
		return fmt.Errorf("model: link requires both a NEO and an approach")
	}
	if ca.neo != nil {
		return fmt.Errorf("model: approach of %q is already linked", ca.designation)
	}
	if neo.designation != ca.designation {
		return fmt.Errorf("model: designation mismatch: NEO %q, approach %q", neo.designation, ca.designation)
	}
	ca.neo = neo
	neo.approaches = append(neo.approaches, ca)
	return nil
}
