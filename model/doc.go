// Package model defines the two record types of the close-approach dataset.
//
// # Entities
//
//   - NearEarthObject: a catalogued near-Earth object, keyed by its unique
//     primary designation, with an optional IAU name and an optional
//     diameter (NaN when unknown)
//   - CloseApproach: a single close approach of an NEO to Earth, carrying
//     the NEO's designation as a foreign key until it is linked
//
// Both types are built with explicit constructors and typed option structs:
//
//	neo, err := model.NewNearEarthObject("433", func(o *model.NEOOptions) {
//	    o.Name = "Eros"
//	    o.Diameter = 16.84
//	})
//
// Missing numeric fields use NaN as a sentinel, never zero, so that range
// comparisons against unknown values fail safely. A missing name is reported
// through the comma-ok accessor, never as an empty string match.
//
// Linking the two sides of the relation is done once, by the database, via
// Link. After that the object graph is structurally immutable.
package model
