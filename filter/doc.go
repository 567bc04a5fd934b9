// Package filter provides composable predicates over close approaches.
//
// A Filter captures exactly one criterion and is a pure, unary predicate
// over a single model.CloseApproach. Filters combine with AND semantics
// through a Set:
//
//	distMax, err := filter.DistanceMax(0.05)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fs := filter.NewSet(distMax, filter.Hazardous(true))
//	for ca := range db.Query(fs...).Stream() {
//	    process(ca)
//	}
//
// # Operators
//
//   - OpEqual: exact match (date, designation, name, hazard flag)
//   - OpMin, OpMax: inclusive bounds (date, distance, velocity, diameter)
//
// Field/operator/operand combinations are validated eagerly by New; the
// sugar constructors build well-formed filters by construction. A malformed
// combination is a programming error and is reported at construction time,
// never deferred to query time.
//
// # Missing data
//
// Filters tolerate missing data by not matching: a diameter bound never
// matches an approach whose NEO is unlinked or whose diameter is NaN, and a
// date criterion never matches an approach with an unknown time.
package filter
