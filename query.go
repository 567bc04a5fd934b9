package neodb

import (
	"iter"
	"slices"
	"time"

	"github.com/skywatch/neodb/filter"
	"github.com/skywatch/neodb/model"
)

// Query creates a new fluent query over the close approach collection.
//
// With no filters every approach matches; with one or more filters an
// approach matches iff all of them hold (AND logic, short-circuit).
//
// Example:
//
//	distMax, _ := filter.DistanceMax(0.05)
//	results := db.Query(distMax, filter.Hazardous(true)).
//	    SortByTime().
//	    Limit(10).
//	    Execute()
func (db *Database) Query(filters ...filter.Filter) *QueryBuilder {
	return &QueryBuilder{
		db:      db,
		filters: filter.NewSet(filters...),
	}
}

// QueryBuilder is a fluent builder for close approach queries.
//
// The pipeline stages are applied in a fixed order regardless of call order
// on the builder: filter, then sort (if requested), then limit (if
// requested), so "first n approaches after filtering and sorting by time"
// is well-defined.
type QueryBuilder struct {
	db         *Database
	filters    filter.Set
	sortByTime bool
	limit      int
}

// Where appends filters to the query.
func (qb *QueryBuilder) Where(filters ...filter.Filter) *QueryBuilder {
	qb.filters = append(qb.filters, filters...)
	return qb
}

// SortByTime orders results by approach time, ascending. Approaches with an
// unknown time sort before all known times, keeping their storage order
// among themselves. Sorting materializes the matching set.
func (qb *QueryBuilder) SortByTime() *QueryBuilder {
	qb.sortByTime = true
	return qb
}

// Limit caps the number of results. n <= 0 means unlimited.
func (qb *QueryBuilder) Limit(n int) *QueryBuilder {
	qb.limit = n
	return qb
}

// Stream returns a lazy iterator over matching approaches.
//
// Without SortByTime, approaches are yielded in storage order and filters
// are evaluated on demand: abandoning the loop stops all further work, and
// a limit short-circuits the scan. With SortByTime the matching set is
// materialized and sorted before the first yield.
//
// The returned sequence is restartable: every range over it (like every
// fresh Query) scans the immutable collection from the beginning.
func (qb *QueryBuilder) Stream() iter.Seq[*model.CloseApproach] {
	if qb.sortByTime {
		return qb.streamSorted()
	}

	return func(yield func(*model.CloseApproach) bool) {
		start := time.Now()
		count := 0
		for _, ca := range qb.db.approaches {
			if !qb.filters.Matches(ca) {
				continue
			}
			count++
			if !yield(ca) {
				break
			}
			if qb.limit > 0 && count >= qb.limit {
				break
			}
		}
		qb.db.metrics.RecordQuery(count, time.Since(start))
		qb.db.logger.LogQuery(len(qb.filters), count)
	}
}

func (qb *QueryBuilder) streamSorted() iter.Seq[*model.CloseApproach] {
	return func(yield func(*model.CloseApproach) bool) {
		start := time.Now()

		var matches []*model.CloseApproach
		for _, ca := range qb.db.approaches {
			if qb.filters.Matches(ca) {
				matches = append(matches, ca)
			}
		}

		slices.SortStableFunc(matches, compareByTime)

		if qb.limit > 0 && qb.limit < len(matches) {
			matches = matches[:qb.limit]
		}

		qb.db.metrics.RecordQuery(len(matches), time.Since(start))
		qb.db.logger.LogQuery(len(qb.filters), len(matches))

		for _, ca := range matches {
			if !yield(ca) {
				return
			}
		}
	}
}

// compareByTime orders approaches by time ascending, with unknown times
// before all known times. Equal and unknown-vs-unknown pairs compare as 0
// so a stable sort preserves storage order.
func compareByTime(a, b *model.CloseApproach) int {
	at, aok := a.Time()
	bt, bok := b.Time()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	default:
		return at.Compare(bt)
	}
}

// Execute runs the query and returns all matching approaches.
func (qb *QueryBuilder) Execute() []*model.CloseApproach {
	var results []*model.CloseApproach
	for ca := range qb.Stream() {
		results = append(results, ca)
	}
	return results
}

// First returns the first matching approach, or ErrNotFound if nothing
// matches.
func (qb *QueryBuilder) First() (*model.CloseApproach, error) {
	for ca := range qb.Stream() {
		return ca, nil
	}
	return nil, ErrNotFound
}

// Count runs the query and returns the number of matches.
func (qb *QueryBuilder) Count() int {
	count := 0
	for range qb.Stream() {
		count++
	}
	return count
}

// Exists reports whether at least one approach matches.
func (qb *QueryBuilder) Exists() bool {
	for range qb.Stream() {
		return true
	}
	return false
}

// Orphans returns a lazy iterator over approaches whose designation matched
// no catalogued NEO during linking. They appear in unfiltered query results
// as well; this accessor isolates them for data-quality reporting.
func (db *Database) Orphans() iter.Seq[*model.CloseApproach] {
	return func(yield func(*model.CloseApproach) bool) {
		for row, ca := range db.approaches {
			if db.linked.Contains(uint32(row)) {
				continue
			}
			if !yield(ca) {
				return
			}
		}
	}
}
