package neodb

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/skywatch/neodb/model"
)

// Database holds an interconnected, read-only dataset of near-Earth objects
// and their close approaches.
//
// Construction builds two exact-match indices (primary designation and IAU
// name) and performs the one-time linking pass. After New returns, the
// object graph never changes; concurrent readers are safe by construction.
type Database struct {
	neos       []*model.NearEarthObject
	approaches []*model.CloseApproach

	byDesignation map[string]*model.NearEarthObject
	byName        map[string]*model.NearEarthObject

	// linked tracks the arena rows (positions in approaches) that resolved
	// to a catalogued NEO. Its complement is the orphan set.
	linked *roaring.Bitmap

	metrics MetricsCollector
	logger  *Logger
}

// New creates a Database from a collection of NEOs and a collection of close
// approaches, links them, and builds the lookup indices. Both collections
// may be empty; their order is preserved as storage order.
//
// The NEO collection is assumed pre-deduplicated by the loader: designations
// are unique, and names, where present, are unique. Approaches referencing
// an unknown designation are retained unlinked. A pre-linked approach in the
// input is a programming error and fails construction.
func New(neos []*model.NearEarthObject, approaches []*model.CloseApproach, optFns ...Option) (*Database, error) {
	opts := applyOptions(optFns)

	db := &Database{
		neos:          neos,
		approaches:    approaches,
		byDesignation: make(map[string]*model.NearEarthObject, len(neos)),
		byName:        make(map[string]*model.NearEarthObject),
		linked:        roaring.New(),
		metrics:       opts.metrics,
		logger:        opts.logger,
	}

	for _, neo := range neos {
		db.byDesignation[neo.Designation()] = neo
		if name, ok := neo.Name(); ok {
			db.byName[name] = neo
		}
	}

	for row, ca := range approaches {
		neo, ok := db.byDesignation[ca.Designation()]
		if !ok {
			continue
		}
		if err := model.Link(neo, ca); err != nil {
			return nil, err
		}
		db.linked.Add(uint32(row))
	}

	db.logger.LogLink(len(neos), int(db.linked.GetCardinality()), len(approaches)-int(db.linked.GetCardinality()))

	return db, nil
}

// NEOByDesignation returns the NEO with the given primary designation.
// The match is exact and case-sensitive; a miss is reported by ok=false,
// never by an error.
func (db *Database) NEOByDesignation(designation string) (neo *model.NearEarthObject, ok bool) {
	start := time.Now()
	neo, ok = db.byDesignation[designation]
	db.metrics.RecordLookup(time.Since(start), ok)
	db.logger.LogLookup("designation", designation, ok)
	return neo, ok
}

// NEOByName returns the NEO with the given IAU name. Unnamed NEOs are never
// returned. The match is exact and case-sensitive; a miss is reported by
// ok=false, never by an error.
func (db *Database) NEOByName(name string) (neo *model.NearEarthObject, ok bool) {
	start := time.Now()
	neo, ok = db.byName[name]
	db.metrics.RecordLookup(time.Since(start), ok)
	db.logger.LogLookup("name", name, ok)
	return neo, ok
}

// Stats describes the linked dataset.
type Stats struct {
	// NEOCount is the number of catalogued NEOs.
	NEOCount int
	// ApproachCount is the total number of close approaches.
	ApproachCount int
	// LinkedCount is the number of approaches linked to an NEO.
	LinkedCount int
	// OrphanCount is the number of approaches whose designation matched no
	// catalogued NEO.
	OrphanCount int
}

// Stats returns statistics about the linked dataset.
func (db *Database) Stats() Stats {
	linked := int(db.linked.GetCardinality())
	return Stats{
		NEOCount:      len(db.neos),
		ApproachCount: len(db.approaches),
		LinkedCount:   linked,
		OrphanCount:   len(db.approaches) - linked,
	}
}
