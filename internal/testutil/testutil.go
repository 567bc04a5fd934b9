// Package testutil generates synthetic NEO datasets for tests and
// benchmarks. All generation is driven by a seeded RNG so that a dataset
// is reproducible from its seed.
package testutil

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/skywatch/neodb/model"
)

// RNG wraps a seeded random number generator. It is safe for concurrent use.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64Range returns a pseudo-random number in [minVal, maxVal).
func (r *RNG) Float64Range(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float64()*(maxVal-minVal)
}

// Dataset holds a generated population of NEOs and unlinked close
// approaches, ready to be handed to the database constructor.
type Dataset struct {
	NEOs       []*model.NearEarthObject
	Approaches []*model.CloseApproach
}

// DatasetOptions control the shape of a generated dataset.
type DatasetOptions struct {
	// NEOCount is the number of NEOs to generate.
	NEOCount int

	// ApproachesPerNEO is the mean number of approaches per NEO. The
	// actual count per NEO varies in [0, 2*ApproachesPerNEO].
	ApproachesPerNEO int

	// OrphanRate is the fraction of approaches, in [0, 1], whose
	// designation matches no generated NEO.
	OrphanRate float64

	// UnnamedRate is the fraction of NEOs, in [0, 1], generated without
	// a name.
	UnnamedRate float64
}

// GenerateDataset builds a synthetic dataset of the given shape. Roughly
// every tenth NEO is hazardous, and roughly every twentieth approach has an
// unknown time.
func GenerateDataset(rng *RNG, opts DatasetOptions) (*Dataset, error) {
	if opts.NEOCount <= 0 {
		return nil, fmt.Errorf("testutil: NEO count must be positive, got %d", opts.NEOCount)
	}
	if opts.ApproachesPerNEO < 0 {
		return nil, fmt.Errorf("testutil: approaches per NEO must not be negative, got %d", opts.ApproachesPerNEO)
	}

	epoch := time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC)

	ds := &Dataset{
		NEOs: make([]*model.NearEarthObject, 0, opts.NEOCount),
	}
	for i := 0; i < opts.NEOCount; i++ {
		neo, err := model.NewNearEarthObject(fmt.Sprintf("%d SY", i+1), func(o *model.NEOOptions) {
			if rng.Float64Range(0, 1) >= opts.UnnamedRate {
				o.Name = fmt.Sprintf("Synthetic-%d", i+1)
			}
			o.Diameter = rng.Float64Range(0.01, 40)
			o.Hazardous = rng.Intn(10) == 0
		})
		if err != nil {
			return nil, err
		}
		ds.NEOs = append(ds.NEOs, neo)

		if opts.ApproachesPerNEO == 0 {
			continue
		}
		for range rng.Intn(2*opts.ApproachesPerNEO + 1) {
			des := neo.Designation()
			if rng.Float64Range(0, 1) < opts.OrphanRate {
				des = fmt.Sprintf("orphan-%d", len(ds.Approaches))
			}
			ca, err := model.NewCloseApproach(des, func(o *model.ApproachOptions) {
				if rng.Intn(20) != 0 {
					o.Time = epoch.Add(time.Duration(rng.Intn(150*365*24)) * time.Hour)
				}
				o.Distance = rng.Float64Range(0, 0.5)
				o.Velocity = rng.Float64Range(1, 50)
			})
			if err != nil {
				return nil, err
			}
			ds.Approaches = append(ds.Approaches, ca)
		}
	}

	return ds, nil
}
