// Package neodb provides an embedded in-memory database of near-Earth
// objects and their close approaches to Earth.
//
// A Database links two independently sourced collections into one relational
// structure: every close approach whose designation resolves against the NEO
// catalogue receives a back-reference to its object, and the object collects
// its approaches. Approaches that reference an unknown designation are kept
// but stay unlinked; the two datasets are imperfectly aligned by nature.
//
// # Quick Start
//
//	neos, approaches, err := loader.Load(ctx, "data/neos.csv", "data/cad.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	db, err := neodb.New(neos, approaches)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	eros, ok := db.NEOByName("Eros")
//
// Query close approaches with composable filters, optional ordering and an
// optional result limit:
//
//	distMax, _ := filter.DistanceMax(0.05)
//	for ca := range db.Query(distMax, filter.Hazardous(true)).
//	    SortByTime().
//	    Limit(10).
//	    Stream() {
//	    fmt.Println(ca)
//	}
//
// Streams are lazy: without an ordering request no result set is
// materialized, and abandoning the loop stops all further filter
// evaluation. Re-invoking Query (or re-ranging the stream) restarts the
// scan from the beginning.
//
// The Database is immutable once constructed. Lookups report misses by
// absence, never by error.
package neodb
