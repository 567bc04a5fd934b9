package neodb

import "errors"

// ErrNotFound is returned by QueryBuilder.First when no approach matches.
//
// Key lookups (NEOByDesignation, NEOByName) never return errors; a miss is
// reported by absence.
var ErrNotFound = errors.New("neodb: not found")
