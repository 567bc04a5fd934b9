// Package loader reads the two NASA source datasets into entity collections.
//
//   - LoadNEOs reads the small-body database CSV (one NEO per row)
//   - LoadApproaches reads the close approach data JSON (columnar
//     fields/data layout)
//   - Load reads both files in parallel
//
// Source files may be stored compressed; files ending in .gz, .zst or .lz4
// are decompressed transparently.
//
// The loaders mirror the tolerance of the upstream data: a row that cannot
// be converted into an entity is skipped and counted, not fatal, because the
// NASA dumps routinely carry blank and malformed fields. Structural problems
// (missing columns, unreadable file, invalid JSON) are errors.
package loader
