// Package instance reads and writes packing instances.
//
// An instance is a candidate point set plus a disk radius, stored as JSON:
//
//	{"points": [{"x": 0, "y": 0}, {"x": 3, "y": 4}], "radius": 1}
//
// Documents may be compressed with gzip, zstd or lz4 (frame format). Decode
// detects the compression from the leading magic bytes, so the file name
// does not matter on read. Save picks the compression from the name's
// extension (".gz", ".zst", ".lz4").
//
// Every decoded document is validated against an embedded JSON Schema before
// it is unmarshalled; violations are reported together in a *SchemaError.
package instance
