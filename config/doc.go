// Package config holds the per-algorithm input limits of algotrace as data.
//
// Default returns the built-in catalog. Load and Parse read a YAML file
// and overlay it on the defaults: an algorithm listed in the file replaces
// its default entry wholesale, everything else keeps the built-in value.
//
//	algorithms:
//	  bubble-sort:   {min_size: 1, max_size: 30}
//	  counting-sort: {min_size: 1, max_size: 15, integers: true, min: 0, max: 99}
//	factorial: {min_n: 1, max_n: 10}
//	bucket_count: 5
//	graph: {max_vertices: 12, max_depth: 3}
//
// Unknown algorithm names and unknown fields are rejected with
// ErrUnknownAlgorithm and ErrInvalidEntry respectively.
package config
