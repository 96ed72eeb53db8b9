// Package distribution records the non-comparison sorts, counting sort and
// bucket sort, as short phase-per-step traces.
//
// Counting sort (non-negative integers) has four steps:
//
//	allocate     zero table sized max(input)+1
//	tally        occurrences per value
//	prefix-sum   cumulative counts; the entry at max equals len(input)
//	build-output right-to-left scan placing v at cumulative[v]-1
//
// Bucket sort (values in [0, 1]) has three steps:
//
//	distribute   value v goes to bucket ⌊v·k⌋, clamped to k-1
//	sort-buckets each bucket sorted by insertion sort (stable)
//	concatenate  buckets joined in index order
//
// Every step carries the complete table or bucket structure.
package distribution
