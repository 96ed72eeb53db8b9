// Package partition records quicksort with a two-pointer partition whose
// pivot is fixed at the low index of each range.
//
// Per partition call the trace holds:
//
//	partition-start
//	(comparing-left* comparing-right* swap?)*   until i and j cross
//	pivot-placement                              pivot swapped into j
//
// Recursion is pre-order: the left range [low, j-1] is announced with a
// show-partition step and sorted completely before the right range
// [j+1, high] is announced. Ranges shorter than two elements are neither
// announced nor partitioned. A final sorted step closes the trace.
//
// After every pivot-placement step, elements of the range left of the
// pivot are <= the pivot value and elements right of it are > the pivot
// value.
package partition
