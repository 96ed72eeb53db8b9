// Package search records linear and binary search as playback traces.
//
// Linear probes indices strictly left to right and stops at the first match.
// Binary keeps inclusive [left, right] bounds and probes mid = ⌊(left+right)/2⌋,
// so on an even-sized range the lower middle is always chosen first.
//
// Both tracers end with a terminal step: the matching probe itself, or a
// dedicated not-found step (Probe = -1 for linear, Mid = -1 for binary).
//
// Complexity:
//
//   - Linear: O(n) steps.
//   - Binary: O(log n) steps. The input must be sorted (non-decreasing).
package search
