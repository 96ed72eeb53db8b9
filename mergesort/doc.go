// Package mergesort records merge sort as two consecutive phases over the
// same recursive decomposition (split at ⌊len/2⌋):
//
//   - divide: pre-order, one step per subarray longer than one element,
//     holding the parent and its two halves;
//   - merge: post-order, one step per merge, holding both sorted runs and
//     their stable interleaving (ties take the left run first).
//
// Trace.PhaseCounts reports the size of each phase so a presenter can
// paginate them separately; Trace.PhaseStart locates the merge phase.
//
// For n > 1 both phases hold n-1 steps. A one-element input yields a single
// sorted step in the merge phase.
package mergesort
