// Package exchange records the comparison-swap sorts (bubble and insertion)
// as playback traces.
//
// Every step stores the full array. A comparison is recorded before any
// mutation; the swap or shift it causes is recorded as a separate step
// holding the post-mutation array, so stepping backwards never has to undo
// anything.
//
// Bubble:
//
//   - pass i in [0, n-2], inner j in [0, n-i-2]
//   - comparing(j, j+1) then, if arr[j] > arr[j+1], swapped(j, j+1)
//   - a pass without swaps ends the sort early
//
// Insertion:
//
//   - for i in [1, n-1]: start-insert, one shifting step per move, inserting
//
// Both traces end with a sorted step.
package exchange
