package trace

// Kind tags which algorithm family produced a Step and therefore which
// payload field of the Step is populated.
type Kind int

const (
	// KindSearch steps carry a *SearchInfo payload.
	KindSearch Kind = iota
	// KindExchange steps (bubble, insertion) carry an *ExchangeInfo payload.
	KindExchange
	// KindPartition steps (quicksort) carry a *PartitionInfo payload.
	KindPartition
	// KindMerge steps (merge sort) carry a *MergeInfo payload.
	KindMerge
	// KindDistribution steps (counting, bucket) carry a *DistributionInfo payload.
	KindDistribution
	// KindCallStack steps (recursion) carry a *CallStackInfo payload.
	KindCallStack
	// KindTraversal steps (BFS, DFS) carry a *TraversalInfo payload.
	KindTraversal
)

var kindNames = [...]string{
	KindSearch:       "search",
	KindExchange:     "exchange",
	KindPartition:    "partition",
	KindMerge:        "merge",
	KindDistribution: "distribution",
	KindCallStack:    "callstack",
	KindTraversal:    "traversal",
}

// String returns the lower-case family name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Action is the fine-grained tag of a Step within its family.
type Action string

// Search actions.
const (
	ActionProbe    Action = "probe"
	ActionFound    Action = "found"
	ActionNotFound Action = "not-found"
)

// Exchange actions (bubble and insertion sort).
const (
	ActionComparing   Action = "comparing"
	ActionSwapped     Action = "swapped"
	ActionStartInsert Action = "start-insert"
	ActionShifting    Action = "shifting"
	ActionInserting   Action = "inserting"
)

// ActionSorted closes every sorting trace; its snapshot is the final order.
const ActionSorted Action = "sorted"

// Partition actions (quicksort).
const (
	ActionPartitionStart Action = "partition-start"
	ActionComparingLeft  Action = "comparing-left"
	ActionComparingRight Action = "comparing-right"
	ActionSwap           Action = "swap"
	ActionPivotPlacement Action = "pivot-placement"
	ActionShowPartition  Action = "show-partition"
)

// Merge sort actions.
const (
	ActionDivide Action = "divide"
	ActionMerge  Action = "merge"
)

// Distribution actions (counting and bucket sort).
const (
	ActionAllocate    Action = "allocate"
	ActionTally       Action = "tally"
	ActionPrefixSum   Action = "prefix-sum"
	ActionBuildOutput Action = "build-output"
	ActionDistribute  Action = "distribute"
	ActionSortBuckets Action = "sort-buckets"
	ActionConcatenate Action = "concatenate"
)

// Call-stack actions.
const (
	ActionCall   Action = "call"
	ActionReturn Action = "return"
)

// Traversal actions (BFS and DFS).
const (
	ActionEnqueue  Action = "enqueue"
	ActionVisit    Action = "visit"
	ActionDiscover Action = "discover"
	ActionFinish   Action = "finish"
)

// SearchInfo is the payload of linear and binary search steps.
//
// Linear search uses Probe and leaves Left, Right and Mid at -1.
// Binary search uses Left, Right and Mid and leaves Probe at -1.
type SearchInfo struct {
	Target  float64
	Probe   int  // probed index (linear), -1 when none
	Left    int  // inclusive lower bound (binary)
	Right   int  // inclusive upper bound (binary)
	Mid     int  // floor((Left+Right)/2), -1 on the not-found terminal step
	Matched bool // array[probe or mid] == Target
	Found   bool // terminal step reports a hit
	Done    bool // terminal step
}

// ExchangeInfo is the payload of bubble and insertion sort steps.
type ExchangeInfo struct {
	// Indices is the compared or moved pair; {-1, -1} when none.
	Indices [2]int
	// Pass is the outer-loop index (bubble) or the element being inserted (insertion).
	Pass int
	// Key is the value being inserted (insertion only).
	Key float64
	// InsertAt is the final slot of Key on an inserting step, otherwise -1.
	InsertAt int
	// Swaps counts swaps or shifts performed so far, including this step.
	Swaps int
}

// Side names the half of a partition or split.
type Side string

// Sides of a recursion node.
const (
	SideRoot  Side = "root"
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// PartitionInfo is the payload of quicksort steps.
type PartitionInfo struct {
	Low, High  int     // current partition bounds, inclusive
	I, J       int     // scan pointers
	Pivot      int     // index currently holding the pivot
	PivotValue float64 // value of the pivot of this partition
	Comparing  int     // index under comparison, -1 when none
	Swapped    [2]int  // exchanged indices, {-1, -1} when none
	Split      int     // final pivot index after placement, -1 before
	Side       Side    // which sub-range a show-partition step announces
	RangeLo    int     // announced sub-range, inclusive (show-partition)
	RangeHi    int
	Level      int // recursion depth
}

// Phase names a contiguous group of steps presented together.
type Phase string

// Merge sort phases.
const (
	PhaseDivide Phase = "divide"
	PhaseMerge  Phase = "merge"
)

// MergeInfo is the payload of merge sort steps.
type MergeInfo struct {
	Phase    Phase
	Parent   []float64 // divide: the subarray being split
	Left     []float64 // divide: left half; merge: sorted left run
	Right    []float64 // divide: right half; merge: sorted right run
	Merged   []float64 // merge: stable interleaving of Left and Right
	Offset   int       // index of the subarray within the whole array
	Level    int
	Position Side
}

// DistributionInfo is the payload of counting and bucket sort steps.
type DistributionInfo struct {
	Counts  []int       // counting: count or cumulative table, index = value
	Buckets [][]float64 // bucket: full bucket structure
	Output  []float64   // output array; nil until the build/concatenate step
}

// Frame is one activation record of the simulated recursion.
type Frame struct {
	Value     int   // argument of this call
	Active    bool  // top of the stack at this step
	Returning bool  // frame is in the returning phase
	Result    int64 // Value!, meaningful only when Returning
}

// CallStackInfo is the payload of call-stack steps.
type CallStackInfo struct {
	N      int     // argument of the outermost call
	Frames []Frame // bottom (outermost) first
}

// TraversalInfo is the payload of BFS and DFS steps.
type TraversalInfo struct {
	Vertex   string         // vertex the action applies to
	Frontier []string       // queue (BFS, head first) or stack (DFS, bottom first)
	Visited  []string       // discovered vertices, sorted
	Order    []string       // visit order (BFS) or finish order (DFS) so far
	Depth    map[string]int // hop distance from the start of every discovered vertex
	Parent   map[string]string
}

// PhaseCount reports how many steps of a Trace belong to a phase.
type PhaseCount struct {
	Phase Phase
	Steps int
}
