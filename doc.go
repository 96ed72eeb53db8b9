// Package algotrace records classic algorithms one discrete action at a time
// and lets a caller scrub back and forth over the recording without ever
// re-running the algorithm.
//
// What is algotrace?
//
//	A small, deterministic trace-and-playback engine:
//		• Searching: linear, bounded binary search
//		• Sorting: bubble, insertion, quick, merge, counting, bucket
//		• Recursion: factorial call-stack simulation
//		• Graphs: BFS, DFS over an edge list
//
// Every tracer turns validated input into an immutable Trace of Steps. Each
// Step is a full snapshot (never a delta), so any step can be shown on its
// own, in any order.
//
// Under the hood:
//
//	trace/         Step model, action vocabulary, Trace store and Recorder
//	validate/      input parsing, constraints and the rejection taxonomy
//	search/        linear and binary search tracers
//	exchange/      bubble and insertion sort tracers
//	partition/     quicksort tracer
//	mergesort/     divide/merge tracer
//	distribution/  counting and bucket sort tracers
//	callstack/     factorial call-stack tracer
//	traverse/      graph model, BFS and DFS tracers
//	playback/      bounded cursor over a Trace
//	config/        YAML catalog of per-algorithm input limits
//	engine/        AlgorithmKind, dispatcher, Session and metrics
//	render/        terminal rendering of steps
//	cmd/algotrace  command-line front end
//
// Quick example:
//
//	tr, _ := engine.Run(engine.BubbleSort, engine.Input{Sequence: validate.Sequence{3, 1, 2}})
//	cur := playback.New(tr)
//	for cur.StepForward() {
//		step, _ := cur.Current()
//		fmt.Println(step.Action, step.Array)
//	}
package algotrace
