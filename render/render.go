package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/kr/pretty"
	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/algotrace/trace"
)

// Numbers formats v compactly: [1 2.5 3].
func Numbers(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// State renders the data structure a step shows: the array snapshot, the
// call stack (outermost first) or the traversal frontier.
func State(s trace.Step) string {
	switch {
	case s.CallStack != nil:
		frames := make([]string, len(s.CallStack.Frames))
		for i, f := range s.CallStack.Frames {
			frames[i] = fmt.Sprintf("f(%d)", f.Value)
			if f.Returning {
				frames[i] += "=" + strconv.FormatInt(f.Result, 10)
			}
			if f.Active {
				frames[i] += "*"
			}
		}

		return strings.Join(frames, " > ")
	case s.Traversal != nil:
		return "[" + strings.Join(s.Traversal.Frontier, " ") + "]"
	default:
		return Numbers(s.Array)
	}
}

// Detail summarizes the family payload of s.
func Detail(s trace.Step) string {
	switch {
	case s.Search != nil:
		p := s.Search
		if p.Probe >= 0 || (p.Left < 0 && p.Mid < 0) {
			return fmt.Sprintf("probe=%d match=%t", p.Probe, p.Matched)
		}

		return fmt.Sprintf("left=%d right=%d mid=%d", p.Left, p.Right, p.Mid)
	case s.Exchange != nil:
		p := s.Exchange
		if p.InsertAt >= 0 {
			return fmt.Sprintf("key=%g at=%d", p.Key, p.InsertAt)
		}

		return fmt.Sprintf("pair=%d,%d swaps=%d", p.Indices[0], p.Indices[1], p.Swaps)
	case s.Partition != nil:
		p := s.Partition
		if s.Action == trace.ActionShowPartition {
			return fmt.Sprintf("%s [%d..%d]", p.Side, p.RangeLo, p.RangeHi)
		}

		return fmt.Sprintf("range=[%d..%d] pivot=%g i=%d j=%d", p.Low, p.High, p.PivotValue, p.I, p.J)
	case s.Merge != nil:
		p := s.Merge
		if p.Phase == trace.PhaseDivide {
			return fmt.Sprintf("%s -> %s %s", Numbers(p.Parent), Numbers(p.Left), Numbers(p.Right))
		}

		return fmt.Sprintf("%s + %s = %s", Numbers(p.Left), Numbers(p.Right), Numbers(p.Merged))
	case s.Distribution != nil:
		p := s.Distribution
		if p.Counts != nil {
			return fmt.Sprintf("counts=%v", p.Counts)
		}
		buckets := make([]string, len(p.Buckets))
		for i, b := range p.Buckets {
			buckets[i] = Numbers(b)
		}

		return "buckets=" + strings.Join(buckets, "")
	case s.CallStack != nil:
		return fmt.Sprintf("depth=%d", len(s.CallStack.Frames))
	case s.Traversal != nil:
		p := s.Traversal
		return fmt.Sprintf("vertex=%s order=[%s]", p.Vertex, strings.Join(p.Order, " "))
	default:
		return ""
	}
}

// Table writes every step of tr as one table row.
func Table(w io.Writer, tr *trace.Trace) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"#", "Action", "State", "Detail", "Description"})
	tbl.SetAutoWrapText(false)
	for _, s := range tr.Steps() {
		tbl.Append([]string{
			strconv.Itoa(s.Index),
			string(s.Action),
			State(s),
			Detail(s),
			s.Description,
		})
	}
	tbl.Render()
}

// Plot draws the array snapshot of s as a line of the given height. Steps
// without an array of at least two values yield "".
func Plot(s trace.Step, height int) string {
	if len(s.Array) < 2 {
		return ""
	}

	return asciigraph.Plot(s.Array, asciigraph.Height(height))
}

// Step writes a multi-line view of s, including its plot when it has one.
func Step(w io.Writer, s trace.Step, total int, height int) {
	fmt.Fprintf(w, "step %d/%d  %s\n", s.Index+1, total, s.Action)
	fmt.Fprintf(w, "  %s\n", s.Description)
	fmt.Fprintf(w, "  state:  %s\n", State(s))
	if d := Detail(s); d != "" {
		fmt.Fprintf(w, "  detail: %s\n", d)
	}
	if p := Plot(s, height); p != "" {
		fmt.Fprintln(w, p)
	}
}

// Pretty returns the full Go value of s.
func Pretty(s trace.Step) string {
	return pretty.Sprintf("%# v", s)
}
