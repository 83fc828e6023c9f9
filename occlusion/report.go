package occlusion

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Summary aggregates a run's match counts.
type Summary struct {
	Matches    int
	Mismatches int
}

// Total returns the number of classified points.
func (s Summary) Total() int { return s.Matches + s.Mismatches }

// Report writes a per-point table and a summary line to w and returns the
// aggregate counts. Presentation only; no classification happens here.
func Report(w io.Writer, results []Result) Summary {
	var sum Summary

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POINT\tPOSITION\tEXPECTED\tCOMPUTED\tMATCH")
	for _, r := range results {
		mark := "ok"
		if r.Match() {
			sum.Matches++
		} else {
			sum.Mismatches++
			mark = "MISMATCH"
		}
		p := r.Point.Pos
		fmt.Fprintf(tw, "%s\t(%6.2f, %6.2f, %6.2f)\t%s\t%s\t%s\n",
			r.Point.Label, p.X(), p.Y(), p.Z(),
			word(r.Expected), word(r.Occluded), mark)
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%d/%d points match, %d mismatch(es)\n",
		sum.Matches, sum.Total(), sum.Mismatches)
	return sum
}

func word(occluded bool) string {
	if occluded {
		return "occluded"
	}
	return "visible"
}
