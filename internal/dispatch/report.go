package dispatch

import (
	"fmt"
	"io"
)

// Write prints the report as one line per room followed by the average.
func (r Report) Write(w io.Writer) error {
	for i, rr := range r.Rooms {
		line := fmt.Sprintf("Room %d of %d done: %-14s mean %9.1f  std %8.1f", i+1, len(r.Rooms), rr.Room, rr.Mean, rr.Std)
		if rr.Stalled > 0 {
			line += fmt.Sprintf("  stalled %d/%d", rr.Stalled, len(rr.Steps))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Average over %d trials: %.1f\n", r.Trials*len(r.Rooms), r.Average)
	return err
}
