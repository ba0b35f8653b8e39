// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/katalvlaran/tabuqbf/qbf"
)

// Result is the outcome of one (instance, tenure, experiment) run.
// Best carries the maximization value in Cost.
type Result struct {
	Instance string
	Title    string
	Strategy string
	Best     *qbf.Solution
	Elapsed  time.Duration
}

// Value returns the best objective value found.
func (r Result) Value() float64 { return r.Best.Cost }

// writeHeader opens a results file with the run id and machine description.
func writeHeader(w io.Writer, runID string, sys SysInfo) error {
	_, err := fmt.Fprintf(w, "Run: %s\nSystem: %s\n\n", runID, sys)
	return err
}

// writeEntry appends one run as
//
//	<title>
//	Best solution: <solution>
//	Time: <seconds>seg
//	<blank line>
func writeEntry(w io.Writer, r Result) error {
	_, err := fmt.Fprintf(w, "%s\nBest solution: %s\nTime: %sseg\n\n", r.Title, r.Best, seconds(r.Elapsed))
	return err
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
