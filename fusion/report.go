// SPDX-License-Identifier: MIT

package fusion

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"text/tabwriter"

	"github.com/katalvlaran/kfusion/importance"
)

// Report is the serializable summary of a Result.
type Report struct {
	Method     string              `json:"method"`
	Iterations int                 `json:"iterations"`
	Weights    map[string]float64  `json:"weights"`
	Samples    []string            `json:"samples"`
	Scores     [][]float64         `json:"scores"` // samples × components
	Eigen      []float64           `json:"eigenvalues"`
	Explained  []float64           `json:"explained_variance"`
	Rank       int                 `json:"rank"`
	Importance []importance.Record `json:"importance,omitempty"` // top features per block and component
}

// NewReport summarizes a complete Result, keeping the top features per
// block and component. top <= 0 keeps every record.
func NewReport(res *Result, top int) (*Report, error) {
	if res == nil || res.Combination == nil || res.Decomposition == nil {
		return nil, fmt.Errorf("fusion: report needs a complete result")
	}
	comb, dec := res.Combination, res.Decomposition

	rep := &Report{
		Method:     string(comb.Method),
		Iterations: comb.Iterations,
		Weights:    make(map[string]float64, len(res.Blocks)),
		Eigen:      append([]float64(nil), dec.Eigen.Values[:dec.Components()]...),
		Explained:  dec.ExplainedVariance(),
		Rank:       dec.Rank,
	}
	for m, b := range res.Blocks {
		rep.Weights[b.Name()] = comb.Weights[m]
	}
	if len(res.Blocks) > 0 {
		rep.Samples = res.Blocks[0].Samples()
	}
	n, k := dec.Scores.Rows(), dec.Scores.Cols()
	rep.Scores = make([][]float64, n)
	var err error
	for i := 0; i < n; i++ {
		if rep.Scores[i], err = dec.Scores.Row(i); err != nil {
			return nil, fmt.Errorf("fusion: report: %w", err)
		}
	}

	if res.Importance != nil {
		if top <= 0 {
			rep.Importance = append([]importance.Record(nil), res.Importance...)
		} else {
			for _, b := range res.Blocks {
				for c := 0; c < k; c++ {
					rep.Importance = append(rep.Importance, importance.Top(res.Importance, b.Name(), c, top)...)
				}
			}
		}
	}

	return rep, nil
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// WriteText writes a human readable summary.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "method\t%s\n", r.Method)
	if r.Iterations > 0 {
		fmt.Fprintf(tw, "iterations\t%d\n", r.Iterations)
	}
	fmt.Fprintf(tw, "rank\t%d\n", r.Rank)
	fmt.Fprintln(tw, "\nblock\tweight")
	for _, name := range slices.Sorted(maps.Keys(r.Weights)) {
		fmt.Fprintf(tw, "%s\t%.4f\n", name, r.Weights[name])
	}
	fmt.Fprintln(tw, "\ncomponent\teigenvalue\texplained")
	for c, v := range r.Eigen {
		fmt.Fprintf(tw, "PC%d\t%.6g\t%.2f%%\n", c+1, v, 100*r.Explained[c])
	}
	if len(r.Importance) > 0 {
		fmt.Fprintln(tw, "\nblock\tfeature\tcomponent\tdistance")
		for _, rec := range r.Importance {
			fmt.Fprintf(tw, "%s\t%s\tPC%d\t%.4f\n", rec.Block, rec.Feature, rec.Component+1, rec.Distance)
		}
	}

	return tw.Flush()
}
