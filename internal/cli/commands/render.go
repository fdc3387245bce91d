package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ot/emd"
	"github.com/katalvlaran/ot/internal/cli/config"
)

// SolveOutput is the JSON form of a solve.
type SolveOutput struct {
	EMD        float64     `json:"emd"`
	Iterations int         `json:"iterations"`
	Target     []float64   `json:"target"`
	Flow       [][]float64 `json:"flow"`
}

// newSolveOutput copies the result and the rebalanced target into plain slices.
func newSolveOutput(res emd.Result, target *mat.VecDense) SolveOutput {
	out := SolveOutput{EMD: res.EMD, Iterations: res.Iterations}
	for j := 0; j < target.Len(); j++ {
		out.Target = append(out.Target, target.AtVec(j))
	}
	r, c := res.Flow.Dims()
	out.Flow = make([][]float64, r)
	for i := 0; i < r; i++ {
		out.Flow[i] = make([]float64, c)
		mat.Row(out.Flow[i], i, res.Flow)
	}

	return out
}

// renderSolve writes the result in the configured format.
func renderSolve(w io.Writer, format string, out SolveOutput) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		renderTable(w, out)
		return nil
	}
}

// renderTable prints the flow matrix with one row per source and one column
// per target, followed by the distance.
func renderTable(w io.Writer, out SolveOutput) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	// labels are matrix coordinates; keep them as written
	t.Style().Format.Header = text.FormatDefault

	cols := len(out.Target)
	header := make(table.Row, cols+1)
	header[0] = "flow"
	for j := 0; j < cols; j++ {
		header[j+1] = "t" + strconv.Itoa(j)
	}
	t.AppendHeader(header)

	for i, flows := range out.Flow {
		row := make(table.Row, len(flows)+1)
		row[0] = "s" + strconv.Itoa(i)
		for j, f := range flows {
			row[j+1] = strconv.FormatFloat(f, 'g', 6, 64)
		}
		t.AppendRow(row)
	}
	t.Render()

	_, _ = fmt.Fprintf(w, "EMD: %s\n", strconv.FormatFloat(out.EMD, 'g', 10, 64))
	_, _ = fmt.Fprintf(w, "Iterations: %d\n", out.Iterations)
}
