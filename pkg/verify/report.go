package verify

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Report summarizes one replay: how many rows flowed, how many produced an
// assertion, and the worst observed error among the asserted rows.
type Report struct {
	Indicator string
	Rows      int
	Asserted  int
	Skipped   int
	MaxDelta  float64
}

// WriteTable renders the report to w as a rounded table.
func (r *Report) WriteTable(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Indicator", "Rows", "Asserted", "Skipped", "Max Delta"})
	t.AppendRow(table.Row{
		r.Indicator,
		r.Rows,
		r.Asserted,
		r.Skipped,
		strconv.FormatFloat(r.MaxDelta, 'g', 6, 64),
	})
	t.Render()
}
