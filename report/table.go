package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rs8bits/ATLAS/core"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// RenderResultsTable writes the evaluated grid as an aligned text table.
func RenderResultsTable(w io.Writer, results []core.ConfigurationResult) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "LOG DISK\tDATA DISK\tR\tP (ops/s)\tC_TOTAL\tCPR")
	fmt.Fprintln(tw, "--------\t---------\t-\t---------\t-------\t---")
	for _, row := range results {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.1f\t%.4f\t%.1f\n",
			row.LogDisk, row.DataDisk, row.ReadRatio, row.Throughput, row.TotalCost, row.CPR)
	}
	return tw.Flush()
}

// RenderBestTable writes the best configuration per read ratio as an aligned
// text table.
func RenderBestTable(w io.Writer, best []core.ConfigurationResult) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "R\tLOG DISK\tDATA DISK\tP (ops/s)\tC_TOTAL\tCPR")
	fmt.Fprintln(tw, "-\t--------\t---------\t---------\t-------\t---")
	for _, row := range best {
		fmt.Fprintf(tw, "%.2f\t%s\t%s\t%.1f\t%.4f\t%.1f\n",
			row.ReadRatio, row.LogDisk, row.DataDisk, row.Throughput, row.TotalCost, row.CPR)
	}
	return tw.Flush()
}

// RenderUCPRTable writes a pair ranking as an aligned text table.
func RenderUCPRTable(w io.Writer, results []core.UCPRResult) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "LOG DISK\tDATA DISK\tUCPR")
	fmt.Fprintln(tw, "--------\t---------\t----")
	for _, row := range results {
		fmt.Fprintf(tw, "%s\t%s\t%.1f\n", row.LogDisk, row.DataDisk, row.UCPR)
	}
	return tw.Flush()
}

// RenderSummary writes distribution statistics as an aligned key/value table.
func RenderSummary(w io.Writer, label string, s Summary) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "%s\t\n", label)
	fmt.Fprintf(tw, "count\t%d\n", s.Count)
	fmt.Fprintf(tw, "min\t%.1f\n", s.Min)
	fmt.Fprintf(tw, "max\t%.1f\n", s.Max)
	fmt.Fprintf(tw, "mean\t%.1f\n", s.Mean)
	fmt.Fprintf(tw, "stddev\t%.1f\n", s.StdDev)
	fmt.Fprintf(tw, "p50\t%.1f\n", s.P50)
	fmt.Fprintf(tw, "p90\t%.1f\n", s.P90)
	fmt.Fprintf(tw, "p99\t%.1f\n", s.P99)
	return tw.Flush()
}
