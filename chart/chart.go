package chart

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/rs8bits/ATLAS/core"
)

// RenderBestCPR writes a self-contained HTML line chart of the best CPR at
// each read ratio. Points carry the winning log/data pair as their name, so
// the optimal disk combination for a ratio is readable from the tooltip.
// Rows are plotted in input order.
func RenderBestCPR(w io.Writer, best []core.ConfigurationResult) error {
	if len(best) == 0 {
		return &core.InvalidParameterError{Param: "best", Message: "must not be empty"}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Optimal CPR Across Read Ratios",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Read Ratio (r)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "CPR (throughput / cost)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	xAxis := make([]string, len(best))
	points := make([]opts.LineData, len(best))
	for i, row := range best {
		xAxis[i] = strconv.FormatFloat(row.ReadRatio, 'g', -1, 64)
		points[i] = opts.LineData{
			Name:       pairLabel(row.LogDisk, row.DataDisk),
			Value:      row.CPR,
			Symbol:     "circle",
			SymbolSize: 8,
		}
	}

	line.SetXAxis(xAxis).
		AddSeries("Best CPR", points).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)

	return line.Render(w)
}

// RenderUCPRRanking writes a self-contained HTML bar chart of pair UCPR
// scores in input order. Callers that want a ranking sort first.
func RenderUCPRRanking(w io.Writer, results []core.UCPRResult) error {
	if len(results) == 0 {
		return &core.InvalidParameterError{Param: "results", Message: "must not be empty"}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Universal CPR by Disk Pair",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Disk Pair (log-data)",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "UCPR",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	labels := make([]string, len(results))
	bars := make([]opts.BarData, len(results))
	for i, row := range results {
		labels[i] = pairLabel(row.LogDisk, row.DataDisk)
		bars[i] = opts.BarData{Value: row.UCPR}
	}

	bar.SetXAxis(labels).AddSeries("UCPR", bars)

	return bar.Render(w)
}

// ExportBestCPR renders the best-CPR line chart to an HTML file.
func ExportBestCPR(path string, best []core.ConfigurationResult) error {
	return export(path, func(w io.Writer) error {
		return RenderBestCPR(w, best)
	})
}

// ExportUCPRRanking renders the UCPR bar chart to an HTML file.
func ExportUCPRRanking(path string, results []core.UCPRResult) error {
	return export(path, func(w io.Writer) error {
		return RenderUCPRRanking(w, results)
	})
}

func export(path string, render func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return render(f)
}

func pairLabel(logDisk, dataDisk string) string {
	return logDisk + "-" + dataDisk
}
