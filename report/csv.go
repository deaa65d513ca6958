package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs8bits/ATLAS/compressors"
	"github.com/rs8bits/ATLAS/core"
)

var (
	resultsHeader = []string{"log_disk", "data_disk", "r", "P_ops_per_s", "C_total", "CPR"}
	ucprHeader    = []string{"log_disk", "data_disk", "UCPR"}
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// WriteResultsCSV writes the evaluated configuration grid as CSV, one row per
// (log disk, data disk, read ratio) triple in input order.
func WriteResultsCSV(w io.Writer, results []core.ConfigurationResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(resultsHeader); err != nil {
		return err
	}
	for _, row := range results {
		record := []string{
			row.LogDisk,
			row.DataDisk,
			formatFloat(row.ReadRatio),
			formatFloat(row.Throughput),
			formatFloat(row.TotalCost),
			formatFloat(row.CPR),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteUCPRCSV writes a pair ranking as CSV in input order.
func WriteUCPRCSV(w io.Writer, results []core.UCPRResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ucprHeader); err != nil {
		return err
	}
	for _, row := range results {
		record := []string{row.LogDisk, row.DataDisk, formatFloat(row.UCPR)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportResultsCSV writes the grid to a file. A compressed-extension path
// (.gz, .sz, .lz4, .zst) selects the matching encoding on the way out.
func ExportResultsCSV(path string, results []core.ConfigurationResult) error {
	return exportCSV(path, func(w io.Writer) error {
		return WriteResultsCSV(w, results)
	})
}

// ExportUCPRCSV writes a pair ranking to a file, compressed when the path
// carries a compressed extension.
func ExportUCPRCSV(path string, results []core.UCPRResult) error {
	return exportCSV(path, func(w io.Writer) error {
		return WriteUCPRCSV(w, results)
	})
}

func exportCSV(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if comp, ok := compressors.ForPath(path); ok {
		zw, err := comp.NewWriter(f)
		if err != nil {
			return err
		}
		if err := write(zw); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	}
	return write(f)
}
