package report

import "github.com/rs8bits/ATLAS/core"

// BestPerRatio selects, for each distinct read ratio in the input, the row
// with the highest CPR. Ratios keep their first-appearance order so the
// output follows the workload axis the grid was evaluated on. An exact CPR
// tie goes to the lexicographically smallest (log disk, data disk) pair,
// which keeps the selection stable across runs and input orderings.
func BestPerRatio(results []core.ConfigurationResult) []core.ConfigurationResult {
	best := make(map[float64]core.ConfigurationResult, len(results))
	order := make([]float64, 0, len(results))
	for _, row := range results {
		cur, ok := best[row.ReadRatio]
		if !ok {
			best[row.ReadRatio] = row
			order = append(order, row.ReadRatio)
			continue
		}
		if row.CPR > cur.CPR || (row.CPR == cur.CPR && pairLess(row.LogDisk, row.DataDisk, cur.LogDisk, cur.DataDisk)) {
			best[row.ReadRatio] = row
		}
	}

	out := make([]core.ConfigurationResult, 0, len(order))
	for _, r := range order {
		out = append(out, best[r])
	}
	return out
}

func pairLess(aLog, aData, bLog, bData string) bool {
	if aLog != bLog {
		return aLog < bLog
	}
	return aData < bData
}
