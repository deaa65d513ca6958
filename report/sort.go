package report

import (
	"sort"

	"github.com/rs8bits/ATLAS/core"
)

// SortUCPRDescending orders a pair ranking from best to worst UCPR in place.
// Equal scores fall back to (log disk, data disk) name order so the ranking
// is reproducible run to run.
func SortUCPRDescending(results []core.UCPRResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].UCPR != results[j].UCPR {
			return results[i].UCPR > results[j].UCPR
		}
		return pairLess(results[i].LogDisk, results[i].DataDisk, results[j].LogDisk, results[j].DataDisk)
	})
}
