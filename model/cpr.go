package model

import (
	"math"

	"github.com/rs8bits/ATLAS/core"
)

// EqualRateTolerance is the relative tolerance below which the log disk's
// write rate and the data disk's read rate are treated as equal by
// UniversalCPR. The general closed form has a 0/0 indeterminate at W == R and
// loses precision to cancellation in the log-ratio term as the rates approach
// each other; well before that matters the integral is indistinguishable from
// its limit W/C_total.
const EqualRateTolerance = 1e-9

// CPR computes the cost-performance ratio of a configuration: throughput
// divided by total cost. Higher is better.
func CPR(throughput, totalCost float64) (float64, error) {
	if totalCost <= 0 {
		return 0, core.InvalidParamf("total_cost", totalCost, "must be positive")
	}
	return throughput / totalCost, nil
}

// UniversalCPR computes the workload-agnostic cost-performance ratio of a
// log/data disk pair: the closed-form evaluation of
//
//	UCPR = ∫ P(r)/C_total dr  over r in [0,1]
//	     = W*R/(W-R) * ln(W/R) / C_total
//
// which averages CPR uniformly over every possible read ratio, so a planner
// can rank hardware without committing to an assumed workload mix. The
// general form is indeterminate at W == R; rates within EqualRateTolerance of
// each other take the limit value W/C_total instead.
func UniversalCPR(writeOpsPerSec, readOpsPerSec, totalCost float64) (float64, error) {
	if writeOpsPerSec <= 0 {
		return 0, core.InvalidParamf("write_ops_per_sec", writeOpsPerSec, "must be positive")
	}
	if readOpsPerSec <= 0 {
		return 0, core.InvalidParamf("read_ops_per_sec", readOpsPerSec, "must be positive")
	}
	if totalCost <= 0 {
		return 0, core.InvalidParamf("total_cost", totalCost, "must be positive")
	}

	w, r := writeOpsPerSec, readOpsPerSec
	if math.Abs(w-r) <= EqualRateTolerance*math.Max(w, r) {
		return w / totalCost, nil
	}
	return w * r / (w - r) * math.Log(w/r) / totalCost, nil
}
