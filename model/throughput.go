package model

import "github.com/rs8bits/ATLAS/core"

// Throughput computes the combined throughput of a log/data disk pair under a
// mixed workload with read ratio r:
//
//	P(r) = 1 / (r/R_data + (1-r)/W_log)
//
// Each stream's per-operation service demand is the reciprocal of its disk's
// rate, so the combined rate is the weighted harmonic form above. The
// endpoints are returned exactly: P(0) = W_log and P(1) = R_data, avoiding the
// double reciprocal 1/(1/W) which is not bit-exact in floating point.
func Throughput(writeOpsPerSec, readOpsPerSec, readRatio float64) (float64, error) {
	if writeOpsPerSec <= 0 {
		return 0, core.InvalidParamf("write_ops_per_sec", writeOpsPerSec, "must be positive")
	}
	if readOpsPerSec <= 0 {
		return 0, core.InvalidParamf("read_ops_per_sec", readOpsPerSec, "must be positive")
	}
	if readRatio < 0 || readRatio > 1 {
		return 0, core.InvalidParamf("read_ratio", readRatio, "must be within [0,1]")
	}
	switch readRatio {
	case 0:
		return writeOpsPerSec, nil
	case 1:
		return readOpsPerSec, nil
	}
	return 1.0 / (readRatio/readOpsPerSec + (1-readRatio)/writeOpsPerSec), nil
}
