package model

import "github.com/rs8bits/ATLAS/core"

// TotalCost computes the total cost of a log/data disk configuration:
//
//	C_total = C_server + V_log*M_log + V_data*M_data
//
// Server cost and both capacity-weighted disk costs are additive; there is no
// discount for pairing two disks of the same type. Negative capacities or
// prices are rejected, zero values are allowed (the pure function does not
// enforce the stricter profile-level constraints).
func TotalCost(serverCost, logCapacityGB, logPricePerGB, dataCapacityGB, dataPricePerGB float64) (float64, error) {
	if serverCost < 0 {
		return 0, core.InvalidParamf("server_cost", serverCost, "must not be negative")
	}
	if logCapacityGB < 0 {
		return 0, core.InvalidParamf("log_capacity_gb", logCapacityGB, "must not be negative")
	}
	if logPricePerGB < 0 {
		return 0, core.InvalidParamf("log_price_per_gb", logPricePerGB, "must not be negative")
	}
	if dataCapacityGB < 0 {
		return 0, core.InvalidParamf("data_capacity_gb", dataCapacityGB, "must not be negative")
	}
	if dataPricePerGB < 0 {
		return 0, core.InvalidParamf("data_price_per_gb", dataPricePerGB, "must not be negative")
	}
	return serverCost + logCapacityGB*logPricePerGB + dataCapacityGB*dataPricePerGB, nil
}
