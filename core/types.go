package core

// DiskProfile describes the performance and cost characteristics of one disk
// type. A profile is a plain value: construct it once from configuration and
// never mutate it.
//
// The same physical disk type serves either of two roles in a configuration
// pair: as the log disk it absorbs the sequential write stream at
// WriteOpsPerSec, as the data disk it serves random reads at ReadOpsPerSec.
type DiskProfile struct {
	Name           string  // Unique label, e.g. "HDD", "SSD".
	WriteOpsPerSec float64 // Sustained write throughput in the log-disk role (ops/s).
	ReadOpsPerSec  float64 // Sustained read throughput in the data-disk role (ops/s).
	PricePerGB     float64 // Price per GB of provisioned capacity (USD).
}

// Validate checks the profile's domain constraints.
func (p DiskProfile) Validate() error {
	if p.Name == "" {
		return &InvalidParameterError{Param: "disk.name", Message: "must not be empty"}
	}
	if p.WriteOpsPerSec <= 0 {
		return InvalidParamf("disk.write_ops_per_sec", p.WriteOpsPerSec, "must be positive")
	}
	if p.ReadOpsPerSec <= 0 {
		return InvalidParamf("disk.read_ops_per_sec", p.ReadOpsPerSec, "must be positive")
	}
	if p.PricePerGB <= 0 {
		return InvalidParamf("disk.price_per_gb", p.PricePerGB, "must be positive")
	}
	return nil
}

// SystemParameters holds the per-run constants of the cost model: the fixed
// server cost and the provisioned capacity of each disk role.
type SystemParameters struct {
	ServerCost     float64 // Fixed infrastructure cost independent of disk choice (USD).
	LogCapacityGB  float64 // Provisioned log-disk capacity (GB).
	DataCapacityGB float64 // Provisioned data-disk capacity (GB).
}

// Validate checks the parameters' domain constraints.
func (p SystemParameters) Validate() error {
	if p.ServerCost < 0 {
		return InvalidParamf("server_cost", p.ServerCost, "must not be negative")
	}
	if p.LogCapacityGB <= 0 {
		return InvalidParamf("log_capacity_gb", p.LogCapacityGB, "must be positive")
	}
	if p.DataCapacityGB <= 0 {
		return InvalidParamf("data_capacity_gb", p.DataCapacityGB, "must be positive")
	}
	return nil
}

// ConfigurationResult is one row of an evaluation: a (log disk, data disk)
// pair scored at a single read ratio.
type ConfigurationResult struct {
	LogDisk    string  // Name of the disk in the log role.
	DataDisk   string  // Name of the disk in the data role.
	ReadRatio  float64 // Fraction of operations that are reads, in [0,1].
	Throughput float64 // Combined throughput P(r) in ops/s.
	TotalCost  float64 // Total configuration cost (USD).
	CPR        float64 // Cost-performance ratio, Throughput/TotalCost.
}

// UCPRResult is one row of a universal evaluation: a (log disk, data disk)
// pair scored by its CPR averaged over all read ratios.
type UCPRResult struct {
	LogDisk  string
	DataDisk string
	UCPR     float64
}
