package report

import (
	"fmt"
	"math"

	"github.com/caio/go-tdigest/v4"

	"github.com/rs8bits/ATLAS/core"
)

// Summary condenses a score distribution from an evaluated grid into the
// handful of numbers a capacity planner actually reads.
type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	P50    float64
	P90    float64
	P99    float64
}

// scoreAccumulator holds the streaming state for one pass over score values.
type scoreAccumulator struct {
	sum          float64
	sumOfSquares float64
	count        uint64
	min          float64
	max          float64
	td           *tdigest.TDigest
}

func newScoreAccumulator() (*scoreAccumulator, error) {
	td, err := tdigest.New()
	if err != nil {
		return nil, fmt.Errorf("tdigest.New failed: %w", err)
	}
	return &scoreAccumulator{
		min: math.Inf(1),
		max: math.Inf(-1),
		td:  td,
	}, nil
}

func (a *scoreAccumulator) add(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return core.InvalidParamf("score", v, "must be finite")
	}
	if v < a.min {
		a.min = v
	}
	if v > a.max {
		a.max = v
	}
	a.sum += v
	a.sumOfSquares += v * v
	a.count++
	if err := a.td.AddWeighted(v, 1); err != nil {
		return fmt.Errorf("tdigest AddWeighted failed: %w", err)
	}
	return nil
}

func (a *scoreAccumulator) summary() Summary {
	countF := float64(a.count)
	s := Summary{
		Count: int(a.count),
		Min:   a.min,
		Max:   a.max,
		Mean:  a.sum / countF,
		P50:   a.td.Quantile(0.50),
		P90:   a.td.Quantile(0.90),
		P99:   a.td.Quantile(0.99),
	}
	if a.count >= 2 {
		variance := (a.sumOfSquares - (a.sum*a.sum)/countF) / (countF - 1)
		if variance < 0 {
			variance = 0
		}
		s.StdDev = math.Sqrt(variance)
	}
	return s
}

func summarizeValues(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, &core.InvalidParameterError{Param: "results", Message: "must not be empty"}
	}
	acc, err := newScoreAccumulator()
	if err != nil {
		return Summary{}, err
	}
	for _, v := range values {
		if err := acc.add(v); err != nil {
			return Summary{}, err
		}
	}
	return acc.summary(), nil
}

// SummarizeCPR computes distribution statistics over the CPR column of an
// evaluated configuration grid. It fails on an empty grid and on non-finite
// scores.
func SummarizeCPR(results []core.ConfigurationResult) (Summary, error) {
	values := make([]float64, len(results))
	for i, row := range results {
		values[i] = row.CPR
	}
	return summarizeValues(values)
}

// SummarizeUCPR computes distribution statistics over a pair ranking.
func SummarizeUCPR(results []core.UCPRResult) (Summary, error) {
	values := make([]float64, len(results))
	for i, row := range results {
		values[i] = row.UCPR
	}
	return summarizeValues(values)
}
