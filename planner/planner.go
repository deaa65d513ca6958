package planner

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"

	"github.com/rs8bits/ATLAS/core"
	"github.com/rs8bits/ATLAS/model"
)

// Options configures a Planner.
type Options struct {
	// Parallelism is the number of goroutines used to evaluate the
	// configuration grid. Values below 2 select the sequential path.
	Parallelism int
	// Logger is the parent logger. A JSON logger on stdout at warn level is
	// used when nil.
	Logger *slog.Logger
	// TracerProvider enables tracing of grid evaluations. A noop tracer is
	// used when nil.
	TracerProvider trace.TracerProvider
}

// Planner enumerates every (log disk, data disk, read ratio) configuration of
// a validated disk catalog and scores each one. The grid is the full ordered
// Cartesian product of the catalog with itself: self-pairs are included, and
// log=A/data=B is a different configuration from log=B/data=A because the two
// roles price and perform independently.
type Planner struct {
	disks       []core.DiskProfile
	params      core.SystemParameters
	parallelism int

	logger *slog.Logger
	tracer trace.Tracer
}

// New validates the disk catalog and system parameters and returns a Planner
// over them. Validation is fail-fast: a catalog that passes here cannot
// produce an evaluation error later.
func New(disks []core.DiskProfile, params core.SystemParameters, opts Options) (*Planner, error) {
	if len(disks) == 0 {
		return nil, &core.InvalidParameterError{Param: "disks", Message: "must not be empty"}
	}
	seen := make(map[string]struct{}, len(disks))
	for _, d := range disks {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[d.Name]; ok {
			return nil, &core.InvalidParameterError{Param: "disks", Value: d.Name, Message: "duplicate disk name"}
		}
		seen[d.Name] = struct{}{}
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var logger *slog.Logger
	if opts.Logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn})).With("component", "Planner")
	} else {
		logger = opts.Logger.With("component", "Planner")
	}

	p := &Planner{
		disks:       disks,
		params:      params,
		parallelism: opts.Parallelism,
		logger:      logger,
	}
	if opts.TracerProvider != nil {
		p.tracer = opts.TracerProvider.Tracer("github.com/rs8bits/ATLAS/planner")
	} else {
		p.tracer = noop.NewTracerProvider().Tracer("")
	}
	return p, nil
}

// Disks returns the validated disk catalog in its original order.
func (p *Planner) Disks() []core.DiskProfile {
	return p.disks
}

// Parameters returns the validated system parameters.
func (p *Planner) Parameters() core.SystemParameters {
	return p.params
}

// pairCost computes the total cost of a log/data disk pair.
func (p *Planner) pairCost(logDisk, dataDisk core.DiskProfile) (float64, error) {
	return model.TotalCost(
		p.params.ServerCost,
		p.params.LogCapacityGB, logDisk.PricePerGB,
		p.params.DataCapacityGB, dataDisk.PricePerGB,
	)
}

// EvaluateAll scores every configuration in the grid at each of the given
// read ratios and returns one row per (log disk, data disk, ratio) triple.
// Rows are in deterministic order regardless of parallelism: log disk in
// catalog order, then data disk in catalog order, then ratio in argument
// order.
func (p *Planner) EvaluateAll(ctx context.Context, ratios []float64) ([]core.ConfigurationResult, error) {
	_, span := p.tracer.Start(ctx, "Planner.EvaluateAll")
	defer span.End()
	span.SetAttributes(
		attribute.Int("planner.disks", len(p.disks)),
		attribute.Int("planner.ratios", len(ratios)),
	)

	if len(ratios) == 0 {
		return nil, &core.InvalidParameterError{Param: "ratios", Message: "must not be empty"}
	}
	for _, r := range ratios {
		if r < 0 || r > 1 {
			return nil, core.InvalidParamf("ratios", r, "must be within [0, 1]")
		}
	}

	n := len(p.disks)
	m := len(ratios)
	results := make([]core.ConfigurationResult, n*n*m)

	if p.parallelism > 1 {
		if err := p.evaluateRowsParallel(ctx, ratios, results); err != nil {
			return nil, err
		}
	} else {
		for i := range p.disks {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := p.evaluateLogDiskRows(i, ratios, results); err != nil {
				return nil, err
			}
		}
	}

	span.SetAttributes(attribute.Int("planner.results", len(results)))
	p.logger.Debug("evaluated configuration grid",
		"disks", n, "ratios", m, "rows", len(results))
	return results, nil
}

// evaluateRowsParallel partitions the grid by log disk across a bounded
// errgroup. Each partition writes into its own disjoint slice range, so the
// output order is identical to the sequential path.
func (p *Planner) evaluateRowsParallel(ctx context.Context, ratios []float64, results []core.ConfigurationResult) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.parallelism)
	for i := range p.disks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return p.evaluateLogDiskRows(i, ratios, results)
		})
	}
	return g.Wait()
}

// evaluateLogDiskRows fills the rows for a single log disk into the shared
// result slice. The pair cost is hoisted out of the ratio loop: it does not
// depend on r.
func (p *Planner) evaluateLogDiskRows(i int, ratios []float64, results []core.ConfigurationResult) error {
	n := len(p.disks)
	m := len(ratios)
	logDisk := p.disks[i]
	for j, dataDisk := range p.disks {
		cost, err := p.pairCost(logDisk, dataDisk)
		if err != nil {
			return fmt.Errorf("cost of pair %s/%s: %w", logDisk.Name, dataDisk.Name, err)
		}
		for k, r := range ratios {
			throughput, err := model.Throughput(logDisk.WriteOpsPerSec, dataDisk.ReadOpsPerSec, r)
			if err != nil {
				return fmt.Errorf("throughput of pair %s/%s at r=%g: %w", logDisk.Name, dataDisk.Name, r, err)
			}
			cpr, err := model.CPR(throughput, cost)
			if err != nil {
				return fmt.Errorf("cpr of pair %s/%s at r=%g: %w", logDisk.Name, dataDisk.Name, r, err)
			}
			results[(i*n+j)*m+k] = core.ConfigurationResult{
				LogDisk:    logDisk.Name,
				DataDisk:   dataDisk.Name,
				ReadRatio:  r,
				Throughput: throughput,
				TotalCost:  cost,
				CPR:        cpr,
			}
		}
	}
	return nil
}

// EvaluateUniversal scores every log/data disk pair by its workload-agnostic
// UCPR. Rows follow the same deterministic pair order as EvaluateAll: log
// disk in catalog order, then data disk in catalog order.
func (p *Planner) EvaluateUniversal(ctx context.Context) ([]core.UCPRResult, error) {
	_, span := p.tracer.Start(ctx, "Planner.EvaluateUniversal")
	defer span.End()
	span.SetAttributes(attribute.Int("planner.disks", len(p.disks)))

	n := len(p.disks)
	results := make([]core.UCPRResult, 0, n*n)
	for _, logDisk := range p.disks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, dataDisk := range p.disks {
			cost, err := p.pairCost(logDisk, dataDisk)
			if err != nil {
				return nil, fmt.Errorf("cost of pair %s/%s: %w", logDisk.Name, dataDisk.Name, err)
			}
			ucpr, err := model.UniversalCPR(logDisk.WriteOpsPerSec, dataDisk.ReadOpsPerSec, cost)
			if err != nil {
				return nil, fmt.Errorf("ucpr of pair %s/%s: %w", logDisk.Name, dataDisk.Name, err)
			}
			results = append(results, core.UCPRResult{
				LogDisk:  logDisk.Name,
				DataDisk: dataDisk.Name,
				UCPR:     ucpr,
			})
		}
	}

	span.SetAttributes(attribute.Int("planner.results", len(results)))
	return results, nil
}
