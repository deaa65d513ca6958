package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/rs8bits/ATLAS/chart"
	"github.com/rs8bits/ATLAS/config"
	"github.com/rs8bits/ATLAS/planner"
	"github.com/rs8bits/ATLAS/report"
)

var (
	configPath string
	pretty     bool
)

// createLogger creates a slog.Logger based on the provided configuration.
func createLogger(cfg config.LoggingConfig) (*slog.Logger, io.Closer, error) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, nil, fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	var output io.Writer
	var closer io.Closer
	switch strings.ToLower(cfg.Output) {
	case "stdout":
		output = os.Stdout
	case "file":
		if cfg.File == "" {
			return nil, nil, fmt.Errorf("log output is 'file' but no file path is specified")
		}
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
		}
		output = file
		closer = file // The file handle is the closer.
	case "none":
		output = io.Discard
	default:
		return nil, nil, fmt.Errorf("invalid log output: %s", cfg.Output)
	}

	logger := slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level}))
	return logger, closer, nil
}

// initTracerProvider creates and configures an OpenTelemetry TracerProvider.
// It sets up an exporter based on the configuration to send traces to a collector.
func initTracerProvider(cfg config.TracingConfig, logger *slog.Logger) (*sdktrace.TracerProvider, func(), error) {
	if !cfg.Enabled {
		// Return a no-op provider and an empty cleanup function.
		return sdktrace.NewTracerProvider(), func() {}, nil
	}

	logger.Info("Initializing distributed tracing...", "protocol", cfg.Protocol, "endpoint", cfg.Endpoint)

	ctx := context.Background()
	var exporter sdktrace.SpanExporter
	var err error

	// Create an OTLP exporter (gRPC or HTTP)
	switch strings.ToLower(cfg.Protocol) {
	case "http":
		exporter, err = otlptrace.New(ctx, otlptracehttp.NewClient(otlptracehttp.WithEndpoint(cfg.Endpoint), otlptracehttp.WithInsecure()))
	case "grpc":
		exporter, err = otlptrace.New(ctx, otlptracegrpc.NewClient(otlptracegrpc.WithEndpoint(cfg.Endpoint), otlptracegrpc.WithInsecure()))
	default:
		return nil, nil, fmt.Errorf("unsupported tracing protocol: %q", cfg.Protocol)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	// Define the service resource
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceNameKey.String("atlas")))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create trace resource: %w", err)
	}

	// Create the TracerProvider
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	// Set the global TracerProvider
	otel.SetTracerProvider(tp)

	cleanup := func() {
		// Create a context with a timeout to prevent shutdown from hanging.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down tracer provider", "error", err)
		}
	}

	return tp, cleanup, nil
}

// app bundles everything a subcommand needs: loaded configuration, logging,
// tracing and a planner over the configured disk catalog.
type app struct {
	cfg           *config.Config
	logger        *slog.Logger
	logCloser     io.Closer
	tracerCleanup func()
	planner       *planner.Planner
}

// newApp loads configuration, applies any flag overrides, and wires the
// logger, tracer and planner in that order. Overrides run before the planner
// is constructed so they affect the evaluation, not just the config struct.
func newApp(overrides ...func(*config.Config)) (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	for _, override := range overrides {
		override(cfg)
	}

	logger, logCloser, err := createLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	tp, tracerCleanup, err := initTracerProvider(cfg.Tracing, logger)
	if err != nil {
		if logCloser != nil {
			logCloser.Close()
		}
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	p, err := planner.New(cfg.DiskProfiles(), cfg.SystemParameters(), planner.Options{
		Parallelism:    cfg.Evaluation.Parallelism,
		Logger:         logger,
		TracerProvider: tp,
	})
	if err != nil {
		tracerCleanup()
		if logCloser != nil {
			logCloser.Close()
		}
		return nil, err
	}

	return &app{
		cfg:           cfg,
		logger:        logger,
		logCloser:     logCloser,
		tracerCleanup: tracerCleanup,
		planner:       p,
	}, nil
}

func (a *app) Close() {
	a.tracerCleanup()
	if a.logCloser != nil {
		a.logCloser.Close()
	}
}

// printHostHeader prints a short banner describing the machine the evaluation
// runs on. Best effort: any probe failure just drops the line.
func printHostHeader(w io.Writer) {
	info, err := host.Info()
	if err != nil {
		return
	}
	cores, _ := cpu.Counts(true)
	var memTotal float64
	if vm, err := mem.VirtualMemory(); err == nil {
		memTotal = float64(vm.Total) / (1 << 30)
	}
	fmt.Fprintf(w, "Host: %s (%s, kernel %s)  CPUs: %d  Mem: %.1f GiB\n\n",
		info.Hostname, info.Platform, info.KernelVersion, cores, memTotal)
}

func newEvaluateCommand() *cobra.Command {
	var (
		csvPath     string
		parallelism int
		best        bool
		summary     bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score every (log disk, data disk, read ratio) configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(func(cfg *config.Config) {
				if cmd.Flags().Changed("parallelism") {
					cfg.Evaluation.Parallelism = parallelism
				}
			})
			if err != nil {
				return err
			}
			defer app.Close()

			results, err := app.planner.EvaluateAll(cmd.Context(), app.cfg.ReadRatios())
			if err != nil {
				return err
			}

			if pretty {
				printHostHeader(os.Stdout)
				if err := report.RenderResultsTable(os.Stdout, results); err != nil {
					return err
				}
			} else {
				if err := report.WriteResultsCSV(os.Stdout, results); err != nil {
					return err
				}
			}

			if best {
				fmt.Println("\nBest configuration per read ratio:")
				if err := report.RenderBestTable(os.Stdout, report.BestPerRatio(results)); err != nil {
					return err
				}
			}

			if summary {
				s, err := report.SummarizeCPR(results)
				if err != nil {
					return err
				}
				fmt.Println()
				if err := report.RenderSummary(os.Stdout, "CPR distribution", s); err != nil {
					return err
				}
			}

			path := app.cfg.Output.ResultsCSV
			if cmd.Flags().Changed("csv") {
				path = csvPath
			}
			if path != "" {
				if err := report.ExportResultsCSV(path, results); err != nil {
					return err
				}
				app.logger.Debug("exported evaluation grid", "path", path, "rows", len(results))
				fmt.Printf("Results saved to %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "write the full grid to this CSV file, empty disables (.gz/.sz/.lz4/.zst compress)")
	cmd.Flags().IntVar(&parallelism, "parallelism", 0, "number of goroutines for grid evaluation")
	cmd.Flags().BoolVar(&best, "best", false, "also print the best configuration per read ratio")
	cmd.Flags().BoolVar(&summary, "summary", false, "also print CPR distribution statistics")
	return cmd
}

func newUCPRCommand() *cobra.Command {
	var (
		csvPath string
		summary bool
	)

	cmd := &cobra.Command{
		Use:   "ucpr",
		Short: "Rank disk pairs by workload-agnostic UCPR",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			results, err := app.planner.EvaluateUniversal(cmd.Context())
			if err != nil {
				return err
			}
			report.SortUCPRDescending(results)

			if pretty {
				fmt.Println("Universal CPR (UCPR) under unknown workload:")
				if err := report.RenderUCPRTable(os.Stdout, results); err != nil {
					return err
				}
			} else {
				if err := report.WriteUCPRCSV(os.Stdout, results); err != nil {
					return err
				}
			}

			if summary {
				s, err := report.SummarizeUCPR(results)
				if err != nil {
					return err
				}
				fmt.Println()
				if err := report.RenderSummary(os.Stdout, "UCPR distribution", s); err != nil {
					return err
				}
			}

			path := app.cfg.Output.UCPRCSV
			if cmd.Flags().Changed("csv") {
				path = csvPath
			}
			if path != "" {
				if err := report.ExportUCPRCSV(path, results); err != nil {
					return err
				}
				app.logger.Debug("exported pair ranking", "path", path, "rows", len(results))
				fmt.Printf("Ranking saved to %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "write the ranking to this CSV file, empty disables (.gz/.sz/.lz4/.zst compress)")
	cmd.Flags().BoolVar(&summary, "summary", false, "also print UCPR distribution statistics")
	return cmd
}

func newChartCommand() *cobra.Command {
	var (
		bestPath string
		ucprPath string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render evaluation charts to self-contained HTML files",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			results, err := app.planner.EvaluateAll(cmd.Context(), app.cfg.ReadRatios())
			if err != nil {
				return err
			}
			ucpr, err := app.planner.EvaluateUniversal(cmd.Context())
			if err != nil {
				return err
			}
			report.SortUCPRDescending(ucpr)

			best := app.cfg.Output.BestChart
			if cmd.Flags().Changed("best") {
				best = bestPath
			}
			if best != "" {
				if err := chart.ExportBestCPR(best, report.BestPerRatio(results)); err != nil {
					return err
				}
				fmt.Printf("Best-CPR chart saved to %s\n", best)
			}

			ranking := app.cfg.Output.UCPRChart
			if cmd.Flags().Changed("ucpr") {
				ranking = ucprPath
			}
			if ranking != "" {
				if err := chart.ExportUCPRRanking(ranking, ucpr); err != nil {
					return err
				}
				fmt.Printf("UCPR chart saved to %s\n", ranking)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bestPath, "best", "", "output path for the best-CPR-per-ratio line chart")
	cmd.Flags().StringVar(&ucprPath, "ucpr", "", "output path for the UCPR ranking bar chart")
	return cmd
}

func main() {
	root := &cobra.Command{
		Use:   "atlas",
		Short: "Dual-disk cost-performance planner",
		Long: `ATLAS scores log/data disk pairings for storage systems that split their
write path (sequential log) and read path (data files) across two devices.
It enumerates every ordered disk pair from a configured catalog, computes
throughput, total cost and the cost-performance ratio (CPR) at each read
ratio, and ranks pairs by a workload-agnostic universal CPR (UCPR) when the
read/write mix is unknown.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to the configuration file")
	root.PersistentFlags().BoolVar(&pretty, "pretty", term.IsTerminal(int(os.Stdout.Fd())), "format output as tables instead of CSV")

	root.AddCommand(newEvaluateCommand(), newUCPRCommand(), newChartCommand())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
