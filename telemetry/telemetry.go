// Package telemetry wires OpenTelemetry tracing/metrics and a log/slog
// handler around the decomposition, plan-compilation, and plan-execution
// stages, grounded on the teacher pack's metrics.go instrumentation
// pattern: a package-level tracer/meter plus a sync.Once-guarded Init
// that registers every instrument up front.
package telemetry

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("pact")
	meter  = otel.Meter("pact")
)

var (
	decompDuration metric.Float64Histogram
	decompAttempts metric.Int64Counter
	planOpCount    metric.Int64Histogram
	execDuration   metric.Float64Histogram
	relationSize   metric.Int64Histogram
	overflowEvents metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// Init registers every instrument. Safe to call multiple times; only the
// first call's error is remembered and returned by later calls.
func Init() error {
	metricsOnce.Do(func() {
		var err error

		decompDuration, err = meter.Float64Histogram(
			"pact_decomposition_duration_seconds",
			metric.WithDescription("Duration of hypertree-decomposition acquisition"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		decompAttempts, err = meter.Int64Counter(
			"pact_decomposition_solver_attempts_total",
			metric.WithDescription("Total external HTD-solver attempts launched"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		planOpCount, err = meter.Int64Histogram(
			"pact_plan_op_count",
			metric.WithDescription("Number of relational operations in a compiled plan"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		execDuration, err = meter.Float64Histogram(
			"pact_exec_duration_seconds",
			metric.WithDescription("Duration of a full plan execution"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		relationSize, err = meter.Int64Histogram(
			"pact_exec_relation_tuples",
			metric.WithDescription("Tuple count of an intermediate relation after an operation"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		overflowEvents, err = meter.Int64Counter(
			"pact_exec_bigint_promotions_total",
			metric.WithDescription("Total multiplicities promoted from int64 to big.Int"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// StartDecomposition starts a span for a single decomposition acquisition.
func StartDecomposition(ctx context.Context, patternID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "decomp.Acquire", trace.WithAttributes(attribute.String("pact.pattern_id", patternID)))
}

// RecordDecomposition records a completed decomposition's duration and
// attempt count.
func RecordDecomposition(ctx context.Context, seconds float64, attempts int64) {
	if decompDuration == nil {
		return
	}
	decompDuration.Record(ctx, seconds)
	decompAttempts.Add(ctx, attempts)
}

// StartExec starts a span for a full plan execution.
func StartExec(ctx context.Context, opCount int) (context.Context, trace.Span) {
	ctx, span := tracer.Start(ctx, "exec.Run", trace.WithAttributes(attribute.Int("pact.op_count", opCount)))
	if planOpCount != nil {
		planOpCount.Record(ctx, int64(opCount))
	}
	return ctx, span
}

// RecordExec records a completed execution's duration and final relation
// size.
func RecordExec(ctx context.Context, seconds float64, tuples int64) {
	if execDuration == nil {
		return
	}
	execDuration.Record(ctx, seconds)
	relationSize.Record(ctx, tuples)
}

// RecordOverflow increments the bigint-promotion counter.
func RecordOverflow(ctx context.Context) {
	if overflowEvents == nil {
		return
	}
	overflowEvents.Add(ctx, 1)
}

// NewLogger returns a log/slog logger writing to stderr, json-formatted
// when format == "json" and text-formatted otherwise.
func NewLogger(level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
