// Package observability wires logging, tracing and metrics for the service.
package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability/metrics"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config selects the log format and service identity.
type Config struct {
	ServiceName    string
	Environment    string
	Version        string
	LogLevel       string
	MetricsEnabled bool
}

// Provider owns the process-wide logger.
type Provider struct {
	Logger *slog.Logger
}

// Registry owns the tracer and the Prometheus registry.
type Registry struct {
	Tracer     trace.Tracer
	Prometheus *prometheus.Registry
}

// Observability bundles everything modules need to instrument themselves.
type Observability struct {
	Provider *Provider
	Registry *Registry
	config   Config
}

// Init builds the logger and registries. Development uses tint on stderr,
// every other environment emits JSON.
func Init(cfg Config, w io.Writer) Observability {
	if w == nil {
		w = os.Stderr
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "cirqit-scoreboard"
	}

	level := parseLevel(cfg.LogLevel)

	var handler slog.Handler
	if cfg.Environment == "development" {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}

	logger := slog.New(handler).With(
		slog.String("service", cfg.ServiceName),
		slog.String("environment", cfg.Environment),
		slog.String("version", cfg.Version),
	)

	reg := prometheus.NewRegistry()
	if cfg.MetricsEnabled {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return Observability{
		Provider: &Provider{Logger: logger},
		Registry: &Registry{
			Tracer:     otel.Tracer(cfg.ServiceName),
			Prometheus: reg,
		},
		config: cfg,
	}
}

// NewNoop discards logs and traces. Used by tests and tooling.
func NewNoop() Observability {
	return Observability{
		Provider: &Provider{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))},
		Registry: &Registry{
			Tracer:     noop.NewTracerProvider().Tracer("noop"),
			Prometheus: prometheus.NewRegistry(),
		},
	}
}

// OperationMetrics returns operation metrics for one module, or a noop when
// metrics are disabled.
func (o Observability) OperationMetrics(subsystem string) metrics.OperationMetrics {
	if !o.config.MetricsEnabled || o.Registry == nil || o.Registry.Prometheus == nil {
		return metrics.NewNoop()
	}
	return metrics.NewPrometheusMetrics(o.Registry.Prometheus, "scoreboard", subsystem)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
