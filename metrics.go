// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package acceptable

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"rivaas.dev/acceptable/negotiate"
)

// meterName identifies this library to the OpenTelemetry meter provider.
const meterName = "rivaas.dev/acceptable"

// MetricsProvider selects the built-in metrics exporter.
type MetricsProvider string

const (
	// PrometheusProvider exposes metrics through a Prometheus registry
	// (default). Serve Recorder.PrometheusHandler to scrape them.
	PrometheusProvider MetricsProvider = "prometheus"
	// OTLPProvider pushes metrics over OTLP HTTP.
	OTLPProvider MetricsProvider = "otlp"
	// StdoutProvider prints metrics to stdout (development/testing).
	StdoutProvider MetricsProvider = "stdout"
)

// Recorder records negotiation outcomes as OpenTelemetry metrics.
//
// Two counters are emitted:
//
//	acceptable.negotiations  requests a view was selected for, with
//	                         service, api, version, flag, and outcome
//	                         (exact, downgrade, latest) attributes
//	acceptable.rejections    requests answered with 406, with the
//	                         requested version and flag attributes
//
// Attribute cardinality is bounded by the registered version and flag
// sets, so the counters are safe to export to Prometheus.
type Recorder struct {
	provider       MetricsProvider
	meterProvider  metric.MeterProvider
	sdkProvider    *sdkmetric.MeterProvider
	customProvider bool
	registerGlobal bool
	exportInterval time.Duration
	otlpEndpoint   string
	logger         *slog.Logger

	meter              metric.Meter
	prometheusRegistry *promclient.Registry
	prometheusHandler  http.Handler

	negotiations metric.Int64Counter
	rejections   metric.Int64Counter
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder) error

// NewRecorder creates a metrics recorder. The default configuration uses
// the Prometheus provider with a private registry.
//
// Example:
//
//	rec, err := acceptable.NewRecorder(acceptable.WithPrometheusExporter())
//	if err != nil {
//	    return err
//	}
//	defer rec.Shutdown(context.Background())
//	http.Handle("/metrics", rec.PrometheusHandler())
func NewRecorder(opts ...RecorderOption) (*Recorder, error) {
	r := &Recorder{
		provider:       PrometheusProvider,
		exportInterval: 15 * time.Second,
		logger:         noopLogger,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("invalid recorder option: %w", err)
		}
	}
	if err := r.initializeProvider(); err != nil {
		return nil, err
	}
	return r, nil
}

// WithMeterProvider uses a caller-supplied meter provider instead of a
// built-in exporter. The caller owns the provider's lifecycle; Shutdown
// becomes a no-op.
func WithMeterProvider(provider metric.MeterProvider) RecorderOption {
	return func(r *Recorder) error {
		if provider == nil {
			return ErrNilMeterProvider
		}
		r.meterProvider = provider
		r.customProvider = true
		return nil
	}
}

// WithPrometheusExporter selects the Prometheus provider.
func WithPrometheusExporter() RecorderOption {
	return func(r *Recorder) error {
		r.provider = PrometheusProvider
		return nil
	}
}

// WithOTLPExporter selects the OTLP HTTP provider. The endpoint may carry
// an http:// or https:// scheme; http implies an insecure connection.
func WithOTLPExporter(endpoint string) RecorderOption {
	return func(r *Recorder) error {
		if endpoint == "" {
			return ErrEmptyEndpoint
		}
		r.provider = OTLPProvider
		r.otlpEndpoint = endpoint
		return nil
	}
}

// WithStdoutExporter selects the stdout provider.
func WithStdoutExporter() RecorderOption {
	return func(r *Recorder) error {
		r.provider = StdoutProvider
		return nil
	}
}

// WithExportInterval sets the export interval for push-based providers
// (OTLP and stdout). The default is 15 seconds.
func WithExportInterval(interval time.Duration) RecorderOption {
	return func(r *Recorder) error {
		if interval <= 0 {
			return fmt.Errorf("export interval must be positive, got %s", interval)
		}
		r.exportInterval = interval
		return nil
	}
}

// WithGlobalMeterProvider additionally installs the recorder's provider
// as the process-wide OpenTelemetry meter provider.
func WithGlobalMeterProvider() RecorderOption {
	return func(r *Recorder) error {
		r.registerGlobal = true
		return nil
	}
}

// WithMetricsLogger sets the logger for recorder lifecycle events.
func WithMetricsLogger(logger *slog.Logger) RecorderOption {
	return func(r *Recorder) error {
		if logger == nil {
			return ErrNilLogger
		}
		r.logger = logger
		return nil
	}
}

// PrometheusHandler returns the scrape handler for the recorder's private
// Prometheus registry, or nil when another provider is configured.
func (r *Recorder) PrometheusHandler() http.Handler {
	return r.prometheusHandler
}

// Shutdown flushes and stops the recorder's own meter provider. It is a
// no-op for a caller-supplied provider.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r.sdkProvider == nil {
		return nil
	}
	return r.sdkProvider.Shutdown(ctx)
}

// initializeInstruments creates the counters on the configured meter.
func (r *Recorder) initializeInstruments() error {
	var err error
	r.negotiations, err = r.meter.Int64Counter("acceptable.negotiations",
		metric.WithDescription("Requests for which a versioned view was selected."),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create negotiations counter: %w", err)
	}
	r.rejections, err = r.meter.Int64Counter("acceptable.rejections",
		metric.WithDescription("Requests answered with 406 Not Acceptable."),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create rejections counter: %w", err)
	}
	return nil
}

// recordNegotiation counts a request that was dispatched to a view.
func (r *Recorder) recordNegotiation(ctx context.Context, service, api string, match negotiate.Match) {
	r.negotiations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("service", service),
		attribute.String("api", api),
		attribute.String("version", match.Version.String()),
		attribute.String("flag", match.Flag),
		attribute.String("outcome", match.Outcome.String()),
	))
}

// recordRejection counts a request no registered view could satisfy.
func (r *Recorder) recordRejection(ctx context.Context, service, api, version, flag string) {
	r.rejections.Add(ctx, 1, metric.WithAttributes(
		attribute.String("service", service),
		attribute.String("api", api),
		attribute.String("version", version),
		attribute.String("flag", flag),
	))
}
