// Package telemetry wires OpenTelemetry tracing to the logger.
package telemetry

import (
	"context"

	"github.com/pkgseg/pkgseg/internal/core/ports"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName identifies spans produced by this binary.
const InstrumentationName = "github.com/pkgseg/pkgseg"

// Provider owns the tracer provider for the process. Spans are exported
// straight to the logger at debug level; there is no external collector.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// NewProvider creates a Provider and installs it as the global otel provider.
func NewProvider(log ports.Logger) *Provider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(&logProcessor{logger: log}),
	)
	otel.SetTracerProvider(tp)
	return &Provider{tp: tp}
}

// Tracer returns a tracer scoped to this binary's instrumentation name.
func (p *Provider) Tracer() trace.Tracer {
	return p.tp.Tracer(InstrumentationName)
}

// Shutdown flushes and stops the tracer provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}

// logProcessor is a SpanProcessor that logs completed spans.
type logProcessor struct {
	logger ports.Logger
}

func (l *logProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (l *logProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	args := []any{
		"span", s.Name(),
		"duration", s.EndTime().Sub(s.StartTime()).String(),
	}
	for _, attr := range s.Attributes() {
		args = append(args, string(attr.Key), attr.Value.Emit())
	}
	l.logger.Debug("span ended", args...)
}

func (l *logProcessor) Shutdown(context.Context) error { return nil }

func (l *logProcessor) ForceFlush(context.Context) error { return nil }
