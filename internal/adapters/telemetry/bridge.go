package telemetry

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/symcache/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor and reports finished spans to a logger.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart does nothing; spans are reported once they end.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration and attributes.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	attrs := make([]string, 0, len(s.Attributes()))
	for _, kv := range s.Attributes() {
		attrs = append(attrs, string(kv.Key)+"="+kv.Value.Emit())
	}
	slices.Sort(attrs)

	line := fmt.Sprintf("trace %s %s", s.Name(), s.EndTime().Sub(s.StartTime()))
	if len(attrs) > 0 {
		line += " " + strings.Join(attrs, " ")
	}

	if s.Status().Code == codes.Error {
		b.logger.Warn(line + " error=" + s.Status().Description)
		return
	}
	b.logger.Info(line)
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Install registers a global tracer provider that reports spans through the bridge.
// The returned function shuts the provider down.
func Install(bridge *Bridge) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
