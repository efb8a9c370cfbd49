package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/toolres/internal/core/ports"
)

// LogBridge implements sdktrace.SpanProcessor by reporting finished spans to a logger at debug level.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart is called when a span starts.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	msg := fmt.Sprintf("span %s took %s", s.Name(), s.EndTime().Sub(s.StartTime()))
	if s.Status().Code == codes.Error {
		msg += " (failed: " + s.Status().Description + ")"
	}
	b.logger.Debug(msg)
}

// Shutdown is called when the SDK shuts down.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}

// ForceFlush exports all ended spans that have not yet been exported.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}
