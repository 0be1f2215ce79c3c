package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/canopy-ui/canopy/pkg/protocol"
)

const defaultTracerName = "canopy"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the tracer name (default: "canopy").
	TracerName string

	// Filter decides which events to trace. Nil traces everything.
	Filter func(ev *protocol.Event) bool

	// AttributeExtractor adds custom attributes to each span.
	AttributeExtractor func(ev *protocol.Event) []attribute.KeyValue

	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) { c.TracerName = name }
}

// WithEventFilter sets a predicate deciding which events get a span.
func WithEventFilter(filter func(ev *protocol.Event) bool) OTelOption {
	return func(c *OTelConfig) { c.Filter = filter }
}

// WithAttributeExtractor adds custom span attributes per event.
func WithAttributeExtractor(extractor func(ev *protocol.Event) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) { c.AttributeExtractor = extractor }
}

// OpenTelemetry creates middleware that opens a span around each event
// dispatch. The span records the event kind, target element, and sequence
// number; errors set the span status.
//
// The tracer resolves from the global provider. Configure it in main():
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
func OpenTelemetry(opts ...OTelOption) Middleware {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)

	return func(next Handler) Handler {
		return func(ctx context.Context, ev *protocol.Event) error {
			if config.Filter != nil && !config.Filter(ev) {
				return next(ctx, ev)
			}

			attrs := []attribute.KeyValue{
				attribute.String("canopy.event_kind", ev.Kind.String()),
				attribute.String("canopy.event_target", ev.HID),
				attribute.Int64("canopy.event_seq", int64(ev.Seq)),
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(ev)...)
			}

			spanCtx, span := config.tracer.Start(
				ctx,
				"canopy."+ev.Kind.String(),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			err := next(spanCtx, ev)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			} else {
				span.SetStatus(codes.Ok, "")
			}
			return err
		}
	}
}
