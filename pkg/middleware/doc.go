// Package middleware provides observability middleware for widget event
// dispatch: Prometheus metrics and OpenTelemetry tracing.
//
// A middleware wraps the event dispatch path of a session. Chain composes
// several:
//
//	dispatch = middleware.Chain(handler,
//	    middleware.Prometheus(),
//	    middleware.OpenTelemetry(),
//	)
//
// Expose the metrics with promhttp on the host server; configure the global
// OpenTelemetry tracer provider in main() before serving.
package middleware
