package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canopy-ui/canopy/pkg/protocol"
)

func TestPrometheusMiddlewarePassesThrough(t *testing.T) {
	mw := Prometheus(WithRegistry(prometheus.NewRegistry()))

	called := false
	h := mw(func(ctx context.Context, ev *protocol.Event) error {
		called = true
		return nil
	})

	if err := h(context.Background(), &protocol.Event{Kind: protocol.EventChange, HID: "h1"}); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !called {
		t.Error("middleware must invoke the wrapped handler")
	}
}

func TestPrometheusMiddlewarePropagatesError(t *testing.T) {
	mw := Prometheus(WithRegistry(prometheus.NewRegistry()))

	sentinel := errors.New("boom")
	h := mw(func(context.Context, *protocol.Event) error {
		return sentinel
	})

	if err := h(context.Background(), &protocol.Event{Kind: protocol.EventClick}); !errors.Is(err, sentinel) {
		t.Errorf("err = %v, want sentinel", err)
	}
}

func TestRecordHelpersWithoutInit(t *testing.T) {
	// The recording helpers are no-ops before Prometheus() runs; they must
	// not panic either way.
	RecordPatches(3)
	RecordSessionOpen()
	RecordSessionClose()
	RecordWebSocketError("read")
}
