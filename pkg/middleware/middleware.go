package middleware

import (
	"context"

	"github.com/canopy-ui/canopy/pkg/protocol"
)

// Handler processes one widget event on behalf of a session.
type Handler func(ctx context.Context, ev *protocol.Event) error

// Middleware wraps a Handler with cross-cutting behavior.
type Middleware func(Handler) Handler

// Chain applies middlewares to h so the first listed runs outermost.
func Chain(h Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
