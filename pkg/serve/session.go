package serve

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/canopy-ui/canopy/pkg/dom"
	"github.com/canopy-ui/canopy/pkg/middleware"
	"github.com/canopy-ui/canopy/pkg/protocol"
	"github.com/canopy-ui/canopy/pkg/render"
)

// Session is one live WebSocket connection with its own component instance.
// Events from the client are dispatched to the handlers collected during
// rendering; every state change re-renders the tree and pushes a patch.
type Session struct {
	ID string

	conn   *websocket.Conn
	config *Config
	logger *slog.Logger

	component dom.Component
	renderer  *render.Renderer

	// handlers is the registry from the most recent render, keyed
	// "<hid>_<event>". Only the event loop touches it.
	handlers map[string]any

	// dispatch is the middleware-wrapped event handler.
	dispatch middleware.Handler

	events chan *protocol.Event
	done   chan struct{}

	closed    atomic.Bool
	closeOnce sync.Once
	onClose   func()

	writeMu sync.Mutex
	sendSeq atomic.Uint64

	lastHTML string
}

// newSession creates a session around an upgraded connection.
func newSession(id string, conn *websocket.Conn, component dom.Component, config *Config, mws []middleware.Middleware, logger *slog.Logger) *Session {
	s := &Session{
		ID:        id,
		conn:      conn,
		config:    config,
		logger:    logger.With("session_id", id),
		component: component,
		renderer:  render.NewRenderer(),
		handlers:  make(map[string]any),
		events:    make(chan *protocol.Event, config.MaxEventQueue),
		done:      make(chan struct{}),
	}
	s.dispatch = middleware.Chain(s.invoke, mws...)
	return s
}

// OnClose registers a callback invoked once when the session closes.
func (s *Session) OnClose(fn func()) {
	s.onClose = fn
}

// Mount renders the initial tree and sends it as the first patch so the
// client DOM matches the server's handler registry.
func (s *Session) Mount() error {
	html, err := s.rerender()
	if err != nil {
		return err
	}
	s.lastHTML = html
	return s.sendPatch("", html)
}

// Start launches the session goroutines.
func (s *Session) Start() {
	go s.readLoop()
	go s.writeLoop()
	go s.eventLoop()
}

// readLoop reads frames until the connection drops.
func (s *Session) readLoop() {
	defer s.Close()

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
				middleware.RecordWebSocketError("read")
			}
			return
		}

		frame, err := protocol.DecodeFrame(msg)
		if err != nil {
			s.logger.Error("frame decode error", "error", err)
			middleware.RecordWebSocketError("decode")
			continue
		}

		switch frame.Type {
		case protocol.FrameEvent:
			s.handleEventFrame(frame.Payload)
		case protocol.FrameControl:
			s.handleControlFrame(frame.Payload)
		default:
			s.logger.Warn("unexpected frame type", "type", frame.Type.String())
		}
	}
}

// handleEventFrame decodes and queues a client event.
func (s *Session) handleEventFrame(payload []byte) {
	ev, err := protocol.DecodeEvent(payload)
	if err != nil {
		s.logger.Error("event decode error", "error", err)
		s.sendError(protocol.ErrInvalidEvent, "invalid event format", false)
		return
	}

	select {
	case s.events <- ev:
	default:
		s.sendError(protocol.ErrInvalidEvent, "event queue full", false)
	}
}

// handleControlFrame answers pings and honors client-initiated close.
func (s *Session) handleControlFrame(payload []byte) {
	ctl, err := protocol.DecodeControl(payload)
	if err != nil {
		s.logger.Error("control decode error", "error", err)
		return
	}

	switch ctl.Type {
	case protocol.ControlPing:
		s.writeControl(&protocol.Control{
			Type:      protocol.ControlPong,
			Timestamp: ctl.Timestamp,
		})
	case protocol.ControlPong:
		// Keepalive answered; the read deadline already advanced.
	case protocol.ControlClose:
		s.logger.Info("client closing", "reason", ctl.Reason, "message", ctl.Message)
		s.Close()
	}
}

// writeLoop pings the client on the heartbeat interval.
func (s *Session) writeLoop() {
	ticker := time.NewTicker(s.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			err := s.writeControl(&protocol.Control{
				Type:      protocol.ControlPing,
				Timestamp: uint64(time.Now().UnixMilli()),
			})
			if err != nil {
				return
			}
		case <-s.done:
			return
		}
	}
}

// eventLoop serializes event dispatch and re-rendering. All handler and
// widget state is touched only from this goroutine.
func (s *Session) eventLoop() {
	for {
		select {
		case ev := <-s.events:
			s.handleEvent(ev)
		case <-s.done:
			return
		}
	}
}

// handleEvent runs one event through the middleware chain, then re-renders
// and pushes a patch if the tree changed.
func (s *Session) handleEvent(ev *protocol.Event) {
	if err := s.dispatch(context.Background(), ev); err != nil {
		s.logger.Warn("event dispatch failed",
			"kind", ev.Kind.String(),
			"hid", ev.HID,
			"error", err)
		if em, ok := err.(*protocol.ErrorMessage); ok {
			s.sendError(em.Code, em.Message, em.Fatal)
		}
		return
	}

	html, err := s.rerender()
	if err != nil {
		s.logger.Error("rerender failed", "error", err)
		return
	}
	if html == s.lastHTML {
		return
	}
	s.lastHTML = html
	if err := s.sendPatch("", html); err == nil {
		middleware.RecordPatches(1)
	}
}

// invoke looks up and calls the handler for an event. It is the innermost
// link of the middleware chain.
func (s *Session) invoke(_ context.Context, ev *protocol.Event) (err error) {
	key := ev.HID + "_on" + ev.Kind.String()
	handler, ok := s.handlers[key]
	if !ok {
		return &protocol.ErrorMessage{
			Code:    protocol.ErrHandlerNotFound,
			Message: "no handler for " + key,
		}
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("handler panic",
				"key", key,
				"panic", r,
				"stack", string(debug.Stack()))
			err = &protocol.ErrorMessage{
				Code:    protocol.ErrHandlerPanic,
				Message: fmt.Sprintf("handler panic: %v", r),
			}
		}
	}()

	switch h := handler.(type) {
	case func():
		h()
	case func(dom.MouseEvent):
		h(dom.MouseEvent{})
	case func(dom.InputEvent):
		h(dom.InputEvent{Value: ev.Value, Values: ev.Values})
	case func(dom.KeyboardEvent):
		h(dom.KeyboardEvent{Key: ev.Value})
	default:
		return &protocol.ErrorMessage{
			Code:    protocol.ErrHandlerNotFound,
			Message: "unsupported handler signature for " + key,
		}
	}
	return nil
}

// rerender renders the component and swaps in the fresh handler registry.
func (s *Session) rerender() (string, error) {
	s.renderer.Reset()
	html, err := s.renderer.RenderToString(s.component.Render())
	if err != nil {
		return "", err
	}
	s.handlers = s.renderer.Handlers()
	return html, nil
}

// sendPatch pushes an HTML patch. An empty target replaces the whole
// mounted tree.
func (s *Session) sendPatch(target, html string) error {
	patch := &protocol.Patch{
		Seq:    s.sendSeq.Add(1),
		Target: target,
		HTML:   html,
	}
	return s.writeFrame(protocol.NewFrame(protocol.FramePatch, protocol.EncodePatch(patch)))
}

// sendError pushes an error frame to the client.
func (s *Session) sendError(code protocol.ErrorCode, message string, fatal bool) {
	em := &protocol.ErrorMessage{Code: code, Message: message, Fatal: fatal}
	s.writeFrame(protocol.NewFrame(protocol.FrameError, protocol.EncodeErrorMessage(em)))
}

// SendClose notifies the client of a server-initiated shutdown.
func (s *Session) SendClose() {
	s.writeControl(&protocol.Control{
		Type:   protocol.ControlClose,
		Reason: protocol.CloseServerShutdown,
	})
}

func (s *Session) writeControl(ctl *protocol.Control) error {
	return s.writeFrame(protocol.NewFrame(protocol.FrameControl, protocol.EncodeControl(ctl)))
}

// writeFrame serializes and sends a frame under the write mutex.
func (s *Session) writeFrame(frame *protocol.Frame) error {
	if s.closed.Load() {
		return nil
	}
	if len(frame.Payload) > protocol.MaxPayloadSize {
		s.logger.Error("frame payload too large", "type", frame.Type.String(), "size", len(frame.Payload))
		return protocol.ErrFrameTooLarge
	}
	data := frame.Encode()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	if err := s.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		s.logger.Error("write error", "error", err)
		middleware.RecordWebSocketError("write")
		s.Close()
		return err
	}
	return nil
}

// Close shuts the session down. Safe to call multiple times.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.done)
		s.conn.Close()
		if s.onClose != nil {
			s.onClose()
		}
		s.logger.Info("session closed", "patches_sent", s.sendSeq.Load())
	})
}
