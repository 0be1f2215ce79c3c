package serve

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/canopy-ui/canopy/pkg/dom"
	"github.com/canopy-ui/canopy/pkg/middleware"
	"github.com/canopy-ui/canopy/pkg/render"
	"github.com/canopy-ui/canopy/pkg/upload"
)

// Server hosts a page component over HTTP and WebSocket.
type Server struct {
	config   *Config
	logger   *slog.Logger
	upgrader websocket.Upgrader

	// page builds a fresh component instance per render and per session.
	page func() dom.Component

	// eventMW wraps event dispatch in every session.
	eventMW []middleware.Middleware

	// uploads stages files posted to /upload.
	uploads upload.Store

	mu       sync.Mutex
	sessions map[string]*Session

	httpServer *http.Server
}

// New creates a Server with the given configuration. A nil config uses
// DefaultConfig.
func New(config *Config) *Server {
	config = fillDefaults(config)
	return &Server{
		config: config,
		logger: config.Logger.With("component", "serve"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		sessions: make(map[string]*Session),
	}
}

// SetPage sets the page component factory. The factory is called once per
// HTTP render and once per WebSocket session, so every session gets its own
// widget state.
func (s *Server) SetPage(factory func() dom.Component) {
	s.page = factory
}

// SetUploadStore enables the /upload endpoint backed by the given store.
func (s *Server) SetUploadStore(store upload.Store) {
	s.uploads = store
}

// Use appends event middleware. Middleware wraps handler dispatch in every
// session, first listed outermost.
func (s *Server) Use(mw ...middleware.Middleware) {
	s.eventMW = append(s.eventMW, mw...)
}

// Router builds the HTTP routes:
//
//	GET  /           rendered page
//	GET  /ws         WebSocket upgrade
//	GET  /client.js  browser event bridge
//	GET  /metrics    Prometheus metrics
//	POST /upload     file staging (when a store is set)
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWebSocket)
	r.Get("/client.js", s.handleClientScript)
	r.Handle("/metrics", promhttp.Handler())

	if s.uploads != nil {
		r.Method(http.MethodPost, "/upload", upload.Handler(s.uploads))
	}

	return r
}

// handleIndex renders the page component into a document shell.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.page == nil {
		http.Error(w, "no page configured", http.StatusNotFound)
		return
	}

	renderer := render.NewRenderer()
	html, err := renderer.RenderToString(s.page().Render())
	if err != nil {
		s.logger.Error("page render failed", "error", err)
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageShell, html)
}

// handleWebSocket upgrades the connection and starts a session.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.page == nil {
		http.Error(w, "no page configured", http.StatusNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		middleware.RecordWebSocketError("upgrade")
		return
	}
	conn.SetReadLimit(s.config.MaxMessageSize)

	session := newSession(newSessionID(), conn, s.page(), s.config, s.eventMW, s.logger)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	middleware.RecordSessionOpen()

	session.OnClose(func() {
		s.mu.Lock()
		delete(s.sessions, session.ID)
		s.mu.Unlock()
		middleware.RecordSessionClose()
	})

	if err := session.Mount(); err != nil {
		s.logger.Error("session mount failed", "session_id", session.ID, "error", err)
		session.Close()
		return
	}
	session.Start()

	s.logger.Info("session started", "session_id", session.ID)
}

func (s *Server) handleClientScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	w.Write([]byte(clientScript))
}

// SessionCount returns the number of live sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Run starts the server and blocks until SIGINT/SIGTERM or a listen error.
func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	cleanupDone := make(chan struct{})
	cleanupStop := make(chan struct{})
	go s.uploadCleanupLoop(cleanupStop, cleanupDone)

	select {
	case err := <-errCh:
		close(cleanupStop)
		<-cleanupDone
		if err != http.ErrServerClosed {
			return err
		}
		return nil

	case <-shutdown:
		s.logger.Info("shutting down")
		close(cleanupStop)
		<-cleanupDone
		return s.Shutdown(context.Background())
	}
}

// uploadCleanupLoop periodically removes unclaimed uploads.
func (s *Server) uploadCleanupLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	if s.uploads == nil {
		return
	}

	ticker := time.NewTicker(s.config.UploadMaxAge / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.uploads.Cleanup(context.Background(), s.config.UploadMaxAge); err != nil {
				s.logger.Warn("upload cleanup failed", "error", err)
			}
		case <-stop:
			return
		}
	}
}

// Shutdown closes all sessions and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.mu.Lock()
	sessions := make([]*Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	s.mu.Unlock()

	for _, session := range sessions {
		session.SendClose()
		session.Close()
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// newSessionID returns a cryptographically random session ID.
func newSessionID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

const pageShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>canopy</title>
</head>
<body>
<div id="canopy-root">%s</div>
<script src="/client.js"></script>
</body>
</html>
`
