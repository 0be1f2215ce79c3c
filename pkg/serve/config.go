package serve

import (
	"log/slog"
	"net/http"
	"time"
)

// Config holds server configuration. Zero values fall back to defaults.
type Config struct {
	// Address is the listen address.
	Address string

	// ReadBufferSize and WriteBufferSize size the WebSocket buffers.
	ReadBufferSize  int
	WriteBufferSize int

	// CheckOrigin validates the WebSocket upgrade origin.
	CheckOrigin func(r *http.Request) bool

	// MaxMessageSize bounds a single WebSocket message in bytes.
	MaxMessageSize int64

	// HeartbeatInterval is how often the server pings idle connections.
	HeartbeatInterval time.Duration

	// ReadTimeout is the per-message read deadline. It must exceed
	// HeartbeatInterval or healthy connections get dropped.
	ReadTimeout time.Duration

	// WriteTimeout is the per-message write deadline.
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// MaxEventQueue is the per-session event buffer size.
	MaxEventQueue int

	// UploadMaxAge is how long unclaimed uploads are kept.
	UploadMaxAge time.Duration

	// Logger receives structured server logs. Defaults to slog.Default.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with the defaults filled in.
func DefaultConfig() *Config {
	return &Config{
		Address:           ":3000",
		ReadBufferSize:    4096,
		WriteBufferSize:   4096,
		CheckOrigin:       func(r *http.Request) bool { return true },
		MaxMessageSize:    64 * 1024,
		HeartbeatInterval: 30 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
		ShutdownTimeout:   10 * time.Second,
		MaxEventQueue:     64,
		UploadMaxAge:      time.Hour,
	}
}

// fillDefaults completes a partially specified config.
func fillDefaults(config *Config) *Config {
	if config == nil {
		config = &Config{}
	}
	defaults := DefaultConfig()
	if config.Address == "" {
		config.Address = defaults.Address
	}
	if config.ReadBufferSize == 0 {
		config.ReadBufferSize = defaults.ReadBufferSize
	}
	if config.WriteBufferSize == 0 {
		config.WriteBufferSize = defaults.WriteBufferSize
	}
	if config.CheckOrigin == nil {
		config.CheckOrigin = defaults.CheckOrigin
	}
	if config.MaxMessageSize == 0 {
		config.MaxMessageSize = defaults.MaxMessageSize
	}
	if config.HeartbeatInterval == 0 {
		config.HeartbeatInterval = defaults.HeartbeatInterval
	}
	if config.ReadTimeout == 0 {
		config.ReadTimeout = defaults.ReadTimeout
	}
	if config.WriteTimeout == 0 {
		config.WriteTimeout = defaults.WriteTimeout
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if config.MaxEventQueue == 0 {
		config.MaxEventQueue = defaults.MaxEventQueue
	}
	if config.UploadMaxAge == 0 {
		config.UploadMaxAge = defaults.UploadMaxAge
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return config
}
