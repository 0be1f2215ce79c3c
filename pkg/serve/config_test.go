package serve

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Address != ":3000" {
		t.Errorf("Address = %q", config.Address)
	}
	if config.HeartbeatInterval >= config.ReadTimeout {
		t.Error("heartbeat interval must be shorter than the read timeout")
	}
	if config.MaxEventQueue <= 0 {
		t.Error("MaxEventQueue must be positive")
	}
	if config.CheckOrigin == nil {
		t.Error("CheckOrigin must be set")
	}
}

func TestFillDefaultsNil(t *testing.T) {
	config := fillDefaults(nil)
	if config.Address != ":3000" {
		t.Errorf("Address = %q", config.Address)
	}
}

func TestFillDefaultsPartial(t *testing.T) {
	config := fillDefaults(&Config{
		Address:     ":8080",
		ReadTimeout: 5 * time.Minute,
	})

	if config.Address != ":8080" {
		t.Errorf("Address = %q, want :8080", config.Address)
	}
	if config.ReadTimeout != 5*time.Minute {
		t.Errorf("ReadTimeout = %v", config.ReadTimeout)
	}
	if config.WriteTimeout != 10*time.Second {
		t.Errorf("WriteTimeout = %v, want default", config.WriteTimeout)
	}
	if config.Logger == nil {
		t.Error("Logger not defaulted")
	}
}
