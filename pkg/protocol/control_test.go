package protocol

import "testing"

func TestControlEncodeDecode(t *testing.T) {
	tests := []struct {
		name    string
		control *Control
	}{
		{name: "ping", control: &Control{Type: ControlPing, Timestamp: 1724400000000}},
		{name: "pong", control: &Control{Type: ControlPong, Timestamp: 42}},
		{name: "close_normal", control: &Control{Type: ControlClose, Reason: CloseNormal}},
		{name: "close_shutdown", control: &Control{Type: ControlClose, Reason: CloseServerShutdown, Message: "restarting"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodeControl(EncodeControl(tt.control))
			if err != nil {
				t.Fatalf("DecodeControl: %v", err)
			}
			if *decoded != *tt.control {
				t.Errorf("decoded = %+v, want %+v", decoded, tt.control)
			}
		})
	}
}

func TestErrorMessageEncodeDecode(t *testing.T) {
	em := &ErrorMessage{Code: ErrHandlerNotFound, Message: "no handler for h9_click", Fatal: false}

	decoded, err := DecodeErrorMessage(EncodeErrorMessage(em))
	if err != nil {
		t.Fatalf("DecodeErrorMessage: %v", err)
	}
	if *decoded != *em {
		t.Errorf("decoded = %+v, want %+v", decoded, em)
	}
	if decoded.Error() != "HandlerNotFound: no handler for h9_click" {
		t.Errorf("Error() = %q", decoded.Error())
	}
}
