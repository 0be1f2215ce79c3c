package serve

import (
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/canopy-ui/canopy/pkg/dom"
	"github.com/canopy-ui/canopy/pkg/protocol"
)

var hidPattern = regexp.MustCompile(`data-hid="(h\d+)"`)

// dialSession starts a test server around the page factory and dials its
// WebSocket endpoint, returning the connection and the initial patch.
func dialSession(t *testing.T, page func() dom.Component) (*websocket.Conn, *protocol.Patch) {
	t.Helper()

	srv := New(nil)
	srv.SetPage(page)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	patch := readPatch(t, conn)
	return conn, patch
}

func readFrame(t *testing.T, conn *websocket.Conn) *protocol.Frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	frame, err := protocol.DecodeFrame(msg)
	if err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	return frame
}

func readPatch(t *testing.T, conn *websocket.Conn) *protocol.Patch {
	t.Helper()
	frame := readFrame(t, conn)
	if frame.Type != protocol.FramePatch {
		t.Fatalf("frame type = %v, want Patch", frame.Type)
	}
	patch, err := protocol.DecodePatch(frame.Payload)
	if err != nil {
		t.Fatalf("decode patch: %v", err)
	}
	return patch
}

func sendEvent(t *testing.T, conn *websocket.Conn, ev *protocol.Event) {
	t.Helper()
	frame := protocol.NewFrame(protocol.FrameEvent, protocol.EncodeEvent(ev))
	if err := conn.WriteMessage(websocket.BinaryMessage, frame.Encode()); err != nil {
		t.Fatalf("write event: %v", err)
	}
}

func TestSessionInitialPatch(t *testing.T) {
	_, patch := dialSession(t, func() dom.Component {
		return dom.Func(func() *dom.VNode {
			return dom.Div(dom.Button(dom.OnClick(func() {}), "press"))
		})
	})

	if patch.Seq != 1 {
		t.Errorf("seq = %d, want 1", patch.Seq)
	}
	if patch.Target != "" {
		t.Errorf("target = %q, want whole-tree patch", patch.Target)
	}
	if !strings.Contains(patch.HTML, "press") {
		t.Errorf("initial HTML missing button: %s", patch.HTML)
	}
	if !hidPattern.MatchString(patch.HTML) {
		t.Error("interactive element not stamped with data-hid")
	}
}

func TestSessionClickRoundTrip(t *testing.T) {
	count := 0
	conn, initial := dialSession(t, func() dom.Component {
		return dom.Func(func() *dom.VNode {
			return dom.Div(
				dom.Button(dom.OnClick(func() { count++ }), "inc"),
				dom.Span(dom.Textf("count: %d", count)),
			)
		})
	})

	m := hidPattern.FindStringSubmatch(initial.HTML)
	if m == nil {
		t.Fatalf("no hid in initial HTML: %s", initial.HTML)
	}

	sendEvent(t, conn, &protocol.Event{
		Seq:  1,
		Kind: protocol.EventClick,
		HID:  m[1],
	})

	patch := readPatch(t, conn)
	if !strings.Contains(patch.HTML, "count: 1") {
		t.Errorf("patch HTML = %s, want count: 1", patch.HTML)
	}
	if patch.Seq != 2 {
		t.Errorf("seq = %d, want 2", patch.Seq)
	}
}

func TestSessionInputEventCarriesValue(t *testing.T) {
	got := ""
	conn, initial := dialSession(t, func() dom.Component {
		return dom.Func(func() *dom.VNode {
			return dom.Div(
				dom.Input(dom.OnInput(func(e dom.InputEvent) { got = e.Value })),
				dom.Span(dom.Text("typed: "+got)),
			)
		})
	})

	m := hidPattern.FindStringSubmatch(initial.HTML)
	if m == nil {
		t.Fatal("no hid in initial HTML")
	}

	sendEvent(t, conn, &protocol.Event{
		Seq:   1,
		Kind:  protocol.EventInput,
		HID:   m[1],
		Value: "hello",
	})

	patch := readPatch(t, conn)
	if !strings.Contains(patch.HTML, "typed: hello") {
		t.Errorf("patch HTML = %s", patch.HTML)
	}
}

func TestSessionUnknownHandlerReportsError(t *testing.T) {
	conn, _ := dialSession(t, func() dom.Component {
		return dom.Func(func() *dom.VNode {
			return dom.Div(dom.Button(dom.OnClick(func() {}), "x"))
		})
	})

	sendEvent(t, conn, &protocol.Event{
		Seq:  1,
		Kind: protocol.EventClick,
		HID:  "h999",
	})

	frame := readFrame(t, conn)
	if frame.Type != protocol.FrameError {
		t.Fatalf("frame type = %v, want Error", frame.Type)
	}
	em, err := protocol.DecodeErrorMessage(frame.Payload)
	if err != nil {
		t.Fatalf("decode error message: %v", err)
	}
	if em.Code != protocol.ErrHandlerNotFound {
		t.Errorf("code = %v, want ErrHandlerNotFound", em.Code)
	}
}

func TestSessionNoPatchWhenTreeUnchanged(t *testing.T) {
	conn, initial := dialSession(t, func() dom.Component {
		return dom.Func(func() *dom.VNode {
			// The click handler mutates nothing, so the tree never changes.
			return dom.Div(dom.Button(dom.OnClick(func() {}), "noop"))
		})
	})

	m := hidPattern.FindStringSubmatch(initial.HTML)
	if m == nil {
		t.Fatal("no hid in initial HTML")
	}

	sendEvent(t, conn, &protocol.Event{Seq: 1, Kind: protocol.EventClick, HID: m[1]})

	// A second event whose handler is missing produces an error frame. If
	// the first click had produced a patch we would see that instead.
	sendEvent(t, conn, &protocol.Event{Seq: 2, Kind: protocol.EventClick, HID: "h999"})

	frame := readFrame(t, conn)
	if frame.Type != protocol.FrameError {
		t.Fatalf("frame type = %v, want Error (no patch expected for a no-op click)", frame.Type)
	}
}

func TestSessionAnswersPing(t *testing.T) {
	conn, _ := dialSession(t, func() dom.Component {
		return dom.Func(func() *dom.VNode {
			return dom.Div(dom.Button(dom.OnClick(func() {}), "x"))
		})
	})

	ping := &protocol.Control{Type: protocol.ControlPing, Timestamp: 12345}
	frame := protocol.NewFrame(protocol.FrameControl, protocol.EncodeControl(ping))
	if err := conn.WriteMessage(websocket.BinaryMessage, frame.Encode()); err != nil {
		t.Fatalf("write ping: %v", err)
	}

	reply := readFrame(t, conn)
	if reply.Type != protocol.FrameControl {
		t.Fatalf("frame type = %v, want Control", reply.Type)
	}
	ctl, err := protocol.DecodeControl(reply.Payload)
	if err != nil {
		t.Fatalf("decode control: %v", err)
	}
	if ctl.Type != protocol.ControlPong || ctl.Timestamp != 12345 {
		t.Errorf("pong = %+v", ctl)
	}
}
