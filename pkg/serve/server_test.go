package serve

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/canopy-ui/canopy/pkg/dom"
	"github.com/canopy-ui/canopy/pkg/upload"
)

func testPage() dom.Component {
	return dom.Func(func() *dom.VNode {
		return dom.Div(dom.Class("page"), dom.H1("hello"))
	})
}

func TestServerRendersPage(t *testing.T) {
	srv := New(nil)
	srv.SetPage(testPage)

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	html := string(body)

	if !strings.Contains(html, `<div class="page"><h1>hello</h1></div>`) {
		t.Errorf("page HTML missing from response:\n%s", html)
	}
	if !strings.Contains(html, `id="canopy-root"`) {
		t.Error("mount point missing")
	}
	if !strings.Contains(html, `src="/client.js"`) {
		t.Error("client script tag missing")
	}
}

func TestServerWithoutPage(t *testing.T) {
	srv := New(nil)

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestServerServesClientScript(t *testing.T) {
	srv := New(nil)
	srv.SetPage(testPage)

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/client.js")
	if err != nil {
		t.Fatalf("GET /client.js: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "application/javascript" {
		t.Errorf("Content-Type = %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "WebSocket") {
		t.Error("client script looks wrong")
	}
}

func TestServerServesMetrics(t *testing.T) {
	srv := New(nil)
	srv.SetPage(testPage)

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestServerMountsUploadEndpoint(t *testing.T) {
	store, err := upload.NewDiskStore(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	srv := New(nil)
	srv.SetPage(testPage)
	srv.SetUploadStore(store)

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	// Wrong method still reaches the handler, which rejects it.
	resp, err := http.Get(ts.URL + "/upload")
	if err != nil {
		t.Fatalf("GET /upload: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestServerUploadDisabledWithoutStore(t *testing.T) {
	srv := New(nil)
	srv.SetPage(testPage)

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/upload", "text/plain", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("POST /upload: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
