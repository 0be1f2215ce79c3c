package widgets_test

import (
	"testing"

	"github.com/canopy-ui/canopy/pkg/theme"
	"github.com/canopy-ui/canopy/pkg/widgets"
	"github.com/canopy-ui/canopy/pkg/wtest"
)

func TestFilePickerStoresUploadRef(t *testing.T) {
	w, err := widgets.FilePicker(theme.Default()).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := w.Value().Get(); got != "" {
		t.Fatalf("initial value = %q, want empty", got)
	}

	in := wtest.Find(w.Render(), wtest.ByTag("input"))
	if in.Props["type"] != "file" {
		t.Fatalf("input type = %v, want file", in.Props["type"])
	}
	wtest.Change(t, in, "upload-abc123")

	if got := w.Value().Get(); got != "upload-abc123" {
		t.Errorf("value = %q, want upload-abc123", got)
	}
}

func TestFilePickerAcceptAttribute(t *testing.T) {
	w, err := widgets.FilePicker(theme.Default()).
		Accept("image/*").
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	wtest.ExpectAttribute(t, w, "accept", "image/*")
}
