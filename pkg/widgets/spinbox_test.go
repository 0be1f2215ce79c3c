package widgets_test

import (
	"testing"

	"github.com/canopy-ui/canopy/pkg/theme"
	"github.com/canopy-ui/canopy/pkg/widgets"
	"github.com/canopy-ui/canopy/pkg/wtest"
)

func TestSpinboxInputParsesNumber(t *testing.T) {
	w, err := widgets.Spinbox(theme.Default()).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	in := wtest.Find(w.Render(), wtest.ByTag("input"))
	wtest.Input(t, in, "2.5")

	if got := w.Value().Get(); got != 2.5 {
		t.Errorf("value = %v, want 2.5", got)
	}
}

func TestSpinboxRejectsUnparseable(t *testing.T) {
	w, err := widgets.Spinbox(theme.Default()).Value(7).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	in := wtest.Find(w.Render(), wtest.ByTag("input"))
	wtest.Input(t, in, "seven")

	if got := w.Value().Get(); got != 7 {
		t.Errorf("value after garbage input = %v, want 7", got)
	}
}

func TestSpinboxEnforcesRange(t *testing.T) {
	w, err := widgets.Spinbox(theme.Default()).
		Range(0, 10).
		Value(5).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	in := wtest.Find(w.Render(), wtest.ByTag("input"))
	wtest.Input(t, in, "11")
	if got := w.Value().Get(); got != 5 {
		t.Errorf("value after over-max input = %v, want 5", got)
	}

	wtest.Input(t, in, "-1")
	if got := w.Value().Get(); got != 5 {
		t.Errorf("value after under-min input = %v, want 5", got)
	}

	wtest.Input(t, in, "10")
	if got := w.Value().Get(); got != 10 {
		t.Errorf("value at boundary = %v, want 10", got)
	}
}

func TestSpinboxRendersBoundsAndStep(t *testing.T) {
	w, err := widgets.Spinbox(theme.Default()).
		Range(0, 100).
		Step(0.5).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	in := wtest.Find(w.Render(), wtest.ByTag("input"))
	if in.Props["min"] != "0" || in.Props["max"] != "100" || in.Props["step"] != "0.5" {
		t.Errorf("bounds attrs = %v", in.Props)
	}
}
