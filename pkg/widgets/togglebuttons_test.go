package widgets_test

import (
	"testing"

	"github.com/canopy-ui/canopy/pkg/theme"
	"github.com/canopy-ui/canopy/pkg/widgets"
	"github.com/canopy-ui/canopy/pkg/wtest"
)

func tens() *widgets.Options[int] {
	return widgets.OptionsFromValues([]int{10, 20, 30, 40, 50})
}

func TestToggleButtonsDefaultsToMedian(t *testing.T) {
	w, err := widgets.ToggleButtons(theme.Default(), tens()).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := w.Value().Get(); got != 30 {
		t.Errorf("initial value = %d, want 30 (median of five)", got)
	}
}

func TestToggleButtonsMedianTieBreaksLow(t *testing.T) {
	w, err := widgets.ToggleButtons(theme.Default(), widgets.OptionsFromValues([]int{10, 20, 30, 40})).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := w.Value().Get(); got != 20 {
		t.Errorf("initial value = %d, want 20 (lower of the middle pair)", got)
	}
}

func TestToggleButtonsExactlyOneActive(t *testing.T) {
	w, err := widgets.ToggleButtons(theme.Default(), tens()).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	activeClass := theme.Default().Resolve("togglebuttons", "active")
	active := wtest.FindAll(w.Render(), wtest.ByProp("class", activeClass))
	if len(active) != 1 {
		t.Fatalf("%d buttons active, want exactly 1", len(active))
	}
	if got := active[0].Props["data-index"]; got != "3" {
		t.Errorf("active button index = %v, want 3", got)
	}
}

func TestToggleButtonsClickMovesSelection(t *testing.T) {
	w, err := widgets.ToggleButtons(theme.Default(), tens()).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	buttons := wtest.FindAll(w.Render(), wtest.ByTag("button"))
	if len(buttons) != 5 {
		t.Fatalf("rendered %d buttons, want 5", len(buttons))
	}

	wtest.Click(t, buttons[4])
	if got := w.Value().Get(); got != 50 {
		t.Errorf("value after click = %d, want 50", got)
	}

	activeClass := theme.Default().Resolve("togglebuttons", "active")
	active := wtest.FindAll(w.Render(), wtest.ByProp("class", activeClass))
	if len(active) != 1 || active[0].Props["data-index"] != "5" {
		t.Errorf("active marker did not move to button 5: %v", active)
	}
}

func TestToggleButtonsInitialValue(t *testing.T) {
	w, err := widgets.ToggleButtons(theme.Default(), tens()).
		Value(50).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := w.Value().Get(); got != 50 {
		t.Errorf("value = %d, want 50", got)
	}
}

func TestTabsRenderListContainer(t *testing.T) {
	w, err := widgets.Tabs(theme.Default(), widgets.OptionsFromValues([]string{"alpha", "beta"}, func(s string) string { return s })).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	tree := w.Render()
	if wtest.Find(tree, wtest.ByTag("ul")) == nil {
		t.Error("tabs must render a ul container")
	}
	items := wtest.FindAll(tree, wtest.ByTag("li"))
	if len(items) != 2 {
		t.Fatalf("rendered %d tabs, want 2", len(items))
	}

	// Two entries: the median default is the first tab.
	if got := w.Value().Get(); got != "alpha" {
		t.Errorf("initial value = %q, want alpha", got)
	}

	wtest.Click(t, items[1])
	if got := w.Value().Get(); got != "beta" {
		t.Errorf("value after clicking second tab = %q, want beta", got)
	}
}
