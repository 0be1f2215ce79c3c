package widgets_test

import (
	"errors"
	"testing"

	"github.com/canopy-ui/canopy/pkg/cell"
	"github.com/canopy-ui/canopy/pkg/dom"
	"github.com/canopy-ui/canopy/pkg/theme"
	"github.com/canopy-ui/canopy/pkg/widgets"
	"github.com/canopy-ui/canopy/pkg/wtest"
)

func twoPanelTabulator(t *testing.T) *widgets.TabulatorWidget {
	t.Helper()
	w, err := widgets.Tabulator(theme.Default(),
		[]string{"one", "two"},
		[]*dom.VNode{
			dom.P(dom.Text("content A")),
			dom.P(dom.Text("content B")),
		},
	).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return w
}

func panelsOf(tree *dom.VNode) []*dom.VNode {
	panelClass := theme.Default().Resolve("tabulator", "panel")
	return wtest.FindAll(tree, wtest.ByProp("class", panelClass))
}

func hidden(panel *dom.VNode) bool {
	return panel.Props["style"] == "display:none"
}

func TestTabulatorDefaultsToFirstOfTwo(t *testing.T) {
	w := twoPanelTabulator(t)

	// Median of two is the lower position.
	if got := w.Index().Get(); got != 1 {
		t.Errorf("initial index = %d, want 1", got)
	}

	panels := panelsOf(w.Render())
	if len(panels) != 2 {
		t.Fatalf("rendered %d panels, want 2", len(panels))
	}
	if hidden(panels[0]) {
		t.Error("first panel should be visible")
	}
	if !hidden(panels[1]) {
		t.Error("second panel should be hidden")
	}
}

func TestTabulatorRendersAllPayloads(t *testing.T) {
	w := twoPanelTabulator(t)

	// Hidden content is still in the tree, just not displayed.
	wtest.ExpectContains(t, w, "content A")
	wtest.ExpectContains(t, w, "content B")
}

func TestTabulatorSwitchFlipsVisibilityAtomically(t *testing.T) {
	w := twoPanelTabulator(t)

	w.Index().Set(2)

	panels := panelsOf(w.Render())
	visible := 0
	for _, p := range panels {
		if !hidden(p) {
			visible++
		}
	}
	if visible != 1 {
		t.Fatalf("%d panels visible, want exactly 1", visible)
	}
	if hidden(panels[1]) {
		t.Error("second panel should be visible after switching")
	}
	if !hidden(panels[0]) {
		t.Error("first panel should be hidden after switching")
	}
}

func TestTabulatorSelectorClickDrivesMask(t *testing.T) {
	w := twoPanelTabulator(t)

	buttons := wtest.FindAll(w.Render(), wtest.ByTag("button"))
	if len(buttons) != 2 {
		t.Fatalf("rendered %d selector buttons, want 2", len(buttons))
	}
	wtest.Click(t, buttons[1])

	if got := w.Index().Get(); got != 2 {
		t.Errorf("index after click = %d, want 2", got)
	}
	wtest.ExpectAttribute(t, w, "data-selected", "2")
}

func TestTabulatorSelectedStart(t *testing.T) {
	w, err := widgets.Tabulator(theme.Default(),
		[]string{"one", "two", "three"},
		[]*dom.VNode{dom.Div(), dom.Div(), dom.Div()},
	).Selected(3).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := w.Index().Get(); got != 3 {
		t.Errorf("index = %d, want 3", got)
	}
	panels := panelsOf(w.Render())
	if !hidden(panels[0]) || !hidden(panels[1]) || hidden(panels[2]) {
		t.Error("only the third panel should be visible")
	}
}

func TestTabulatorLengthMismatch(t *testing.T) {
	_, err := widgets.Tabulator(theme.Default(),
		[]string{"one", "two"},
		[]*dom.VNode{dom.Div()},
	).Build()
	if !errors.Is(err, widgets.ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestMaskWithArbitraryKeys(t *testing.T) {
	mode := cell.NewSignal("edit")
	mask := widgets.Mask(mode,
		[]string{"view", "edit"},
		[]*dom.VNode{
			dom.P(dom.Text("viewing")),
			dom.P(dom.Text("editing")),
		},
		"panel",
	)

	panels := wtest.FindAll(mask.Render(), wtest.ByProp("class", "panel"))
	if len(panels) != 2 {
		t.Fatalf("rendered %d panels, want 2", len(panels))
	}
	if !hidden(panels[0]) || hidden(panels[1]) {
		t.Error("only the edit panel should be visible")
	}

	mode.Set("view")
	panels = wtest.FindAll(mask.Render(), wtest.ByProp("class", "panel"))
	if hidden(panels[0]) || !hidden(panels[1]) {
		t.Error("only the view panel should be visible after the switch")
	}
}
