package widgets

import (
	"strconv"

	"github.com/canopy-ui/canopy/pkg/cell"
	"github.com/canopy-ui/canopy/pkg/dom"
	"github.com/canopy-ui/canopy/pkg/theme"
)

// Mask renders every content node but displays only the one whose key
// equals the current value of index; all others carry display:none.
// Switching the index changes visibility in a single render pass, so no
// intermediate state shows zero or multiple payloads.
func Mask[K comparable](index *cell.Signal[K], keys []K, contents []*dom.VNode, panelClass string) dom.Component {
	return dom.Func(func() *dom.VNode {
		current := index.Get()

		panels := make([]*dom.VNode, 0, len(contents))
		for i, content := range contents {
			visible := i < len(keys) && keys[i] == current
			style := dom.Attr{}
			if !visible {
				style = dom.StyleAttr("display:none")
			}
			panels = append(panels, dom.Div(
				dom.Class(panelClass),
				style,
				content,
			))
		}
		args := make([]any, len(panels))
		for i, p := range panels {
			args[i] = p
		}
		return dom.Fragment(args...)
	})
}

// TabulatorWidget is the handle returned by Tabulator. Beyond the composed
// view and the selection value, it exposes the underlying selector widget
// and the raw index signal.
type TabulatorWidget struct {
	Widget[int]
	selector *Widget[int]
	index    *cell.Signal[int]
}

// Selector returns the underlying togglebuttons selector widget.
func (t *TabulatorWidget) Selector() *Widget[int] {
	return t.selector
}

// Index returns the raw 1-based selection index signal.
func (t *TabulatorWidget) Index() *cell.Signal[int] {
	return t.index
}

// TabulatorBuilder composes a togglebuttons selector with a content mask:
// all content payloads are rendered, and only the one at the selected
// position is displayed.
type TabulatorBuilder struct {
	theme    *theme.Theme
	labels   []string
	contents []*dom.VNode
	class    string
	attrs    []dom.Attr
	initial  int
}

// Tabulator starts building a tabulator from parallel label and content
// sequences.
func Tabulator(th *theme.Theme, labels []string, contents []*dom.VNode) *TabulatorBuilder {
	return &TabulatorBuilder{theme: th, labels: labels, contents: contents}
}

// Class overrides the selector container's CSS class.
func (b *TabulatorBuilder) Class(class string) *TabulatorBuilder {
	b.class = class
	return b
}

// Attrs appends pass-through attributes forwarded to the composed root.
func (b *TabulatorBuilder) Attrs(attrs ...dom.Attr) *TabulatorBuilder {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// Selected sets the initially displayed 1-based position.
func (b *TabulatorBuilder) Selected(pos int) *TabulatorBuilder {
	b.initial = pos
	return b
}

// Build constructs the widget. The label and content sequences must have
// equal length.
func (b *TabulatorBuilder) Build() (*TabulatorWidget, error) {
	if len(b.labels) != len(b.contents) {
		return nil, ErrLengthMismatch
	}

	pairs := make([]Option[int], len(b.labels))
	for i, label := range b.labels {
		pairs[i] = Option[int]{Label: label, Value: i + 1}
	}

	sb := ToggleButtons(b.theme, NewOptions(pairs...))
	if b.class != "" {
		sb.Class(b.class)
	}
	if b.initial != 0 {
		sb.Value(b.initial)
	}

	selector, err := sb.Build()
	if err != nil {
		return nil, err
	}

	// Selector option values are the positions themselves, so the
	// selector's value signal doubles as the index signal.
	index := selector.Value()
	keys := make([]int, len(b.contents))
	for i := range keys {
		keys[i] = i + 1
	}
	mask := Mask(index, keys, b.contents, b.theme.Resolve("tabulator", "panel"))

	t := &TabulatorWidget{selector: selector, index: index}
	t.kind = "tabulator"
	t.value = index
	t.render = func() *dom.VNode {
		return dom.Div(
			dom.Data("selected", strconv.Itoa(index.Get())),
			b.attrs,
			selector.Render(),
			mask.Render(),
		)
	}
	return t, nil
}
