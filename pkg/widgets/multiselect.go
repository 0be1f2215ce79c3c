package widgets

import (
	"strconv"

	"github.com/canopy-ui/canopy/pkg/cell"
	"github.com/canopy-ui/canopy/pkg/dom"
	"github.com/canopy-ui/canopy/pkg/theme"
)

// MultiselectBuilder constructs the generic zero-or-more selection widget:
// one independently toggleable entry per option. The exposed value is the
// selected values in collection order, regardless of click order.
//
// The kind distinguishes the checkbox-styled form from the visually
// distinct toggle-switch form; behavior is identical.
type MultiselectBuilder[T comparable] struct {
	core[T]
	kind      string
	initial   []T
	valuesRef *cell.Signal[[]T]
}

// Multiselect starts building a checkbox-style multiselect over the given
// options.
func Multiselect[T comparable](th *theme.Theme, options *Options[T]) *MultiselectBuilder[T] {
	return &MultiselectBuilder[T]{core: core[T]{theme: th, options: options}, kind: "checkboxes"}
}

// Checkboxes is the checkbox-styled multiselect.
func Checkboxes[T comparable](th *theme.Theme, options *Options[T]) *MultiselectBuilder[T] {
	return Multiselect(th, options)
}

// Toggles is the toggle-switch-styled multiselect; semantics are identical
// to Checkboxes.
func Toggles[T comparable](th *theme.Theme, options *Options[T]) *MultiselectBuilder[T] {
	b := Multiselect(th, options)
	b.kind = "toggles"
	return b
}

// Label sets the display label rendered adjacent to the group.
func (b *MultiselectBuilder[T]) Label(text string) *MultiselectBuilder[T] {
	b.label = text
	return b
}

// Class overrides the group's CSS class.
func (b *MultiselectBuilder[T]) Class(class string) *MultiselectBuilder[T] {
	b.class = class
	return b
}

// Attrs appends pass-through attributes forwarded to the group element.
func (b *MultiselectBuilder[T]) Attrs(attrs ...dom.Attr) *MultiselectBuilder[T] {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// Item overrides per-option rendering.
func (b *MultiselectBuilder[T]) Item(fn func(pos int, opt Option[T]) *dom.VNode) *MultiselectBuilder[T] {
	b.item = fn
	return b
}

// Values sets the plain initial selection; it is wrapped in a fresh cell.
func (b *MultiselectBuilder[T]) Values(vs ...T) *MultiselectBuilder[T] {
	b.initial = vs
	return b
}

// Cell binds an existing reactive cell as the widget's value.
func (b *MultiselectBuilder[T]) Cell(c *cell.Signal[[]T]) *MultiselectBuilder[T] {
	b.valuesRef = c
	return b
}

// Build constructs the widget.
func (b *MultiselectBuilder[T]) Build() (*Widget[[]T], error) {
	values := b.valuesRef
	if values == nil && b.initial != nil {
		values = cell.NewSignal(b.initial)
	}

	bridge, err := NewMultiBridge(b.options, values)
	if err != nil {
		return nil, err
	}

	w := &Widget[[]T]{kind: b.kind, value: bridge.Values()}
	w.render = func() *dom.VNode {
		snap := b.options.Snapshot()

		entries := make([]*dom.VNode, 0, len(snap))
		for i, opt := range snap {
			pos := i + 1
			entries = append(entries, dom.Label(
				dom.Class(b.theme.Resolve(b.kind, "entry")),
				dom.Input(
					dom.TypeAttr("checkbox"),
					dom.Value(strconv.Itoa(pos)),
					dom.Checked(bridge.Has(pos)),
					dom.Class(b.theme.Resolve(b.kind, "input")),
					dom.OnChange(func(dom.InputEvent) {
						bridge.Toggle(pos)
					}),
				),
				b.entry(pos, opt),
			))
		}

		container := dom.Div(
			dom.Class(b.classFor(b.kind, "group")),
			b.attrs,
			entries,
		)
		return b.wrapLabel(b.kind, container)
	}
	return w, nil
}
