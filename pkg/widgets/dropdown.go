package widgets

import (
	"sort"
	"strconv"

	"github.com/canopy-ui/canopy/pkg/cell"
	"github.com/canopy-ui/canopy/pkg/dom"
	"github.com/canopy-ui/canopy/pkg/theme"
)

// DropdownBuilder constructs a single-select list-style control.
// The default selection policy is the first position.
type DropdownBuilder[T comparable] struct {
	core[T]
	initial  *T
	valueRef *cell.Signal[T]
}

// Dropdown starts building a dropdown over the given options.
func Dropdown[T comparable](th *theme.Theme, options *Options[T]) *DropdownBuilder[T] {
	return &DropdownBuilder[T]{core: core[T]{theme: th, options: options}}
}

// Label sets the display label rendered adjacent to the control.
func (b *DropdownBuilder[T]) Label(text string) *DropdownBuilder[T] {
	b.label = text
	return b
}

// Class overrides the control's CSS class.
func (b *DropdownBuilder[T]) Class(class string) *DropdownBuilder[T] {
	b.class = class
	return b
}

// Attrs appends pass-through attributes forwarded to the rendered control.
func (b *DropdownBuilder[T]) Attrs(attrs ...dom.Attr) *DropdownBuilder[T] {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// Item overrides per-option rendering.
func (b *DropdownBuilder[T]) Item(fn func(pos int, opt Option[T]) *dom.VNode) *DropdownBuilder[T] {
	b.item = fn
	return b
}

// Value sets a plain initial value; it is wrapped in a fresh cell.
func (b *DropdownBuilder[T]) Value(v T) *DropdownBuilder[T] {
	b.initial = &v
	return b
}

// Cell binds an existing reactive cell as the widget's value. The cell is
// reused, not copied, so external mutation is observed.
func (b *DropdownBuilder[T]) Cell(c *cell.Signal[T]) *DropdownBuilder[T] {
	b.valueRef = c
	return b
}

// Multiple switches to the multi-select variant of the control.
func (b *DropdownBuilder[T]) Multiple() *MultiDropdownBuilder[T] {
	return &MultiDropdownBuilder[T]{core: b.core}
}

// Build constructs the widget, or fails with InvalidDefaultError if the
// initial selection is unusable.
func (b *DropdownBuilder[T]) Build() (*Widget[T], error) {
	value := b.valueRef
	if value == nil && b.initial != nil {
		value = cell.NewSignal(*b.initial)
	}

	bridge, err := NewBridge(b.options, value, PolicyFirst)
	if err != nil {
		return nil, err
	}

	w := &Widget[T]{kind: "dropdown", value: bridge.Value()}
	w.render = func() *dom.VNode {
		snap := b.options.Snapshot()
		sel := bridge.Index().Get()

		items := make([]*dom.VNode, 0, len(snap))
		for i, opt := range snap {
			pos := i + 1
			items = append(items, dom.OptionEl(
				dom.Value(strconv.Itoa(pos)),
				dom.Selected(pos == sel),
				b.entry(pos, opt),
			))
		}

		control := dom.Select(
			dom.Class(b.classFor("dropdown", "control")),
			dom.OnChange(func(e dom.InputEvent) {
				if pos, err := strconv.Atoi(e.Value); err == nil {
					bridge.Index().Set(pos)
				}
			}),
			b.attrs,
			items,
		)
		return b.wrapLabel("dropdown", control)
	}
	return w, nil
}

// MultiDropdownBuilder constructs the multi-select dropdown variant. The
// exposed value is the selected values in collection order, regardless of
// selection order.
type MultiDropdownBuilder[T comparable] struct {
	core[T]
	initial   []T
	valuesRef *cell.Signal[[]T]
}

// Label sets the display label rendered adjacent to the control.
func (b *MultiDropdownBuilder[T]) Label(text string) *MultiDropdownBuilder[T] {
	b.label = text
	return b
}

// Class overrides the control's CSS class.
func (b *MultiDropdownBuilder[T]) Class(class string) *MultiDropdownBuilder[T] {
	b.class = class
	return b
}

// Attrs appends pass-through attributes forwarded to the rendered control.
func (b *MultiDropdownBuilder[T]) Attrs(attrs ...dom.Attr) *MultiDropdownBuilder[T] {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// Item overrides per-option rendering.
func (b *MultiDropdownBuilder[T]) Item(fn func(pos int, opt Option[T]) *dom.VNode) *MultiDropdownBuilder[T] {
	b.item = fn
	return b
}

// Values sets the plain initial selection; it is wrapped in a fresh cell.
func (b *MultiDropdownBuilder[T]) Values(vs ...T) *MultiDropdownBuilder[T] {
	b.initial = vs
	return b
}

// Cell binds an existing reactive cell as the widget's value.
func (b *MultiDropdownBuilder[T]) Cell(c *cell.Signal[[]T]) *MultiDropdownBuilder[T] {
	b.valuesRef = c
	return b
}

// Build constructs the widget.
func (b *MultiDropdownBuilder[T]) Build() (*Widget[[]T], error) {
	values := b.valuesRef
	if values == nil && b.initial != nil {
		values = cell.NewSignal(b.initial)
	}

	bridge, err := NewMultiBridge(b.options, values)
	if err != nil {
		return nil, err
	}

	w := &Widget[[]T]{kind: "dropdown", value: bridge.Values()}
	w.render = func() *dom.VNode {
		snap := b.options.Snapshot()

		items := make([]*dom.VNode, 0, len(snap))
		for i, opt := range snap {
			pos := i + 1
			items = append(items, dom.OptionEl(
				dom.Value(strconv.Itoa(pos)),
				dom.Selected(bridge.Has(pos)),
				b.entry(pos, opt),
			))
		}

		control := dom.Select(
			dom.Multiple(),
			dom.Class(b.classFor("dropdown", "control")),
			dom.OnChange(func(e dom.InputEvent) {
				ix := make([]int, 0, len(e.Values))
				for _, raw := range e.Values {
					if pos, err := strconv.Atoi(raw); err == nil {
						ix = append(ix, pos)
					}
				}
				sort.Ints(ix)
				bridge.Indices().Set(ix)
			}),
			b.attrs,
			items,
		)
		return b.wrapLabel("dropdown", control)
	}
	return w, nil
}
