package widgets

import (
	"strconv"

	"github.com/canopy-ui/canopy/pkg/cell"
	"github.com/canopy-ui/canopy/pkg/dom"
	"github.com/canopy-ui/canopy/pkg/theme"
)

// RadioButtonsBuilder constructs a radio group: one entry per option in a
// shared exclusivity group, exactly one active at all times. The default
// selection policy is the first position.
type RadioButtonsBuilder[T comparable] struct {
	core[T]
	initial  *T
	valueRef *cell.Signal[T]
}

// RadioButtons starts building a radio group over the given options.
func RadioButtons[T comparable](th *theme.Theme, options *Options[T]) *RadioButtonsBuilder[T] {
	return &RadioButtonsBuilder[T]{core: core[T]{theme: th, options: options}}
}

// Label sets the display label rendered adjacent to the group.
func (b *RadioButtonsBuilder[T]) Label(text string) *RadioButtonsBuilder[T] {
	b.label = text
	return b
}

// Class overrides the group's CSS class.
func (b *RadioButtonsBuilder[T]) Class(class string) *RadioButtonsBuilder[T] {
	b.class = class
	return b
}

// Attrs appends pass-through attributes forwarded to the group element.
func (b *RadioButtonsBuilder[T]) Attrs(attrs ...dom.Attr) *RadioButtonsBuilder[T] {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// Item overrides per-option rendering.
func (b *RadioButtonsBuilder[T]) Item(fn func(pos int, opt Option[T]) *dom.VNode) *RadioButtonsBuilder[T] {
	b.item = fn
	return b
}

// Value sets a plain initial value; it is wrapped in a fresh cell.
func (b *RadioButtonsBuilder[T]) Value(v T) *RadioButtonsBuilder[T] {
	b.initial = &v
	return b
}

// Cell binds an existing reactive cell as the widget's value.
func (b *RadioButtonsBuilder[T]) Cell(c *cell.Signal[T]) *RadioButtonsBuilder[T] {
	b.valueRef = c
	return b
}

// Build constructs the widget.
func (b *RadioButtonsBuilder[T]) Build() (*Widget[T], error) {
	value := b.valueRef
	if value == nil && b.initial != nil {
		value = cell.NewSignal(*b.initial)
	}

	bridge, err := NewBridge(b.options, value, PolicyFirst)
	if err != nil {
		return nil, err
	}

	group := nextWidgetID("radio")

	w := &Widget[T]{kind: "radiobuttons", value: bridge.Value()}
	w.render = func() *dom.VNode {
		snap := b.options.Snapshot()
		sel := bridge.Index().Get()

		entries := make([]*dom.VNode, 0, len(snap))
		for i, opt := range snap {
			pos := i + 1
			entries = append(entries, dom.Label(
				dom.Class(b.theme.Resolve("radiobuttons", "entry")),
				dom.Input(
					dom.TypeAttr("radio"),
					dom.Name(group),
					dom.Value(strconv.Itoa(pos)),
					dom.Checked(pos == sel),
					dom.Class(b.theme.Resolve("radiobuttons", "input")),
					dom.OnChange(func(dom.InputEvent) {
						bridge.Index().Set(pos)
					}),
				),
				b.entry(pos, opt),
			))
		}

		container := dom.Div(
			dom.Class(b.classFor("radiobuttons", "group")),
			b.attrs,
			entries,
		)
		return b.wrapLabel("radiobuttons", container)
	}
	return w, nil
}
