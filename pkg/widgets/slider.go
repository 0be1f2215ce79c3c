package widgets

import (
	"strconv"

	"github.com/canopy-ui/canopy/pkg/cell"
	"github.com/canopy-ui/canopy/pkg/dom"
	"github.com/canopy-ui/canopy/pkg/theme"
)

// SliderBuilder constructs a range control selecting one value from the
// option sequence by position. Like togglebuttons, the default selection
// policy is the median position.
type SliderBuilder[T comparable] struct {
	core[T]
	initial  *T
	valueRef *cell.Signal[T]
}

// Slider starts building a slider over the given options.
func Slider[T comparable](th *theme.Theme, options *Options[T]) *SliderBuilder[T] {
	return &SliderBuilder[T]{core: core[T]{theme: th, options: options}}
}

// Label sets the display label rendered adjacent to the control.
func (b *SliderBuilder[T]) Label(text string) *SliderBuilder[T] {
	b.label = text
	return b
}

// Class overrides the control's CSS class.
func (b *SliderBuilder[T]) Class(class string) *SliderBuilder[T] {
	b.class = class
	return b
}

// Attrs appends pass-through attributes forwarded to the control.
func (b *SliderBuilder[T]) Attrs(attrs ...dom.Attr) *SliderBuilder[T] {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// Value sets a plain initial value; it is wrapped in a fresh cell.
func (b *SliderBuilder[T]) Value(v T) *SliderBuilder[T] {
	b.initial = &v
	return b
}

// Cell binds an existing reactive cell as the widget's value.
func (b *SliderBuilder[T]) Cell(c *cell.Signal[T]) *SliderBuilder[T] {
	b.valueRef = c
	return b
}

// Build constructs the widget.
func (b *SliderBuilder[T]) Build() (*Widget[T], error) {
	value := b.valueRef
	if value == nil && b.initial != nil {
		value = cell.NewSignal(*b.initial)
	}

	bridge, err := NewBridge(b.options, value, PolicyMedian)
	if err != nil {
		return nil, err
	}

	w := &Widget[T]{kind: "slider", value: bridge.Value()}
	w.render = func() *dom.VNode {
		snap := b.options.Snapshot()
		sel := bridge.Index().Get()

		current := ""
		if opt, ok := b.options.At(sel); ok {
			current = opt.Label
		}

		control := dom.Span(
			dom.Input(
				dom.TypeAttr("range"),
				dom.Min("1"),
				dom.Max(strconv.Itoa(len(snap))),
				dom.Step("1"),
				dom.Value(strconv.Itoa(sel)),
				dom.Class(b.classFor("slider", "control")),
				dom.OnInput(func(e dom.InputEvent) {
					if pos, err := strconv.Atoi(e.Value); err == nil {
						bridge.Index().Set(pos)
					}
				}),
				b.attrs,
			),
			dom.Span(dom.Data("role", "slider-value"), dom.Text(current)),
		)
		return b.wrapLabel("slider", control)
	}
	return w, nil
}
