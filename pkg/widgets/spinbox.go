package widgets

import (
	"strconv"

	"github.com/canopy-ui/canopy/pkg/cell"
	"github.com/canopy-ui/canopy/pkg/dom"
	"github.com/canopy-ui/canopy/pkg/theme"
)

// SpinboxBuilder constructs a numeric input bound to a float64 value
// signal. Unparseable input is ignored; the last valid value stands.
type SpinboxBuilder struct {
	theme    *theme.Theme
	label    string
	class    string
	attrs    []dom.Attr
	min, max *float64
	step     float64
	initial  float64
	valueRef *cell.Signal[float64]
}

// Spinbox starts building a numeric input.
func Spinbox(th *theme.Theme) *SpinboxBuilder {
	return &SpinboxBuilder{theme: th, step: 1}
}

// Label sets the display label rendered adjacent to the control.
func (b *SpinboxBuilder) Label(text string) *SpinboxBuilder {
	b.label = text
	return b
}

// Class overrides the control's CSS class.
func (b *SpinboxBuilder) Class(class string) *SpinboxBuilder {
	b.class = class
	return b
}

// Attrs appends pass-through attributes forwarded to the control.
func (b *SpinboxBuilder) Attrs(attrs ...dom.Attr) *SpinboxBuilder {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// Range bounds the accepted values.
func (b *SpinboxBuilder) Range(min, max float64) *SpinboxBuilder {
	b.min, b.max = &min, &max
	return b
}

// Step sets the increment step.
func (b *SpinboxBuilder) Step(step float64) *SpinboxBuilder {
	b.step = step
	return b
}

// Value sets the initial number; it is wrapped in a fresh cell.
func (b *SpinboxBuilder) Value(v float64) *SpinboxBuilder {
	b.initial = v
	return b
}

// Cell binds an existing reactive cell as the widget's value.
func (b *SpinboxBuilder) Cell(c *cell.Signal[float64]) *SpinboxBuilder {
	b.valueRef = c
	return b
}

// Build constructs the widget. Spinbox construction cannot fail; the error
// return keeps the builder surface uniform.
func (b *SpinboxBuilder) Build() (*Widget[float64], error) {
	value := b.valueRef
	if value == nil {
		value = cell.NewSignal(b.initial)
	}

	class := b.class
	if class == "" {
		class = b.theme.Resolve("textbox", "control")
	}

	fmtNum := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	w := &Widget[float64]{kind: "spinbox", value: value}
	w.render = func() *dom.VNode {
		var minAttr, maxAttr dom.Attr
		if b.min != nil {
			minAttr = dom.Min(fmtNum(*b.min))
		}
		if b.max != nil {
			maxAttr = dom.Max(fmtNum(*b.max))
		}

		control := dom.Input(
			dom.TypeAttr("number"),
			dom.Class(class),
			dom.Value(fmtNum(value.Get())),
			dom.Step(fmtNum(b.step)),
			minAttr,
			maxAttr,
			dom.OnInput(func(e dom.InputEvent) {
				v, err := strconv.ParseFloat(e.Value, 64)
				if err != nil {
					return
				}
				if b.min != nil && v < *b.min {
					return
				}
				if b.max != nil && v > *b.max {
					return
				}
				value.Set(v)
			}),
			b.attrs,
		)

		if b.label == "" {
			return control
		}
		return dom.Div(dom.Class(b.theme.Resolve("textbox", "row")),
			dom.Label(dom.Class(b.theme.Resolve("textbox", "label")), dom.Text(b.label)),
			control,
		)
	}
	return w, nil
}
