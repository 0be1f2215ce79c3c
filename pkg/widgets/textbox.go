package widgets

import (
	"github.com/canopy-ui/canopy/pkg/cell"
	"github.com/canopy-ui/canopy/pkg/dom"
	"github.com/canopy-ui/canopy/pkg/theme"
)

// TextboxBuilder constructs a free-text input bound to a string value
// signal. No option collection is involved; the value binds directly.
type TextboxBuilder struct {
	theme       *theme.Theme
	label       string
	class       string
	attrs       []dom.Attr
	placeholder string
	initial     string
	valueRef    *cell.Signal[string]
	area        bool
}

// Textbox starts building a single-line text input.
func Textbox(th *theme.Theme) *TextboxBuilder {
	return &TextboxBuilder{theme: th}
}

// Textarea starts building a multi-line text input.
func Textarea(th *theme.Theme) *TextboxBuilder {
	b := Textbox(th)
	b.area = true
	return b
}

// Label sets the display label rendered adjacent to the control.
func (b *TextboxBuilder) Label(text string) *TextboxBuilder {
	b.label = text
	return b
}

// Class overrides the control's CSS class.
func (b *TextboxBuilder) Class(class string) *TextboxBuilder {
	b.class = class
	return b
}

// Attrs appends pass-through attributes forwarded to the control.
func (b *TextboxBuilder) Attrs(attrs ...dom.Attr) *TextboxBuilder {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// Placeholder sets the placeholder text.
func (b *TextboxBuilder) Placeholder(text string) *TextboxBuilder {
	b.placeholder = text
	return b
}

// Value sets the initial text; it is wrapped in a fresh cell.
func (b *TextboxBuilder) Value(text string) *TextboxBuilder {
	b.initial = text
	return b
}

// Cell binds an existing reactive cell as the widget's value.
func (b *TextboxBuilder) Cell(c *cell.Signal[string]) *TextboxBuilder {
	b.valueRef = c
	return b
}

// Build constructs the widget. Textbox construction cannot fail; the error
// return keeps the builder surface uniform.
func (b *TextboxBuilder) Build() (*Widget[string], error) {
	value := b.valueRef
	if value == nil {
		value = cell.NewSignal(b.initial)
	}

	class := b.class
	if class == "" {
		class = b.theme.Resolve("textbox", "control")
	}

	w := &Widget[string]{kind: "textbox", value: value}
	w.render = func() *dom.VNode {
		onInput := dom.OnInput(func(e dom.InputEvent) {
			value.Set(e.Value)
		})

		var control *dom.VNode
		if b.area {
			control = dom.Textarea(
				dom.Class(class),
				dom.Placeholder(b.placeholder),
				onInput,
				b.attrs,
				dom.Text(value.Get()),
			)
		} else {
			control = dom.Input(
				dom.TypeAttr("text"),
				dom.Class(class),
				dom.Placeholder(b.placeholder),
				dom.Value(value.Get()),
				onInput,
				b.attrs,
			)
		}

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
