package widgets

import (
	"github.com/canopy-ui/canopy/pkg/cell"
	"github.com/canopy-ui/canopy/pkg/dom"
	"github.com/canopy-ui/canopy/pkg/theme"
)

// FilePickerBuilder constructs a file input. The value signal carries the
// upload reference reported by the client after it posts the file to the
// host's upload endpoint (see pkg/upload); empty string means no file.
type FilePickerBuilder struct {
	theme    *theme.Theme
	label    string
	class    string
	attrs    []dom.Attr
	accept   string
	valueRef *cell.Signal[string]
}

// FilePicker starts building a file input.
func FilePicker(th *theme.Theme) *FilePickerBuilder {
	return &FilePickerBuilder{theme: th}
}

// Label sets the display label rendered adjacent to the control.
func (b *FilePickerBuilder) Label(text string) *FilePickerBuilder {
	b.label = text
	return b
}

// Class overrides the control's CSS class.
func (b *FilePickerBuilder) Class(class string) *FilePickerBuilder {
	b.class = class
	return b
}

// Attrs appends pass-through attributes forwarded to the control.
func (b *FilePickerBuilder) Attrs(attrs ...dom.Attr) *FilePickerBuilder {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// Accept restricts the selectable file types (e.g. "image/*").
func (b *FilePickerBuilder) Accept(types string) *FilePickerBuilder {
	b.accept = types
	return b
}

// Cell binds an existing reactive cell as the widget's value.
func (b *FilePickerBuilder) Cell(c *cell.Signal[string]) *FilePickerBuilder {
	b.valueRef = c
	return b
}

// Build constructs the widget. FilePicker construction cannot fail; the
// error return keeps the builder surface uniform.
func (b *FilePickerBuilder) Build() (*Widget[string], error) {
	value := b.valueRef
	if value == nil {
		value = cell.NewSignal("")
	}

	class := b.class
	if class == "" {
		class = b.theme.Resolve("textbox", "control")
	}

	w := &Widget[string]{kind: "filepicker", value: value}
	w.render = func() *dom.VNode {
		var accept dom.Attr
		if b.accept != "" {
			accept = dom.Accept(b.accept)
		}

		control := dom.Input(
			dom.TypeAttr("file"),
			dom.Class(class),
			accept,
			dom.OnChange(func(e dom.InputEvent) {
				value.Set(e.Value)
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
