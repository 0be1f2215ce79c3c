package widgets

import (
	"github.com/canopy-ui/canopy/pkg/cell"
	"github.com/canopy-ui/canopy/pkg/dom"
	"github.com/canopy-ui/canopy/pkg/theme"
)

// ButtonBuilder constructs a push button whose value signal counts clicks,
// starting at zero. Observers fire once per click.
type ButtonBuilder struct {
	theme *theme.Theme
	text  string
	class string
	attrs []dom.Attr
}

// Button starts building a push button with the given text.
func Button(th *theme.Theme, text string) *ButtonBuilder {
	return &ButtonBuilder{theme: th, text: text}
}

// Class overrides the control's CSS class.
func (b *ButtonBuilder) Class(class string) *ButtonBuilder {
	b.class = class
	return b
}

// Attrs appends pass-through attributes forwarded to the control.
func (b *ButtonBuilder) Attrs(attrs ...dom.Attr) *ButtonBuilder {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// Build constructs the widget. Button construction cannot fail; the error
// return keeps the builder surface uniform.
func (b *ButtonBuilder) Build() (*Widget[int], error) {
	clicks := cell.NewSignal(0)

	class := b.class
	if class == "" {
		class = b.theme.Resolve("button", "control")
	}

	w := &Widget[int]{kind: "button", value: clicks}
	w.render = func() *dom.VNode {
		return dom.Button(
			dom.Class(class),
			dom.OnClick(func(dom.MouseEvent) {
				clicks.Update(func(n int) int { return n + 1 })
			}),
			b.attrs,
			dom.Text(b.text),
		)
	}
	return w, nil
}
