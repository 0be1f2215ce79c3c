package widgets

import (
	"fmt"
	"sync/atomic"

	"github.com/canopy-ui/canopy/pkg/cell"
	"github.com/canopy-ui/canopy/pkg/dom"
	"github.com/canopy-ui/canopy/pkg/theme"
)

// Widget is the handle returned by every builder. It owns the widget's view
// and exposes the external value signal as the widget's primary output.
//
// Widget implements dom.Component; every Render call reflects the current
// signal state, so the host re-renders after each propagation.
type Widget[T any] struct {
	kind   string
	render func() *dom.VNode
	value  *cell.Signal[T]
}

// Kind returns the widget kind ("dropdown", "tabs", ...).
func (w *Widget[T]) Kind() string {
	return w.kind
}

// Value returns the external value signal.
func (w *Widget[T]) Value() *cell.Signal[T] {
	return w.value
}

// Render implements dom.Component.
func (w *Widget[T]) Render() *dom.VNode {
	return w.render()
}

// widgetCounter numbers widget instances, used for radio group names and
// element IDs.
var widgetCounter atomic.Uint64

// nextWidgetID returns a document-unique element identifier for a widget of
// the given kind.
func nextWidgetID(kind string) string {
	return fmt.Sprintf("canopy-%s-%d", kind, widgetCounter.Add(1))
}

// core holds the configuration shared by every builder: the theme context,
// the option collection, and the common construction options of spec'd
// widgets (display label, class override, per-option rendering override,
// pass-through attributes).
type core[T comparable] struct {
	theme   *theme.Theme
	options *Options[T]
	label   string
	class   string
	attrs   []dom.Attr
	item    func(pos int, opt Option[T]) *dom.VNode
}

// classFor resolves the class for a role, honoring the builder's override
// for the widget's control role.
func (c *core[T]) classFor(kind, role string) string {
	if c.class != "" && (role == "control" || role == "group" || role == "list") {
		return c.class
	}
	return c.theme.Resolve(kind, role)
}

// entry renders the per-option content: the custom item override if set,
// otherwise the option's label as text.
func (c *core[T]) entry(pos int, opt Option[T]) *dom.VNode {
	if c.item != nil {
		return c.item(pos, opt)
	}
	return dom.Text(opt.Label)
}

// wrapLabel attaches the optional display label adjacent to the control.
func (c *core[T]) wrapLabel(kind string, control *dom.VNode) *dom.VNode {
	if c.label == "" {
		return control
	}
	return dom.Div(dom.Class(c.theme.Resolve(kind, "row")),
		dom.Label(dom.Class(c.theme.Resolve(kind, "label")), dom.Text(c.label)),
		control,
	)
}
