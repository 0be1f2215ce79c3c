package widgets

import (
	"strconv"

	"github.com/canopy-ui/canopy/pkg/cell"
	"github.com/canopy-ui/canopy/pkg/dom"
	"github.com/canopy-ui/canopy/pkg/theme"
)

// ToggleButtonsBuilder constructs a row of mutually exclusive buttons, one
// per option. Clicking a button selects its position; exactly one button
// carries the active marker at any time. Single-select only.
//
// The default selection policy is the median position, biased toward the
// lower index on ties.
//
// Tabs is the same widget with a list-item container convention.
type ToggleButtonsBuilder[T comparable] struct {
	core[T]
	kind     string
	initial  *T
	valueRef *cell.Signal[T]
}

// ToggleButtons starts building a toggle-button row over the given options.
func ToggleButtons[T comparable](th *theme.Theme, options *Options[T]) *ToggleButtonsBuilder[T] {
	return &ToggleButtonsBuilder[T]{core: core[T]{theme: th, options: options}, kind: "togglebuttons"}
}

// Tabs starts building a tab strip over the given options. Behaviorally
// identical to ToggleButtons; only the container and element tags differ.
func Tabs[T comparable](th *theme.Theme, options *Options[T]) *ToggleButtonsBuilder[T] {
	b := ToggleButtons(th, options)
	b.kind = "tabs"
	return b
}

// Label sets the display label rendered adjacent to the group.
func (b *ToggleButtonsBuilder[T]) Label(text string) *ToggleButtonsBuilder[T] {
	b.label = text
	return b
}

// Class overrides the container's CSS class.
func (b *ToggleButtonsBuilder[T]) Class(class string) *ToggleButtonsBuilder[T] {
	b.class = class
	return b
}

// Attrs appends pass-through attributes forwarded to the container element.
func (b *ToggleButtonsBuilder[T]) Attrs(attrs ...dom.Attr) *ToggleButtonsBuilder[T] {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// Item overrides per-option rendering.
func (b *ToggleButtonsBuilder[T]) Item(fn func(pos int, opt Option[T]) *dom.VNode) *ToggleButtonsBuilder[T] {
	b.item = fn
	return b
}

// Value sets a plain initial value; it is wrapped in a fresh cell.
func (b *ToggleButtonsBuilder[T]) Value(v T) *ToggleButtonsBuilder[T] {
	b.initial = &v
	return b
}

// Cell binds an existing reactive cell as the widget's value.
func (b *ToggleButtonsBuilder[T]) Cell(c *cell.Signal[T]) *ToggleButtonsBuilder[T] {
	b.valueRef = c
	return b
}

// Build constructs the widget.
func (b *ToggleButtonsBuilder[T]) Build() (*Widget[T], error) {
	value := b.valueRef
	if value == nil && b.initial != nil {
		value = cell.NewSignal(*b.initial)
	}

	bridge, err := NewBridge(b.options, value, PolicyMedian)
	if err != nil {
		return nil, err
	}

	w := &Widget[T]{kind: b.kind, value: bridge.Value()}
	w.render = func() *dom.VNode {
		if b.kind == "tabs" {
			return b.wrapLabel(b.kind, b.renderTabs(bridge))
		}
		return b.wrapLabel(b.kind, b.renderButtons(bridge))
	}
	return w, nil
}

// renderButtons renders the button-row form.
func (b *ToggleButtonsBuilder[T]) renderButtons(bridge *Bridge[T]) *dom.VNode {
	snap := b.options.Snapshot()
	sel := bridge.Index().Get()

	buttons := make([]*dom.VNode, 0, len(snap))
	for i, opt := range snap {
		pos := i + 1
		role := "button"
		if pos == sel {
			role = "active"
		}
		buttons = append(buttons, dom.Button(
			dom.Class(b.theme.Resolve(b.kind, role)),
			dom.Data("index", strconv.Itoa(pos)),
			dom.OnClick(func(dom.MouseEvent) {
				bridge.Index().Set(pos)
			}),
			b.entry(pos, opt),
		))
	}

	return dom.Div(
		dom.Class(b.classFor(b.kind, "group")),
		b.attrs,
		buttons,
	)
}

// renderTabs renders the list-container form.
func (b *ToggleButtonsBuilder[T]) renderTabs(bridge *Bridge[T]) *dom.VNode {
	snap := b.options.Snapshot()
	sel := bridge.Index().Get()

	tabs := make([]*dom.VNode, 0, len(snap))
	for i, opt := range snap {
		pos := i + 1
		role := "tab"
		if pos == sel {
			role = "active"
		}
		tabs = append(tabs, dom.Li(
			dom.Class(b.theme.Resolve("tabs", role)),
			dom.Data("index", strconv.Itoa(pos)),
			dom.OnClick(func(dom.MouseEvent) {
				bridge.Index().Set(pos)
			}),
			b.entry(pos, opt),
		))
	}

	return dom.Ul(
		dom.Class(b.classFor("tabs", "list")),
		b.attrs,
		tabs,
	)
}
