// Package canopy provides the public API for the Canopy widget library.
//
// This is the recommended import for most applications:
//
//	import "github.com/canopy-ui/canopy"
//
// Usage:
//
//	sizes := canopy.NewOptions(
//	    canopy.Pair("Small", 1),
//	    canopy.Pair("Large", 2),
//	)
//	dd, err := canopy.Dropdown(canopy.DefaultTheme(), sizes).Label("Size").Build()
package canopy

import (
	"github.com/canopy-ui/canopy/pkg/cell"
	"github.com/canopy-ui/canopy/pkg/dom"
	"github.com/canopy-ui/canopy/pkg/serve"
	"github.com/canopy-ui/canopy/pkg/theme"
	"github.com/canopy-ui/canopy/pkg/widgets"
)

// =============================================================================
// Themes
// =============================================================================

// Theme selects the visual presentation of widgets.
type Theme = theme.Theme

// NewTheme creates an empty theme with the given name.
func NewTheme(name string) *Theme { return theme.New(name) }

// DefaultTheme returns the stock theme.
func DefaultTheme() *Theme { return theme.Default() }

// =============================================================================
// Reactive cells
// =============================================================================

// NewCell creates a reactive cell holding the given value. Widgets built
// with .Cell(...) share state with the caller through it.
func NewCell[T any](value T) *cell.Signal[T] { return cell.NewSignal(value) }

// =============================================================================
// Option collections
// =============================================================================

// Pair creates an option from a display label and a value.
func Pair[T comparable](label string, value T) widgets.Option[T] {
	return widgets.Pair(label, value)
}

// NewOptions creates a static option collection.
func NewOptions[T comparable](pairs ...widgets.Option[T]) *widgets.Options[T] {
	return widgets.NewOptions(pairs...)
}

// OptionsFromValues creates a collection whose labels derive from the
// values. An optional label function overrides the default formatting.
func OptionsFromValues[T comparable](values []T, label ...func(T) string) *widgets.Options[T] {
	return widgets.OptionsFromValues(values, label...)
}

// BindOptions creates a reactive collection backed by the given cell.
// Widgets re-index their selection when the cell changes.
func BindOptions[T comparable](seq *cell.Signal[[]widgets.Option[T]]) *widgets.Options[T] {
	return widgets.BindOptions(seq)
}

// =============================================================================
// Widget builders
// =============================================================================

// Dropdown starts building a single-select dropdown.
func Dropdown[T comparable](th *Theme, options *widgets.Options[T]) *widgets.DropdownBuilder[T] {
	return widgets.Dropdown(th, options)
}

// RadioButtons starts building a radio button group.
func RadioButtons[T comparable](th *Theme, options *widgets.Options[T]) *widgets.RadioButtonsBuilder[T] {
	return widgets.RadioButtons(th, options)
}

// Multiselect starts building a generic multi-select.
func Multiselect[T comparable](th *Theme, options *widgets.Options[T]) *widgets.MultiselectBuilder[T] {
	return widgets.Multiselect(th, options)
}

// Checkboxes starts building a checkbox group.
func Checkboxes[T comparable](th *Theme, options *widgets.Options[T]) *widgets.MultiselectBuilder[T] {
	return widgets.Checkboxes(th, options)
}

// Toggles starts building a toggle-switch group.
func Toggles[T comparable](th *Theme, options *widgets.Options[T]) *widgets.MultiselectBuilder[T] {
	return widgets.Toggles(th, options)
}

// ToggleButtons starts building a toggle button bar.
func ToggleButtons[T comparable](th *Theme, options *widgets.Options[T]) *widgets.ToggleButtonsBuilder[T] {
	return widgets.ToggleButtons(th, options)
}

// Tabs starts building a tab bar.
func Tabs[T comparable](th *Theme, options *widgets.Options[T]) *widgets.ToggleButtonsBuilder[T] {
	return widgets.Tabs(th, options)
}

// Slider starts building a discrete slider over the given options.
func Slider[T comparable](th *Theme, options *widgets.Options[T]) *widgets.SliderBuilder[T] {
	return widgets.Slider(th, options)
}

// Tabulator starts building a tab selector composed with content panels.
func Tabulator(th *Theme, labels []string, contents []*dom.VNode) *widgets.TabulatorBuilder {
	return widgets.Tabulator(th, labels, contents)
}

// Mask renders every content node but displays only the one whose key
// matches the index cell's current value.
func Mask[K comparable](index *cell.Signal[K], keys []K, contents []*dom.VNode, panelClass string) dom.Component {
	return widgets.Mask(index, keys, contents, panelClass)
}

// Textbox starts building a single-line text input.
func Textbox(th *Theme) *widgets.TextboxBuilder { return widgets.Textbox(th) }

// Textarea starts building a multi-line text input.
func Textarea(th *Theme) *widgets.TextboxBuilder { return widgets.Textarea(th) }

// Spinbox starts building a numeric input.
func Spinbox(th *Theme) *widgets.SpinboxBuilder { return widgets.Spinbox(th) }

// FilePicker starts building a file input whose value carries the upload
// reference returned by the upload endpoint.
func FilePicker(th *Theme) *widgets.FilePickerBuilder { return widgets.FilePicker(th) }

// Button starts building a push button counting its clicks.
func Button(th *Theme, text string) *widgets.ButtonBuilder { return widgets.Button(th, text) }

// =============================================================================
// Hosting
// =============================================================================

// VNode is a node in the declarative template tree.
type VNode = dom.VNode

// Component is anything that can render to a node tree.
type Component = dom.Component

// Func creates a component from a render function.
func Func(render func() *dom.VNode) Component { return dom.Func(render) }

// Server hosts a page component over HTTP and WebSocket.
type Server = serve.Server

// ServerConfig holds server configuration.
type ServerConfig = serve.Config

// NewServer creates a widget host server. A nil config uses defaults.
func NewServer(config *ServerConfig) *Server { return serve.New(config) }
