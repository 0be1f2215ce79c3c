package dom

import "strings"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <select>, etc.
	KindText                 // plain text node
	KindFragment             // grouping without a wrapper element
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// VNode is a node in the declarative template tree.
type VNode struct {
	Kind     Kind     // node type
	Tag      string   // element tag name (e.g. "select")
	Props    Props    // attributes and event handlers
	Children []*VNode // child nodes
	Key      string   // reconciliation key
	Text     string   // for KindText
}

// Props holds attributes and event handlers. Event handler entries use the
// "on"-prefixed event name as key ("onclick", "onchange", ...).
type Props map[string]any

// IsInteractive reports whether this node carries event handlers and
// therefore needs an identity assigned during rendering.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if strings.HasPrefix(key, "on") {
			return true
		}
	}
	return false
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler binds a handler function to a DOM event.
type EventHandler struct {
	Event   string // "onclick", "onchange", etc.
	Handler any    // function to call
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}
