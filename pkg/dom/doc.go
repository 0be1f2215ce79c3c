// Package dom builds declarative node trees for the widget templates.
//
// Nodes are plain values (tag, attributes, bound event handlers, children)
// with no behavior of their own; a renderer or host engine walks the tree to
// produce output and wire events. Element constructors are variadic and
// accept attributes, child nodes, strings (shorthand for text nodes), and
// event handlers in any order:
//
//	dom.Div(dom.Class("row"),
//	    dom.Button(dom.OnClick(onClick), dom.Text("go")),
//	)
package dom
