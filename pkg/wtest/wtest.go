// Package wtest provides test helpers for widget views: rendering to HTML,
// content assertions, and DOM event simulation against node trees.
package wtest

import (
	"strings"
	"testing"

	"github.com/canopy-ui/canopy/pkg/dom"
	"github.com/canopy-ui/canopy/pkg/render"
)

// RenderToString renders a node tree and returns the HTML string.
// Render errors fail the calling test.
func RenderToString(t *testing.T, node *dom.VNode) string {
	t.Helper()
	html, err := render.NewRenderer().RenderToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return html
}

// ExpectContains asserts that the rendered output contains the substring.
func ExpectContains(t *testing.T, c dom.Component, expected string) {
	t.Helper()
	html := RenderToString(t, c.Render())
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that the rendered output does not contain the
// substring.
func ExpectNotContains(t *testing.T, c dom.Component, unexpected string) {
	t.Helper()
	html := RenderToString(t, c.Render())
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectAttribute asserts that the rendered output contains an attribute
// with the given value.
func ExpectAttribute(t *testing.T, c dom.Component, attr, value string) {
	t.Helper()
	html := RenderToString(t, c.Render())
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// Find returns the first node in the tree satisfying pred, depth-first.
func Find(node *dom.VNode, pred func(*dom.VNode) bool) *dom.VNode {
	if node == nil {
		return nil
	}
	if pred(node) {
		return node
	}
	for _, child := range node.Children {
		if found := Find(child, pred); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node in the tree satisfying pred, depth-first.
func FindAll(node *dom.VNode, pred func(*dom.VNode) bool) []*dom.VNode {
	var out []*dom.VNode
	var walk func(*dom.VNode)
	walk = func(n *dom.VNode) {
		if n == nil {
			return
		}
		if pred(n) {
			out = append(out, n)
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(node)
	return out
}

// ByTag matches elements with the given tag.
func ByTag(tag string) func(*dom.VNode) bool {
	return func(n *dom.VNode) bool {
		return n.Kind == dom.KindElement && n.Tag == tag
	}
}

// ByProp matches elements carrying the given attribute value.
func ByProp(key, value string) func(*dom.VNode) bool {
	return func(n *dom.VNode) bool {
		if n.Kind != dom.KindElement {
			return false
		}
		v, ok := n.Props[key]
		return ok && v == value
	}
}

// ByFlag matches elements whose boolean attribute is set (checked,
// selected, disabled).
func ByFlag(key string) func(*dom.VNode) bool {
	return func(n *dom.VNode) bool {
		if n.Kind != dom.KindElement {
			return false
		}
		v, ok := n.Props[key].(bool)
		return ok && v
	}
}

// Click simulates a click on the node by invoking its onclick handler.
func Click(t *testing.T, node *dom.VNode) {
	t.Helper()
	if node == nil {
		t.Fatal("Click: nil node")
	}
	switch h := node.Props["onclick"].(type) {
	case func(dom.MouseEvent):
		h(dom.MouseEvent{})
	case func():
		h()
	default:
		t.Fatalf("Click: node <%s> has no onclick handler", node.Tag)
	}
}

// Change simulates a committed value change by invoking the node's
// onchange handler.
func Change(t *testing.T, node *dom.VNode, value string) {
	t.Helper()
	fireInput(t, node, "onchange", dom.InputEvent{Value: value})
}

// ChangeValues simulates a multi-select change carrying several values.
func ChangeValues(t *testing.T, node *dom.VNode, values ...string) {
	t.Helper()
	fireInput(t, node, "onchange", dom.InputEvent{Values: values})
}

// Input simulates a value edit by invoking the node's oninput handler.
func Input(t *testing.T, node *dom.VNode, value string) {
	t.Helper()
	fireInput(t, node, "oninput", dom.InputEvent{Value: value})
}

func fireInput(t *testing.T, node *dom.VNode, event string, e dom.InputEvent) {
	t.Helper()
	if node == nil {
		t.Fatalf("%s: nil node", event)
	}
	h, ok := node.Props[event].(func(dom.InputEvent))
	if !ok {
		t.Fatalf("%s: node <%s> has no handler", event, node.Tag)
	}
	h(e)
}

// truncate shortens long HTML in failure messages.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
