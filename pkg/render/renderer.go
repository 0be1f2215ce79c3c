// Package render turns dom node trees into HTML and collects the event
// handlers of interactive elements so a host can route DOM events back to
// them.
package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/canopy-ui/canopy/pkg/dom"
)

// Renderer renders VNode trees to HTML.
//
// Interactive elements (those carrying event handlers) are stamped with a
// data-hid attribute, and their handlers are collected in a registry keyed
// by "<hid>_<event>" (e.g. "h3_onclick").
type Renderer struct {
	hidCounter uint32
	handlers   map[string]any
}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		handlers: make(map[string]any),
	}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *dom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *dom.VNode) error {
	return r.renderNode(w, node)
}

// Handlers returns the handler registry collected during rendering.
func (r *Renderer) Handlers() map[string]any {
	return r.handlers
}

// Reset clears the hydration counter and handler registry for reuse.
func (r *Renderer) Reset() {
	r.hidCounter = 0
	r.handlers = make(map[string]any)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *dom.VNode) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case dom.KindElement:
		return r.renderElement(w, node)
	case dom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case dom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("render: unknown node kind %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *dom.VNode) error {
	if _, err := io.WriteString(w, "<"+node.Tag); err != nil {
		return err
	}

	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	if node.IsInteractive() {
		hid := r.nextHID()
		if _, err := fmt.Fprintf(w, ` data-hid="%s"`, hid); err != nil {
			return err
		}
		r.registerHandlers(hid, node)
	}

	if dom.IsVoidElement(node.Tag) {
		_, err := io.WriteString(w, ">")
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</"+node.Tag+">")
	return err
}

// renderAttributes writes the node's attributes in sorted order.
// Event handler props are skipped; boolean attributes render bare when true
// and are omitted when false.
func (r *Renderer) renderAttributes(w io.Writer, node *dom.VNode) error {
	if len(node.Props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		if strings.HasPrefix(key, "on") {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		switch v := node.Props[key].(type) {
		case bool:
			if v {
				if _, err := io.WriteString(w, " "+key); err != nil {
					return err
				}
			}
		case string:
			if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(v)); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(fmt.Sprint(v))); err != nil {
				return err
			}
		}
	}

	return nil
}

// registerHandlers stores the element's handlers keyed by hid and event name.
func (r *Renderer) registerHandlers(hid string, node *dom.VNode) {
	for key, value := range node.Props {
		if strings.HasPrefix(key, "on") {
			r.handlers[hid+"_"+key] = value
		}
	}
}

// nextHID returns the next hydration ID.
func (r *Renderer) nextHID() string {
	r.hidCounter++
	return fmt.Sprintf("h%d", r.hidCounter)
}
