// Package theme resolves semantic widget roles to concrete CSS classes.
//
// Every widget builder takes a *Theme as its first argument; there is no
// ambient global theme. A Theme maps (widget kind, role) pairs such as
// ("togglebuttons", "active") to class strings and supports per-call
// overrides via With.
package theme

import "fmt"

// Theme selects the visual presentation of widgets.
type Theme struct {
	name    string
	classes map[string]string
}

// New creates an empty theme with the given name. Unresolved roles return
// the empty string, so an empty theme renders unstyled widgets.
func New(name string) *Theme {
	return &Theme{
		name:    name,
		classes: make(map[string]string),
	}
}

// Name returns the theme's name.
func (t *Theme) Name() string {
	return t.name
}

// Resolve maps a widget kind and role to a class string.
// Lookup tries "kind/role" first and falls back to "*/role" so a theme can
// style a role once across widget kinds.
func (t *Theme) Resolve(kind, role string) string {
	if c, ok := t.classes[kind+"/"+role]; ok {
		return c
	}
	return t.classes["*/"+role]
}

// With returns a copy of the theme with one (kind, role) mapping replaced.
// The receiver is not modified.
func (t *Theme) With(kind, role, classes string) *Theme {
	next := &Theme{
		name:    t.name,
		classes: make(map[string]string, len(t.classes)+1),
	}
	for k, v := range t.classes {
		next.classes[k] = v
	}
	next.classes[kind+"/"+role] = classes
	return next
}

// String implements fmt.Stringer.
func (t *Theme) String() string {
	return fmt.Sprintf("theme(%s)", t.name)
}

// Default returns the stock theme.
func Default() *Theme {
	t := New("default")
	t.classes = map[string]string{
		"*/label": "block text-sm font-medium text-gray-700",
		"*/row":   "flex items-center gap-2",

		"dropdown/control": "border border-gray-300 bg-white px-2 py-1",
		"dropdown/option":  "",

		"radiobuttons/group": "flex flex-col gap-1",
		"radiobuttons/entry": "flex items-center gap-2",
		"radiobuttons/input": "accent-blue-600",

		"checkboxes/group": "flex flex-col gap-1",
		"checkboxes/entry": "flex items-center gap-2",
		"checkboxes/input": "accent-blue-600",

		"toggles/group": "flex flex-col gap-1",
		"toggles/entry": "flex items-center gap-2",
		"toggles/input": "accent-blue-600 toggle-switch",

		"togglebuttons/group":  "inline-flex border border-gray-300",
		"togglebuttons/button": "px-3 py-1 bg-white hover:bg-gray-100",
		"togglebuttons/active": "px-3 py-1 bg-blue-600 text-white",

		"tabs/list":   "flex border-b border-gray-300",
		"tabs/tab":    "px-4 py-2 cursor-pointer hover:bg-gray-100",
		"tabs/active": "px-4 py-2 cursor-pointer border-b-2 border-blue-600 font-medium",

		"tabulator/panel": "py-3",

		"slider/control":  "w-full",
		"textbox/control": "border border-gray-300 px-2 py-1",
		"button/control":  "px-4 py-1 border border-gray-300 bg-white hover:bg-gray-100",
	}
	return t
}
