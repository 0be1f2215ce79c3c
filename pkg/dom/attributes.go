package dom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with the
// StyleEl element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("index", "3") → data-index="3"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Key sets the reconciliation key.
func Key(key string) Attr { return attr("key", key) }

// Form attributes

// Name sets the name attribute. Radio groups share exclusivity by name.
func Name(name string) Attr { return attr("name", name) }

// TypeAttr sets the type attribute of an input element.
func TypeAttr(t string) Attr { return attr("type", t) }

// Value sets the value attribute.
func Value(v string) Attr { return attr("value", v) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// For sets the for attribute of a label element.
func For(id string) Attr { return attr("for", id) }

// Checked sets the checked attribute. Rendered only when true.
func Checked(checked bool) Attr { return attr("checked", checked) }

// Selected sets the selected attribute of an option. Rendered only when true.
func Selected(selected bool) Attr { return attr("selected", selected) }

// Multiple sets the multiple attribute of a select element.
func Multiple() Attr { return attr("multiple", true) }

// Disabled sets the disabled attribute. Rendered only when true.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// Min sets the min attribute.
func Min(v string) Attr { return attr("min", v) }

// Max sets the max attribute.
func Max(v string) Attr { return attr("max", v) }

// Step sets the step attribute.
func Step(v string) Attr { return attr("step", v) }

// Accept sets the accept attribute of a file input.
func Accept(types string) Attr { return attr("accept", types) }

// Rows sets the rows attribute of a textarea.
func Rows(n string) Attr { return attr("rows", n) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Charset sets the charset attribute of a meta element.
func Charset(cs string) Attr { return attr("charset", cs) }
