package dom

// MouseEvent carries the data of a pointer interaction.
type MouseEvent struct {
	// Position relative to viewport.
	ClientX int
	ClientY int

	// Button that triggered the event (0=left, 1=middle, 2=right).
	Button int

	// Modifier keys.
	CtrlKey  bool
	ShiftKey bool
	AltKey   bool
	MetaKey  bool
}

// InputEvent carries the committed state of an input or select element.
type InputEvent struct {
	// Value is the current value of the control. For selection controls
	// bound to an index, this is the decimal 1-based position.
	Value string

	// Values holds every selected value for multi-select controls.
	Values []string
}

// KeyboardEvent carries the data of a key interaction.
type KeyboardEvent struct {
	// Key is the key value (e.g. "Enter", "a", "Escape").
	Key string

	// Modifier keys.
	CtrlKey  bool
	ShiftKey bool
	AltKey   bool
	MetaKey  bool
}

// event creates an EventHandler for the given DOM event name.
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// OnClick handles click events. The handler is func(MouseEvent) or func().
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnInput handles input events (fired on every value edit).
func OnInput(handler any) EventHandler { return event("input", handler) }

// OnChange handles change events (fired when a value is committed).
func OnChange(handler any) EventHandler { return event("change", handler) }

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) EventHandler { return event("keydown", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) EventHandler { return event("blur", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) EventHandler { return event("submit", handler) }
