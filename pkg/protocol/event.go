package protocol

// EventKind identifies the DOM event a widget handler is registered for.
type EventKind uint8

const (
	EventClick   EventKind = 0x01
	EventInput   EventKind = 0x02
	EventChange  EventKind = 0x03
	EventKeyDown EventKind = 0x04
	EventBlur    EventKind = 0x05
	EventSubmit  EventKind = 0x06
)

// String returns the event kind's DOM name ("click", "input", ...), which
// matches the handler registry key suffix used by the renderer.
func (ek EventKind) String() string {
	switch ek {
	case EventClick:
		return "click"
	case EventInput:
		return "input"
	case EventChange:
		return "change"
	case EventKeyDown:
		return "keydown"
	case EventBlur:
		return "blur"
	case EventSubmit:
		return "submit"
	default:
		return "unknown"
	}
}

// EventKindFromString maps a DOM event name back to its kind. Unknown names
// return 0.
func EventKindFromString(name string) EventKind {
	switch name {
	case "click":
		return EventClick
	case "input":
		return EventInput
	case "change":
		return EventChange
	case "keydown":
		return EventKeyDown
	case "blur":
		return EventBlur
	case "submit":
		return EventSubmit
	default:
		return 0
	}
}

// Event is a widget interaction reported by the client. HID addresses the
// hydrated element; Value carries the committed input for single-value
// controls, Values the full selection for multi-select controls.
type Event struct {
	Seq    uint64
	Kind   EventKind
	HID    string
	Value  string
	Values []string
}

// EncodeEvent serializes an event payload.
func EncodeEvent(ev *Event) []byte {
	e := NewEncoder()
	e.WriteUvarint(ev.Seq)
	e.WriteUint8(byte(ev.Kind))
	e.WriteString(ev.HID)
	e.WriteString(ev.Value)
	e.WriteStrings(ev.Values)
	return e.Bytes()
}

// DecodeEvent parses an event payload.
func DecodeEvent(data []byte) (*Event, error) {
	d := NewDecoder(data)

	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	kind, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	hid, err := d.ReadString()
	if err != nil {
		return nil, err
	}
	value, err := d.ReadString()
	if err != nil {
		return nil, err
	}
	values, err := d.ReadStrings()
	if err != nil {
		return nil, err
	}

	return &Event{
		Seq:    seq,
		Kind:   EventKind(kind),
		HID:    hid,
		Value:  value,
		Values: values,
	}, nil
}
