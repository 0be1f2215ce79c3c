package cell

// Listener receives change notifications from a Signal.
// Implementations are identified by ID so a listener subscribed twice is
// notified once.
type Listener interface {
	// ID returns the unique identifier for this listener.
	ID() uint64

	// Notify is called synchronously after the signal's value changed.
	Notify()
}

// funcListener adapts a plain function to the Listener interface.
type funcListener struct {
	id uint64
	fn func()
}

func (l *funcListener) ID() uint64 { return l.id }
func (l *funcListener) Notify()    { l.fn() }
