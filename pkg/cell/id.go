package cell

import "sync/atomic"

// idCounter generates unique IDs for signals and observers.
var idCounter atomic.Uint64

// nextID returns a process-unique identifier.
func nextID() uint64 {
	return idCounter.Add(1)
}
