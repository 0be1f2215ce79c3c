package widgets

import "github.com/canopy-ui/canopy/pkg/cell"

// Policy selects the default index when no initial value is supplied, or
// when the current selection vanishes from a reactive option collection.
type Policy int

const (
	// PolicyFirst selects the first position. Used by dropdown and
	// radiobuttons.
	PolicyFirst Policy = iota

	// PolicyMedian selects the median position, biased toward the lower
	// index on ties. Used by togglebuttons, tabs and slider.
	PolicyMedian
)

// defaultIndex returns the policy's default 1-based position for a
// collection of n options, or 0 when n is 0.
func (p Policy) defaultIndex(n int) int {
	if n == 0 {
		return 0
	}
	if p == PolicyMedian {
		return (n + 1) / 2
	}
	return 1
}

// Bridge keeps a single-select widget's external value signal and internal
// 1-based index signal mutually consistent over an option collection.
//
// The forward transform (value→index) looks the value up in the collection;
// the backward transform (index→value) reads the option at that position.
// Writes of an equal value short-circuit inside the signals, and a syncing
// guard rejects re-entrant propagation, so the pair cannot cycle.
//
// If the collection is reactive and the selected value vanishes, the bridge
// resets to the policy default instead of failing.
type Bridge[T comparable] struct {
	options *Options[T]
	value   *cell.Signal[T]
	index   *cell.Signal[int]
	policy  Policy
	syncing bool
}

// NewBridge constructs a bridge over the given options.
//
// If value is nil, a fresh cell is created holding the policy default; an
// empty collection is then an InvalidDefaultError. If value is non-nil it is
// reused directly (external mutation is observed), and its current content
// must be present in the collection or construction fails with
// InvalidDefaultError.
func NewBridge[T comparable](options *Options[T], value *cell.Signal[T], policy Policy) (*Bridge[T], error) {
	snap := options.Snapshot()
	b := &Bridge[T]{options: options, policy: policy}

	if value == nil {
		pos := policy.defaultIndex(len(snap))
		if pos == 0 {
			return nil, &InvalidDefaultError{}
		}
		b.value = cell.NewSignal(snap[pos-1].Value)
		b.index = cell.NewSignal(pos)
	} else {
		v := value.Get()
		pos := indexIn(snap, v)
		if pos == 0 {
			return nil, &InvalidDefaultError{Value: v}
		}
		b.value = value
		b.index = cell.NewSignal(pos)
	}

	b.wire()
	return b, nil
}

// Value returns the external value signal, the widget's primary output.
func (b *Bridge[T]) Value() *cell.Signal[T] {
	return b.value
}

// Index returns the internal 1-based index signal bound to the template.
func (b *Bridge[T]) Index() *cell.Signal[int] {
	return b.index
}

// Options returns the collection the bridge maps over.
func (b *Bridge[T]) Options() *Options[T] {
	return b.options
}

// ToIndex is the forward transform: the 1-based position of v, or 0 if
// absent.
func (b *Bridge[T]) ToIndex(v T) int {
	return b.options.IndexOf(v)
}

// ToValue is the backward transform: the value at the 1-based position.
func (b *Bridge[T]) ToValue(pos int) (T, bool) {
	opt, ok := b.options.At(pos)
	return opt.Value, ok
}

// wire connects the three observers: value→index, index→value, and
// collection change recovery.
func (b *Bridge[T]) wire() {
	b.value.Observe(func(v T) {
		b.sync(func() {
			// A write of a value absent from the collection leaves the
			// index untouched; lookups simply find nothing.
			if pos := b.options.IndexOf(v); pos != 0 {
				b.index.Set(pos)
			}
		})
	})

	b.index.Observe(func(pos int) {
		b.sync(func() {
			if opt, ok := b.options.At(pos); ok {
				b.value.Set(opt.Value)
				return
			}
			// Out-of-range write: snap back to the current value's position
			// so the index never leaves [1, n] while options exist.
			if prev := b.options.IndexOf(b.value.Get()); prev != 0 {
				b.index.Set(prev)
			}
		})
	})

	b.options.Observe(func(seq []Option[T]) {
		b.sync(func() {
			// Same value still present: re-derive its (possibly moved)
			// position.
			if pos := indexIn(seq, b.value.Get()); pos != 0 {
				b.index.Set(pos)
				return
			}

			// Stale selection: fall back to the default policy.
			pos := b.policy.defaultIndex(len(seq))
			if pos == 0 {
				// Collection emptied. Index 0 marks "nothing selectable";
				// the value keeps its last content.
				b.index.Set(0)
				return
			}
			b.index.Set(pos)
			b.value.Set(seq[pos-1].Value)
		})
	})
}

// sync runs fn unless a propagation is already in flight.
func (b *Bridge[T]) sync(fn func()) {
	if b.syncing {
		return
	}
	b.syncing = true
	defer func() { b.syncing = false }()
	fn()
}
