package widgets

import (
	"sort"

	"github.com/canopy-ui/canopy/pkg/cell"
)

// MultiBridge keeps a multi-select widget's external values signal and
// internal index-sequence signal mutually consistent over an option
// collection.
//
// Both sides are normalized to collection order: the indices are ascending
// 1-based positions, and the values mirror those positions, regardless of
// the order in which entries were selected.
type MultiBridge[T comparable] struct {
	options *Options[T]
	values  *cell.Signal[[]T]
	indices *cell.Signal[[]int]
	syncing bool
}

// NewMultiBridge constructs a multi-select bridge over the given options.
//
// If values is nil, a fresh cell holding an empty selection is created.
// If values is non-nil it is reused directly and every value it currently
// holds must be present in the collection, otherwise construction fails
// with InvalidDefaultError. An empty collection is accepted (zero-or-more
// cardinality has no default to apply).
func NewMultiBridge[T comparable](options *Options[T], values *cell.Signal[[]T]) (*MultiBridge[T], error) {
	snap := options.Snapshot()
	b := &MultiBridge[T]{options: options}

	if values == nil {
		b.values = cell.NewSignal([]T{})
		b.indices = cell.NewSignal([]int{})
	} else {
		for _, v := range values.Get() {
			if indexIn(snap, v) == 0 {
				return nil, &InvalidDefaultError{Value: v}
			}
		}
		b.values = values
		b.indices = cell.NewSignal(b.toIndices(values.Get()))

		// Normalize the caller's initial selection to collection order.
		b.sync(func() {
			b.values.Set(b.toValues(b.indices.Get()))
		})
	}

	b.wire()
	return b, nil
}

// Values returns the external values signal, the widget's primary output.
// Its content is always in collection order.
func (b *MultiBridge[T]) Values() *cell.Signal[[]T] {
	return b.values
}

// Indices returns the internal index-sequence signal: ascending 1-based
// positions of the selected options.
func (b *MultiBridge[T]) Indices() *cell.Signal[[]int] {
	return b.indices
}

// Options returns the collection the bridge maps over.
func (b *MultiBridge[T]) Options() *Options[T] {
	return b.options
}

// Has reports whether the 1-based position is currently selected.
func (b *MultiBridge[T]) Has(pos int) bool {
	for _, i := range b.indices.Get() {
		if i == pos {
			return true
		}
	}
	return false
}

// Toggle adds the 1-based position to the selection if absent, or removes
// it if present. Remaining positions keep their relative order. Positions
// outside the current collection are ignored.
//
// The mutation is computed against the collection's current length inside
// the update, never against a captured snapshot.
func (b *MultiBridge[T]) Toggle(pos int) {
	n := b.options.Len()
	if pos < 1 || pos > n {
		return
	}

	b.indices.Update(func(ix []int) []int {
		out := make([]int, 0, len(ix)+1)
		removed := false
		for _, i := range ix {
			if i == pos {
				removed = true
				continue
			}
			if i >= 1 && i <= n {
				out = append(out, i)
			}
		}
		if !removed {
			out = append(out, pos)
			sort.Ints(out)
		}
		return out
	})
}

// toIndices is the forward transform: ascending positions of every value
// present in the collection. Absent values produce no position.
func (b *MultiBridge[T]) toIndices(values []T) []int {
	snap := b.options.Snapshot()
	out := make([]int, 0, len(values))
	for pos := 1; pos <= len(snap); pos++ {
		for _, v := range values {
			if snap[pos-1].Value == v {
				out = append(out, pos)
				break
			}
		}
	}
	return out
}

// toValues is the backward transform: the values at the given positions,
// in ascending position order. Out-of-range positions are dropped.
func (b *MultiBridge[T]) toValues(indices []int) []T {
	snap := b.options.Snapshot()
	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.Ints(sorted)

	out := make([]T, 0, len(sorted))
	for _, pos := range sorted {
		if pos >= 1 && pos <= len(snap) {
			out = append(out, snap[pos-1].Value)
		}
	}
	return out
}

// wire connects values→indices, indices→values, and collection change
// recovery (vanished values are dropped, surviving ones keep selection at
// their new positions).
func (b *MultiBridge[T]) wire() {
	b.values.Observe(func(v []T) {
		b.sync(func() {
			b.indices.Set(b.toIndices(v))
		})
	})

	b.indices.Observe(func(ix []int) {
		b.sync(func() {
			b.values.Set(b.toValues(ix))
		})
	})

	b.options.Observe(func([]Option[T]) {
		b.sync(func() {
			ix := b.toIndices(b.values.Get())
			b.indices.Set(ix)
			b.values.Set(b.toValues(ix))
		})
	})
}

// sync runs fn unless a propagation is already in flight.
func (b *MultiBridge[T]) sync(fn func()) {
	if b.syncing {
		return
	}
	b.syncing = true
	defer func() { b.syncing = false }()
	fn()
}
