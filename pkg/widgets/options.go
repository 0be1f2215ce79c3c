package widgets

import (
	"fmt"

	"github.com/canopy-ui/canopy/pkg/cell"
)

// Option is one selectable entry: a display label paired with a value.
// Labels need not be unique; positions are the authority for lookups.
type Option[T comparable] struct {
	Label string
	Value T
}

// Pair constructs an Option. It reads well in ordered literal form:
//
//	widgets.NewOptions(widgets.Pair("good", 1), widgets.Pair("better", 2))
func Pair[T comparable](label string, value T) Option[T] {
	return Option[T]{Label: label, Value: value}
}

// Options is the canonical ordered label→value sequence backing a widget.
// It is always backed by a signal: static input is wrapped in a fresh cell,
// while BindOptions reuses a caller-held cell so external mutation re-derives
// downstream index mappings.
//
// Positions are 1-based: position 1 is the first option. Position 0 means
// "not found".
type Options[T comparable] struct {
	seq *cell.Signal[[]Option[T]]
}

// NewOptions creates a static option collection from ordered label→value
// pairs. An empty collection is accepted.
func NewOptions[T comparable](pairs ...Option[T]) *Options[T] {
	return &Options[T]{seq: cell.NewSignal(pairs)}
}

// OptionsFromValues creates an option collection from a plain value
// sequence, deriving labels with the given stringification function.
// If label is omitted, fmt.Sprint is used.
func OptionsFromValues[T comparable](values []T, label ...func(T) string) *Options[T] {
	stringify := func(v T) string { return fmt.Sprint(v) }
	if len(label) > 0 && label[0] != nil {
		stringify = label[0]
	}

	pairs := make([]Option[T], len(values))
	for i, v := range values {
		pairs[i] = Option[T]{Label: stringify(v), Value: v}
	}
	return &Options[T]{seq: cell.NewSignal(pairs)}
}

// BindOptions wraps a caller-held reactive option sequence. The cell is
// reused, not copied: external writes to it are observed by every widget
// built over this collection.
func BindOptions[T comparable](seq *cell.Signal[[]Option[T]]) *Options[T] {
	return &Options[T]{seq: seq}
}

// Snapshot returns the current ordered sequence.
func (o *Options[T]) Snapshot() []Option[T] {
	return o.seq.Get()
}

// Len returns the current option count.
func (o *Options[T]) Len() int {
	return len(o.seq.Get())
}

// At returns the option at the given 1-based position.
func (o *Options[T]) At(pos int) (Option[T], bool) {
	seq := o.seq.Get()
	if pos < 1 || pos > len(seq) {
		var zero Option[T]
		return zero, false
	}
	return seq[pos-1], true
}

// IndexOf returns the 1-based position of the first option holding the
// given value, or 0 if the value is absent.
func (o *Options[T]) IndexOf(v T) int {
	return indexIn(o.seq.Get(), v)
}

// Labels returns the label sequence in order.
func (o *Options[T]) Labels() []string {
	seq := o.seq.Get()
	labels := make([]string, len(seq))
	for i, opt := range seq {
		labels[i] = opt.Label
	}
	return labels
}

// Values returns the value sequence in order.
func (o *Options[T]) Values() []T {
	seq := o.seq.Get()
	values := make([]T, len(seq))
	for i, opt := range seq {
		values[i] = opt.Value
	}
	return values
}

// Observe registers fn to run whenever the collection changes.
// The returned function cancels the observation.
func (o *Options[T]) Observe(fn func([]Option[T])) (cancel func()) {
	return o.seq.Observe(fn)
}

// Cell returns the backing signal, for callers that mutate the collection
// after construction.
func (o *Options[T]) Cell() *cell.Signal[[]Option[T]] {
	return o.seq
}

// indexIn looks up v in a snapshot, returning its 1-based position or 0.
func indexIn[T comparable](seq []Option[T], v T) int {
	for i, opt := range seq {
		if opt.Value == v {
			return i + 1
		}
	}
	return 0
}
