package widgets

import (
	"errors"
	"reflect"
	"testing"

	"github.com/canopy-ui/canopy/pkg/cell"
)

func letterOptions() *Options[int] {
	return NewOptions(
		Pair("a", 1),
		Pair("b", 2),
		Pair("c", 3),
	)
}

func TestMultiBridgeStartsEmpty(t *testing.T) {
	b, err := NewMultiBridge(letterOptions(), nil)
	if err != nil {
		t.Fatalf("NewMultiBridge: %v", err)
	}

	if got := b.Values().Get(); len(got) != 0 {
		t.Errorf("initial values = %v, want empty", got)
	}
	if got := b.Indices().Get(); len(got) != 0 {
		t.Errorf("initial indices = %v, want empty", got)
	}
}

func TestMultiBridgeEmptyCollectionAccepted(t *testing.T) {
	if _, err := NewMultiBridge(NewOptions[int](), nil); err != nil {
		t.Errorf("empty collection should be accepted for multi-select, got %v", err)
	}
}

func TestMultiBridgeAbsentInitialValueRejected(t *testing.T) {
	_, err := NewMultiBridge(letterOptions(), cell.NewSignal([]int{1, 42}))
	if !errors.Is(err, ErrInvalidDefault) {
		t.Errorf("err = %v, want ErrInvalidDefault", err)
	}
}

func TestMultiBridgeNormalizesInitialToCollectionOrder(t *testing.T) {
	values := cell.NewSignal([]int{3, 1})
	b, err := NewMultiBridge(letterOptions(), values)
	if err != nil {
		t.Fatalf("NewMultiBridge: %v", err)
	}

	if got := b.Values().Get(); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("values = %v, want [1 3] in collection order", got)
	}
	if got := b.Indices().Get(); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("indices = %v, want [1 3]", got)
	}
}

func TestMultiBridgeToggleSelectsAndDeselects(t *testing.T) {
	b, err := NewMultiBridge(letterOptions(), nil)
	if err != nil {
		t.Fatalf("NewMultiBridge: %v", err)
	}

	b.Toggle(2)
	if got := b.Values().Get(); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("after first toggle values = %v, want [2]", got)
	}

	b.Toggle(2)
	if got := b.Values().Get(); len(got) != 0 {
		t.Errorf("toggling twice should restore the empty selection, got %v", got)
	}
}

func TestMultiBridgeSelectionOrderIndependent(t *testing.T) {
	b, err := NewMultiBridge(letterOptions(), nil)
	if err != nil {
		t.Fatalf("NewMultiBridge: %v", err)
	}

	// Click "c" before "a"; the result still follows collection order.
	b.Toggle(3)
	b.Toggle(1)

	if got := b.Values().Get(); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("values = %v, want [1 3]", got)
	}
	if got := b.Indices().Get(); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("indices = %v, want [1 3]", got)
	}
}

func TestMultiBridgeToggleOutOfRangeIgnored(t *testing.T) {
	b, err := NewMultiBridge(letterOptions(), nil)
	if err != nil {
		t.Fatalf("NewMultiBridge: %v", err)
	}

	b.Toggle(0)
	b.Toggle(4)
	if got := b.Values().Get(); len(got) != 0 {
		t.Errorf("out-of-range toggles should be ignored, got %v", got)
	}
}

func TestMultiBridgeExternalValuesWrite(t *testing.T) {
	values := cell.NewSignal([]int{})
	b, err := NewMultiBridge(letterOptions(), values)
	if err != nil {
		t.Fatalf("NewMultiBridge: %v", err)
	}

	values.Set([]int{3, 2})
	if got := b.Indices().Get(); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Errorf("indices = %v, want [2 3]", got)
	}
	if !b.Has(2) || !b.Has(3) || b.Has(1) {
		t.Errorf("Has reports wrong membership: 1=%v 2=%v 3=%v", b.Has(1), b.Has(2), b.Has(3))
	}
}

func TestMultiBridgeCollectionChangeFiltersVanished(t *testing.T) {
	seq := cell.NewSignal([]Option[string]{Pair("a", "a"), Pair("b", "b"), Pair("c", "c")})
	values := cell.NewSignal([]string{"a", "c"})
	b, err := NewMultiBridge(BindOptions(seq), values)
	if err != nil {
		t.Fatalf("NewMultiBridge: %v", err)
	}

	// "c" vanishes; "a" moves to position 2.
	seq.Set([]Option[string]{Pair("b", "b"), Pair("a", "a")})

	if got := b.Values().Get(); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("values = %v, want [a]", got)
	}
	if got := b.Indices().Get(); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("indices = %v, want [2]", got)
	}
}

func TestMultiBridgeCollectionEmptiedClearsSelection(t *testing.T) {
	seq := cell.NewSignal([]Option[int]{Pair("a", 1), Pair("b", 2)})
	values := cell.NewSignal([]int{1, 2})
	b, err := NewMultiBridge(BindOptions(seq), values)
	if err != nil {
		t.Fatalf("NewMultiBridge: %v", err)
	}

	seq.Set(nil)
	if got := b.Values().Get(); len(got) != 0 {
		t.Errorf("values after emptied collection = %v, want empty", got)
	}
}
