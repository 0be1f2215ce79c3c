package widgets

import (
	"errors"
	"testing"

	"github.com/canopy-ui/canopy/pkg/cell"
)

func powerOptions() *Options[int] {
	return NewOptions(
		Pair("good", 1),
		Pair("better", 2),
		Pair("amazing", 9001),
	)
}

func TestPolicyDefaultIndex(t *testing.T) {
	tests := []struct {
		policy Policy
		n      int
		want   int
	}{
		{PolicyFirst, 5, 1},
		{PolicyFirst, 1, 1},
		{PolicyFirst, 0, 0},
		{PolicyMedian, 5, 3},
		{PolicyMedian, 4, 2}, // lower index on ties
		{PolicyMedian, 2, 1},
		{PolicyMedian, 1, 1},
		{PolicyMedian, 0, 0},
	}
	for _, tt := range tests {
		if got := tt.policy.defaultIndex(tt.n); got != tt.want {
			t.Errorf("policy %d defaultIndex(%d) = %d, want %d", tt.policy, tt.n, got, tt.want)
		}
	}
}

func TestBridgeDefaultsToFirst(t *testing.T) {
	b, err := NewBridge(powerOptions(), nil, PolicyFirst)
	if err != nil {
		t.Fatalf("NewBridge: %v", err)
	}

	if got := b.Index().Get(); got != 1 {
		t.Errorf("initial index = %d, want 1", got)
	}
	if got := b.Value().Get(); got != 1 {
		t.Errorf("initial value = %d, want 1", got)
	}
}

func TestBridgeDefaultsToMedian(t *testing.T) {
	opts := OptionsFromValues([]int{10, 20, 30, 40, 50})
	b, err := NewBridge(opts, nil, PolicyMedian)
	if err != nil {
		t.Fatalf("NewBridge: %v", err)
	}

	if got := b.Index().Get(); got != 3 {
		t.Errorf("initial index = %d, want 3 (median of 5)", got)
	}
	if got := b.Value().Get(); got != 30 {
		t.Errorf("initial value = %d, want 30", got)
	}
}

func TestBridgeEmptyCollectionInvalidDefault(t *testing.T) {
	_, err := NewBridge(NewOptions[int](), nil, PolicyFirst)
	if !errors.Is(err, ErrInvalidDefault) {
		t.Errorf("err = %v, want ErrInvalidDefault", err)
	}
}

func TestBridgeAbsentInitialValueInvalidDefault(t *testing.T) {
	_, err := NewBridge(powerOptions(), cell.NewSignal(7), PolicyFirst)
	if !errors.Is(err, ErrInvalidDefault) {
		t.Errorf("err = %v, want ErrInvalidDefault", err)
	}

	var invalid *InvalidDefaultError
	if !errors.As(err, &invalid) || invalid.Value != 7 {
		t.Errorf("expected InvalidDefaultError carrying 7, got %v", err)
	}
}

func TestBridgeReusesCallerCell(t *testing.T) {
	value := cell.NewSignal(2)
	b, err := NewBridge(powerOptions(), value, PolicyFirst)
	if err != nil {
		t.Fatalf("NewBridge: %v", err)
	}

	if b.Value() != value {
		t.Fatal("bridge must reuse the caller's cell, not copy it")
	}

	// External mutation of the caller's cell moves the index.
	value.Set(9001)
	if got := b.Index().Get(); got != 3 {
		t.Errorf("index after external write = %d, want 3", got)
	}
}

func TestBridgeRoundTrip(t *testing.T) {
	b, err := NewBridge(powerOptions(), nil, PolicyFirst)
	if err != nil {
		t.Fatalf("NewBridge: %v", err)
	}

	for _, v := range []int{1, 2, 9001} {
		idx := b.ToIndex(v)
		if idx == 0 {
			t.Fatalf("ToIndex(%d) = 0, want a position", v)
		}
		back, ok := b.ToValue(idx)
		if !ok || back != v {
			t.Errorf("ToValue(ToIndex(%d)) = %d, %v", v, back, ok)
		}
	}

	if got := b.ToIndex(42); got != 0 {
		t.Errorf("ToIndex(absent) = %d, want 0", got)
	}
}

func TestBridgeIndexWritePropagatesToValue(t *testing.T) {
	b, err := NewBridge(powerOptions(), nil, PolicyFirst)
	if err != nil {
		t.Fatalf("NewBridge: %v", err)
	}

	b.Index().Set(3)
	if got := b.Value().Get(); got != 9001 {
		t.Errorf("value = %d, want 9001", got)
	}
}

func TestBridgeNoOpShortCircuit(t *testing.T) {
	b, err := NewBridge(powerOptions(), nil, PolicyFirst)
	if err != nil {
		t.Fatalf("NewBridge: %v", err)
	}

	b.Index().Set(2)

	valueWrites := 0
	b.Value().Observe(func(int) { valueWrites++ })

	// Writing the current index must not produce a redundant value write.
	b.Index().Set(2)
	if valueWrites != 0 {
		t.Errorf("redundant value writes = %d, want 0", valueWrites)
	}
}

func TestBridgeOutOfRangeIndexIgnored(t *testing.T) {
	b, err := NewBridge(powerOptions(), nil, PolicyFirst)
	if err != nil {
		t.Fatalf("NewBridge: %v", err)
	}

	b.Index().Set(99)
	if got := b.Value().Get(); got != 1 {
		t.Errorf("value after out-of-range index = %d, want 1", got)
	}
	if got := b.Index().Get(); got != 1 {
		t.Errorf("index after out-of-range write = %d, want 1", got)
	}
}

func TestBridgeSingleSelectionInvariant(t *testing.T) {
	opts := powerOptions()
	b, err := NewBridge(opts, nil, PolicyFirst)
	if err != nil {
		t.Fatalf("NewBridge: %v", err)
	}

	for _, pos := range []int{1, 2, 3, 2, 1} {
		b.Index().Set(pos)
		got := b.Index().Get()
		if got < 1 || got > opts.Len() {
			t.Fatalf("index %d outside [1, %d]", got, opts.Len())
		}
	}
}

func TestBridgeReactiveOptionsReindexesSurvivingValue(t *testing.T) {
	seq := cell.NewSignal([]Option[string]{Pair("a", "a"), Pair("b", "b"), Pair("c", "c")})
	b, err := NewBridge(BindOptions(seq), cell.NewSignal("c"), PolicyFirst)
	if err != nil {
		t.Fatalf("NewBridge: %v", err)
	}
	if got := b.Index().Get(); got != 3 {
		t.Fatalf("initial index = %d, want 3", got)
	}

	// "c" moves to position 1; selection follows the value.
	seq.Set([]Option[string]{Pair("c", "c"), Pair("a", "a")})
	if got := b.Index().Get(); got != 1 {
		t.Errorf("index after reorder = %d, want 1", got)
	}
	if got := b.Value().Get(); got != "c" {
		t.Errorf("value after reorder = %q, want c", got)
	}
}

func TestBridgeStaleSelectionResetsToPolicy(t *testing.T) {
	seq := cell.NewSignal([]Option[int]{Pair("10", 10), Pair("20", 20), Pair("30", 30)})
	b, err := NewBridge(BindOptions(seq), cell.NewSignal(30), PolicyMedian)
	if err != nil {
		t.Fatalf("NewBridge: %v", err)
	}

	// 30 vanishes; median of the new 5-element collection is position 3.
	seq.Set([]Option[int]{Pair("1", 1), Pair("2", 2), Pair("3", 3), Pair("4", 4), Pair("5", 5)})

	if got := b.Index().Get(); got != 3 {
		t.Errorf("index after stale reset = %d, want 3", got)
	}
	if got := b.Value().Get(); got != 3 {
		t.Errorf("value after stale reset = %d, want 3", got)
	}
}

func TestBridgeCollectionEmptied(t *testing.T) {
	seq := cell.NewSignal([]Option[int]{Pair("a", 1)})
	b, err := NewBridge(BindOptions(seq), nil, PolicyFirst)
	if err != nil {
		t.Fatalf("NewBridge: %v", err)
	}

	seq.Set(nil)
	if got := b.Index().Get(); got != 0 {
		t.Errorf("index after emptied collection = %d, want 0", got)
	}
}
