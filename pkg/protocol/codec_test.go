package protocol

import (
	"errors"
	"io"
	"testing"
)

func TestUvarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16383, 16384, 1 << 32, ^uint64(0)}

	for _, v := range values {
		e := NewEncoder()
		e.WriteUvarint(v)
		got, err := NewDecoder(e.Bytes()).ReadUvarint()
		if err != nil {
			t.Fatalf("ReadUvarint(%d): %v", v, err)
		}
		if got != v {
			t.Errorf("round trip %d → %d", v, got)
		}
	}
}

func TestUvarintOverflow(t *testing.T) {
	// 11 continuation bytes exceed 64 bits of payload.
	data := make([]byte, 11)
	for i := range data {
		data[i] = 0xFF
	}
	if _, err := NewDecoder(data).ReadUvarint(); !errors.Is(err, ErrVarintOverflow) {
		t.Errorf("err = %v, want ErrVarintOverflow", err)
	}
}

func TestStringLengthLies(t *testing.T) {
	// A length prefix larger than the remaining buffer must not allocate.
	e := NewEncoder()
	e.WriteUvarint(1 << 40)
	if _, err := NewDecoder(e.Bytes()).ReadString(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("err = %v, want ErrUnexpectedEOF", err)
	}
}

func TestStringsCountLimit(t *testing.T) {
	e := NewEncoder()
	e.WriteUvarint(MaxSliceLen + 1)
	e.WriteBytes(make([]byte, MaxSliceLen+2))
	if _, err := NewDecoder(e.Bytes()).ReadStrings(); !errors.Is(err, ErrSliceTooLarge) {
		t.Errorf("err = %v, want ErrSliceTooLarge", err)
	}
}

func TestEncoderReset(t *testing.T) {
	e := NewEncoder()
	e.WriteString("abc")
	if e.Len() == 0 {
		t.Fatal("encoder should have content")
	}
	e.Reset()
	if e.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", e.Len())
	}
}

func TestBoolRoundTrip(t *testing.T) {
	e := NewEncoder()
	e.WriteBool(true)
	e.WriteBool(false)

	d := NewDecoder(e.Bytes())
	if v, _ := d.ReadBool(); !v {
		t.Error("first bool should be true")
	}
	if v, _ := d.ReadBool(); v {
		t.Error("second bool should be false")
	}
}
