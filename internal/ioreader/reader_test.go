package ioreader

import "testing"

func TestReadUint16(t *testing.T) {
	r := New([]byte{0x2A, 0x00})
	v, err := ReadUint[uint16](r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x002A {
		t.Fatalf("got %#x, want 0x2a", v)
	}
}

func TestReadUint16ShortRead(t *testing.T) {
	r := New([]byte{0xFF})
	if _, err := ReadUint[uint16](r); err == nil {
		t.Fatal("expected error on short read")
	}
}

func TestReadUintRangeCheck(t *testing.T) {
	r := New([]byte{100})
	if _, err := ReadUint[uint8](r, 0, 15); err == nil {
		t.Fatal("expected range check failure")
	}
	r = New([]byte{100})
	if v, err := ReadUint[uint8](r, 0, 200); err != nil || v != 100 {
		t.Fatalf("got (%v, %v), want (100, nil)", v, err)
	}
}

func TestSeekIsNoOp(t *testing.T) {
	r := New([]byte{1, 2, 3, 4})
	_, _ = ReadUint[uint8](r)
	at := r.Tell()
	r2, err := r.Seek(at)
	if err != nil {
		t.Fatalf("seek: %v", err)
	}
	if r2.Tell() != at {
		t.Fatalf("seek(tell()) should leave the position at %d, got %d", at, r2.Tell())
	}
}

func TestSliceLengthAndOffset(t *testing.T) {
	r := New([]byte{1, 2, 3, 4, 5})
	sub, err := r.Slice(3)
	if err != nil {
		t.Fatalf("slice: %v", err)
	}
	if sub.Len() != 3 {
		t.Fatalf("sub.Len() = %d, want 3", sub.Len())
	}
	if sub.Tell() != 0 {
		t.Fatalf("sub.Tell() = %d, want 0", sub.Tell())
	}
	if r.Tell() != 3 {
		t.Fatalf("parent advanced to %d, want 3", r.Tell())
	}
}

func TestReadStringLengthPrefixed(t *testing.T) {
	r := New([]byte{3, 0, 'f', 'o', 'o'})
	s, err := r.ReadString()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "foo" {
		t.Fatalf("got %q, want %q", s, "foo")
	}
}

func TestReadFloat(t *testing.T) {
	// precision=0, significand=MaxInt32 encodes 0.0
	r := New([]byte{0, 0xFF, 0xFF, 0xFF, 0x7F})
	v, err := r.ReadFloat()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0 {
		t.Fatalf("got %v, want 0", v)
	}
}

type testEnum uint8

func (testEnum) Bounds() (uint32, uint32) { return 1, 3 }

func TestReadEnumBounds(t *testing.T) {
	r := New([]byte{5})
	if _, err := ReadEnum[testEnum](r); err == nil {
		t.Fatal("expected out-of-range error")
	}
	r = New([]byte{2})
	v, err := ReadEnum[testEnum](r)
	if err != nil || v != 2 {
		t.Fatalf("got (%v, %v), want (2, nil)", v, err)
	}
}
