package binary

import (
	"bytes"
	"testing"
)

func TestRoundTripLittle(t *testing.T) {
	b := make([]byte, 8)

	Put[uint16](b, 0xBEEF)
	if got := Get[uint16](b); got != 0xBEEF {
		t.Errorf("TestRoundTripLittle(uint16): got %#x, want 0xbeef", got)
	}
	if !bytes.Equal(b[:2], []byte{0xEF, 0xBE}) {
		t.Errorf("TestRoundTripLittle(uint16): wire bytes %#v, want ef be", b[:2])
	}

	Put[int32](b, -2)
	if got := Get[int32](b); got != -2 {
		t.Errorf("TestRoundTripLittle(int32): got %d, want -2", got)
	}

	Put[uint64](b, 0x0102030405060708)
	if got := Get[uint64](b); got != 0x0102030405060708 {
		t.Errorf("TestRoundTripLittle(uint64): got %#x", got)
	}
	if b[0] != 0x08 || b[7] != 0x01 {
		t.Errorf("TestRoundTripLittle(uint64): wire order wrong: %#v", b)
	}
}

func TestRoundTripBig(t *testing.T) {
	b := make([]byte, 8)

	PutBE[uint16](b, 0xBEEF)
	if got := GetBE[uint16](b); got != 0xBEEF {
		t.Errorf("TestRoundTripBig(uint16): got %#x, want 0xbeef", got)
	}
	if !bytes.Equal(b[:2], []byte{0xBE, 0xEF}) {
		t.Errorf("TestRoundTripBig(uint16): wire bytes %#v, want be ef", b[:2])
	}

	PutBE[int16](b, -1)
	if got := GetBE[int16](b); got != -1 {
		t.Errorf("TestRoundTripBig(int16): got %d, want -1", got)
	}

	PutBE[uint32](b, 5)
	if !bytes.Equal(b[:4], []byte{0, 0, 0, 5}) {
		t.Errorf("TestRoundTripBig(uint32): wire bytes %#v, want 00 00 00 05", b[:4])
	}
}

func TestSignExtension(t *testing.T) {
	if got := Get[int8]([]byte{0xFF}); got != -1 {
		t.Errorf("TestSignExtension(int8): got %d, want -1", got)
	}
	if got := GetBE[int32]([]byte{0xFF, 0xFF, 0xFF, 0xFE}); got != -2 {
		t.Errorf("TestSignExtension(int32 BE): got %d, want -2", got)
	}
	if got := Get[int64]([]byte{0xFE, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}); got != -2 {
		t.Errorf("TestSignExtension(int64 LE): got %d, want -2", got)
	}
}

func TestSize(t *testing.T) {
	if got := Size[int8](); got != 1 {
		t.Errorf("TestSize(int8): got %d, want 1", got)
	}
	if got := Size[uint16](); got != 2 {
		t.Errorf("TestSize(uint16): got %d, want 2", got)
	}
	if got := Size[int32](); got != 4 {
		t.Errorf("TestSize(int32): got %d, want 4", got)
	}
	if got := Size[uint64](); got != 8 {
		t.Errorf("TestSize(uint64): got %d, want 8", got)
	}
}
