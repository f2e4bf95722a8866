package masked_test

import (
	"testing"

	"github.com/erazor-de/ppatch/masked"
)

func TestUnit_Matches(t *testing.T) {
	u := masked.New[uint8](0b10101010, 0b00001111)
	if !u.Matches(0b10011010) {
		t.Error("expected match on low nibble")
	}
	if u.Matches(0b10011011) {
		t.Error("expected mismatch on low nibble")
	}
}

func TestUnit_Apply(t *testing.T) {
	u := masked.New[uint8](0b10101010, 0b00001111)
	if got := u.Apply(0b10011101); got != 0b10011010 {
		t.Errorf("expected %08b, got %08b", 0b10011010, got)
	}
}

func TestUnit_Defined(t *testing.T) {
	tests := []struct {
		literal string
		want    uint8
		defined bool
	}{
		{"0xff", 0xff, true},
		{"0x00", 0x00, true},
		{"0b10101010", 0xaa, true},
		{"0x?f", 0, false},
		{"0b1010101?", 0, false},
		{"0o3?7", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			u := masked.MustParse[uint8](tt.literal)
			v, ok := u.Defined()
			if ok != tt.defined {
				t.Fatalf("expected defined=%v, got %v", tt.defined, ok)
			}
			if ok && v != tt.want {
				t.Errorf("expected %#x, got %#x", tt.want, v)
			}
		})
	}
}

func TestUnit_String(t *testing.T) {
	u := masked.MustParse[uint8]("0x?5")
	if got := u.String(); got != "0b????0101" {
		t.Errorf("expected 0b????0101, got %s", got)
	}

	// rendering parses back to the same unit
	for _, lit := range []string{"0b?01?", "0x?a", "0o3?7", "0xff"} {
		u := masked.MustParse[uint8](lit)
		back, err := masked.Parse[uint8](u.String())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", lit, err)
		}
		if back != u {
			t.Errorf("%s: round trip gave %v, want %v", lit, back, u)
		}
	}
}

func TestBits(t *testing.T) {
	if n := masked.Bits[uint8](); n != 8 {
		t.Errorf("expected 8, got %d", n)
	}
	if n := masked.Bits[uint16](); n != 16 {
		t.Errorf("expected 16, got %d", n)
	}
	if n := masked.Bits[uint32](); n != 32 {
		t.Errorf("expected 32, got %d", n)
	}
	if n := masked.Bits[uint64](); n != 64 {
		t.Errorf("expected 64, got %d", n)
	}
}
