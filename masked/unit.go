package masked

import (
	"math/bits"
	"strings"
)

// Unsigned is the set of fixed-width unsigned integers a Unit can be built from.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Unit is a value together with a mask over one fixed-width unsigned integer.
// Bits of value where the mask bit is 0 carry no meaning.
type Unit[T Unsigned] struct {
	value T
	mask  T // 0 bit = wildcard
}

// New returns a Unit. Value bits outside of mask are cleared.
func New[T Unsigned](value, mask T) Unit[T] {
	return Unit[T]{value: value & mask, mask: mask}
}

// Bits returns the width of T in bits.
func Bits[T Unsigned]() int {
	return bits.OnesCount64(uint64(^T(0)))
}

func (u Unit[T]) Value() T { return u.value }

func (u Unit[T]) Mask() T { return u.mask }

// Matches reports whether all masked bits of data equal the masked bits of the unit.
func (u Unit[T]) Matches(data T) bool {
	return data&u.mask == u.value&u.mask
}

// Apply overwrites the masked bits of data with the unit's value and keeps the rest.
func (u Unit[T]) Apply(data T) T {
	return (data &^ u.mask) | (u.value & u.mask)
}

// Defined returns the value if every bit is pinned.
func (u Unit[T]) Defined() (T, bool) {
	if u.mask == ^T(0) {
		return u.value, true
	}
	return 0, false
}

// String renders the unit as a binary literal, one '0', '1' or '?' per bit,
// most significant bit first. The result parses back to the same unit.
func (u Unit[T]) String() string {
	n := Bits[T]()
	var sb strings.Builder
	sb.Grow(n + 2)
	sb.WriteString("0b")
	for i := n - 1; i >= 0; i-- {
		bit := T(1) << i
		switch {
		case u.mask&bit == 0:
			sb.WriteByte('?')
		case u.value&bit == 0:
			sb.WriteByte('0')
		default:
			sb.WriteByte('1')
		}
	}
	return sb.String()
}
