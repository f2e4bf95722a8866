package masked

import (
	"fmt"
	"math/bits"
	"strconv"
)

// Parse reads a single unit literal. The literal starts with a radix prefix,
// "0b" (1 bit per char), "0o" (3 bits per char) or "0x" (4 bits per char),
// followed by digits of that radix or '?' for a digit whose bits are undefined.
//
//	0x?5   value 0b00000101, mask 0b00001111
//	0b?01? value 0b00000010, mask 0b11110110
//
// Errors are returned as *ParseError.
func Parse[T Unsigned](literal string) (Unit[T], error) {
	if len(literal) < 2 {
		return Unit[T]{}, &ParseError{Literal: literal, Err: ErrUnknownPrefix}
	}
	var width int
	switch literal[:2] {
	case "0b":
		width = 1
	case "0o":
		width = 3
	case "0x":
		width = 4
	default:
		return Unit[T]{}, &ParseError{Literal: literal, Err: ErrUnknownPrefix}
	}
	u, err := parseDigits[T](literal[2:], width)
	if err != nil {
		return Unit[T]{}, &ParseError{Literal: literal, Err: err}
	}
	return u, nil
}

// MustParse is like Parse but panics on error.
func MustParse[T Unsigned](literal string) Unit[T] {
	u, err := Parse[T](literal)
	if err != nil {
		panic(err)
	}
	return u
}

func parseDigits[T Unsigned](digits string, width int) (Unit[T], error) {
	radix := 1 << width
	part := T(radix - 1)

	// value starts with all 0s and mask with all 1s so that leading zero
	// digits are accepted. Both are rotated instead of shifted: a bit that
	// wraps around into the low group was pushed out of the type.
	var value T
	mask := ^T(0)

	for _, c := range digits {
		value = rotateLeft(value, width)
		if value&part != 0 {
			return Unit[T]{}, ErrNumberTooBig
		}
		value &^= part

		mask = rotateLeft(mask, width)
		if mask&part != part {
			return Unit[T]{}, ErrNumberTooBig
		}
		mask &^= part

		if c == '?' {
			continue
		}
		d, err := strconv.ParseUint(string(c), radix, 8)
		if err != nil {
			return Unit[T]{}, fmt.Errorf("%w %q", ErrInvalidChar, c)
		}
		value |= T(d)
		mask |= part
	}
	return Unit[T]{value: value, mask: mask}, nil
}

func rotateLeft[T Unsigned](x T, k int) T {
	switch Bits[T]() {
	case 8:
		return T(bits.RotateLeft8(uint8(x), k))
	case 16:
		return T(bits.RotateLeft16(uint16(x), k))
	case 32:
		return T(bits.RotateLeft32(uint32(x), k))
	default:
		return T(bits.RotateLeft64(uint64(x), k))
	}
}
