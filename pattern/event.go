package pattern

import (
	"fmt"
	"strings"

	"github.com/erazor-de/ppatch/masked"
)

type Kind uint8

const (
	NonMatch Kind = iota
	Match
)

func (k Kind) String() string {
	switch k {
	case NonMatch:
		return "NonMatch"
	case Match:
		return "Match"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Event is the output of a scan: either a single unit that is not part of a
// match, or a complete match with the zero-based unit offset of its start.
type Event[T masked.Unsigned] struct {
	Kind  Kind
	Unit  T   // NonMatch only
	Data  []T // Match only, len == pattern length
	Index int // Match only
}

func NonMatchOf[T masked.Unsigned](unit T) Event[T] {
	return Event[T]{Kind: NonMatch, Unit: unit}
}

func MatchOf[T masked.Unsigned](data []T, index int) Event[T] {
	return Event[T]{Kind: Match, Data: data, Index: index}
}

func (e Event[T]) IsMatch() bool { return e.Kind == Match }

// Units returns the units the event stands for, in stream order.
func (e Event[T]) Units() []T {
	if e.Kind == Match {
		return e.Data
	}
	return []T{e.Unit}
}

func (e Event[T]) String() string {
	if e.Kind == Match {
		return fmt.Sprintf("Match{%s @%d}", FormatUnits(e.Data), e.Index)
	}
	return fmt.Sprintf("NonMatch(%#x)", e.Unit)
}

// FormatUnits renders units as a bracketed list of hex numbers.
// A []uint8 given to %x would print as a single hex string instead.
func FormatUnits[T masked.Unsigned](units []T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, u := range units {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%#x", u)
	}
	sb.WriteByte(']')
	return sb.String()
}
