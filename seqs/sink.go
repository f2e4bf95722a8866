package seqs

import (
	"bufio"
	"encoding/binary"
	"io"
	"iter"

	"github.com/erazor-de/ppatch/masked"
	"github.com/erazor-de/ppatch/pattern"
)

// Flatten yields the units of every event in stream order.
func Flatten[T masked.Unsigned](events iter.Seq[pattern.Event[T]]) iter.Seq[T] {
	return values(TryFlatten(Infallible(events)))
}

// TryFlatten is Flatten over a fallible event sequence. Errors are passed through.
func TryFlatten[T masked.Unsigned](events iter.Seq2[pattern.Event[T], error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for ev, err := range events {
			if err != nil {
				if !yield(0, err) {
					return
				}
				continue
			}
			for _, u := range ev.Units() {
				if !yield(u, nil) {
					return
				}
			}
		}
	}
}

// HandleErrors strips errors from seq by passing each one to handle.
// Iteration stops when handle returns false.
func HandleErrors[T any](seq iter.Seq2[T, error], handle func(error) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, err := range seq {
			if err != nil {
				if !handle(err) {
					return
				}
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// WriteUnits encodes units to w using order and returns the number of units written.
func WriteUnits[T masked.Unsigned](w io.Writer, order binary.ByteOrder, units iter.Seq[T]) (int, error) {
	bw := bufio.NewWriter(w)
	buf := make([]byte, masked.Bits[T]()/8)
	n := 0
	for u := range units {
		encode(buf, order, u)
		if _, err := bw.Write(buf); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

func encode[T masked.Unsigned](buf []byte, order binary.ByteOrder, u T) {
	switch len(buf) {
	case 1:
		buf[0] = byte(u)
	case 2:
		order.PutUint16(buf, uint16(u))
	case 4:
		order.PutUint32(buf, uint32(u))
	default:
		order.PutUint64(buf, uint64(u))
	}
}
