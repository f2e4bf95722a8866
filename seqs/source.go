package seqs

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"iter"

	"github.com/erazor-de/ppatch/masked"
)

// Infallible lifts a plain sequence into the fallible shape. The error is always nil.
func Infallible[T any](seq iter.Seq[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v := range seq {
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Deref yields the values behind a sequence of pointers.
func Deref[T any](seq iter.Seq[*T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range seq {
			if !yield(*p) {
				return
			}
		}
	}
}

// values drops the error half of a sequence known to never fail.
func values[T any](seq iter.Seq2[T, error]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}

// ReadUnits decodes fixed-width units from r using order.
// The sequence ends at io.EOF. A trailing partial unit yields io.ErrUnexpectedEOF;
// that and any other read error is yielded once and ends the sequence.
func ReadUnits[T masked.Unsigned](r io.Reader, order binary.ByteOrder) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		br := bufio.NewReader(r)
		buf := make([]byte, masked.Bits[T]()/8)
		for {
			_, err := io.ReadFull(br, buf)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(0, err)
				return
			}
			if !yield(decode[T](buf, order), nil) {
				return
			}
		}
	}
}

func decode[T masked.Unsigned](buf []byte, order binary.ByteOrder) T {
	switch len(buf) {
	case 1:
		return T(buf[0])
	case 2:
		return T(order.Uint16(buf))
	case 4:
		return T(order.Uint32(buf))
	default:
		return T(order.Uint64(buf))
	}
}
