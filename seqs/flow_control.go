package seqs

import (
	"iter"

	"github.com/erazor-de/ppatch/masked"
	"github.com/erazor-de/ppatch/pattern"
)

type eventEngine[T masked.Unsigned] interface {
	Next(pattern.Event[T]) pattern.Event[T]
	Drain() (pattern.Event[T], bool)
}

// Skip turns the first n matches into plain non-matching units and passes
// later matches through unchanged.
func Skip[T masked.Unsigned](events iter.Seq[pattern.Event[T]], n int) iter.Seq[pattern.Event[T]] {
	return values(TrySkip(Infallible(events), n))
}

// TrySkip is Skip over a fallible event sequence. Errors are passed through.
func TrySkip[T masked.Unsigned](events iter.Seq2[pattern.Event[T], error], n int) iter.Seq2[pattern.Event[T], error] {
	return func(yield func(pattern.Event[T], error) bool) {
		run(events, pattern.NewSkipper[T](n), yield)
	}
}

// Take passes the first n matches through unchanged and turns all later
// matches into plain non-matching units.
func Take[T masked.Unsigned](events iter.Seq[pattern.Event[T]], n int) iter.Seq[pattern.Event[T]] {
	return values(TryTake(Infallible(events), n))
}

// TryTake is Take over a fallible event sequence. Errors are passed through.
func TryTake[T masked.Unsigned](events iter.Seq2[pattern.Event[T], error], n int) iter.Seq2[pattern.Event[T], error] {
	return func(yield func(pattern.Event[T], error) bool) {
		run(events, pattern.NewTaker[T](n), yield)
	}
}

func run[T masked.Unsigned](
	events iter.Seq2[pattern.Event[T], error],
	e eventEngine[T],
	yield func(pattern.Event[T], error) bool,
) {
	for ev, err := range events {
		if err != nil {
			if !yield(ev, err) {
				return
			}
			continue
		}
		if !yield(e.Next(ev), nil) {
			return
		}
		for ev, ok := e.Drain(); ok; ev, ok = e.Drain() {
			if !yield(ev, nil) {
				return
			}
		}
	}
}
