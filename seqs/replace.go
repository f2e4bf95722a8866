package seqs

import (
	"iter"

	"github.com/erazor-de/ppatch/masked"
	"github.com/erazor-de/ppatch/pattern"
)

// Replace turns events back into units, writing p over every match.
// A match that p cannot be applied to yields pattern.ErrReplaceNotDefined in
// place of its units; iteration continues with the next event.
func Replace[T masked.Unsigned](events iter.Seq[pattern.Event[T]], p *pattern.Pattern[T]) iter.Seq2[T, error] {
	return TryReplace(Infallible(events), p)
}

// TryReplace is Replace over a fallible event sequence.
// Upstream errors are yielded wrapped in *pattern.IteratorError.
func TryReplace[T masked.Unsigned](events iter.Seq2[pattern.Event[T], error], p *pattern.Pattern[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		r := pattern.NewReplacer(p)
		for ev, err := range events {
			if err != nil {
				if !yield(0, &pattern.IteratorError{Err: err}) {
					return
				}
				continue
			}
			u, err := r.Next(ev)
			if !yield(u, err) {
				return
			}
			if err != nil {
				continue
			}
			for u, ok := r.Drain(); ok; u, ok = r.Drain() {
				if !yield(u, nil) {
					return
				}
			}
		}
	}
}
