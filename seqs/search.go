package seqs

import (
	"iter"

	"github.com/erazor-de/ppatch/masked"
	"github.com/erazor-de/ppatch/pattern"
)

// Search scans units for p and yields one event per non-matching unit or match.
func Search[T masked.Unsigned](units iter.Seq[T], p *pattern.Pattern[T]) iter.Seq[pattern.Event[T]] {
	return values(TrySearch(Infallible(units), p))
}

// TrySearch scans a fallible source of units for p.
//
// The resulting sequence yields pairs of (event, error). If the source yields an error:
//   - The error is yielded to the consumer along with a zero Event.
//   - The scan CONTINUES with the next unit if the consumer returns true.
//
// Units held back as a partial match are flushed as non-matches when the source ends.
func TrySearch[T masked.Unsigned](units iter.Seq2[T, error], p *pattern.Pattern[T]) iter.Seq2[pattern.Event[T], error] {
	return func(yield func(pattern.Event[T], error) bool) {
		m := pattern.NewMatcher(p)
		drain := func() bool {
			for ev, ok := m.Drain(); ok; ev, ok = m.Drain() {
				if !yield(ev, nil) {
					return false
				}
			}
			return true
		}

		for u, err := range units {
			if err != nil {
				if !yield(pattern.Event[T]{}, err) {
					return
				}
				continue
			}
			if ev, ok := m.Next(u); ok {
				if !yield(ev, nil) || !drain() {
					return
				}
			}
		}
		drain()
	}
}
