package pattern

import (
	"github.com/erazor-de/ppatch/masked"
	"github.com/erazor-de/ppatch/queues"
)

// Replacer rewrites matched runs of an event stream with a replacement pattern
// and turns the stream back into units.
type Replacer[T masked.Unsigned] struct {
	pattern *Pattern[T]
	pending queues.Slot[T]
}

// NewReplacer returns a Replacer writing p over every Match it is given.
func NewReplacer[T masked.Unsigned](p *Pattern[T]) *Replacer[T] {
	return &Replacer[T]{pattern: p}
}

// Drain returns the next unit of a rewritten match that has not been handed out yet.
func (r *Replacer[T]) Drain() (T, bool) {
	return r.pending.Dequeue()
}

// Next handles one event. A NonMatch unit is returned unchanged. A Match is
// rewritten; its first unit is returned and the rest becomes available via Drain.
// If the rewrite fails with ErrReplaceNotDefined the match is dropped and the
// Replacer stays usable. A Match with no data rewritten by an empty pattern
// yields ErrEmptyResult; a Matcher never reports such a match.
func (r *Replacer[T]) Next(ev Event[T]) (T, error) {
	if !ev.IsMatch() {
		return ev.Unit, nil
	}
	out, err := r.pattern.Replace(ev.Data)
	if err != nil {
		var zero T
		return zero, err
	}
	if len(out) == 0 {
		var zero T
		return zero, ErrEmptyResult
	}
	r.pending.Set(out[1:])
	return out[0], nil
}
