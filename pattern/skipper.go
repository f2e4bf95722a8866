package pattern

import (
	"github.com/erazor-de/ppatch/masked"
	"github.com/erazor-de/ppatch/queues"
)

// demoter turns selected matches back into single NonMatch units.
type demoter[T masked.Unsigned] struct {
	count   int
	found   int
	pending queues.Slot[T]
}

func (d *demoter[T]) Drain() (Event[T], bool) {
	unit, ok := d.pending.Dequeue()
	if !ok {
		return Event[T]{}, false
	}
	return NonMatchOf(unit), true
}

// Found returns the number of matches seen so far.
func (d *demoter[T]) Found() int { return d.found }

func (d *demoter[T]) next(ev Event[T], demote func(ordinal int) bool) Event[T] {
	if !ev.IsMatch() {
		return ev
	}
	d.found++
	if !demote(d.found) || len(ev.Data) == 0 {
		return ev
	}
	d.pending.Set(ev.Data[1:])
	return NonMatchOf(ev.Data[0])
}

// Skipper demotes the first n matches of an event stream to their units and
// passes later matches through unchanged. Non-matches always pass through.
type Skipper[T masked.Unsigned] struct {
	demoter[T]
}

func NewSkipper[T masked.Unsigned](n int) *Skipper[T] {
	return &Skipper[T]{demoter[T]{count: n}}
}

// Next handles one event. A demoted match yields its first unit here and the
// rest via Drain.
func (s *Skipper[T]) Next(ev Event[T]) Event[T] {
	return s.next(ev, func(ordinal int) bool { return ordinal <= s.count })
}

// Taker passes the first n matches of an event stream through unchanged and
// demotes all later matches to their units. Non-matches always pass through.
type Taker[T masked.Unsigned] struct {
	demoter[T]
}

func NewTaker[T masked.Unsigned](n int) *Taker[T] {
	return &Taker[T]{demoter[T]{count: n}}
}

// Next handles one event. A demoted match yields its first unit here and the
// rest via Drain.
func (t *Taker[T]) Next(ev Event[T]) Event[T] {
	return t.next(ev, func(ordinal int) bool { return ordinal > t.count })
}
