package pattern

import "github.com/erazor-de/ppatch/masked"

// Matcher is the streaming match state machine.
//
// Units are presented one at a time with Next. Units that may still be part of
// a match are held back in a window of at most Pattern.Len() units. A Matcher
// is not safe for concurrent use.
type Matcher[T masked.Unsigned] struct {
	pattern  *Pattern[T]
	window   []T
	consumed int
	draining bool // a mismatch left units that must be drained before Next
}

// NewMatcher returns a Matcher scanning for p.
func NewMatcher[T masked.Unsigned](p *Pattern[T]) *Matcher[T] {
	return &Matcher[T]{
		pattern: p,
		window:  make([]T, 0, p.Len()),
	}
}

// Drain emits the first unit still held in the window as a NonMatch.
// It must be called until it returns false after every event returned by Next,
// and after the last input unit to flush a trailing partial match.
func (m *Matcher[T]) Drain() (Event[T], bool) {
	if len(m.window) == 0 {
		m.draining = false
		return Event[T]{}, false
	}
	return NonMatchOf(m.shift()), true
}

// Next consumes one unit. It returns false while the unit extends a partial
// match and more input is needed. It panics if called while units from a
// failed match are still waiting to be drained.
func (m *Matcher[T]) Next(unit T) (Event[T], bool) {
	if m.draining {
		panic("pattern: Matcher.Next called before Drain was exhausted")
	}
	m.consumed++

	n := m.pattern.Len()
	if n == 0 {
		return NonMatchOf(unit), true
	}

	m.window = append(m.window, unit)
	if !m.pattern.At(len(m.window) - 1).Matches(unit) {
		// The remainder of the window is not rescanned from pattern position 0.
		m.draining = len(m.window) > 1
		return NonMatchOf(m.shift()), true
	}
	if len(m.window) < n {
		return Event[T]{}, false
	}

	data := m.window
	m.window = make([]T, 0, n)
	return MatchOf(data, m.consumed-n), true
}

// Consumed returns the number of units presented to Next so far.
func (m *Matcher[T]) Consumed() int { return m.consumed }

// Pending returns the number of units held in the window.
func (m *Matcher[T]) Pending() int { return len(m.window) }

func (m *Matcher[T]) shift() T {
	unit := m.window[0]
	copy(m.window, m.window[1:])
	m.window = m.window[:len(m.window)-1]
	return unit
}
