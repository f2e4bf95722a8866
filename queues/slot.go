package queues

// Slot holds at most one pending sequence and hands it out one element at a time.
// A Slot is armed from Set until Dequeue has reported the sequence exhausted;
// only an unarmed Slot accepts a new sequence.
//
// The zero value is an empty, unarmed Slot.
type Slot[T any] struct {
	buf   []T
	head  int
	armed bool
}

// Set installs a new pending sequence. It panics if the previous sequence has
// not been drained yet: overwriting pending output is a programming error.
// An empty sequence still arms the Slot.
//
// The Slot only reads from values; the caller keeps ownership of the slice.
func (s *Slot[T]) Set(values []T) {
	if s.armed {
		panic("queues: Slot.Set called before previous sequence was drained")
	}
	s.buf = values
	s.head = 0
	s.armed = true
}

// Dequeue removes and returns the next pending element.
// When the pending sequence is used up it returns ok=false and disarms the Slot,
// after which further calls keep returning ok=false.
func (s *Slot[T]) Dequeue() (value T, ok bool) {
	if !s.armed {
		return value, false
	}
	if s.Size() == 0 {
		s.buf = nil
		s.head = 0
		s.armed = false
		return value, false
	}
	value = s.buf[s.head]
	s.head++
	return value, true
}

// Armed reports whether a sequence is installed and not yet reported exhausted.
func (s *Slot[T]) Armed() bool {
	return s.armed
}

// Size returns the number of pending elements.
func (s *Slot[T]) Size() int {
	return len(s.buf) - s.head
}
