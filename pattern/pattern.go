package pattern

import (
	"strings"

	"github.com/erazor-de/ppatch/masked"
)

// Pattern is an ordered, fixed-length sequence of masked units.
// It is read-only once built and may be shared by several engines.
type Pattern[T masked.Unsigned] struct {
	units []masked.Unit[T]
}

// New returns a Pattern made of units.
func New[T masked.Unsigned](units ...masked.Unit[T]) *Pattern[T] {
	return &Pattern[T]{units: append([]masked.Unit[T](nil), units...)}
}

// Parse reads a whitespace separated list of unit literals.
// The first literal that fails to parse aborts with a *masked.ParseError.
func Parse[T masked.Unsigned](s string) (*Pattern[T], error) {
	fields := strings.Fields(s)
	units := make([]masked.Unit[T], 0, len(fields))
	for _, f := range fields {
		u, err := masked.Parse[T](f)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return &Pattern[T]{units: units}, nil
}

// MustParse is like Parse but panics on error.
func MustParse[T masked.Unsigned](s string) *Pattern[T] {
	p, err := Parse[T](s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pattern[T]) Len() int { return len(p.units) }

func (p *Pattern[T]) At(i int) masked.Unit[T] { return p.units[i] }

// Units returns a copy of the pattern's units.
func (p *Pattern[T]) Units() []masked.Unit[T] {
	return append([]masked.Unit[T](nil), p.units...)
}

// Replace applies the pattern to data and returns the result; data is left untouched.
// Units within data's length overwrite their masked bits. Units past the end
// of data are appended if fully defined, otherwise ErrReplaceNotDefined is returned.
// The result has max(len(data), p.Len()) units.
func (p *Pattern[T]) Replace(data []T) ([]T, error) {
	out := make([]T, max(len(data), len(p.units)))
	copy(out, data)
	for i, u := range p.units {
		if i < len(data) {
			out[i] = u.Apply(data[i])
			continue
		}
		v, ok := u.Defined()
		if !ok {
			return nil, ErrReplaceNotDefined
		}
		out[i] = v
	}
	return out, nil
}

// String returns the units as space separated binary literals.
func (p *Pattern[T]) String() string {
	parts := make([]string, len(p.units))
	for i, u := range p.units {
		parts[i] = u.String()
	}
	return strings.Join(parts, " ")
}
