package pattern_test

import (
	"fmt"

	"github.com/erazor-de/ppatch/pattern"
)

func ExampleMatcher() {
	p := pattern.MustParse[uint8]("0b???0???? 0b???1????")
	m := pattern.NewMatcher(p)

	drain := func() {
		for ev, ok := m.Drain(); ok; ev, ok = m.Drain() {
			fmt.Println(ev)
		}
	}
	for _, u := range []uint8{0x1a, 0x2b, 0x3c, 0x4d, 0x5e, 0x6f} {
		if ev, ok := m.Next(u); ok {
			fmt.Println(ev)
			drain()
		}
	}
	// end of stream
	drain()

	// Output:
	// NonMatch(0x1a)
	// Match{[0x2b 0x3c] @1}
	// Match{[0x4d 0x5e] @3}
	// NonMatch(0x6f)
}

func ExamplePattern_Replace() {
	p := pattern.MustParse[uint8]("0x?a 0x2? 0x3c 0x4d")
	out, err := p.Replace([]uint8{0x12, 0x1b})
	fmt.Println(pattern.FormatUnits(out), err)

	// Output:
	// [0x1a 0x2b 0x3c 0x4d] <nil>
}
