package cli

import (
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Patterns
	Pattern string
	Replace string

	// Match selection
	Skip int
	Take int // -1 = all

	// Input encoding
	Width  int
	Endian string

	// Output
	Count bool
	Quiet bool

	Input string // "" or "-" = stdin
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: search and patch binary streams with wildcard patterns

Patterns are whitespace separated unit literals: 0b (binary), 0o (octal) or
0x (hex) followed by digits, '?' marks a digit whose bits are don't-care.

Usage of %s:
  %s -pattern "0x4d 0x5a 0x?? 0x00" [-replace "..."] [flags] [file]
`, name, name, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Pattern, "pattern", "", "search pattern [*]")
	fs.StringVar(&opt.Replace, "replace", "", "replacement pattern; writes the patched stream to stdout")

	fs.IntVar(&opt.Skip, "skip", 0, "leave the first N matches alone [0]")
	fs.IntVar(&opt.Take, "take", -1, "only use N matches after -skip (-1 = all) [-1]")

	fs.IntVar(&opt.Width, "width", 8, "unit width in bits: 8 | 16 | 32 | 64 [8]")
	fs.StringVar(&opt.Endian, "endian", "big", "byte order of units wider than 8 bits: big | little [big]")

	fs.BoolVar(&opt.Count, "count", false, "print the number of matches only [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opt.Input = fs.Arg(0)
	default:
		return opt, errors.New("at most one input file is allowed")
	}

	// Validation
	if opt.Pattern == "" {
		return opt, errors.New("-pattern is required")
	}
	if opt.Count && opt.Replace != "" {
		return opt, errors.New("-count conflicts with -replace")
	}
	if opt.Skip < 0 {
		return opt, errors.New("-skip must be ≥ 0")
	}
	if opt.Take < -1 {
		return opt, errors.New("-take must be ≥ -1")
	}
	switch opt.Width {
	case 8, 16, 32, 64:
	default:
		return opt, fmt.Errorf("invalid -width %d", opt.Width)
	}
	if opt.Endian != "big" && opt.Endian != "little" {
		return opt, fmt.Errorf("invalid -endian %q", opt.Endian)
	}
	return opt, nil
}

// ByteOrder returns the byte order selected with -endian.
func (o Options) ByteOrder() binary.ByteOrder {
	if o.Endian == "little" {
		return binary.LittleEndian
	}
	return binary.BigEndian
}
