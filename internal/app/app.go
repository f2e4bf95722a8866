// Package app wires the ppatch command: read units, search, select matches,
// then either list them or write the patched stream.
package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/erazor-de/ppatch/internal/cli"
	"github.com/erazor-de/ppatch/internal/cmdutil"
	"github.com/erazor-de/ppatch/masked"
	"github.com/erazor-de/ppatch/pattern"
	"github.com/erazor-de/ppatch/seqs"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

var errNotDefined = errors.New("some matches were left unpatched")

// Run executes the command and returns the process exit code.
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("ppatch")
	fs.SetOutput(stderr)
	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		cmdutil.Errorf(stderr, "%v", err)
		return ExitUsage
	}

	in := stdin
	if opts.Input != "" && opts.Input != "-" {
		f, err := os.Open(opts.Input)
		if err != nil {
			cmdutil.Errorf(stderr, "%v", err)
			return ExitError
		}
		defer f.Close()
		in = f
	}

	switch opts.Width {
	case 16:
		err = run[uint16](opts, in, stdout, stderr)
	case 32:
		err = run[uint32](opts, in, stdout, stderr)
	case 64:
		err = run[uint64](opts, in, stdout, stderr)
	default:
		err = run[uint8](opts, in, stdout, stderr)
	}

	var pe *masked.ParseError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &pe):
		cmdutil.Errorf(stderr, "%v", err)
		return ExitUsage
	default:
		cmdutil.Errorf(stderr, "%v", err)
		return ExitError
	}
}

func run[T masked.Unsigned](opts cli.Options, in io.Reader, stdout, stderr io.Writer) error {
	search, err := pattern.Parse[T](opts.Pattern)
	if err != nil {
		return err
	}
	if search.Len() == 0 {
		return &masked.ParseError{Literal: opts.Pattern, Err: errors.New("empty pattern")}
	}
	var repl *pattern.Pattern[T]
	if opts.Replace != "" {
		if repl, err = pattern.Parse[T](opts.Replace); err != nil {
			return err
		}
	}

	order := opts.ByteOrder()
	events := seqs.TrySearch(seqs.ReadUnits[T](in, order), search)
	if opts.Skip > 0 {
		events = seqs.TrySkip(events, opts.Skip)
	}
	if opts.Take >= 0 {
		events = seqs.TryTake(events, opts.Take)
	}

	if repl == nil {
		return list(events, opts, stdout)
	}
	return patch(events, repl, opts, stdout, stderr)
}

// list prints the byte offset and units of every selected match, or their number.
func list[T masked.Unsigned](events iter.Seq2[pattern.Event[T], error], opts cli.Options, stdout io.Writer) error {
	w := bufio.NewWriter(stdout)
	digits := opts.Width / 4
	found := 0
	for ev, err := range events {
		if err != nil {
			return err
		}
		if !ev.IsMatch() {
			continue
		}
		found++
		if opts.Count {
			continue
		}
		fmt.Fprintf(w, "%08x:", ev.Index*opts.Width/8)
		for _, u := range ev.Data {
			fmt.Fprintf(w, " %0*x", digits, u)
		}
		fmt.Fprintln(w)
	}
	if opts.Count {
		fmt.Fprintln(w, found)
	}
	return w.Flush()
}

// patch writes the stream with every selected match rewritten by repl.
// A match repl cannot be applied to is written unchanged and reported as a
// warning, so offsets in the output stay aligned with the input.
func patch[T masked.Unsigned](events iter.Seq2[pattern.Event[T], error], repl *pattern.Pattern[T], opts cli.Options, stdout, stderr io.Writer) error {
	var last pattern.Event[T]
	var tapped iter.Seq2[pattern.Event[T], error] = func(yield func(pattern.Event[T], error) bool) {
		for ev, err := range events {
			last = ev
			if !yield(ev, err) {
				return
			}
		}
	}

	failed := 0
	var patched iter.Seq2[T, error] = func(yield func(T, error) bool) {
		for u, err := range seqs.TryReplace(tapped, repl) {
			if errors.Is(err, pattern.ErrReplaceNotDefined) {
				failed++
				cmdutil.Warnf(stderr, opts.Quiet, "match at %08x left unpatched: %v", last.Index*opts.Width/8, err)
				for _, u := range last.Units() {
					if !yield(u, nil) {
						return
					}
				}
				continue
			}
			if !yield(u, err) {
				return
			}
		}
	}

	var readErr error
	units := seqs.HandleErrors(patched, func(err error) bool {
		readErr = err
		return false
	})

	if _, err := seqs.WriteUnits(stdout, opts.ByteOrder(), units); err != nil {
		return err
	}
	if readErr != nil {
		return readErr
	}
	if failed > 0 {
		return fmt.Errorf("%w (%d)", errNotDefined, failed)
	}
	return nil
}
