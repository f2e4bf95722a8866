/*
Package pattern implements streaming search and rewrite of fixed-width unsigned
units against a fixed-length pattern of masked wildcards.

A [Pattern] is parsed from whitespace separated unit literals (see [masked.Parse]):

	p, err := pattern.Parse[uint8]("0x4d 0x5a 0x?? 0x00")

The engines are single-owner cursors driven one unit or event at a time:

  - [Matcher] turns units into [Event]s, reporting non-overlapping matches left to right.
  - [Replacer] rewrites matched runs with a replacement Pattern.
  - [Skipper] and [Taker] demote matches to plain units by their ordinal.

Every engine follows the same drain-before-advance protocol: after an engine
returns output, Drain must be called until it reports nothing before the next
input is presented, and once more after the last input. Package seqs wraps the
engines as iter.Seq adapters that follow this protocol.

# Known limitation

When a partial match fails, the Matcher emits the tentatively consumed units as
non-matches without rescanning them from pattern position 0. Matches that start
inside such a discarded window are not reported for self-overlapping patterns.
*/
package pattern
