/*
Package seqs adapts the pattern engines to Go 1.23+ iterators (iter.Seq).

Every combinator has a plain form over iter.Seq and a "Try" form over
iter.Seq2[V, error] for sources that can fail:

  - **Search**: [Search], [TrySearch] turn units into pattern.Event values.
  - **Flow Control**: [Skip], [TrySkip], [Take], [TryTake] demote matches by ordinal.
  - **Rewrite**: [Replace], [TryReplace] turn events back into units, rewriting matches.
  - **Sources and Sinks**: [ReadUnits], [WriteUnits], [Flatten], [Deref], [Infallible].

	p := pattern.MustParse[uint8]("0x4d 0x5a")
	for ev := range seqs.Search(slices.Values(data), p) {
		if ev.IsMatch() {
			fmt.Println(ev.Index)
		}
	}

# Error Handling

The Try variants forward an upstream error on the pull where it occurs and keep
going afterwards; the consumer decides whether to stop by breaking out of the
loop. [TryReplace] wraps upstream errors in *pattern.IteratorError so they can be
told apart from pattern.ErrReplaceNotDefined.

# Laziness

Nothing is read ahead: work happens only while the consumer pulls, and
breaking out of a loop stops the whole chain. No goroutines are started.
*/
package seqs
