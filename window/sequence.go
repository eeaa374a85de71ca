package window

import (
	"iter"
	"time"
)

// Timestamps returns the stride-spaced snapshot times of the window, from
// Start to End inclusive. The sequence is finite, bounded by the End
// comparison, and can be iterated any number of times. It is empty when
// Start is after End.
func (w ResolvedWindow) Timestamps() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if w.Stride <= 0 {
			return
		}
		for t := w.Start; !t.After(w.End); t = t.Add(w.Stride) {
			if !yield(t) {
				return
			}
		}
	}
}

// Count returns the number of timestamps Timestamps yields.
func (w ResolvedWindow) Count() int {
	if w.Stride <= 0 || w.Start.After(w.End) {
		return 0
	}
	return int(w.End.Sub(w.Start)/w.Stride) + 1
}
