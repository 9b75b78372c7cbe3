// Package parallel provides the work distribution machinery for pixel
// traversals: linear index ranges that recursively split into partitions,
// and a work-stealing worker pool that executes the partitions fork/join
// style.
package parallel

// splitThreshold is the granularity floor for splitting. A span splits at
// its midpoint only while the midpoint lies more than this many indices
// past the current position, which bounds both the number of tasks and the
// scheduling overhead per pixel.
const splitThreshold = 1024

// Span is a partition of a linear index range. The end index is inclusive;
// a span whose position has passed its end is exhausted.
//
// Span follows splitting-iterator semantics: TrySplit carves off the upper
// half as a new span and shrinks the receiver, TryAdvance consumes a single
// index, ForEachRemaining drains the rest. A span must only ever be used by
// one goroutine at a time; parallel traversal hands each span to exactly
// one worker.
type Span struct {
	pos int
	end int
}

// NewSpan creates a span covering [start, end]. The end index is inclusive,
// so an empty range is expressed as end < start.
func NewSpan(start, end int) *Span {
	return &Span{pos: start, end: end}
}

// TrySplit splits the span at the midpoint of its remaining range. The
// returned span covers the upper half and the receiver shrinks to the lower
// half. When the remaining range is at or below the granularity floor,
// TrySplit returns nil and leaves the receiver unchanged.
func (s *Span) TrySplit() *Span {
	cur := min(s.pos, s.end)
	mid := cur + (s.end-cur)/2
	if mid > cur+splitThreshold {
		split := &Span{pos: mid, end: s.end}
		s.end = mid - 1
		return split
	}
	return nil
}

// TryAdvance visits the current index and moves past it. It returns false,
// visiting nothing, when the span is exhausted.
func (s *Span) TryAdvance(visit func(i int)) bool {
	if s.pos > s.end {
		return false
	}
	visit(s.pos)
	s.pos++
	return true
}

// ForEachRemaining visits every index left in the span in ascending order,
// leaving the span exhausted.
func (s *Span) ForEachRemaining(visit func(i int)) {
	for ; s.pos <= s.end; s.pos++ {
		visit(s.pos)
	}
}

// Remaining returns the number of indices left in the span.
func (s *Span) Remaining() int {
	return s.end + 1 - s.pos
}
