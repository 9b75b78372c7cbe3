package pix

import "github.com/gogpu/pix/internal/parallel"

// Visitor is the per-pixel callback used by the traversal methods. The
// cursor handed in is repositioned by the traversal as it advances;
// visitors must not retain it beyond the call.
type Visitor func(*Cursor)

// ForEach visits every pixel in ascending index order (row-major,
// top-left to bottom-right). A single cursor is reused for the whole
// traversal.
func (p *Pixmap) ForEach(visit Visitor) {
	cur := p.Cursor()
	for i := 0; i < len(p.data); i++ {
		cur.SetIndex(i)
		visit(cur)
	}
}

// ForEachArea visits every pixel of the w*h area with origin (x, y), in
// row-major order within the area.
// Returns ErrAreaBounds when the area is empty or not entirely inside the
// pixmap.
func (p *Pixmap) ForEachArea(x, y, w, h int, visit Visitor) error {
	if err := p.checkArea(x, y, w, h); err != nil {
		return err
	}
	cur := p.CursorAt(x, y)
	n := w * h
	for i := 0; i < n; i++ {
		cur.SetPosition(x+i%w, y+i/w)
		visit(cur)
	}
	return nil
}

// ForEachParallel visits every pixel using the shared worker pool. The
// pixel range splits recursively into partitions; a single worker drains
// each partition in ascending index order with its own cursor, so visitors
// observe ascending indices within a partition but no particular order
// across partitions. ForEachParallel blocks until every pixel has been
// visited exactly once. There is no cancellation.
//
// The visitor must be safe for concurrent invocation on distinct pixels.
// The traversal does not detect visitors that reach beyond their current
// pixel; a visitor that reads or writes other pixels of the same pixmap
// needs its own synchronization.
//
// Splitting stops well above single pixels, so the parallel methods pay
// off for large pixmaps or expensive visitors; for small images ForEach
// is usually faster.
func (p *Pixmap) ForEachParallel(visit Visitor) {
	workerPool().Invoke(parallel.NewSpan(0, len(p.data)-1), func(s *parallel.Span) {
		cur := p.Cursor()
		s.ForEachRemaining(func(i int) {
			cur.SetIndex(i)
			visit(cur)
		})
	})
}

// ForEachAreaParallel visits every pixel of the w*h area with origin
// (x, y) using the shared worker pool, with the same partitioning and
// ordering behavior as ForEachParallel.
// Returns ErrAreaBounds when the area is empty or not entirely inside the
// pixmap.
func (p *Pixmap) ForEachAreaParallel(x, y, w, h int, visit Visitor) error {
	if err := p.checkArea(x, y, w, h); err != nil {
		return err
	}
	workerPool().Invoke(parallel.NewSpan(0, w*h-1), func(s *parallel.Span) {
		cur := p.CursorAt(x, y)
		s.ForEachRemaining(func(i int) {
			cur.SetPosition(x+i%w, y+i/w)
			visit(cur)
		})
	})
	return nil
}

// checkArea validates that the w*h area with origin (x, y) is non-empty
// and lies entirely inside the pixmap.
func (p *Pixmap) checkArea(x, y, w, h int) error {
	if w <= 0 || h <= 0 || x < 0 || y < 0 || x+w > p.width || y+h > p.height {
		return ErrAreaBounds
	}
	return nil
}
