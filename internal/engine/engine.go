// internal/engine/engine.go
package engine

import (
	"github.com/cockroachdb/errors"

	"revcomp/internal/complement"
	"revcomp/internal/invariants"
)

// SwapRows reverse-complements row-pairs [first, first+count) of the body.
//
// Pre: 0 <= first, first+count <= l.Pairs.
// Post: the front cursor has advanced and the back cursor has retreated by
// count*Width bytes; no byte outside those two regions was touched.
//
// Different goroutines may call SwapRows on the same buffer as long as their
// row-pair ranges are disjoint.
func (l Layout) SwapRows(buf []byte, t *complement.Table, first, count int) {
	if invariants.Enabled && (first < 0 || count < 0 || first+count > l.Pairs) {
		panic(errors.AssertionFailedf("engine: row-pairs [%d, %d) outside [0, %d)", first, first+count, l.Pairs))
	}
	b := buf[l.Body.Start:l.Body.End:l.Body.End]
	w, off := l.Width, l.Offset
	lo := first * w
	hi := len(b) - 2 - first*w

	for r := 0; r < count; r++ {
		for i := 1; i < off; i++ {
			b[lo], b[hi] = t.Lookup(b[hi]), t.Lookup(b[lo])
			lo++
			hi--
		}
		hi--
		for i := off; i < w; i++ {
			b[lo], b[hi] = t.Lookup(b[hi]), t.Lookup(b[lo])
			lo++
			hi--
		}
		lo++
	}
}

// SwapTail reverse-complements every row-pair from first up to the point
// where the cursors meet, including the middle byte of an odd-length
// sequence.
//
// Pre: 0 <= first <= l.Pairs, and row-pairs [first, l.Pairs) are not being
// processed by anyone else.
func (l Layout) SwapTail(buf []byte, t *complement.Table, first int) {
	if invariants.Enabled && (first < 0 || first > l.Pairs) {
		panic(errors.AssertionFailedf("engine: tail row-pair %d outside [0, %d]", first, l.Pairs))
	}
	if l.Width < 2 || l.Body.Len() < 2 {
		// No data bytes.
		return
	}
	b := buf[l.Body.Start:l.Body.End:l.Body.End]
	w, off := l.Width, l.Offset
	lo := first * w
	hi := len(b) - 2 - first*w

walk:
	for {
		for i := 1; i < off; i++ {
			if lo >= hi {
				break walk
			}
			b[lo], b[hi] = t.Lookup(b[hi]), t.Lookup(b[lo])
			lo++
			hi--
		}
		hi--
		for i := off; i < w; i++ {
			if lo >= hi {
				break walk
			}
			b[lo], b[hi] = t.Lookup(b[hi]), t.Lookup(b[lo])
			lo++
			hi--
		}
		lo++
	}
	if lo == hi {
		b[lo] = t.Lookup(b[lo])
	}
}

// Transform reverse-complements the whole body on the calling goroutine.
func Transform(buf []byte, t *complement.Table, l Layout) {
	l.SwapTail(buf, t, 0)
}
