// internal/fasta/locator.go
package fasta

import (
	"bytes"

	"github.com/cockroachdb/errors"

	"revcomp/internal/engine"
)

// Record locates one FASTA record inside a Buffer.
type Record struct {
	Index int
	// Header runs from the '>' marker up to, not including, its terminator.
	Header engine.Span
	// Body runs from the byte after the header terminator up to the next
	// marker or the end of input. When the input does not end in '\n' the
	// last body also covers the sentinel, which serves as the terminator of
	// its final line.
	Body engine.Span
}

// ID returns the first word of the header, without the '>' marker.
func (r Record) ID(buf []byte) string {
	h := buf[r.Header.Start+1 : r.Header.End]
	if f := bytes.Fields(h); len(f) > 0 {
		return string(f[0])
	}
	return ""
}

var markerSep = []byte("\n>")

// Locator yields the records of a Buffer in file order. A marker is a '>' at
// the start of the input or right after a '\n'.
//
//	loc := fasta.NewLocator(buf)
//	for loc.Next() {
//		rec := loc.Record()
//		...
//	}
//	if err := loc.Err(); err != nil { ... }
type Locator struct {
	data []byte
	end  int
	next int // offset of the next marker, -1 when exhausted
	idx  int
	rec  Record
	err  error
}

// NewLocator returns a Locator positioned before the first record.
func NewLocator(b *Buffer) *Locator {
	data := b.Bytes()
	end := len(data)
	if end > 0 && data[end-1] != '\n' {
		end++
	}
	return &Locator{data: data, end: end, next: firstMarker(data)}
}

// Next advances to the next record. It returns false when there are no more
// records or a malformed header was found; check Err to tell them apart.
func (l *Locator) Next() bool {
	if l.err != nil || l.next < 0 {
		return false
	}
	m := l.next
	nl := bytes.IndexByte(l.data[m:], '\n')
	if nl < 0 {
		l.err = errors.Wrapf(ErrMalformedHeader,
			"record %d at offset %d has no line terminator", l.idx, m)
		l.next = -1
		return false
	}
	bodyStart := m + nl + 1
	bodyEnd := l.end
	l.next = markerAfter(l.data, bodyStart)
	if l.next >= 0 {
		bodyEnd = l.next
	}
	l.rec = Record{
		Index:  l.idx,
		Header: engine.Span{Start: m, End: m + nl},
		Body:   engine.Span{Start: bodyStart, End: bodyEnd},
	}
	l.idx++
	return true
}

// Record returns the record found by the last successful call to Next.
func (l *Locator) Record() Record { return l.rec }

// Err returns the error that stopped iteration, if any.
func (l *Locator) Err() error { return l.err }

// Preamble returns the bytes before the first marker. They belong to no
// record and are left untouched.
func (l *Locator) Preamble() engine.Span {
	if m := firstMarker(l.data); m >= 0 {
		return engine.Span{Start: 0, End: m}
	}
	return engine.Span{Start: 0, End: len(l.data)}
}

func firstMarker(data []byte) int {
	if len(data) > 0 && data[0] == '>' {
		return 0
	}
	return markerAfter(data, 1)
}

// markerAfter returns the offset of the first marker at or after from, which
// must be > 0, or -1.
func markerAfter(data []byte, from int) int {
	if from > len(data) {
		return -1
	}
	i := bytes.Index(data[from-1:], markerSep)
	if i < 0 {
		return -1
	}
	return from + i
}
