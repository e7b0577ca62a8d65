package engine

import (
	"bytes"

	"github.com/cockroachdb/errors"
)

// Span is a half-open byte range [Start, End) into a buffer.
type Span struct {
	Start, End int
}

// Len returns the number of bytes covered by s.
func (s Span) Len() int { return s.End - s.Start }

// Layout describes how a body is wrapped and how many row-pairs the two
// cursors can process without meeting.
type Layout struct {
	Body Span
	// Width is the number of bytes per line including the terminator.
	Width int
	// Offset is the length of the final line including its terminator, 1..Width.
	Offset int
	// Rows is the number of Width-sized rows in the body.
	Rows int
	// Pairs is the number of row-pairs that SwapRows may process.
	Pairs int
}

// NewLayout computes the layout of body for wrap width width.
func NewLayout(body Span, width int) (Layout, error) {
	if width < 1 {
		return Layout{}, errors.Newf("engine: invalid wrap width %d", width)
	}
	if body.Start < 0 || body.End < body.Start {
		return Layout{}, errors.Newf("engine: invalid body span [%d, %d)", body.Start, body.End)
	}
	n := body.Len()
	off := n % width
	if off == 0 {
		off = width
	}
	rows := n / width
	return Layout{
		Body:   body,
		Width:  width,
		Offset: off,
		Rows:   rows,
		Pairs:  rows / 2,
	}, nil
}

// Lines returns the number of lines in the body, counting a short final line.
func (l Layout) Lines() int {
	if l.Body.Len() == 0 {
		return 0
	}
	return l.FullLines() + 1
}

// FullLines returns the number of lines before the final line. All of them
// must be exactly Width bytes.
func (l Layout) FullLines() int {
	n := l.Body.Len()
	if n == 0 {
		return 0
	}
	return (n - l.Offset) / l.Width
}

// DetectWidth infers the wrap width of body from its first line: the offset of
// the first '\n' plus one, or the body length when there is no terminator.
func DetectWidth(buf []byte, body Span) int {
	i := bytes.IndexByte(buf[body.Start:body.End], '\n')
	if i < 0 {
		return body.Len()
	}
	return i + 1
}
