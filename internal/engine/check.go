package engine

import (
	"bytes"

	"github.com/cockroachdb/errors"

	"revcomp/internal/complement"
)

var (
	// ErrIrregularLineWidth is returned when a body line other than the last
	// differs from the wrap width, or the last line is longer than it.
	ErrIrregularLineWidth = errors.New("irregular line width")
	// ErrInvalidAlphabetByte is returned for a data byte that is not a
	// nucleotide or IUPAC ambiguity code.
	ErrInvalidAlphabetByte = errors.New("invalid alphabet byte")
)

// CheckRows validates full lines [first, first+count) counted from the front
// of the body. Each must hold Width-1 alphabet bytes followed by '\n'.
func (l Layout) CheckRows(buf []byte, t *complement.Table, first, count int) error {
	w := l.Width
	for k := first; k < first+count; k++ {
		p := l.Body.Start + k*w
		if err := checkData(buf, t, p, p+w-1); err != nil {
			return err
		}
		if buf[p+w-1] != '\n' {
			return errors.Wrapf(ErrIrregularLineWidth,
				"line at offset %d is longer than %d bytes", p, w)
		}
	}
	return nil
}

// CheckLast validates the final line of the body. Its terminator is the last
// byte of the body: either '\n' or the zero sentinel past the end of input.
func (l Layout) CheckLast(buf []byte, t *complement.Table) error {
	if l.Body.Len() == 0 {
		return nil
	}
	p := l.Body.End - l.Offset
	if err := checkData(buf, t, p, l.Body.End-1); err != nil {
		return err
	}
	if c := buf[l.Body.End-1]; c != '\n' && c != 0 {
		return errors.Wrapf(ErrIrregularLineWidth,
			"line at offset %d is longer than %d bytes", p, l.Width)
	}
	return nil
}

func checkData(buf []byte, t *complement.Table, from, to int) error {
	data := buf[from:to]
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return errors.Wrapf(ErrIrregularLineWidth,
			"line at offset %d is %d bytes, want %d", from, i+1, to-from+1)
	}
	for i, c := range data {
		if !t.Valid(c) {
			return errors.Wrapf(ErrInvalidAlphabetByte, "byte %q at offset %d", c, from+i)
		}
	}
	return nil
}
