// internal/complement/complement.go
package complement

// Table maps nucleotide and IUPAC ambiguity codes to their complement.
// A Table is immutable once built and safe for concurrent reads.
type Table struct {
	lut   [256]byte
	valid [256]bool
}

// Default is the table used unless a caller supplies its own.
var Default = New()

const (
	inputs  = "ACGTUMRWSYKVHDBN"
	outputs = "TGCAAKYWSRMBDHVN"
)

// New builds the standard pairing table. Case is preserved: 'a' maps to 't'.
// The line terminator maps to itself, and every byte outside the alphabet
// maps to itself as well.
func New() *Table {
	t := &Table{}
	for i := range t.lut {
		t.lut[i] = byte(i)
	}
	for i := 0; i < len(inputs); i++ {
		in, out := inputs[i], outputs[i]
		t.lut[in] = out
		t.lut[in|0x20] = out | 0x20
		t.valid[in] = true
		t.valid[in|0x20] = true
	}
	t.lut['\n'] = '\n'
	return t
}

// Lookup returns the complement of b.
func (t *Table) Lookup(b byte) byte { return t.lut[b] }

// Valid reports whether b is a nucleotide or ambiguity code, either case.
func (t *Table) Valid(b byte) bool { return t.valid[b] }

// ReverseComplement appends the reverse complement of src to dst[:0] and
// returns it. src must not contain line terminators and must not overlap dst.
func (t *Table) ReverseComplement(dst, src []byte) []byte {
	n := len(src)
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i := 0; i < n; i++ {
		dst[i] = t.lut[src[n-1-i]]
	}
	return dst
}
