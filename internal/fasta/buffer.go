// internal/fasta/buffer.go
package fasta

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

var (
	// ErrEmptyInput is returned when the input holds no bytes at all.
	ErrEmptyInput = errors.New("empty input")
	// ErrMalformedHeader is returned for a '>' header line with no line
	// terminator after it.
	ErrMalformedHeader = errors.New("malformed header")
)

// Buffer holds an entire input file plus one zero sentinel byte. The engine
// mutates it in place; it is never resized after loading.
type Buffer struct {
	raw []byte

	// Compressed reports whether the input was gzip or zstd encoded.
	Compressed bool
}

// NewBuffer copies data into a new Buffer.
func NewBuffer(data []byte) *Buffer {
	raw := make([]byte, len(data)+1)
	copy(raw, data)
	return &Buffer{raw: raw}
}

// Bytes returns the input bytes without the sentinel.
func (b *Buffer) Bytes() []byte { return b.raw[:len(b.raw)-1] }

// Raw returns the input bytes followed by the sentinel.
func (b *Buffer) Raw() []byte { return b.raw }

// Len returns the input length.
func (b *Buffer) Len() int { return len(b.raw) - 1 }

// Load reads the whole of path ("-" for stdin) into a Buffer. Regular files
// are read with a single allocation sized from their stat metadata; pipes and
// compressed inputs are read to EOF first.
func Load(path string) (*Buffer, error) {
	fh, size, err := openFile(path)
	if err != nil {
		return nil, err
	}
	if fh != os.Stdin {
		defer fh.Close()
	}

	var b *Buffer
	if size >= 0 {
		b, err = loadSized(fh, size)
	} else {
		b, err = ReadFrom(fh)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", displayName(path))
	}
	if b.Len() == 0 {
		return nil, errors.Wrapf(ErrEmptyInput, "%s", displayName(path))
	}
	return b, nil
}

// ReadFrom reads r to EOF into a Buffer, decompressing gzip or zstd input.
// Load uses it for pipes and other sources without a known size.
func ReadFrom(r io.Reader) (*Buffer, error) {
	b, err := loadStream(r)
	if err != nil {
		return nil, err
	}
	if b.Len() == 0 {
		return nil, ErrEmptyInput
	}
	return b, nil
}

func loadSized(fh *os.File, size int64) (*Buffer, error) {
	adviseSequential(fh, size)
	raw := make([]byte, size+1)
	if _, err := io.ReadFull(fh, raw[:size]); err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(raw, gzipMagic) && !bytes.HasPrefix(raw, zstdMagic) {
		return &Buffer{raw: raw}, nil
	}
	return loadStream(bytes.NewReader(raw[:size]))
}

func loadStream(src io.Reader) (*Buffer, error) {
	r, compressed, err := decompress(src)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &Buffer{raw: append(data, 0), Compressed: compressed}, nil
}

func displayName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}
