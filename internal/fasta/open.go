// internal/fasta/open.go
package fasta

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type zstdCloser struct{ d *zstd.Decoder }

func (z zstdCloser) Close() error { z.d.Close(); return nil }

// decompress wraps r in a gzip or zstd decoder when its first bytes carry the
// matching magic number. The bool is false for plain input, in which case the
// returned reader still yields every byte of r. Closing the result releases
// the decoder only; r is left open.
func decompress(r io.Reader) (io.ReadCloser, bool, error) {
	br := bufio.NewReaderSize(r, 1<<16)
	sig, _ := br.Peek(4)
	switch {
	case bytes.HasPrefix(sig, gzipMagic):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, false, errors.Wrap(err, "gzip")
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr}}, true, nil
	case bytes.HasPrefix(sig, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, false, errors.Wrap(err, "zstd")
		}
		return &multiReadCloser{Reader: zr, closers: []io.Closer{zstdCloser{zr}}}, true, nil
	}
	return io.NopCloser(br), false, nil
}

// openFile opens path, or stdin for "-". The size is the byte length of a
// regular, uncompressed file and -1 otherwise.
func openFile(path string) (*os.File, int64, error) {
	if path == "-" {
		return os.Stdin, statSize(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	return fh, statSize(fh), nil
}

func statSize(f *os.File) int64 {
	fi, err := f.Stat()
	if err != nil || !fi.Mode().IsRegular() {
		return -1
	}
	return fi.Size()
}
