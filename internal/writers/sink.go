// internal/writers/sink.go
package writers

import (
	"bytes"
	"io"
	"os"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/natefinch/atomic"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// Write sends data to stdout when path is "-", and otherwise atomically
// replaces the file at path. New files are created with mode 0644; existing
// files keep their mode.
func Write(path string, stdout io.Writer, data []byte) error {
	if path == "-" || path == "" {
		_, err := stdout.Write(data)
		return err
	}
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}
	return os.Chmod(path, mode)
}
