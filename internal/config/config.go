// Package config loads optional JSONC settings files. Every field is
// optional; unset fields leave the command-line defaults alone.
//
//	{
//	  // worker goroutines per record, 0 = all CPUs
//	  "threads": 8,
//	  "width": 61,
//	  "validate": true,
//	}
package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/tailscale/hujson"
)

// ErrInvalid marks configuration files that cannot be parsed or hold
// out-of-range values.
var ErrInvalid = errors.New("invalid config")

// File is the on-disk configuration. Nil fields were not set.
type File struct {
	Threads  *int  `json:"threads,omitempty"`
	Width    *int  `json:"width,omitempty"`
	Validate *bool `json:"validate,omitempty"`
	Stats    *bool `json:"stats,omitempty"`
	Quiet    *bool `json:"quiet,omitempty"`
	Verbose  *bool `json:"verbose,omitempty"`
}

// Load reads and parses the config file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		return File{}, errors.Wrap(err, "read config")
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, errors.Wrapf(err, "%s", path)
	}
	return f, nil
}

// Parse decodes JSONC (JSON with comments and trailing commas).
func Parse(data []byte) (File, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return File{}, errors.Mark(errors.Wrap(err, "invalid JSONC"), ErrInvalid)
	}
	var f File
	dec := json.NewDecoder(bytes.NewReader(standardized))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return File{}, errors.Mark(errors.Wrap(err, "invalid JSON"), ErrInvalid)
	}
	if err := f.validate(); err != nil {
		return File{}, errors.Mark(err, ErrInvalid)
	}
	return f, nil
}

func (f File) validate() error {
	if f.Threads != nil && *f.Threads < 0 {
		return errors.Newf("threads must be >= 0, got %d", *f.Threads)
	}
	if f.Width != nil && (*f.Width < 0 || *f.Width == 1) {
		return errors.Newf("width must be 0 or >= 2, got %d", *f.Width)
	}
	return nil
}
