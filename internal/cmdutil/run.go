package cmdutil

import (
	"context"

	"github.com/cockroachdb/errors"

	"revcomp/internal/engine"
	"revcomp/internal/fasta"
)

// Exit codes shared by the revcomp commands.
const (
	ExitOK       = 0
	ExitBadInput = 1 // input is not well-formed FASTA
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

// IsInputError reports whether err describes malformed input rather than an
// I/O or usage problem.
func IsInputError(err error) bool {
	return errors.IsAny(err,
		fasta.ErrEmptyInput,
		fasta.ErrMalformedHeader,
		engine.ErrIrregularLineWidth,
		engine.ErrInvalidAlphabetByte,
	)
}

// ExitCode maps a run error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case IsInputError(err):
		return ExitBadInput
	}
	return ExitIO
}
