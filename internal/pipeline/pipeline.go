// internal/pipeline/pipeline.go
package pipeline

import (
	"context"

	"github.com/cockroachdb/errors"

	"revcomp/internal/engine"
	"revcomp/internal/fasta"
)

// Transformer is the minimal capability Run needs.
// Any implementation (including fakes in tests) can satisfy this.
type Transformer interface {
	Record(buf []byte, body engine.Span) (engine.Layout, error)
}

// Stats summarizes a Run.
type Stats struct {
	Records int // records transformed
	Bases   int // data bytes rewritten
	Lines   int // body lines, including short final lines
}

// Run reverse-complements every record of b in file order. Each record is
// fully transformed before the next one starts. visit, if non-nil, is called
// after each record.
//
// Cancellation is checked between records. On error the buffer may hold a mix
// of transformed and untransformed records and must not be written out.
func Run(
	ctx context.Context,
	b *fasta.Buffer,
	tr Transformer,
	visit func(fasta.Record, engine.Layout),
) (Stats, error) {
	var st Stats
	buf := b.Raw()
	loc := fasta.NewLocator(b)
	for loc.Next() {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		rec := loc.Record()
		l, err := tr.Record(buf, rec.Body)
		if err != nil {
			return st, errors.Wrapf(err, "record %d (%s)", rec.Index, rec.ID(buf))
		}
		st.Records++
		if n := l.Lines(); n > 0 {
			st.Lines += n
			st.Bases += rec.Body.Len() - n
		}
		if visit != nil {
			visit(rec, l)
		}
	}
	return st, loc.Err()
}
