// internal/pipeline/partition.go
package pipeline

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"revcomp/internal/complement"
	"revcomp/internal/engine"
)

// fallbackThreads is used when the CPU count cannot be determined.
const fallbackThreads = 4

// Config controls how records are transformed. It is resolved once by New and
// never changes afterwards.
type Config struct {
	Threads  int               // worker goroutines per record; <= 0 means all CPUs
	Width    int               // wrap width including '\n'; 0 detects it per record
	Validate bool              // reject irregular lines and non-IUPAC bytes
	Table    *complement.Table // nil means complement.Default
}

// Share is a contiguous run of row-pairs assigned to one worker.
type Share struct {
	First, Count int
}

// Shares divides pairs row-pairs into n contiguous shares. The first
// pairs%n shares get one extra row-pair.
func Shares(pairs, n int) []Share {
	if n < 1 {
		n = 1
	}
	base, rem := pairs/n, pairs%n
	out := make([]Share, n)
	next := 0
	for i := range out {
		c := base
		if i < rem {
			c++
		}
		out[i] = Share{First: next, Count: c}
		next += c
	}
	return out
}

// Partitioner reverse-complements one record body at a time, splitting the
// body's row-pairs across goroutines.
type Partitioner struct {
	cfg     Config
	threads int
}

// New resolves cfg into a Partitioner.
func New(cfg Config) *Partitioner {
	thr := cfg.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	if thr <= 0 {
		thr = fallbackThreads
	}
	if cfg.Table == nil {
		cfg.Table = complement.Default
	}
	return &Partitioner{cfg: cfg, threads: thr}
}

// Threads returns the number of goroutines used per record.
func (p *Partitioner) Threads() int { return p.threads }

// Record reverse-complements body in place. All goroutines it starts have
// exited by the time it returns. When validation is enabled and fails, the
// body is left unmodified.
func (p *Partitioner) Record(buf []byte, body engine.Span) (engine.Layout, error) {
	if body.Len() == 0 {
		return engine.Layout{Body: body}, nil
	}
	w := p.cfg.Width
	if w == 0 {
		w = engine.DetectWidth(buf, body)
	}
	l, err := engine.NewLayout(body, w)
	if err != nil {
		return l, err
	}
	if p.cfg.Validate {
		if err := p.check(buf, l); err != nil {
			return l, err
		}
	}
	p.transform(buf, l)
	return l, nil
}

func (p *Partitioner) transform(buf []byte, l engine.Layout) {
	t := p.cfg.Table
	shares := Shares(l.Pairs, p.threads)
	last := shares[len(shares)-1]

	var g errgroup.Group
	for _, s := range shares[:len(shares)-1] {
		if s.Count == 0 {
			continue
		}
		g.Go(func() error {
			l.SwapRows(buf, t, s.First, s.Count)
			return nil
		})
	}
	// The last share owns the middle of the body.
	l.SwapTail(buf, t, last.First)
	_ = g.Wait()
}

// check validates every line of the body, splitting lines across goroutines
// the same way transform splits row-pairs. The reported error is the one
// closest to the start of the body.
func (p *Partitioner) check(buf []byte, l engine.Layout) error {
	t := p.cfg.Table
	shares := Shares(l.FullLines(), p.threads)
	errs := make([]error, len(shares))
	last := len(shares) - 1

	var g errgroup.Group
	for i, s := range shares[:last] {
		if s.Count == 0 {
			continue
		}
		g.Go(func() error {
			errs[i] = l.CheckRows(buf, t, s.First, s.Count)
			return errs[i]
		})
	}
	errs[last] = l.CheckRows(buf, t, shares[last].First, shares[last].Count)
	if errs[last] == nil {
		errs[last] = l.CheckLast(buf, t)
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
