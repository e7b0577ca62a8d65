// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"

	"revcomp/internal/cli"
	"revcomp/internal/cmdutil"
	"revcomp/internal/engine"
	"revcomp/internal/fasta"
	"revcomp/internal/pipeline"
	"revcomp/internal/version"
	"revcomp/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("revcomp")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		code := cmdutil.ExitOK
		if !errors.Is(err, flag.ErrHelp) {
			_, _ = fmt.Fprintln(stderr, err)
			code = cmdutil.ExitUsage
		}
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, code)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "revcomp version %s\n", version.Version)
		return flush(outw, stderr, cmdutil.ExitOK)
	}

	buf, err := fasta.Load(opts.Input)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.ExitCode(err)
	}
	if buf.Compressed {
		cmdutil.Infof(stderr, opts.Verbose, "decompressed input to %d bytes; output is uncompressed", buf.Len())
	}
	if pre := fasta.NewLocator(buf).Preamble(); pre.Len() > 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "%d bytes before the first header left unchanged", pre.Len())
	}

	part := pipeline.New(pipeline.Config{
		Threads:  opts.Threads,
		Width:    opts.Width,
		Validate: !opts.NoValidate,
	})
	cmdutil.Infof(stderr, opts.Verbose, "%d threads per record, validation %t", part.Threads(), !opts.NoValidate)

	visit := func(rec fasta.Record, l engine.Layout) {
		cmdutil.Infof(stderr, opts.Verbose, "record %d (%s): %d bytes, width %d",
			rec.Index, rec.ID(buf.Bytes()), rec.Body.Len(), l.Width)
	}
	st, err := pipeline.Run(parent, buf, part, visit)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.ExitCode(err)
	}
	if st.Records == 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "no FASTA records found; input copied unchanged")
	}

	if err := writers.Write(opts.Output, outw, buf.Bytes()); err != nil {
		if writers.IsBrokenPipe(err) {
			return cmdutil.ExitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.ExitIO
	}
	if code := flush(outw, stderr, cmdutil.ExitOK); code != cmdutil.ExitOK {
		return code
	}

	if opts.Stats {
		_, _ = fmt.Fprintf(stderr, "records\t%d\nlines\t%d\nbases\t%d\nbytes\t%d\nxxhash64\t%s\n",
			st.Records, st.Lines, st.Bases, buf.Len(), writers.Digest(buf.Bytes()))
	}
	return cmdutil.ExitOK
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// flush flushes outw and returns code, or the I/O exit code if the flush
// failed for a reason other than a closed pipe.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return cmdutil.ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return cmdutil.ExitIO
	}
	return code
}
