// internal/cli/options.go
package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"

	"revcomp/internal/config"
	"revcomp/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input / output
	Input  string
	Output string
	Config string

	// Transform
	Threads    int
	Width      int
	NoValidate bool

	// Reporting
	Stats   bool
	Quiet   bool
	Verbose bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: in-place reverse complement of wrapped FASTA

Version: %s

Usage:
  %s [flags] [input]

Records are reverse-complemented in file order; headers and line
breaks stay where they are. Input may be plain, gzip or zstd.

Flags:
`, name, version.Version, name)
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), `
Examples:
  %[1]s genome.fa > genome.rc.fa
  zcat reads.fa.gz | %[1]s -t 8 --stats
  %[1]s -i genome.fa -o genome.fa        # replace in place
`, name)
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Values from --config fill in every flag not given on the command line.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.StringVarP(&opt.Input, "input", "i", "-", "input FASTA file ('-' = STDIN)")
	fs.StringVarP(&opt.Output, "output", "o", "-", "output file ('-' = STDOUT), replaced atomically")
	fs.StringVarP(&opt.Config, "config", "c", "", "JSONC config file")

	fs.IntVarP(&opt.Threads, "threads", "t", 0, "worker goroutines per record (0 = all CPUs)")
	fs.IntVarP(&opt.Width, "width", "w", 0, "line width including the newline (0 = detect per record)")
	fs.BoolVar(&opt.NoValidate, "no-validate", false, "skip line-width and alphabet checks")

	fs.BoolVar(&opt.Stats, "stats", false, "print counts and an output digest to STDERR")
	fs.BoolVarP(&opt.Quiet, "quiet", "q", false, "suppress warnings")
	fs.BoolVar(&opt.Verbose, "verbose", false, "print progress to STDERR")

	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}

	switch args := fs.Args(); {
	case len(args) > 1:
		return opt, errors.Newf("expected at most one input file, got %d", len(args))
	case len(args) == 1 && fs.Changed("input"):
		return opt, errors.New("positional input conflicts with --input")
	case len(args) == 1:
		opt.Input = args[0]
	}

	if opt.Config != "" {
		f, err := config.Load(opt.Config)
		if err != nil {
			return opt, err
		}
		merge(fs, &opt, f)
	}

	// Validation
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.Width < 0 || opt.Width == 1 {
		return opt, errors.New("--width must be 0 or ≥ 2")
	}
	if opt.Quiet && opt.Verbose {
		return opt, errors.New("--quiet conflicts with --verbose")
	}
	return opt, nil
}

// merge copies config values into opt for flags left at their defaults.
func merge(fs *flag.FlagSet, opt *Options, f config.File) {
	setInt := func(name string, dst *int, v *int) {
		if v != nil && !fs.Changed(name) {
			*dst = *v
		}
	}
	setBool := func(name string, dst *bool, v *bool) {
		if v != nil && !fs.Changed(name) {
			*dst = *v
		}
	}
	setInt("threads", &opt.Threads, f.Threads)
	setInt("width", &opt.Width, f.Width)
	setBool("stats", &opt.Stats, f.Stats)
	setBool("quiet", &opt.Quiet, f.Quiet)
	setBool("verbose", &opt.Verbose, f.Verbose)
	if f.Validate != nil && !fs.Changed("no-validate") {
		opt.NoValidate = !*f.Validate
	}
}
