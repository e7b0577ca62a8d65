// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"revcomp/internal/app"
)

func write(t *testing.T, fn, data string) string {
	t.Helper()
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code = app.Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestEndToEnd(t *testing.T) {
	fa := write(t, filepath.Join(t.TempDir(), "e2e.fa"), ">s1 first\nAAAACCCC\nGG\n>s2\nACG\n")

	code, out, errs := run(t, fa)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errs)
	}
	require.Equal(t, ">s1 first\nCCGGGGTT\nTT\n>s2\nCGT\n", out)
}

func TestScenarios(t *testing.T) {
	long := strings.Repeat("A", 60) + "\n" + strings.Repeat("C", 60) + "\n" +
		strings.Repeat("G", 60) + "\n" + "TTTTTTTTTT\n"
	longWant := strings.Repeat("A", 10) + strings.Repeat("C", 50) + "\n" +
		strings.Repeat("C", 10) + strings.Repeat("G", 50) + "\n" +
		strings.Repeat("G", 10) + strings.Repeat("T", 50) + "\n" + strings.Repeat("T", 10) + "\n"

	tests := []struct {
		name, in, want string
	}{
		{"single line", ">s\nAAAACCCC\n", ">s\nGGGGTTTT\n"},
		{"two records", ">a\nACGT\n>b\nAAAA\n", ">a\nACGT\n>b\nTTTT\n"},
		{"wrapped 61", ">x\n" + long, ">x\n" + longWant},
		{"ambiguity", ">s\nRYKMBVDHNacgtn\n", ">s\nnacgtNDHBVKMRY\n"},
		{"empty body", ">a\n>b\nAC\n", ">a\n>b\nGT\n"},
		{"no trailing newline", ">a\nAAC\nGG", ">a\nCCG\nTT"},
		{"full last line", ">s\nAAAC\nCCCG\n", ">s\nCGGG\nGTTT\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fa := write(t, filepath.Join(t.TempDir(), "in.fa"), tt.in)
			code, out, errs := run(t, "-i", fa)
			require.Equal(t, 0, code, errs)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestParallelMatchesEqualSerial(t *testing.T) {
	var in strings.Builder
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&in, ">r%d\n", i)
		for j := 0; j < 37+i*13; j++ {
			in.WriteString("ACGTTGCAAGCTTNNRYACGTTGCAAGCTTNNRYACGTTGCAAGCTTNNRYACGTTGCA\n")
		}
		in.WriteString(strings.Repeat("GATC", i%14+1) + "\n")
	}
	// Final line exactly one wrap width long.
	in.WriteString(">full\n")
	for j := 0; j < 41; j++ {
		in.WriteString("ACGTTGCAAGCTTNNRYACGTTGCAAGCTTNNRYACGTTGCAAGCTTNNRYACGTTGCA\n")
	}
	fa := write(t, filepath.Join(t.TempDir(), "par.fa"), in.String())

	outputs := map[int]string{}
	for _, threads := range []int{1, 2, 3, 8} {
		code, out, errs := run(t, fa, "--threads", fmt.Sprint(threads))
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errs)
		}
		outputs[threads] = out
	}
	for threads, out := range outputs {
		if out != outputs[1] {
			t.Fatalf("output with %d threads differs from serial", threads)
		}
	}
	require.Len(t, outputs[1], in.Len())
}

func TestOutputFileAtomic(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "in.fa"), ">s\nAAAACCCC\n")
	dst := filepath.Join(dir, "out.fa")

	code, out, errs := run(t, fa, "-o", dst)
	require.Equal(t, 0, code, errs)
	require.Empty(t, out)
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, ">s\nGGGGTTTT\n", string(got))

	// In-place: reading and replacing the same path.
	code, _, errs = run(t, dst, "-o", dst)
	require.Equal(t, 0, code, errs)
	got, err = os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, ">s\nAAAACCCC\n", string(got))
}

func TestGzipInput(t *testing.T) {
	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, _ = zw.Write([]byte(">s\nACGTT\n"))
	require.NoError(t, zw.Close())
	fa := write(t, filepath.Join(t.TempDir(), "in.fa.gz"), gz.String())

	code, out, errs := run(t, fa, "--verbose")
	require.Equal(t, 0, code, errs)
	require.Equal(t, ">s\nAACGT\n", out)
	require.Contains(t, errs, "INFO: decompressed input")
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		in   string
		args []string
		code int
	}{
		{"irregular width", ">s\nACGT\nAC\nACGT\n", nil, 1},
		{"invalid byte", ">s\nAC*T\n", nil, 1},
		{"malformed header", ">s\nACGT\n>tail", nil, 1},
		{"empty input", "", nil, 1},
		{"no-validate passes", ">s\nAC*T\n", []string{"--no-validate"}, 0},
		{"bad flag", ">s\nA\n", []string{"--threads", "-2"}, 2},
		{"two inputs", ">s\nA\n", []string{"extra.fa"}, 2},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fa := write(t, filepath.Join(dir, fmt.Sprintf("in%d.fa", i)), tt.in)
			code, out, errs := run(t, append([]string{fa}, tt.args...)...)
			require.Equal(t, tt.code, code, errs)
			if code != 0 {
				require.NotEmpty(t, errs)
			}
			if code == 1 {
				require.Empty(t, out, "nothing is written on bad input")
			}
		})
	}

	code, _, _ := run(t, filepath.Join(dir, "missing.fa"))
	require.Equal(t, 3, code)
}

func TestHelpAndVersion(t *testing.T) {
	code, out, _ := run(t, "-h")
	require.Equal(t, 0, code)
	require.Contains(t, out, "Usage:")
	require.Contains(t, out, "--no-validate")

	code, out, _ = run(t, "--version")
	require.Equal(t, 0, code)
	require.True(t, strings.HasPrefix(out, "revcomp version "), out)
}

func TestStatsAndWarnings(t *testing.T) {
	fa := write(t, filepath.Join(t.TempDir(), "in.fa"), "junk\n>s\nACGT\nAC\n")

	code, out, errs := run(t, fa, "--stats")
	require.Equal(t, 0, code, errs)
	require.Equal(t, "junk\n>s\nGTAC\nGT\n", out)
	require.Contains(t, errs, "WARN: 5 bytes before the first header")
	require.Contains(t, errs, "records\t1\nlines\t2\nbases\t6\n")
	require.Contains(t, errs, "xxhash64\t")

	_, _, errs = run(t, fa, "-q")
	require.NotContains(t, errs, "WARN:")

	cfg := write(t, filepath.Join(t.TempDir(), "revcomp.jsonc"), `{"quiet": true, "stats": true}`)
	_, _, errs = run(t, fa, "-c", cfg)
	require.NotContains(t, errs, "WARN:")
	require.Contains(t, errs, "records\t1")
}
