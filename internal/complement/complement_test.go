package complement

import (
	"bytes"
	"testing"
)

func TestReverseComplementSimple(t *testing.T) {
	got := Default.ReverseComplement(nil, []byte("AGTC"))
	want := []byte("GACT")
	if !bytes.Equal(got, want) {
		t.Errorf("ReverseComplement(AGTC) = %s, want %s", got, want)
	}
}

// Snapshot: the full ambiguity alphabet + ACGT.
func TestComplementTable_Snapshot(t *testing.T) {
	in := []byte("RYSWKMBDHVNACGT")
	want := []byte("ACGTNBDHVKMWSRY")

	got := Default.ReverseComplement(nil, in)
	if string(got) != string(want) {
		t.Fatalf("complement table changed:\n got  %s\n want %s", got, want)
	}
}

func TestLowerCasePreserved(t *testing.T) {
	got := Default.ReverseComplement(nil, []byte("acgtuNn"))
	if string(got) != "nNaacgt" {
		t.Fatalf("got %s, want nNaacgt", got)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		in, want byte
	}{
		{'A', 'T'}, {'T', 'A'}, {'C', 'G'}, {'G', 'C'},
		{'U', 'A'}, {'u', 'a'},
		{'M', 'K'}, {'K', 'M'}, {'R', 'Y'}, {'Y', 'R'},
		{'W', 'W'}, {'S', 'S'}, {'N', 'N'},
		{'V', 'B'}, {'B', 'V'}, {'H', 'D'}, {'D', 'H'},
		{'m', 'k'}, {'v', 'b'},
		{'\n', '\n'},
		{'-', '-'}, // outside the alphabet: passes through
		{0xff, 0xff},
	}
	for _, tt := range tests {
		if got := Default.Lookup(tt.in); got != tt.want {
			t.Errorf("Lookup(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLookupInvolution(t *testing.T) {
	for _, b := range []byte("ACGTMRWSYKVHDBNacgtmrwsykvhdbn") {
		if got := Default.Lookup(Default.Lookup(b)); got != b {
			t.Errorf("Lookup(Lookup(%q)) = %q", b, got)
		}
	}
}

func TestValid(t *testing.T) {
	for _, b := range []byte(inputs + "acgtumrwsykvhdbn") {
		if !Default.Valid(b) {
			t.Errorf("Valid(%q) = false", b)
		}
	}
	for _, b := range []byte("\n\r >-*XZxz0") {
		if Default.Valid(b) {
			t.Errorf("Valid(%q) = true", b)
		}
	}
}

func TestReverseComplementReusesDst(t *testing.T) {
	dst := make([]byte, 0, 16)
	got := Default.ReverseComplement(dst, []byte("AAC"))
	if string(got) != "GTT" {
		t.Fatalf("got %s", got)
	}
	if &got[0] != &dst[:1][0] {
		t.Fatalf("expected dst to be reused")
	}
	if out := Default.ReverseComplement(nil, nil); len(out) != 0 {
		t.Fatalf("empty input produced %q", out)
	}
}
