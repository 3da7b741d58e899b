// pkg/rcmd/parser_test.go
package rcmd

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, text string) *ConfigVariables {
	t.Helper()
	vars, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return vars
}

func TestParseKeyValueLines(t *testing.T) {
	vars := mustParse(t, "CC = gcc\nFC = gfortran\nBLAS_LIBS =   -L/usr/lib/R/lib -lblas  \n")

	want := map[string]string{
		"CC":        "gcc",
		"FC":        "gfortran",
		"BLAS_LIBS": "-L/usr/lib/R/lib -lblas",
	}
	for key, wantValue := range want {
		got, ok := vars.Get(key)
		if !ok {
			t.Fatalf("missing key %q", key)
		}
		if got != wantValue {
			t.Fatalf("key %q: got %q, want %q", key, got, wantValue)
		}
	}
	if vars.Len() != len(want) {
		t.Fatalf("got %d entries, want %d", vars.Len(), len(want))
	}
}

func TestParseStopsAtCommentBoundary(t *testing.T) {
	input := "CC = gcc\n## The following variables are deprecated\nFC = gfortran\n## more\nCXX = g++\n"
	vars := mustParse(t, input)

	if _, ok := vars.Get("FC"); ok {
		t.Fatalf("FC parsed from beyond the comment boundary")
	}
	if _, ok := vars.Get("CXX"); ok {
		t.Fatalf("CXX parsed from beyond the comment boundary")
	}
	if diff := cmp.Diff([]string{"CC"}, vars.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDuplicateKeysLastWins(t *testing.T) {
	vars := mustParse(t, "A = 1\nA = 2\n")

	got, ok := vars.Get("A")
	if !ok {
		t.Fatalf("missing key A")
	}
	if got != "2" {
		t.Fatalf("got %q, want %q", got, "2")
	}
}

func TestParseDropsMalformedLines(t *testing.T) {
	// No "=", and more than one "=", are both skipped silently.
	vars := mustParse(t, "NOVALUE\nB = 2\nWEIRD = a=b\n")

	if diff := cmp.Diff([]string{"B"}, vars.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if got, _ := vars.Get("B"); got != "2" {
		t.Fatalf("B: got %q, want %q", got, "2")
	}
}

func TestParseHandlesCRLFLines(t *testing.T) {
	vars := mustParse(t, "CC = gcc\r\nFC = gfortran\r\n")

	for key, want := range map[string]string{"CC": "gcc", "FC": "gfortran"} {
		got, ok := vars.Get(key)
		if !ok || got != want {
			t.Fatalf("key %q: got %q (present=%v), want %q", key, got, ok, want)
		}
	}
}

func TestParseEmptyInput(t *testing.T) {
	if n := mustParse(t, "").Len(); n != 0 {
		t.Fatalf("got %d entries, want 0", n)
	}
}

func TestParseOverlongLineReturnsError(t *testing.T) {
	// A line beyond the scanner's buffer cap must surface as an error, not
	// silently truncate the table like the "##" boundary does.
	input := "CC = gcc\n" + strings.Repeat("x", 2*1024*1024) + "\nFC = gfortran\n"
	if _, err := Parse(input); err == nil {
		t.Fatalf("expected scanner error for over-long line")
	}
}
