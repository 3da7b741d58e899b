// internal/cli/render_test.go
package cli

import (
	"strings"
	"testing"

	"github.com/arc-language/rcfg/pkg/rcmd"
	"gopkg.in/yaml.v3"
)

func mustParse(t *testing.T, text string) *rcmd.ConfigVariables {
	t.Helper()
	vars, err := rcmd.Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return vars
}

func TestRenderTableText(t *testing.T) {
	vars := mustParse(t, "FC = gfortran\nCC = gcc\n")

	out, err := renderTable(vars, "text")
	if err != nil {
		t.Fatalf("renderTable: %v", err)
	}
	// Keys print in sorted order.
	if out != "CC = gcc\nFC = gfortran\n" {
		t.Fatalf("got %q", out)
	}
}

func TestRenderTableYAML(t *testing.T) {
	vars := mustParse(t, "CC = gcc\n")

	out, err := renderTable(vars, "yaml")
	if err != nil {
		t.Fatalf("renderTable: %v", err)
	}
	var m map[string]string
	if err := yaml.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("output is not valid yaml: %v", err)
	}
	if m["CC"] != "gcc" {
		t.Fatalf("got %v", m)
	}
}

func TestRenderTableUnknownFormat(t *testing.T) {
	if _, err := renderTable(mustParse(t, ""), "json"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestRenderFlagListsText(t *testing.T) {
	out, err := renderFlagLists([]string{"/usr/lib"}, []string{"blas", "m"}, "text")
	if err != nil {
		t.Fatalf("renderFlagLists: %v", err)
	}
	for _, want := range []string{"Library search paths:", "  /usr/lib", "Libraries:", "  blas", "  m"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing %q", out, want)
		}
	}
}

func TestRenderFlagListsYAML(t *testing.T) {
	out, err := renderFlagLists([]string{"/usr/lib"}, []string{"blas"}, "yaml")
	if err != nil {
		t.Fatalf("renderFlagLists: %v", err)
	}
	var got flagLists
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not valid yaml: %v", err)
	}
	if len(got.Paths) != 1 || got.Paths[0] != "/usr/lib" || len(got.Libs) != 1 || got.Libs[0] != "blas" {
		t.Fatalf("got %+v", got)
	}
}
