// pkg/rcmd/rcmd_integration_test.go
package rcmd

import (
	"os/exec"
	"testing"
	"time"
)

// These tests need a real R installation and skip when none is on PATH.

func realProvider(t *testing.T) *Provider {
	t.Helper()
	binary := ResolveBinary("")
	if _, err := exec.LookPath(binary); err != nil {
		t.Skipf("R not installed: %v", err)
	}
	return NewProvider(&Config{Binary: binary, Timeout: time.Minute})
}

func TestRealCompilerVariables(t *testing.T) {
	vars := realProvider(t).Variables()

	for _, key := range []string{KeyCC, KeyFC} {
		value, ok := vars.Get(key)
		if !ok {
			t.Fatalf("missing value for R CMD config %s", key)
		}
		if value == "" {
			t.Fatalf("empty value for R CMD config %s", key)
		}
	}
}

func TestRealBLASAndLAPACKLibraries(t *testing.T) {
	vars := realProvider(t).Variables()

	for _, key := range []string{KeyBLASLibs, KeyLAPACKLibs} {
		value, ok := vars.Get(key)
		if !ok {
			t.Fatalf("missing value for R CMD config %s", key)
		}
		if _, libs := SplitFlags([]string{value}); len(libs) == 0 {
			t.Fatalf("expected at least one library in %s=%q", key, value)
		}
	}
}
