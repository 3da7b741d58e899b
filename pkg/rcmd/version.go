// pkg/rcmd/version.go
package rcmd

import (
	"context"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/arc-language/rcfg/pkg/console"
)

var versionPattern = regexp.MustCompile(`([0-9]+(?:\.[0-9]+){1,3})`)

// DetectVersion reports the version of the given R binary, e.g. "4.3.2".
// It returns the empty string when the binary is missing or its output has
// no recognizable version number.
func DetectVersion(binary string) string {
	if binary == "" {
		binary = ResolveBinary("")
	}
	if _, err := exec.LookPath(binary); err != nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := exec.CommandContext(ctx, binary, "--version").CombinedOutput()
	if err != nil && len(raw) == 0 {
		return ""
	}

	text := strings.TrimSpace(console.Decode(raw))
	if m := versionPattern.FindStringSubmatch(text); len(m) >= 2 {
		return m[1]
	}
	return ""
}
