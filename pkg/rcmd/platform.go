// pkg/rcmd/platform.go
package rcmd

import (
	"os"
	"path/filepath"
	"runtime"
)

// ResolveBinary determines which R executable to invoke. An explicit path
// wins; otherwise R_HOME is honored the way R's own build machinery does
// ($R_HOME/bin/R); failing that, "R" is resolved through PATH at exec time.
func ResolveBinary(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if rhome := os.Getenv("R_HOME"); rhome != "" {
		bin := filepath.Join(rhome, "bin", binaryName())
		if _, err := os.Stat(bin); err == nil {
			return bin
		}
	}

	return binaryName()
}

func binaryName() string {
	if runtime.GOOS == "windows" {
		return DefaultBinary + ".exe"
	}
	return DefaultBinary
}
