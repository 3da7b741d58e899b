// pkg/rcmd/flags.go
package rcmd

import "strings"

// SplitFlags tokenizes linker flag strings such as the values of BLAS_LIBS
// or LDFLAGS and extracts `-L` search paths and `-l` library names, each in
// encounter order. Other tokens are legitimate compiler switches and are
// ignored. No deduplication or sorting is performed.
func SplitFlags(values []string) (paths, libs []string) {
	for _, value := range values {
		for _, token := range strings.Fields(value) {
			switch {
			case strings.HasPrefix(token, "-L"):
				paths = append(paths, token[2:])
			case strings.HasPrefix(token, "-l"):
				libs = append(libs, token[2:])
			}
		}
	}
	return paths, libs
}
