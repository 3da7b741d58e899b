// rcfg.go
package rcfg

import (
	"sync"

	"github.com/arc-language/rcfg/pkg/rcmd"
)

// Re-export rcmd types for convenience
type (
	Config          = rcmd.Config
	ConfigVariables = rcmd.ConfigVariables
	Provider        = rcmd.Provider
)

// Re-export well-known configuration keys
const (
	KeyCC         = rcmd.KeyCC
	KeyCFlags     = rcmd.KeyCFlags
	KeyCXX        = rcmd.KeyCXX
	KeyCXXFlags   = rcmd.KeyCXXFlags
	KeyFC         = rcmd.KeyFC
	KeyFFlags     = rcmd.KeyFFlags
	KeyFLibs      = rcmd.KeyFLibs
	KeyBLASLibs   = rcmd.KeyBLASLibs
	KeyLAPACKLibs = rcmd.KeyLAPACKLibs
	KeyLDFlags    = rcmd.KeyLDFlags
	KeyMake       = rcmd.KeyMake
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return rcmd.DefaultConfig()
}

// NewProvider creates a configuration provider with its own cache. Most
// callers want the package-level Variables instead.
func NewProvider(cfg *Config) *Provider {
	return rcmd.NewProvider(cfg)
}

var (
	defaultOnce     sync.Once
	defaultProvider *Provider
)

// Variables returns the process-wide configuration table for the default R
// installation. The R subprocess runs at most once per process; every call
// after the first returns the same cached table.
func Variables() *ConfigVariables {
	defaultOnce.Do(func() {
		defaultProvider = rcmd.NewProvider(nil)
	})
	return defaultProvider.Variables()
}

// Lookup returns the value of a single configuration key from the
// process-wide table.
func Lookup(key string) (string, bool) {
	return Variables().Get(key)
}

// SplitFlags extracts -L search paths and -l library names from linker
// flag strings, in encounter order.
func SplitFlags(values []string) (paths, libs []string) {
	return rcmd.SplitFlags(values)
}
