// pkg/rcmd/types.go
package rcmd

import (
	"io"
	"log"
	"os"
	"sort"
	"time"
)

// Config configures the R configuration provider
type Config struct {
	Binary      string        // R executable; resolved via R_HOME/PATH if empty
	Timeout     time.Duration // Subprocess timeout; zero means wait forever
	Debug       bool          // Enable debug logging
	Logger      *log.Logger   // Custom logger (optional)
	Diagnostics io.Writer     // Destination for relayed R stderr (default: os.Stdout)
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Binary:      ResolveBinary(""),
		Diagnostics: os.Stdout,
	}
}

// ConfigVariables is the immutable key-value table produced by parsing
// R CMD config output. It is built once and shared read-only; an empty
// table is the uniform failure signal when R could not be invoked.
type ConfigVariables struct {
	vars map[string]string
}

// Get returns the value for a configuration key. The second return value
// reports whether the key was present.
func (v *ConfigVariables) Get(key string) (string, bool) {
	val, ok := v.vars[key]
	return val, ok
}

// Keys returns all configuration keys in sorted order.
func (v *ConfigVariables) Keys() []string {
	keys := make([]string, 0, len(v.vars))
	for k := range v.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of configuration entries.
func (v *ConfigVariables) Len() int {
	return len(v.vars)
}
