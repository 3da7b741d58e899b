// pkg/rcmd/provider.go
package rcmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"sync"

	"github.com/arc-language/rcfg/pkg/console"
)

// runFunc invokes the R binary with the given arguments and returns the
// captured stdout and stderr streams. Swapped out in tests.
type runFunc func(binary string, args ...string) (stdout, stderr []byte, err error)

// Provider invokes R, decodes and parses its configuration output, and
// memoizes the resulting table for the lifetime of the Provider. The
// subprocess runs at most once; concurrent callers block until the first
// computation finishes and then share the same table.
type Provider struct {
	config *Config
	logger *log.Logger
	run    runFunc

	once sync.Once
	vars *ConfigVariables
}

// NewProvider creates a configuration provider for the R toolchain
func NewProvider(cfg *Config) *Provider {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	// Work on a copy; resolved defaults stay off the caller's struct.
	c := *cfg
	cfg = &c

	// Set defaults
	if cfg.Binary == "" {
		cfg.Binary = ResolveBinary("")
	}
	if cfg.Diagnostics == nil {
		cfg.Diagnostics = os.Stdout
	}

	// Setup logger
	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stdout, "[rcmd] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	p := &Provider{
		config: cfg,
		logger: logger,
	}
	p.run = p.runCommand
	return p
}

// Variables returns the configuration table reported by `R CMD config
// --all`, computing it on first use. Invocation failure yields an empty
// table rather than an error; callers treat a missing key as the failure
// signal.
func (p *Provider) Variables() *ConfigVariables {
	p.once.Do(func() {
		p.vars = p.build()
	})
	return p.vars
}

func (p *Provider) build() *ConfigVariables {
	p.logger.Printf("Running %s %v", p.config.Binary, configArgs)

	stdout, stderr, err := p.run(p.config.Binary, configArgs...)

	// R writes non-fatal warnings to stderr; relay them even when the
	// command failed, they help with debugging.
	if len(stderr) > 0 {
		fmt.Fprintf(p.config.Diagnostics, "%s%s\n", diagnosticPrefix, console.Decode(stderr))
	}

	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			p.logger.Printf("R CMD config exited with error: %v", err)
		} else {
			p.logger.Printf("Launching %s: %v", p.config.Binary, err)
		}
		return &ConfigVariables{vars: map[string]string{}}
	}

	vars, err := Parse(console.Decode(stdout))
	if err != nil {
		// The table is all-or-nothing: a torn parse must not surface a
		// partial set of keys.
		p.logger.Printf("Parsing R CMD config output: %v", err)
		return &ConfigVariables{vars: map[string]string{}}
	}
	p.logger.Printf("Parsed %d configuration variables", vars.Len())
	return vars
}

// runCommand executes the binary, capturing stdout and stderr separately.
func (p *Provider) runCommand(binary string, args ...string) ([]byte, []byte, error) {
	ctx := context.Background()
	cancel := func() {}
	if p.config.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, p.config.Timeout)
	}
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
