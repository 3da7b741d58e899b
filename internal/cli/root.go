// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/arc-language/rcfg/pkg/core"
	"github.com/arc-language/rcfg/pkg/rcmd"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	binary  string
	debug   bool
	config  *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "rcfg",
	Short: "R build configuration inspector",
	Long: `rcfg - R build configuration inspector

Discovers the build configuration of the installed R toolchain by running
R CMD config --all, and prints compiler paths, linker flags and derived
library lists for build tooling that links against R's native libraries.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/rcfg/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&binary, "binary", "", "R executable to query (default: R_HOME, then PATH)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(libsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if binary != "" {
		config.Binary = binary
	}
	if debug {
		config.Debug = true
	}
}

// newProvider builds a configuration provider from the effective CLI
// configuration.
func newProvider() *rcmd.Provider {
	return rcmd.NewProvider(&rcmd.Config{
		Binary: config.Binary,
		Debug:  config.Debug,
	})
}
