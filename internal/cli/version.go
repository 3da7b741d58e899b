// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/arc-language/rcfg/pkg/rcmd"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("rcfg version 0.1.0")
		fmt.Println("R build configuration inspector")
		if v := rcmd.DetectVersion(config.Binary); v != "" {
			fmt.Printf("R version %s\n", v)
		} else {
			fmt.Println("R not detected")
		}
	},
}
