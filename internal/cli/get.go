// internal/cli/get.go
package cli

import (
	"fmt"

	"github.com/arc-language/rcfg"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a single configuration value",
	Long:  `Print the value of one R configuration variable, e.g. CC or BLAS_LIBS.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	value, ok := newProvider().Variables().Get(key)
	if !ok {
		return &rcfg.Error{Op: "get", Key: key, Err: rcfg.ErrKeyNotFound}
	}

	fmt.Println(value)
	return nil
}
