// internal/cli/list.go
package cli

import (
	"fmt"
	"os/exec"

	"github.com/arc-language/rcfg"
	"github.com/arc-language/rcfg/pkg/rcmd"
	"github.com/spf13/cobra"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all R configuration variables",
	Long:  `Print every variable reported by R CMD config --all as key = value lines.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "text", "output format (text, yaml)")
}

func runList(cmd *cobra.Command, args []string) error {
	vars := newProvider().Variables()
	if vars.Len() == 0 {
		if _, err := exec.LookPath(rcmd.ResolveBinary(config.Binary)); err != nil {
			return &rcfg.Error{Op: "querying R configuration", Err: rcfg.ErrBinaryNotFound}
		}
		return fmt.Errorf("R reported no configuration variables")
	}

	out, err := renderTable(vars, listFormat)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
