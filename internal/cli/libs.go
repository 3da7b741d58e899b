// internal/cli/libs.go
package cli

import (
	"fmt"

	"github.com/arc-language/rcfg/pkg/rcmd"
	"github.com/spf13/cobra"
)

var libsFormat string

var libsCmd = &cobra.Command{
	Use:   "libs [key...]",
	Short: "Split linker flags into search paths and libraries",
	Long: `Split the linker flag values of the named configuration variables into
-L search paths and -l library names. Without arguments the BLAS_LIBS,
LAPACK_LIBS and FLIBS variables are used.`,
	RunE: runLibs,
}

func init() {
	libsCmd.Flags().StringVar(&libsFormat, "format", "text", "output format (text, yaml)")
}

func runLibs(cmd *cobra.Command, args []string) error {
	keys := args
	if len(keys) == 0 {
		keys = []string{rcmd.KeyBLASLibs, rcmd.KeyLAPACKLibs, rcmd.KeyFLibs}
	}

	vars := newProvider().Variables()
	var values []string
	for _, key := range keys {
		if value, ok := vars.Get(key); ok {
			values = append(values, value)
		}
	}

	paths, libs := rcmd.SplitFlags(values)
	out, err := renderFlagLists(paths, libs, libsFormat)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
