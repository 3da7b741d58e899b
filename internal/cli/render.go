// internal/cli/render.go
package cli

import (
	"fmt"
	"strings"

	"github.com/arc-language/rcfg/pkg/rcmd"
	"gopkg.in/yaml.v3"
)

// renderTable formats the configuration table for terminal output.
func renderTable(vars *rcmd.ConfigVariables, format string) (string, error) {
	switch format {
	case "text":
		var b strings.Builder
		for _, key := range vars.Keys() {
			value, _ := vars.Get(key)
			fmt.Fprintf(&b, "%s = %s\n", key, value)
		}
		return b.String(), nil

	case "yaml":
		m := make(map[string]string, vars.Len())
		for _, key := range vars.Keys() {
			m[key], _ = vars.Get(key)
		}
		data, err := yaml.Marshal(m)
		if err != nil {
			return "", fmt.Errorf("marshaling configuration: %w", err)
		}
		return string(data), nil

	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}
}

// flagLists is the yaml shape of a split linker-flag result.
type flagLists struct {
	Paths []string `yaml:"paths"`
	Libs  []string `yaml:"libs"`
}

// renderFlagLists formats split linker flags for terminal output.
func renderFlagLists(paths, libs []string, format string) (string, error) {
	switch format {
	case "text":
		var b strings.Builder
		b.WriteString("Library search paths:\n")
		for _, p := range paths {
			fmt.Fprintf(&b, "  %s\n", p)
		}
		b.WriteString("Libraries:\n")
		for _, l := range libs {
			fmt.Fprintf(&b, "  %s\n", l)
		}
		return b.String(), nil

	case "yaml":
		data, err := yaml.Marshal(flagLists{Paths: paths, Libs: libs})
		if err != nil {
			return "", fmt.Errorf("marshaling flag lists: %w", err)
		}
		return string(data), nil

	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}
}
