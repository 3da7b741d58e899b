// pkg/rcmd/parser.go
package rcmd

import (
	"bufio"
	"fmt"
	"strings"
)

// Parse turns decoded `R CMD config --all` output into a ConfigVariables
// table. Lines have the form `key = value`; the first line beginning with
// "##" starts the trailing commentary section and ends parsing.
//
// A line is accepted only when splitting on "=" yields exactly two
// segments, so lines without "=" and lines whose value itself contains "="
// are silently dropped. Both segments are whitespace-trimmed. A key seen
// twice keeps its last value.
func Parse(text string) (*ConfigVariables, error) {
	vars := make(map[string]string)

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // Flag values can be long

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, commentMarker) {
			break
		}

		parts := strings.Split(line, "=")
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		vars[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning configuration output: %w", err)
	}

	return &ConfigVariables{vars: vars}, nil
}
