// errors.go
package rcfg

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound indicates the configuration key is not in the table
	ErrKeyNotFound = errors.New("configuration key not found")

	// ErrBinaryNotFound indicates no R executable could be located
	ErrBinaryNotFound = errors.New("R binary not found")
)

// Error wraps an error with additional context
type Error struct {
	Op  string // Operation that failed
	Key string // Configuration key if applicable
	Err error  // Underlying error
}

func (e *Error) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
