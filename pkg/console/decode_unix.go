//go:build !windows

// pkg/console/decode_unix.go
package console

// Decode converts raw subprocess output bytes to text. POSIX systems
// interpret process output as-is, so no transcoding takes place.
func Decode(raw []byte) string {
	return string(raw)
}
