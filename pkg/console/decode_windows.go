//go:build windows

// pkg/console/decode_windows.go
package console

import (
	"math"
	"unicode/utf16"

	"golang.org/x/sys/windows"
)

var (
	kernel32         = windows.NewLazySystemDLL("kernel32.dll")
	procGetConsoleCP = kernel32.NewProc("GetConsoleCP")
)

// consoleCodePage returns the input code page of the attached console.
// Processes without a console (services, CI runners) get the system ANSI
// code page instead.
func consoleCodePage() uint32 {
	cp, _, _ := procGetConsoleCP.Call()
	if cp == 0 {
		return windows.GetACP()
	}
	return uint32(cp)
}

// Decode converts raw subprocess output bytes to text by transcoding from
// the console's active code page to UTF-16. MultiByteToWideChar is called
// twice: once with a nil destination to learn the required length, then
// again to fill a buffer of that length.
//
// Conversion failures fall back to a direct (lossy) byte conversion; the
// output feeds diagnostics and line-oriented parsing, so a mangled character
// must not fail the pipeline.
func Decode(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	if int64(len(raw)) >= math.MaxInt32 {
		panic("console: subprocess output exceeds MultiByteToWideChar limit")
	}

	cp := consoleCodePage()
	n, err := windows.MultiByteToWideChar(cp, 0, &raw[0], int32(len(raw)), nil, 0)
	if err != nil || n <= 0 {
		return string(raw)
	}
	wide := make([]uint16, n)
	n, err = windows.MultiByteToWideChar(cp, 0, &raw[0], int32(len(raw)), &wide[0], n)
	if err != nil || n <= 0 {
		return string(raw)
	}
	return string(utf16.Decode(wide[:n]))
}
