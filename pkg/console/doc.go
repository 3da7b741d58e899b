// Package console converts raw subprocess output bytes into native text.
//
// On POSIX systems the operating system treats process output as an opaque
// byte sequence, so the bytes pass through unchanged. On Windows, console
// programs emit output in the console's active code page, which must be
// converted through the Win32 code-page facilities to match what a terminal
// session would display. The implementation is selected at compile time via
// build constraints.
package console
