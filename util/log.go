package util

import "github.com/hauke96/sigolo/v2"

// LogFatalBug logs the message and exits. Use it only for broken internal invariants, never for invalid input.
func LogFatalBug(format string, args ...interface{}) {
	sigolo.Fatalb(1, format+" - This is a bug in the filter lexer tables", args...)
}
