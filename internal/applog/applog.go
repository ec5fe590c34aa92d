// Package applog provides the small amount of process-level logging the
// pitch transposer needs: fatal startup errors go to the standard logger,
// routine progress goes to stdout so it interleaves cleanly with the
// real-time "[STATUS]" banner.
package applog

import (
	"fmt"
	"log"
	"os"
)

var std = log.New(os.Stderr, "", log.LstdFlags)

// Fatalf logs a formatted error and exits the process with status 1.
func Fatalf(format string, args ...any) {
	std.Printf(format, args...)
	os.Exit(1)
}

// Errorf logs a formatted error without exiting.
func Errorf(format string, args ...any) {
	std.Printf(format, args...)
}

// Status prints a real-time operational banner, e.g. "[STATUS] Talk now".
func Status(message string) {
	fmt.Printf("[STATUS] %s\n", message)
}

// Infof prints a formatted progress message to stdout.
func Infof(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}
