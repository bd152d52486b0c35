//go:build !wasm

package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// exitFunc is replaced in tests
var exitFunc = os.Exit

// HandleCrash is the unified panic handler that restores the screen and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if s := releaseCrashScreen(); s != nil {
		s.Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-SNAKE CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	exitFunc(1)
}
