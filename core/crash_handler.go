// Package core holds process-wide crash handling
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// emergencyReset leaves the alternate screen, shows the cursor and resets attributes
const emergencyReset = "\x1b[?1049l\x1b[?25h\x1b[0m"

var (
	crashMu    sync.Mutex
	crashReset func()

	// Overridable for tests
	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// SetCrashReset registers the terminal restore to run before a crash report; nil clears it
func SetCrashReset(fn func()) {
	crashMu.Lock()
	crashReset = fn
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	reset := crashReset
	crashReset = nil
	crashMu.Unlock()

	if reset != nil {
		reset()
	} else {
		fmt.Fprint(os.Stdout, emergencyReset)
	}

	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())

	crashExit(1)
}

// Recover is deferred at the top of a goroutine to route its panic to HandleCrash
func Recover() {
	if r := recover(); r != nil {
		HandleCrash(r)
	}
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer Recover()
		fn()
	}()
}
