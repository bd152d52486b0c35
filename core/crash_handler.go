package core

import "sync"

// Finalizer is a screen that can be restored before crash output
// tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer
)

// SetCrashScreen registers the screen HandleCrash restores before printing
func SetCrashScreen(s Finalizer) {
	crashMu.Lock()
	crashTerminal = s
	crashMu.Unlock()
}

// releaseCrashScreen returns the registered screen once, so Fini is not called twice
func releaseCrashScreen() Finalizer {
	crashMu.Lock()
	defer crashMu.Unlock()
	s := crashTerminal
	crashTerminal = nil
	return s
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
