//go:build !wasm

package main

import (
	"errors"
	"os"

	"golang.org/x/term"
)

var errNotTerminal = errors.New("stdin and stdout must be a terminal")

// checkTerminal fails before tcell takes over a redirected stream
func checkTerminal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}
	return nil
}
