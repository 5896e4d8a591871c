package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

func main() {
	// Panic Recovery: the play command restores the terminal itself, this catches the rest
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPATHGAME CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pathgame: %v\n", err)
		os.Exit(1)
	}
}
