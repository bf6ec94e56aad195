package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/Pavani8370/Multi-source/internal/cli"
	"github.com/Pavani8370/Multi-source/pkg/payerloader"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(payerloader.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(payerloader.ExitCodeForError(err))
	}
}
