package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// HandleCrash restores the terminal, prints the panic with its stack trace and exits
// restore runs first so the report is readable; it may be nil
func HandleCrash(r any, restore func()) {
	if r == nil {
		return
	}

	if restore != nil {
		restore()
	}

	os.Stdout.Sync()
	WriteCrash(os.Stderr, r, debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// WriteCrash formats a crash report, \r\n keeps it aligned if the terminal is still raw
func WriteCrash(w io.Writer, r any, stack []byte) {
	fmt.Fprintf(w, "\r\n\x1b[31mNONGRAVITAR CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(w, "Stack Trace:\r\n%s\r\n", stack)
}
