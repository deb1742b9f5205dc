// Command bayer-matrix prints a Bayer threshold matrix.
//
// Usage:
//
//	bayer-matrix -rows 8 -cols 8
//	bayer-matrix -rows 16 -cols 16 -type uint8 -format go > bayer16.go
//
// The table format wraps long rows to the terminal width when stdout is a
// terminal. The go format emits an array literal for baking into a program.
package main

import (
	"flag"
	"log"
	"os"

	"golang.org/x/term"
)

var (
	rows     = flag.Int("rows", 8, "matrix rows")
	cols     = flag.Int("cols", 8, "matrix columns")
	typeName = flag.String("type", "uint8", "element type: uint8, uint16, uint32, uint64")
	format   = flag.String("format", formatTable, "output format: table or go")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bayer-matrix: ")
	flag.Parse()

	if err := emit(os.Stdout, *rows, *cols, *typeName, *format, terminalWidth()); err != nil {
		log.Fatalf("%v", err)
	}
}

// terminalWidth returns the width of stdout if it is a terminal, else 0.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}

	return w
}
