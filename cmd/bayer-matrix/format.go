package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/dithermap/bayer"
)

// Output formats.
const (
	formatTable = "table"
	formatGo    = "go"
)

var (
	errBadFormat = errors.New("format must be table or go")
	errBadType   = errors.New("type must be uint8, uint16, uint32 or uint64")
)

// emit builds a rows×cols matrix of the named element type and renders it.
// width > 0 wraps table rows to that many columns of text.
func emit(w io.Writer, rows, cols int, typeName, format string, width int) error {
	switch typeName {
	case "uint8":
		return emitAs[uint8](w, rows, cols, typeName, format, width)
	case "uint16":
		return emitAs[uint16](w, rows, cols, typeName, format, width)
	case "uint32":
		return emitAs[uint32](w, rows, cols, typeName, format, width)
	case "uint64":
		return emitAs[uint64](w, rows, cols, typeName, format, width)
	default:
		return fmt.Errorf("type %q: %w", typeName, errBadType)
	}
}

func emitAs[T constraints.Unsigned](w io.Writer, rows, cols int, typeName, format string, width int) error {
	if format != formatTable && format != formatGo {
		return fmt.Errorf("format %q: %w", format, errBadFormat)
	}
	m, err := bayer.Build[T](rows, cols)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if format == formatGo {
		writeGo(bw, m, typeName)
	} else {
		writeTable(bw, m, width)
	}

	return bw.Flush()
}

// writeTable right-aligns every cell to the widest value. When width > 0
// and a row does not fit, it continues on indented lines.
func writeTable[T constraints.Unsigned](w *bufio.Writer, m bayer.Matrix[T], width int) {
	cell := len(strconv.FormatUint(uint64(m.Max()), 10))
	perLine := m.Cols()
	if width > 0 && m.Cols()*(cell+1)-1 > width {
		// continuation lines carry a two-space indent
		perLine = max(1, (width-1)/(cell+1))
	}

	for i := 0; i < m.Rows(); i++ {
		for j, v := range m.Row(i) {
			switch {
			case j == 0:
			case j%perLine == 0:
				w.WriteString("\n  ")
			default:
				w.WriteByte(' ')
			}
			fmt.Fprintf(w, "%*d", cell, v)
		}
		w.WriteByte('\n')
	}
}

// writeGo prints m as a Go array variable declaration, ready to paste into
// a program so the map is baked in at build time.
func writeGo[T constraints.Unsigned](w *bufio.Writer, m bayer.Matrix[T], typeName string) {
	fmt.Fprintf(w, "var bayer%dx%d = [%d][%d]%s{\n", m.Rows(), m.Cols(), m.Rows(), m.Cols(), typeName)
	for i := 0; i < m.Rows(); i++ {
		w.WriteString("\t{")
		for j, v := range m.Row(i) {
			if j > 0 {
				w.WriteString(", ")
			}
			w.WriteString(strconv.FormatUint(uint64(v), 10))
		}
		w.WriteString("},\n")
	}
	w.WriteString("}\n")
}
