package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// LineWriter writes space separated tokens, starting a new line before a
// token that would run past the maximum line length.
type LineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewLineWriter creates a line writer. A non-positive length means 80.
func NewLineWriter(w io.Writer, maxLineLength int) *LineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &LineWriter{w: w, maxLineLength: maxLineLength}
}

// Write writes a token, preceded by a space or a line break as needed.
func (o *LineWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.NewLine()
		} else {
			o.print(" ")
		}
	}
	o.print(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *LineWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error, if any.
func (o *LineWriter) Err() error {
	return o.err
}

func (o *LineWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprint(o.w, s)
	o.lineLength += len(s)
}

// MoveText returns a ply in coordinate form: "e2e4", "O-O" or "O-O-O".
func MoveText(ply []chess.Move) string {
	m := ply[0]
	if len(ply) == 2 {
		if m.Destination.File() > m.Origin.File() {
			return "O-O"
		}
		return "O-O-O"
	}
	return m.Origin.String() + m.Destination.String()
}

// WriteMoves writes the history as numbered moves ("1. e2e4 e7e5 2. ...")
// wrapped at width columns.
func WriteMoves(w io.Writer, history chess.History, width int) error {
	lw := NewLineWriter(w, width)
	for i, ply := range history.Plies() {
		if ply[0].Colour == chess.White || i == 0 {
			number := fmt.Sprintf("%d.", i/2+1)
			if ply[0].Colour == chess.Black {
				number += ".."
			}
			lw.Write(number)
		}
		lw.Write(MoveText(ply))
	}
	if lw.lineLength > 0 {
		lw.NewLine()
	}
	return lw.Err()
}
