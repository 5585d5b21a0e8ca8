package output

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

const (
	lightSquare  = "fill:#f0d9b5"
	darkSquare   = "fill:#b58863"
	markedSquare = "fill:#cdd26a;fill-opacity:0.8"
	labelStyle   = "fill:#404040;font-family:sans-serif;text-anchor:middle;font-size:%dpx"
	whiteGlyph   = "fill:#ffffff;stroke:#000000;stroke-width:1"
	blackGlyph   = "fill:#000000"
	glyphStyle   = "font-family:serif;text-anchor:middle;font-size:%dpx"
)

// errWriter remembers the first error so drawing can ignore it until the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG draws board as an SVG image with squares of size pixels, white
// at the bottom and coordinates in a margin around the board. Marked squares
// are tinted, e.g. to show the last move.
func WriteSVG(w io.Writer, board *chess.Board, size int, marked ...chess.Square) error {
	if size < config.MinSVGSquareSize || size > config.MaxSVGSquareSize {
		return fmt.Errorf("svg square size %d out of range %d..%d", size, config.MinSVGSquareSize, config.MaxSVGSquareSize)
	}
	ew := &errWriter{w: w}
	margin := size / 2
	edge := chess.BoardSize*size + 2*margin

	canvas := svg.New(ew)
	canvas.Start(edge, edge)
	canvas.Title("Chess board")

	isMarked := map[chess.Square]bool{}
	for _, sq := range marked {
		isMarked[sq] = true
	}

	canvas.Gstyle(fmt.Sprintf(glyphStyle, size*4/5))
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.NewSquare(file, rank)
			x := margin + file*size
			y := margin + (chess.BoardSize-1-rank)*size

			style := darkSquare
			if (file+rank)%2 == 1 {
				style = lightSquare
			}
			canvas.Rect(x, y, size, size, style)
			if isMarked[sq] {
				canvas.Rect(x, y, size, size, markedSquare)
			}

			if p, ok := board.At(sq); ok {
				fill := blackGlyph
				if p.Colour == chess.White {
					fill = whiteGlyph
				}
				// Both colours use the solid glyph so the fill decides the colour.
				canvas.Text(x+size/2, y+size*4/5, string(solidKing+glyphOffset[p.Kind]), fill)
			}
		}
	}
	canvas.Gend()

	canvas.Gstyle(fmt.Sprintf(labelStyle, margin*3/5))
	for i := 0; i < chess.BoardSize; i++ {
		c := margin + i*size + size/2
		file := string(rune('a' + i))
		rank := fmt.Sprint(chess.BoardSize - i)
		canvas.Text(c, margin*3/4, file)
		canvas.Text(c, edge-margin/4, file)
		canvas.Text(margin/2, c+margin/4, rank)
		canvas.Text(edge-margin/2, c+margin/4, rank)
	}
	canvas.Gend()

	canvas.End()
	return ew.err
}

// LastMoveSquares returns the origin and destination of the last ply, or
// nothing for an empty history.
func LastMoveSquares(history chess.History) []chess.Square {
	plies := history.Plies()
	if len(plies) == 0 {
		return nil
	}
	m := plies[len(plies)-1][0]
	return []chess.Square{m.Origin, m.Destination}
}
