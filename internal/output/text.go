// Package output renders boards, captured pieces, move lists and outcomes
// as text, SVG or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// Offsets from the king glyph, indexed by Kind.
var glyphOffset = [...]rune{chess.King: 0, chess.Queen: 1, chess.Rook: 2, chess.Bishop: 3, chess.Knight: 4, chess.Pawn: 5}

const (
	solidKing   = '♚'
	outlineKing = '♔'

	cellRule  = "‾‾‾‾"
	fileLabel = "             a    b    c    d    e    f    g    h   "
	banner    = 60
)

// Symbol returns the character drawn for p: a chess glyph, or a letter
// (uppercase for white) when unicode is off. Empty squares are a space.
// White uses the solid glyphs, which read as light on a dark terminal.
func Symbol(p chess.Piece, unicode bool) string {
	if p.IsEmpty() {
		return " "
	}
	if !unicode {
		letter := string(p.Kind.Letter())
		if p.Colour == chess.Black {
			letter = strings.ToLower(letter)
		}
		return letter
	}
	base := outlineKing
	if p.Colour == chess.White {
		base = solidKing
	}
	return string(base + glyphOffset[p.Kind])
}

// WriteBoard draws the board from white's side, rank 8 at the top, with
// file letters above and below and rank numbers on the left.
func WriteBoard(w io.Writer, board *chess.Board, cfg *config.OutputConfig) error {
	var sb strings.Builder
	sb.WriteString(fileLabel + "\n")
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		sb.WriteString("           |" + strings.Repeat(cellRule+"|", chess.BoardSize) + "\n")
		fmt.Fprintf(&sb, "         %d ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			fmt.Fprintf(&sb, "| %s  ", Symbol(board.Get(chess.NewSquare(file, rank)), cfg.Unicode))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("            " + strings.Repeat(cellRule+" ", chess.BoardSize) + "\n")
	sb.WriteString(fileLabel + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteCaptured lists the pieces each colour has lost, in capture order.
func WriteCaptured(w io.Writer, captured map[chess.Colour][]chess.Piece, cfg *config.OutputConfig) error {
	var sb strings.Builder
	sb.WriteString("\n         LOST PIECES\n")
	for _, colour := range []chess.Colour{chess.Black, chess.White} {
		symbols := make([]string, 0, len(captured[colour]))
		for _, p := range captured[colour] {
			symbols = append(symbols, Symbol(p, cfg.Unicode))
		}
		fmt.Fprintf(&sb, "          %s ⇨ %s\n", strings.ToUpper(colour.String()), strings.Join(symbols, " - "))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteTurn announces the side to move between two rules.
func WriteTurn(w io.Writer, turn chess.Colour) error {
	rule := strings.Repeat("═", banner)
	_, err := fmt.Fprintf(w, "%s\n%22s%s PLAYER'S TURN\n%s\n", rule, "", strings.ToUpper(turn.String()), rule)
	return err
}

// WriteWelcome draws the title box shown when the program starts.
func WriteWelcome(w io.Writer) error {
	title := "Welcome to CHESS"
	pad := (banner - len(title)) / 2
	_, err := fmt.Fprintf(w, "╔%s╗\n║%*s%s%*s║\n╚%s╝\n",
		strings.Repeat("═", banner),
		pad, "", title, banner-pad-len(title), "",
		strings.Repeat("═", banner))
	return err
}

// StatusMessage describes the state of g after its last move, or returns
// "" when there is nothing to announce. A finished game still has the
// mover's turn; a running game has the turn of the side to move.
func StatusMessage(g *chess.Game) string {
	switch g.Status {
	case chess.Check:
		return fmt.Sprintf("CHECK - %v king is under attack!", g.Turn)
	case chess.Checkmate:
		return fmt.Sprintf("CHECKMATE - %v player wins!", g.Turn)
	case chess.Stalemate:
		return fmt.Sprintf("IT'S A DRAW - %v is not in check and has no legal move available.", g.Turn.Opposite())
	case chess.DrawInsufficientMaterial:
		if len(g.Board.All()) == 2 {
			return "IT'S A DRAW - Only kings are left on the board."
		}
		return "IT'S A DRAW - Neither side has enough material to checkmate."
	}
	return ""
}

// WriteStatus writes StatusMessage(g) on its own line, if there is one.
func WriteStatus(w io.Writer, g *chess.Game) error {
	msg := StatusMessage(g)
	if msg == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, "\n %s\n", msg)
	return err
}

// WriteGame writes the board followed, when enabled, by the captured pieces,
// then the status line.
func WriteGame(w io.Writer, g *chess.Game, cfg *config.OutputConfig) error {
	if err := WriteBoard(w, g.Board, cfg); err != nil {
		return err
	}
	if cfg.ShowCaptured {
		if err := WriteCaptured(w, g.Captured, cfg); err != nil {
			return err
		}
	}
	return WriteStatus(w, g)
}
