package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ParseBoard builds a board from a space separated placement list such as
// "Ke1 Ra1 ke8 pd7". Each token is a piece letter followed by a square;
// uppercase letters are white and lowercase black.
func ParseBoard(placement string) (*chess.Board, error) {
	b := chess.NewBoard()
	for _, tok := range strings.Fields(placement) {
		kind, colour, sq, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		if !b.IsEmpty(sq) {
			return nil, fmt.Errorf("%q: square %v used twice", tok, sq)
		}
		b.Put(kind, colour, sq)
	}
	return b, nil
}

// MustBoard is ParseBoard that fails the test on error.
func MustBoard(t testing.TB, placement string) *chess.Board {
	t.Helper()
	b, err := ParseBoard(placement)
	if err != nil {
		t.Fatalf("ParseBoard(%q): %v", placement, err)
	}
	return b
}

// ParseHistory builds a history from tokens such as "Pe2e4" or "kg8h8":
// a piece letter, cased by colour, then origin and destination.
func ParseHistory(moves string) (chess.History, error) {
	h := chess.History{}
	for _, tok := range strings.Fields(moves) {
		if len(tok) != 5 {
			return nil, fmt.Errorf("%q: want letter, origin and destination", tok)
		}
		kind, colour, from, err := parseToken(tok[:3])
		if err != nil {
			return nil, err
		}
		to, err := chess.ParseSquare(tok[3:])
		if err != nil {
			return nil, fmt.Errorf("%q: %w", tok, err)
		}
		h = append(h, chess.Move{Kind: kind, Colour: colour, Origin: from, Destination: to})
	}
	return h, nil
}

// MustHistory is ParseHistory that fails the test on error.
func MustHistory(t testing.TB, moves string) chess.History {
	t.Helper()
	h, err := ParseHistory(moves)
	if err != nil {
		t.Fatalf("ParseHistory(%q): %v", moves, err)
	}
	return h
}

// MustGame returns a game with the given placement, side to move and history.
func MustGame(t testing.TB, placement string, turn chess.Colour, moves string) *chess.Game {
	t.Helper()
	g := chess.NewGame()
	g.Board = MustBoard(t, placement)
	g.History = MustHistory(t, moves)
	g.Turn = turn
	return g
}

// MustPiece returns the piece on square, failing the test if it is empty.
func MustPiece(t testing.TB, b *chess.Board, square string) chess.Piece {
	t.Helper()
	p, ok := b.At(chess.MustSquare(square))
	if !ok {
		t.Fatalf("no piece on %s", square)
	}
	return p
}

func parseToken(tok string) (chess.Kind, chess.Colour, chess.Square, error) {
	if len(tok) != 3 {
		return chess.NoKind, chess.White, chess.NoSquare, fmt.Errorf("%q: want letter and square", tok)
	}
	kind, ok := chess.KindFromLetter(tok[0])
	if !ok {
		return chess.NoKind, chess.White, chess.NoSquare, fmt.Errorf("%q: unknown piece letter", tok)
	}
	colour := chess.White
	if tok[0] >= 'a' && tok[0] <= 'z' {
		colour = chess.Black
	}
	sq, err := chess.ParseSquare(tok[1:])
	if err != nil {
		return chess.NoKind, chess.White, chess.NoSquare, fmt.Errorf("%q: %w", tok, err)
	}
	return kind, colour, sq, nil
}
