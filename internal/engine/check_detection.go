package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// IsAttacked reports whether the king of the given colour is attacked: some
// active opponent piece could legally move onto the king's square if the
// opponent's own king safety were ignored. A board without that king is a
// broken invariant and panics.
func IsAttacked(board *chess.Board, history chess.History, colour chess.Colour) bool {
	kingSq, ok := board.FindKing(colour)
	if !ok {
		panic(fmt.Sprintf("engine: no %v king on the board", colour))
	}
	return SquareAttacked(board, history, kingSq, colour.Opposite())
}

// SquareAttacked reports whether any active piece of colour by reaches sq.
func SquareAttacked(board *chess.Board, history chess.History, sq chess.Square, by chess.Colour) bool {
	for _, p := range board.Pieces(by) {
		if _, ok := evaluate(board, history, p, sq, false); ok {
			return true
		}
	}
	return false
}

// IsInCheck reports whether the side to move in game is in check.
func IsInCheck(game *chess.Game) bool {
	return IsAttacked(game.Board, game.History, game.Turn)
}
