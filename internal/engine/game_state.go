package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Classifier labels positions with a chess.Status. The zero value applies
// the kings-only insufficient material rule.
type Classifier struct {
	// ExtendedInsufficientMaterial also draws K+B or K+N against a lone
	// king, and K+B against K+B with both bishops on one square colour.
	ExtendedInsufficientMaterial bool
}

// Classify labels the position from the point of view of colour, the side
// about to move. Insufficient material is decided first, whether or not
// colour is attacked.
func (c Classifier) Classify(board *chess.Board, history chess.History, colour chess.Colour) chess.Status {
	if c.insufficientMaterial(board) {
		return chess.DrawInsufficientMaterial
	}

	attacked := IsAttacked(board, history, colour)
	mobile := HasAnyLegalMove(board, history, colour)

	switch {
	case attacked && mobile:
		return chess.Check
	case attacked:
		return chess.Checkmate
	case !mobile:
		return chess.Stalemate
	}
	return chess.Normal
}

func (c Classifier) insufficientMaterial(board *chess.Board) bool {
	if c.ExtendedInsufficientMaterial {
		return HasInsufficientMaterial(board)
	}
	return OnlyKings(board)
}

// Classify labels the position for colour using the default Classifier.
func Classify(board *chess.Board, history chess.History, colour chess.Colour) chess.Status {
	return Classifier{}.Classify(board, history, colour)
}

// IsCheckmate returns true if the side to move in game is checkmated.
func IsCheckmate(game *chess.Game) bool {
	return IsAttacked(game.Board, game.History, game.Turn) &&
		!HasAnyLegalMove(game.Board, game.History, game.Turn)
}

// IsStalemate returns true if the side to move in game has no legal move
// and is not in check.
func IsStalemate(game *chess.Game) bool {
	return !IsAttacked(game.Board, game.History, game.Turn) &&
		!HasAnyLegalMove(game.Board, game.History, game.Turn)
}
