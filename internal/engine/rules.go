package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// OnlyKings reports whether the board holds no active piece other than kings.
func OnlyKings(board *chess.Board) bool {
	for _, p := range board.All() {
		if p.Kind != chess.King {
			return false
		}
	}
	return true
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	minor := map[chess.Colour][]chess.Piece{}

	for _, p := range board.All() {
		switch p.Kind {
		case chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			// Any pawn, rook, or queen means sufficient material
			return false
		}
		minor[p.Colour] = append(minor[p.Colour], p)
	}

	white, black := minor[chess.White], minor[chess.Black]

	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1, len(black) == 0 && len(white) == 1:
		// Lone bishop or knight; anything left here is one or the other.
		return true
	case len(white) == 1 && len(black) == 1:
		if white[0].Kind == chess.Bishop && black[0].Kind == chess.Bishop {
			return isLightSquare(white[0].Position) == isLightSquare(black[0].Position)
		}
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}
