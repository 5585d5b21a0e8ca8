package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// canPawnMove checks the four pawn patterns: single push, double push from
// the starting rank, diagonal capture and en passant.
func canPawnMove(board *chess.Board, history chess.History, pawn chess.Piece, dest chess.Square) bool {
	forward := pawn.Colour.Forward()
	df := ColumnShift(pawn.Position, dest)
	dr := RowShift(pawn.Position, dest)

	switch {
	case df == 0 && dr == forward:
		return board.IsEmpty(dest)

	case df == 0 && dr == 2*forward:
		return pawn.Position.Rank() == pawn.Colour.PawnRank() &&
			board.IsEmpty(dest) &&
			SquaresBetweenAreEmpty(board, pawn.Position, dest)

	case abs(df) == 1 && dr == forward:
		if occupant, ok := board.At(dest); ok {
			return occupant.Colour != pawn.Colour
		}
		return IsEnPassant(board, history, pawn, dest)
	}

	return false
}

// IsEnPassant reports whether moving pawn to dest is an en passant capture:
// a forward diagonal step onto an empty square, right after an opponent pawn
// advanced two squares from its starting rank to the square beside pawn on
// the destination's file. Only the most recent history entry is consulted.
func IsEnPassant(board *chess.Board, history chess.History, pawn chess.Piece, dest chess.Square) bool {
	if pawn.Kind != chess.Pawn || !pawn.Active {
		return false
	}
	last, ok := history.Last()
	if !ok {
		return false
	}

	forward := pawn.Colour.Forward()
	df := ColumnShift(pawn.Position, dest)
	if abs(df) != 1 || RowShift(pawn.Position, dest) != forward || !board.IsEmpty(dest) {
		return false
	}

	opponent := pawn.Colour.Opposite()
	if last.Kind != chess.Pawn || last.Colour != opponent {
		return false
	}
	if last.Origin.Rank() != opponent.PawnRank() ||
		RowShift(pawn.Position, last.Origin) != 2*forward ||
		ColumnShift(pawn.Position, last.Origin) != df {
		return false
	}
	if RowShift(pawn.Position, last.Destination) != 0 ||
		ColumnShift(pawn.Position, last.Destination) != df {
		return false
	}

	victim, ok := board.At(last.Destination)
	return ok && victim.Kind == chess.Pawn && victim.Colour == opponent
}

// NeedsPromotion reports whether moving piece to dest reaches the opposing back rank with a pawn.
func NeedsPromotion(piece chess.Piece, dest chess.Square) bool {
	return piece.Kind == chess.Pawn && dest.Valid() && dest.Rank() == piece.Colour.PromotionRank()
}
