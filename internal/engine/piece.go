package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// canPieceMove checks the movement pattern of each piece kind. The caller
// has already ruled out a destination equal to the origin or holding a
// piece of the mover's colour.
func canPieceMove(board *chess.Board, history chess.History, piece chess.Piece, dest chess.Square) bool {
	df := ColumnShift(piece.Position, dest)
	dr := RowShift(piece.Position, dest)
	colDiff, rankDiff := abs(df), abs(dr)

	switch piece.Kind {
	case chess.Pawn:
		return canPawnMove(board, history, piece, dest)

	case chess.Knight:
		return (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		return canBishopMove(board, piece.Position, dest)

	case chess.Rook:
		return canRookMove(board, piece.Position, dest)

	case chess.Queen:
		return canRookMove(board, piece.Position, dest) || canBishopMove(board, piece.Position, dest)

	case chess.King:
		if colDiff <= 1 && rankDiff <= 1 {
			return true
		}
		return IsCastling(board, history, piece, dest)
	}

	return false
}

// canBishopMove checks for a clear diagonal.
func canBishopMove(board *chess.Board, from, to chess.Square) bool {
	df, dr := ColumnShift(from, to), RowShift(from, to)
	if df == 0 || abs(df) != abs(dr) {
		return false
	}
	return SquaresBetweenAreEmpty(board, from, to)
}

// canRookMove checks for a clear rank or file.
func canRookMove(board *chess.Board, from, to chess.Square) bool {
	df, dr := ColumnShift(from, to), RowShift(from, to)
	if (df == 0) == (dr == 0) {
		return false
	}
	return SquaresBetweenAreEmpty(board, from, to)
}
