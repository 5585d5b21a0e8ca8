package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// ColumnShift returns the signed file distance from origin to destination.
func ColumnShift(origin, destination chess.Square) int {
	return destination.File() - origin.File()
}

// RowShift returns the signed rank distance from origin to destination.
func RowShift(origin, destination chess.Square) int {
	return destination.Rank() - origin.Rank()
}

// SquaresBetweenAreEmpty reports whether every square strictly between
// origin and destination is empty. The two squares must share a rank, a
// file or a diagonal; adjacent squares are always clear.
func SquaresBetweenAreEmpty(board *chess.Board, origin, destination chess.Square) bool {
	df := ColumnShift(origin, destination)
	dr := RowShift(origin, destination)

	distance := max(abs(df), abs(dr))
	if distance <= 1 {
		return true
	}

	stepFile, stepRank := sign(df), sign(dr)
	for i := 1; i < distance; i++ {
		if !board.IsEmpty(origin.Offset(i*stepFile, i*stepRank)) {
			return false
		}
	}
	return true
}
