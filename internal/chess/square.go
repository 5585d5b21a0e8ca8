package chess

import "github.com/lgbarn/chess-rules-go/internal/errors"

// Square identifies one of the 64 board cells as file + 8*rank,
// with file and rank both 0-based (a1 = 0, h8 = 63).
type Square int8

// NoSquare is the position of a piece that is off the board.
const NoSquare Square = -1

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// NewSquare returns the square at the 0-based file and rank.
// It returns NoSquare if either coordinate is off the board.
func NewSquare(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}
	return Square(file + rank*BoardSize)
}

// File returns the 0-based file (a = 0).
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the 0-based rank (rank 1 = 0).
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Valid reports whether s is on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Offset returns the square df files and dr ranks away, or NoSquare
// when that walks off the board.
func (s Square) Offset(df, dr int) Square {
	if !s.Valid() {
		return NoSquare
	}
	return NewSquare(s.File()+df, s.Rank()+dr)
}

// String returns the square in coordinate form ("e4"), or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File()), byte(RankBase + s.Rank())})
}

// ParseSquare converts a coordinate string to a Square.
// Anything that is not one lowercase letter followed by one digit is
// rejected as MalformedSquare; a well-formed square past h or outside
// ranks 1..8 is rejected as OutOfBoard.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'z' || s[1] < '0' || s[1] > '9' {
		return NoSquare, errors.Reject(errors.MalformedSquare, "", s)
	}
	sq := NewSquare(int(s[0]-FileBase), int(s[1])-RankBase)
	if sq == NoSquare {
		return NoSquare, errors.Reject(errors.OutOfBoard, "", s)
	}
	return sq, nil
}

// MustSquare is like ParseSquare but panics on error.
// It is intended for constants and tests.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}
