package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// HasAnyLegalMove reports whether the given colour has at least one legal
// move, king safety included. It stops at the first one found.
func HasAnyLegalMove(board *chess.Board, history chess.History, colour chess.Colour) bool {
	for _, p := range board.Pieces(colour) {
		for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
			if _, ok := evaluate(board, history, p, sq, true); ok {
				return true
			}
		}
	}
	return false
}

// Candidate is a legal move for one piece.
type Candidate struct {
	Piece       chess.Piece
	Destination chess.Square
}

// String returns the candidate in coordinate form, e.g. "e2-e4".
func (c Candidate) String() string {
	return c.Piece.Position.String() + "-" + c.Destination.String()
}

// LegalMoves returns every legal move for the given colour, ordered by
// origin square then destination square. A promoting pawn move appears once.
func LegalMoves(board *chess.Board, history chess.History, colour chess.Colour) []Candidate {
	var moves []Candidate
	for _, p := range board.Pieces(colour) {
		for _, sq := range LegalDestinations(board, history, p) {
			moves = append(moves, Candidate{Piece: p, Destination: sq})
		}
	}
	return moves
}
