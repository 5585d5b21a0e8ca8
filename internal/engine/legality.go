// Package engine provides chess move validation, position classification
// and move execution.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// SelectPiece returns the piece on square if it belongs to the colour to move.
func SelectPiece(board *chess.Board, square string, turn chess.Colour) (chess.Piece, error) {
	sq, err := chess.ParseSquare(square)
	if err != nil {
		return chess.Piece{}, rejectSquare(err, square, "")
	}
	piece, ok := board.At(sq)
	if !ok {
		return chess.Piece{}, errors.Reject(errors.EmptyOrigin, square, "")
	}
	if piece.Colour != turn {
		return chess.Piece{}, errors.Reject(errors.WrongColourOrigin, square, "")
	}
	return piece, nil
}

// CheckDestination reports whether piece may move to destination, given
// the moves played so far. It returns nil for a legal move and otherwise a
// *errors.RejectionError naming the first condition that failed:
//
//  1. destination is malformed or off the board
//  2. destination equals the origin
//  3. destination holds a piece of the mover's colour
//  4. the piece kind cannot reach destination
//  5. (checkKingSafety only) the move leaves the mover's king attacked
//
// Later conditions are not evaluated once one fails. Neither board nor
// history is modified.
func CheckDestination(board *chess.Board, history chess.History, piece chess.Piece, destination string, checkKingSafety bool) error {
	dest, err := chess.ParseSquare(destination)
	if err != nil {
		return rejectSquare(err, piece.Position.String(), destination)
	}
	if reason, ok := evaluate(board, history, piece, dest, checkKingSafety); !ok {
		return errors.Reject(reason, piece.Position.String(), destination)
	}
	return nil
}

// IsLegalDestination is CheckDestination without the rejection reason.
func IsLegalDestination(board *chess.Board, history chess.History, piece chess.Piece, destination string, checkKingSafety bool) bool {
	return CheckDestination(board, history, piece, destination, checkKingSafety) == nil
}

// IsLegalMove reports whether piece may move to dest.
func IsLegalMove(board *chess.Board, history chess.History, piece chess.Piece, dest chess.Square, checkKingSafety bool) bool {
	_, ok := evaluate(board, history, piece, dest, checkKingSafety)
	return ok
}

// LegalDestinations returns every square piece may legally move to, in square order.
func LegalDestinations(board *chess.Board, history chess.History, piece chess.Piece) []chess.Square {
	var squares []chess.Square
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if IsLegalMove(board, history, piece, sq, true) {
			squares = append(squares, sq)
		}
	}
	return squares
}

// evaluate applies the rejection order of CheckDestination to a parsed square.
func evaluate(board *chess.Board, history chess.History, piece chess.Piece, dest chess.Square, checkKingSafety bool) (errors.Reason, bool) {
	if !dest.Valid() {
		return errors.OutOfBoard, false
	}
	if !piece.Active || !piece.Position.Valid() {
		return errors.EmptyOrigin, false
	}
	if dest == piece.Position {
		return errors.SameAsOrigin, false
	}
	if occupant, ok := board.At(dest); ok && occupant.Colour == piece.Colour {
		return errors.DestinationOccupiedBySameColour, false
	}
	if !canPieceMove(board, history, piece, dest) {
		return errors.IllegalGeometryForPieceKind, false
	}
	if checkKingSafety && leavesKingAttacked(board, history, piece, dest) {
		return errors.SelfCheckViolation, false
	}
	return 0, true
}

// leavesKingAttacked plays the move on a copy of board and reports whether
// the mover's king is attacked afterwards.
func leavesKingAttacked(board *chess.Board, history chess.History, piece chess.Piece, dest chess.Square) bool {
	sim := board.Copy()
	apply(sim, piece, dest, moveSpecial(board, history, piece, dest), chess.NoKind)
	return IsAttacked(sim, history, piece.Colour)
}

// rejectSquare converts a square parse failure into a rejection carrying
// the squares of the attempted move.
func rejectSquare(err error, origin, destination string) error {
	reason, ok := errors.ReasonOf(err)
	if !ok {
		reason = errors.MalformedSquare
	}
	return errors.Reject(reason, origin, destination)
}
