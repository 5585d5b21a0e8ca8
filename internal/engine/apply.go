package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MoveClass identifies which commit procedure a move uses.
type MoveClass int

const (
	SimpleMove MoveClass = iota
	EnPassantMove
	CastleMove
	PromotionMove
)

var moveClassNames = []string{"simple", "en passant", "castle", "promotion"}

func (c MoveClass) String() string {
	if c >= 0 && int(c) < len(moveClassNames) {
		return moveClassNames[c]
	}
	return "unknown"
}

// Result describes a committed move.
type Result struct {
	Class MoveClass

	// History entries appended by the move: two for a castle, one otherwise.
	Moves []chess.Move

	// The retired captured piece, or the empty record.
	Captured chess.Piece

	// The piece created by a promotion, or the empty record.
	Promoted chess.Piece
}

// HasCapture reports whether the move took a piece.
func (r Result) HasCapture() bool {
	return !r.Captured.IsEmpty()
}

// ClassifyMove picks the commit procedure for moving piece to dest. The move is
// assumed to be legal.
func ClassifyMove(board *chess.Board, history chess.History, piece chess.Piece, dest chess.Square) MoveClass {
	return moveSpecial(board, history, piece, dest)
}

func moveSpecial(board *chess.Board, history chess.History, piece chess.Piece, dest chess.Square) MoveClass {
	switch piece.Kind {
	case chess.Pawn:
		if IsEnPassant(board, history, piece, dest) {
			return EnPassantMove
		}
		if NeedsPromotion(piece, dest) {
			return PromotionMove
		}
	case chess.King:
		// A legal king move of two files can only be a castle.
		if _, ok := castleFor(piece.Colour, piece.Position, dest); ok {
			return CastleMove
		}
	}
	return SimpleMove
}

// Commit plays an already validated move on game. The history entries are
// appended before the board changes, captured pieces are recorded, and the
// turn is left alone. A promoting move needs a promotion kind; a missing or
// invalid kind fails before anything is modified.
func Commit(game *chess.Game, piece chess.Piece, dest chess.Square, promotion chess.Kind) (Result, error) {
	if current, ok := game.Board.At(piece.Position); !ok || current != piece {
		return Result{}, errors.Wrapf(errors.ErrIllegalMove, "no %v on %v", piece, piece.Position)
	}
	if !dest.Valid() {
		return Result{}, errors.Reject(errors.OutOfBoard, piece.Position.String(), dest.String())
	}

	class := moveSpecial(game.Board, game.History, piece, dest)
	if class == PromotionMove {
		if promotion == chess.NoKind {
			return Result{}, errors.Wrapf(errors.ErrPromotionRequired, "pawn to %v", dest)
		}
		if !promotion.IsPromotion() {
			return Result{}, errors.Wrapf(errors.ErrInvalidPromotion, "%v", promotion)
		}
	}

	res := Result{Class: class, Moves: record(piece, dest, class)}
	game.History = append(game.History, res.Moves...)

	res.Captured, res.Promoted = apply(game.Board, piece, dest, class, promotion)
	if res.HasCapture() {
		game.Capture(res.Captured)
	}
	return res, nil
}

// record returns the history entries for a move. A castle is recorded as
// the king's move followed by the rook's, both in the mover's colour.
func record(piece chess.Piece, dest chess.Square, class MoveClass) []chess.Move {
	if class == CastleMove {
		c, _ := castleFor(piece.Colour, piece.Position, dest)
		rook := chess.NewPiece(chess.Rook, piece.Colour, c.rookFrom)
		return []chess.Move{chess.NewMove(piece, dest), chess.NewMove(rook, c.rookTo)}
	}
	return []chess.Move{chess.NewMove(piece, dest)}
}

// apply changes board for one move and returns the captured piece and the
// promoted piece, if any. Simulations pass chess.NoKind as the promotion,
// which leaves the pawn on the back rank.
func apply(board *chess.Board, piece chess.Piece, dest chess.Square, class MoveClass, promotion chess.Kind) (captured, promoted chess.Piece) {
	switch class {
	case EnPassantMove:
		df := ColumnShift(piece.Position, dest)
		captured, _ = board.Remove(piece.Position.Offset(df, 0))
		board.Relocate(piece.Position, piece.Position.Offset(df, piece.Colour.Forward()))

	case CastleMove:
		c, _ := castleFor(piece.Colour, piece.Position, dest)
		board.Relocate(c.kingFrom, c.kingTo)
		board.Relocate(c.rookFrom, c.rookTo)

	default:
		captured, _ = board.Remove(dest)
		board.Relocate(piece.Position, dest)
		if class == PromotionMove && promotion != chess.NoKind {
			var err error
			promoted, err = Promote(board, board.Get(dest), dest, promotion)
			if err != nil {
				panic(fmt.Sprintf("engine: promotion after validation: %v", err))
			}
		}
	}
	return captured, promoted
}

// Promote replaces pawn, standing on dest, with a new piece of the chosen
// kind and the pawn's colour. The pawn is retired and the new piece returned.
func Promote(board *chess.Board, pawn chess.Piece, dest chess.Square, kind chess.Kind) (chess.Piece, error) {
	if !kind.IsPromotion() {
		return chess.Piece{}, errors.Wrapf(errors.ErrInvalidPromotion, "%v", kind)
	}
	current, ok := board.At(dest)
	if !ok || current != pawn || pawn.Kind != chess.Pawn {
		return chess.Piece{}, errors.Wrapf(errors.ErrIllegalMove, "no pawn to promote on %v", dest)
	}
	board.Remove(dest)
	return board.Put(kind, pawn.Colour, dest), nil
}
