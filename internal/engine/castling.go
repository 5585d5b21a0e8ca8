package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castle describes one of the four castling moves.
type castle struct {
	colour   chess.Colour
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
}

var castles = []castle{
	{chess.White, chess.MustSquare("e1"), chess.MustSquare("g1"), chess.MustSquare("h1"), chess.MustSquare("f1")},
	{chess.White, chess.MustSquare("e1"), chess.MustSquare("c1"), chess.MustSquare("a1"), chess.MustSquare("d1")},
	{chess.Black, chess.MustSquare("e8"), chess.MustSquare("g8"), chess.MustSquare("h8"), chess.MustSquare("f8")},
	{chess.Black, chess.MustSquare("e8"), chess.MustSquare("c8"), chess.MustSquare("a8"), chess.MustSquare("d8")},
}

// castleFor returns the castling move a king of colour makes by moving from
// origin to dest, if there is one.
func castleFor(colour chess.Colour, origin, dest chess.Square) (castle, bool) {
	for _, c := range castles {
		if c.colour == colour && c.kingFrom == origin && c.kingTo == dest {
			return c, true
		}
	}
	return castle{}, false
}

// IsCastling reports whether moving king to dest is a legal castle. The
// king and the rook on the chosen side must never have moved, the squares
// between them must be empty, and the king must not be attacked on its
// origin, the square it crosses, or its destination.
func IsCastling(board *chess.Board, history chess.History, king chess.Piece, dest chess.Square) bool {
	if king.Kind != chess.King || !king.Active {
		return false
	}
	c, ok := castleFor(king.Colour, king.Position, dest)
	if !ok {
		return false
	}
	if history.KingMoved(king.Colour) || history.RookMovedFrom(c.rookFrom) {
		return false
	}
	rook, ok := board.At(c.rookFrom)
	if !ok || rook.Kind != chess.Rook || rook.Colour != king.Colour {
		return false
	}
	if !SquaresBetweenAreEmpty(board, c.kingFrom, c.rookFrom) {
		return false
	}
	return kingPathSafe(board, history, c)
}

// kingPathSafe walks the king from its origin to its castling destination
// one square at a time and checks for attacks on each intermediate board.
func kingPathSafe(board *chess.Board, history chess.History, c castle) bool {
	step := sign(ColumnShift(c.kingFrom, c.kingTo))
	for sq := c.kingFrom; ; sq = sq.Offset(step, 0) {
		sim := board.Copy()
		if sq != c.kingFrom && !sim.Relocate(c.kingFrom, sq) {
			return false
		}
		if IsAttacked(sim, history, c.colour) {
			return false
		}
		if sq == c.kingTo {
			return true
		}
	}
}
