package chess

// Move is a committed move record. Castling is recorded as two moves,
// the king's followed by the rook's.
type Move struct {
	Kind        Kind
	Colour      Colour
	Origin      Square
	Destination Square
}

// NewMove records piece moving to destination.
func NewMove(piece Piece, destination Square) Move {
	return Move{
		Kind:        piece.Kind,
		Colour:      piece.Colour,
		Origin:      piece.Position,
		Destination: destination,
	}
}

// String returns the move in long coordinate form (e.g. "Knight g1-f3").
func (m Move) String() string {
	return m.Kind.String() + " " + m.Origin.String() + "-" + m.Destination.String()
}

// History is the append-only, chronologically ordered list of committed moves.
type History []Move

// Last returns the most recent move.
func (h History) Last() (Move, bool) {
	if len(h) == 0 {
		return Move{}, false
	}
	return h[len(h)-1], true
}

// KingMoved reports whether the king of the given colour has ever moved.
func (h History) KingMoved(colour Colour) bool {
	for _, m := range h {
		if m.Kind == King && m.Colour == colour {
			return true
		}
	}
	return false
}

// RookMovedFrom reports whether any rook has ever moved away from sq.
func (h History) RookMovedFrom(sq Square) bool {
	for _, m := range h {
		if m.Kind == Rook && m.Origin == sq {
			return true
		}
	}
	return false
}

// Plies groups the history into half-moves. A castle is one ply holding the
// king's move and the rook's; every other ply holds a single move.
func (h History) Plies() [][]Move {
	plies := make([][]Move, 0, len(h))
	for i := 0; i < len(h); i++ {
		if i+1 < len(h) && isCastleRookMove(h[i], h[i+1]) {
			plies = append(plies, h[i:i+2])
			i++
			continue
		}
		plies = append(plies, h[i:i+1])
	}
	return plies
}
