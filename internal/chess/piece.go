package chess

// Piece is a piece record. A piece is active exactly while it stands on a
// square; capture retires it once, clearing its position, and the record is
// kept in the captured list of its colour.
type Piece struct {
	Kind     Kind
	Colour   Colour
	Position Square
	Active   bool
}

// NewPiece creates an active piece standing on sq.
func NewPiece(kind Kind, colour Colour, sq Square) Piece {
	return Piece{Kind: kind, Colour: colour, Position: sq, Active: true}
}

// IsEmpty reports whether p is the zero record used for empty squares.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Retired returns a copy of p taken off the board.
func (p Piece) Retired() Piece {
	p.Active = false
	p.Position = NoSquare
	return p
}

// String returns a short description such as "White Knight on g1".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	if !p.Active {
		return p.Colour.String() + " " + p.Kind.String() + " (captured)"
	}
	return p.Colour.String() + " " + p.Kind.String() + " on " + p.Position.String()
}
