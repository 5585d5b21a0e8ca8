package chess

// Board maps every square to at most one piece. Pieces are stored by value
// in a fixed 64-slot array indexed by Square, so copying a Board copies
// every piece record with it.
type Board struct {
	squares [NumSquares]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// backRank is the order of the pieces on ranks 1 and 8, file a to h.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for file := 0; file < BoardSize; file++ {
		for _, colour := range Colours {
			b.Put(backRank[file], colour, NewSquare(file, colour.BackRank()))
			b.Put(Pawn, colour, NewSquare(file, colour.PawnRank()))
		}
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.squares = [NumSquares]Piece{}
}

// At returns the piece on sq and whether the square is occupied.
func (b *Board) At(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	p := b.squares[sq]
	return p, !p.IsEmpty()
}

// Get returns the piece on sq, or the empty record.
func (b *Board) Get(sq Square) Piece {
	p, _ := b.At(sq)
	return p
}

// IsEmpty reports whether no piece stands on sq.
func (b *Board) IsEmpty(sq Square) bool {
	_, ok := b.At(sq)
	return !ok
}

// Put places a new active piece on sq, replacing any occupant.
func (b *Board) Put(kind Kind, colour Colour, sq Square) Piece {
	p := NewPiece(kind, colour, sq)
	b.Place(p)
	return p
}

// Place stores p on its own position. Inactive or off-board pieces are ignored.
func (b *Board) Place(p Piece) {
	if !p.Active || !p.Position.Valid() || p.IsEmpty() {
		return
	}
	b.squares[p.Position] = p
}

// Remove empties sq and returns the removed piece, retired.
func (b *Board) Remove(sq Square) (Piece, bool) {
	p, ok := b.At(sq)
	if !ok {
		return Piece{}, false
	}
	b.squares[sq] = Piece{}
	return p.Retired(), true
}

// Relocate moves the piece on from to the empty square to, updating its
// position. It reports false if from is empty or to is occupied.
func (b *Board) Relocate(from, to Square) bool {
	p, ok := b.At(from)
	if !ok || !to.Valid() || !b.IsEmpty(to) {
		return false
	}
	b.squares[from] = Piece{}
	p.Position = to
	b.squares[to] = p
	return true
}

// Pieces returns the active pieces of the given colour in square order.
func (b *Board) Pieces(colour Colour) []Piece {
	var pieces []Piece
	for _, p := range b.squares {
		if !p.IsEmpty() && p.Colour == colour {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// All returns every active piece in square order.
func (b *Board) All() []Piece {
	var pieces []Piece
	for _, p := range b.squares {
		if !p.IsEmpty() {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// FindKing returns the square of the king of the given colour.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for sq, p := range b.squares {
		if p.Kind == King && p.Colour == colour {
			return Square(sq), true
		}
	}
	return NoSquare, false
}

// Copy creates a deep copy of the board. The copy shares no piece records
// with b, so it can be used to simulate moves.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
