package chess

// Game is the complete state of a match: whose turn it is, the board, the
// move history and the pieces each colour has lost. It is mutated only by
// committing an already validated move.
type Game struct {
	// ID identifies the match (assigned by the orchestration layer).
	ID string

	// Who has the next move.
	Turn Colour

	// The live board.
	Board *Board

	// Every committed move, oldest first.
	History History

	// Pieces lost by each colour, in capture order. Every entry is retired.
	Captured map[Colour][]Piece

	// Classification of the position for Turn, as of the last committed move.
	Status Status
}

// NewGame creates a game in the standard starting position with white to move.
func NewGame() *Game {
	return &Game{
		Turn:     White,
		Board:    NewInitialBoard(),
		History:  History{},
		Captured: map[Colour][]Piece{White: {}, Black: {}},
		Status:   Normal,
	}
}

// Ply returns the number of half-moves played so far. Castling counts once
// even though it is recorded as two history entries.
func (g *Game) Ply() int {
	return len(g.History.Plies())
}

// isCastleRookMove reports whether rook is the second half of a castle
// whose first half is king.
func isCastleRookMove(king, rook Move) bool {
	if king.Kind != King || rook.Kind != Rook || king.Colour != rook.Colour {
		return false
	}
	df := king.Destination.File() - king.Origin.File()
	return (df == 2 || df == -2) && rook.Origin.Rank() == king.Origin.Rank()
}

// Capture records p as lost by its colour.
func (g *Game) Capture(p Piece) {
	if g.Captured == nil {
		g.Captured = map[Colour][]Piece{}
	}
	g.Captured[p.Colour] = append(g.Captured[p.Colour], p.Retired())
}

// Clone returns a deep copy of the game.
func (g *Game) Clone() *Game {
	c := &Game{
		ID:       g.ID,
		Turn:     g.Turn,
		Board:    g.Board.Copy(),
		History:  append(History{}, g.History...),
		Captured: map[Colour][]Piece{},
		Status:   g.Status,
	}
	for colour, pieces := range g.Captured {
		c.Captured[colour] = append([]Piece{}, pieces...)
	}
	return c
}
