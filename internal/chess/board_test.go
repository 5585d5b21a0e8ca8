package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	for sq := Square(0); sq < NumSquares; sq++ {
		if !b.IsEmpty(sq) {
			t.Errorf("IsEmpty(%v) = false; want true", sq)
		}
	}
	if _, ok := b.FindKing(White); ok {
		t.Error("FindKing(White) found a king on an empty board")
	}
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	t.Run("pawns", func(t *testing.T) {
		for file := 0; file < BoardSize; file++ {
			if p := b.Get(NewSquare(file, 1)); p.Kind != Pawn || p.Colour != White {
				t.Errorf("rank 2 file %d = %v; want White Pawn", file, p)
			}
			if p := b.Get(NewSquare(file, 6)); p.Kind != Pawn || p.Colour != Black {
				t.Errorf("rank 7 file %d = %v; want Black Pawn", file, p)
			}
		}
	})

	t.Run("middle ranks empty", func(t *testing.T) {
		for rank := 2; rank <= 5; rank++ {
			for file := 0; file < BoardSize; file++ {
				if sq := NewSquare(file, rank); !b.IsEmpty(sq) {
					t.Errorf("%v is not empty", sq)
				}
			}
		}
	})

	t.Run("back ranks", func(t *testing.T) {
		want := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
		for file, kind := range want {
			white := b.Get(NewSquare(file, 0))
			black := b.Get(NewSquare(file, 7))
			if white.Kind != kind || white.Colour != White {
				t.Errorf("rank 1 file %d = %v; want White %v", file, white, kind)
			}
			if black.Kind != kind || black.Colour != Black {
				t.Errorf("rank 8 file %d = %v; want Black %v", file, black, kind)
			}
		}
	})

	t.Run("kings", func(t *testing.T) {
		if sq, ok := b.FindKing(White); !ok || sq != MustSquare("e1") {
			t.Errorf("FindKing(White) = %v, %v; want e1", sq, ok)
		}
		if sq, ok := b.FindKing(Black); !ok || sq != MustSquare("e8") {
			t.Errorf("FindKing(Black) = %v, %v; want e8", sq, ok)
		}
	})

	t.Run("positions match squares", func(t *testing.T) {
		for _, p := range b.All() {
			if !p.Active || b.Get(p.Position) != p {
				t.Errorf("piece %v is not stored on its own square", p)
			}
		}
		if n := len(b.All()); n != 32 {
			t.Errorf("len(All()) = %d; want 32", n)
		}
	})
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr error
	}{
		{"a1", 0, nil},
		{"h1", 7, nil},
		{"a8", 56, nil},
		{"h8", 63, nil},
		{"e4", 28, nil},
		{"1", NoSquare, chesserrors.ErrMalformedSquare},
		{"a", NoSquare, chesserrors.ErrMalformedSquare},
		{"A2", NoSquare, chesserrors.ErrMalformedSquare},
		{"a20", NoSquare, chesserrors.ErrMalformedSquare},
		{"", NoSquare, chesserrors.ErrMalformedSquare},
		{"j1", NoSquare, chesserrors.ErrOutOfBoard},
		{"a9", NoSquare, chesserrors.ErrOutOfBoard},
		{"a0", NoSquare, chesserrors.ErrOutOfBoard},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseSquare(%q) error = %v; want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSquare(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %d; want %d", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q; want %q", got.String(), tt.in)
			}
		})
	}
}

func TestSquareOffset(t *testing.T) {
	e4 := MustSquare("e4")
	if got := e4.Offset(1, 2); got != MustSquare("f6") {
		t.Errorf("e4.Offset(1, 2) = %v; want f6", got)
	}
	if got := MustSquare("h8").Offset(1, 0); got != NoSquare {
		t.Errorf("h8.Offset(1, 0) = %v; want NoSquare", got)
	}
	if got := NoSquare.String(); got != "-" {
		t.Errorf("NoSquare.String() = %q; want -", got)
	}
}

func TestBoardCopy(t *testing.T) {
	b := NewInitialBoard()
	c := b.Copy()

	if !c.Relocate(MustSquare("e2"), MustSquare("e4")) {
		t.Fatal("Relocate(e2, e4) on copy failed")
	}
	if b.IsEmpty(MustSquare("e2")) {
		t.Error("relocating on the copy changed the original board")
	}
	if p := c.Get(MustSquare("e4")); p.Position != MustSquare("e4") {
		t.Errorf("relocated piece position = %v; want e4", p.Position)
	}
}

func TestBoardRemove(t *testing.T) {
	b := NewInitialBoard()
	p, ok := b.Remove(MustSquare("d8"))
	if !ok {
		t.Fatal("Remove(d8) = false")
	}
	if p.Kind != Queen || p.Active || p.Position != NoSquare {
		t.Errorf("removed piece = %+v; want retired Queen", p)
	}
	if _, ok := b.Remove(MustSquare("d4")); ok {
		t.Error("Remove(d4) on empty square = true")
	}
}

func TestRelocateRejectsOccupied(t *testing.T) {
	b := NewInitialBoard()
	if b.Relocate(MustSquare("a1"), MustSquare("a2")) {
		t.Error("Relocate onto an occupied square succeeded")
	}
	if b.Relocate(MustSquare("a4"), MustSquare("a5")) {
		t.Error("Relocate from an empty square succeeded")
	}
}

func TestHistory(t *testing.T) {
	var h History
	if _, ok := h.Last(); ok {
		t.Error("Last() on empty history ok = true")
	}

	h = append(h,
		Move{Kind: Pawn, Colour: White, Origin: MustSquare("e2"), Destination: MustSquare("e4")},
		Move{Kind: Rook, Colour: Black, Origin: MustSquare("h8"), Destination: MustSquare("h7")},
	)

	if last, _ := h.Last(); last.Destination != MustSquare("h7") {
		t.Errorf("Last() = %v; want rook h8-h7", last)
	}
	if h.KingMoved(White) {
		t.Error("KingMoved(White) = true; want false")
	}
	if !h.RookMovedFrom(MustSquare("h8")) {
		t.Error("RookMovedFrom(h8) = false; want true")
	}
	if h.RookMovedFrom(MustSquare("a8")) {
		t.Error("RookMovedFrom(a8) = true; want false")
	}
}

func TestGamePly(t *testing.T) {
	g := NewGame()
	g.History = History{
		{Kind: Pawn, Colour: White, Origin: MustSquare("e2"), Destination: MustSquare("e4")},
		{Kind: King, Colour: Black, Origin: MustSquare("e8"), Destination: MustSquare("g8")},
		{Kind: Rook, Colour: Black, Origin: MustSquare("h8"), Destination: MustSquare("f8")},
		{Kind: Rook, Colour: White, Origin: MustSquare("a1"), Destination: MustSquare("a2")},
	}
	if got := g.Ply(); got != 3 {
		t.Errorf("Ply() = %d; want 3", got)
	}
}

func TestHistoryPlies(t *testing.T) {
	h := History{
		{Kind: King, Colour: White, Origin: MustSquare("e1"), Destination: MustSquare("c1")},
		{Kind: Rook, Colour: White, Origin: MustSquare("a1"), Destination: MustSquare("d1")},
		{Kind: King, Colour: Black, Origin: MustSquare("e8"), Destination: MustSquare("e7")},
		{Kind: Rook, Colour: Black, Origin: MustSquare("h8"), Destination: MustSquare("h7")},
	}
	plies := h.Plies()
	if len(plies) != 3 {
		t.Fatalf("len(Plies()) = %d; want 3", len(plies))
	}
	if len(plies[0]) != 2 || len(plies[1]) != 1 || len(plies[2]) != 1 {
		t.Errorf("Plies() sizes = %d %d %d; want 2 1 1", len(plies[0]), len(plies[1]), len(plies[2]))
	}
	if got := (History{}).Plies(); len(got) != 0 {
		t.Errorf("empty history has %d plies", len(got))
	}
}

func TestGameClone(t *testing.T) {
	g := NewGame()
	g.Capture(NewPiece(Pawn, Black, MustSquare("d5")))
	c := g.Clone()

	c.Board.Remove(MustSquare("a1"))
	c.Captured[Black] = append(c.Captured[Black], NewPiece(Knight, Black, NoSquare))
	c.History = append(c.History, Move{Kind: Pawn})

	if g.Board.IsEmpty(MustSquare("a1")) {
		t.Error("clone shares the board")
	}
	if len(g.Captured[Black]) != 1 {
		t.Errorf("len(Captured[Black]) = %d; want 1", len(g.Captured[Black]))
	}
	if len(g.History) != 0 {
		t.Error("clone shares the history")
	}
	if g.Captured[Black][0].Active {
		t.Error("Capture() stored an active piece")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"queen", Queen, true},
		{"Knight", Knight, true},
		{" rook ", Rook, true},
		{"1", Bishop, true},
		{"2", Knight, true},
		{"3", Queen, true},
		{"4", Rook, true},
		{"5", NoKind, false},
		{"dragon", NoKind, false},
	}
	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseKind(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStatus(t *testing.T) {
	for _, s := range []Status{Normal, Check, Checkmate, Stalemate, DrawInsufficientMaterial} {
		got, ok := ParseStatus(s.String())
		if !ok || got != s {
			t.Errorf("ParseStatus(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if Check.Terminal() || Normal.Terminal() {
		t.Error("Check/Normal reported terminal")
	}
	if !Checkmate.Terminal() || !Stalemate.Terminal() || !DrawInsufficientMaterial.Terminal() {
		t.Error("terminal status reported non-terminal")
	}
}
