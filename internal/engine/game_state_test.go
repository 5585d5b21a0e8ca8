package engine

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// play commits space separated coordinate moves such as "e2e4 e7e5",
// handing the turn over after each one.
func play(t *testing.T, game *chess.Game, moves string) {
	t.Helper()
	for _, mv := range strings.Fields(moves) {
		piece, err := SelectPiece(game.Board, mv[:2], game.Turn)
		if err != nil {
			t.Fatalf("%s: %v", mv, err)
		}
		if err := CheckDestination(game.Board, game.History, piece, mv[2:4], true); err != nil {
			t.Fatalf("%s: %v", mv, err)
		}
		promotion := chess.NoKind
		if len(mv) == 5 {
			promotion, _ = chess.KindFromLetter(mv[4])
		}
		if _, err := Commit(game, piece, chess.MustSquare(mv[2:4]), promotion); err != nil {
			t.Fatalf("%s: %v", mv, err)
		}
		game.Turn = game.Turn.Opposite()
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		colour    chess.Colour
		want      chess.Status
	}{
		{"check", "Ke1 Re2 ke8", chess.Black, chess.Check},
		{"not in check", "Ke1 Re2 ke8", chess.White, chess.Normal},
		{"back rank mate", "kh8 pg7 ph7 Ra8 Kg1", chess.Black, chess.Checkmate},
		{"smothered mate", "kh8 rg8 pg7 ph7 Nf7 Kg1", chess.Black, chess.Checkmate},
		{"stalemate", "kh8 Kf7 Qg6", chess.Black, chess.Stalemate},
		{"stalemate with blocked pawn", "ka8 pa7 Pa6 Kc7 Qb5 Ph2", chess.Black, chess.Stalemate},
		{"only kings", "Ke1 ke8", chess.White, chess.DrawInsufficientMaterial},
		{"bishop counts by default", "Ke1 Bc1 ke8", chess.Black, chess.Normal},
		{"bishop check counts by default", "Ke1 Bb5 ke8", chess.Black, chess.Check},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoard(t, tt.placement)
			got := Classify(board, nil, tt.colour)
			if got != tt.want {
				t.Errorf("Classify() = %v; want %v", got, tt.want)
			}
			if again := Classify(board, nil, tt.colour); again != got {
				t.Errorf("second Classify() = %v; want %v", again, got)
			}
		})
	}
}

func TestClassifier_ExtendedInsufficientMaterial(t *testing.T) {
	c := Classifier{ExtendedInsufficientMaterial: true}

	tests := []struct {
		placement string
		colour    chess.Colour
		want      chess.Status
	}{
		{"Ke1 Bc1 ke8", chess.Black, chess.DrawInsufficientMaterial},
		// Decided before attacks are looked at.
		{"Ke1 Bb5 ke8", chess.Black, chess.DrawInsufficientMaterial},
		{"Ke1 Nb1 ke8", chess.White, chess.DrawInsufficientMaterial},
		{"Ke1 Ra1 ke8", chess.Black, chess.Normal},
	}

	for _, tt := range tests {
		board := testutil.MustBoard(t, tt.placement)
		if got := c.Classify(board, nil, tt.colour); got != tt.want {
			t.Errorf("Classify(%q) = %v; want %v", tt.placement, got, tt.want)
		}
	}
}

func TestClassify_PlayedGames(t *testing.T) {
	tests := []struct {
		name  string
		moves string
		want  chess.Status
	}{
		{"initial", "", chess.Normal},
		{"fool's mate", "f2f3 e7e5 g2g4 d8h4", chess.Checkmate},
		{"scholar's mate", "e2e4 e7e5 f1c4 b8c6 d1h5 g8f6 h5f7", chess.Checkmate},
		{"check", "e2e4 f7f6 d1h5", chess.Check},
		{"en passant recapture", "e2e4 a7a6 e4e5 d7d5 e5d6", chess.Normal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := chess.NewGame()
			play(t, game, tt.moves)
			if got := Classify(game.Board, game.History, game.Turn); got != tt.want {
				t.Errorf("Classify() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestIsCheckmateAndStalemate(t *testing.T) {
	mate := chess.NewGame()
	play(t, mate, "f2f3 e7e5 g2g4 d8h4")
	if !IsCheckmate(mate) || IsStalemate(mate) || !IsInCheck(mate) {
		t.Error("fool's mate not reported as checkmate")
	}

	stale := testutil.MustGame(t, "kh8 Kf7 Qg6", chess.Black, "")
	if !IsStalemate(stale) || IsCheckmate(stale) || IsInCheck(stale) {
		t.Error("stalemate not reported as stalemate")
	}
}

func TestIsAttacked_MissingKingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("IsAttacked() on a board without a king did not panic")
		}
	}()
	IsAttacked(testutil.MustBoard(t, "Ke1"), nil, chess.Black)
}

func TestSquareAttacked(t *testing.T) {
	board := chess.NewInitialBoard()
	if !SquareAttacked(board, nil, chess.MustSquare("f3"), chess.White) {
		t.Error("f3 not attacked by white")
	}
	if SquareAttacked(board, nil, chess.MustSquare("e5"), chess.White) {
		t.Error("e5 attacked by white in the initial position")
	}
}
