package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestSymbol(t *testing.T) {
	tests := []struct {
		piece   chess.Piece
		unicode bool
		want    string
	}{
		{chess.Piece{}, true, " "},
		{chess.Piece{}, false, " "},
		{chess.NewPiece(chess.King, chess.White, chess.NoSquare), true, "♚"},
		{chess.NewPiece(chess.Pawn, chess.White, chess.NoSquare), true, "♟"},
		{chess.NewPiece(chess.Queen, chess.Black, chess.NoSquare), true, "♕"},
		{chess.NewPiece(chess.Knight, chess.Black, chess.NoSquare), true, "♘"},
		{chess.NewPiece(chess.Knight, chess.White, chess.NoSquare), false, "N"},
		{chess.NewPiece(chess.Bishop, chess.Black, chess.NoSquare), false, "b"},
	}
	for _, tt := range tests {
		if got := Symbol(tt.piece, tt.unicode); got != tt.want {
			t.Errorf("Symbol(%v, %v) = %q; want %q", tt.piece, tt.unicode, got, tt.want)
		}
	}
}

func TestWriteBoard(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBoard(&buf, chess.NewInitialBoard(), config.NewOutputConfig()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	// Labels, eight rules and ranks, the bottom rule and labels again.
	if len(lines) != 19 {
		t.Fatalf("got %d lines; want 19:\n%s", len(lines), buf.String())
	}
	if lines[0] != fileLabel || lines[18] != fileLabel {
		t.Error("missing file labels")
	}
	testutil.AssertEqual(t, lines[2], "         8 | ♖  | ♘  | ♗  | ♕  | ♔  | ♗  | ♘  | ♖  |")
	testutil.AssertEqual(t, lines[8], "         5 |    |    |    |    |    |    |    |    |")
	testutil.AssertEqual(t, lines[16], "         1 | ♜  | ♞  | ♝  | ♛  | ♚  | ♝  | ♞  | ♜  |")
}

func TestWriteBoard_ASCII(t *testing.T) {
	cfg := config.NewOutputConfig()
	cfg.Unicode = false

	var buf bytes.Buffer
	if err := WriteBoard(&buf, testutil.MustBoard(t, "Ke1 qd8 ke8"), cfg); err != nil {
		t.Fatal(err)
	}
	testutil.AssertContains(t, buf.String(), "8 |    |    |    | q  | k  |")
	testutil.AssertContains(t, buf.String(), "1 |    |    |    |    | K  |")
}

func TestWriteCaptured(t *testing.T) {
	g := testutil.MustGame(t, "Ke1 ke8", chess.White, "")
	g.Capture(chess.NewPiece(chess.Pawn, chess.Black, chess.MustSquare("d5")))
	g.Capture(chess.NewPiece(chess.Knight, chess.Black, chess.MustSquare("f6")))

	var buf bytes.Buffer
	if err := WriteCaptured(&buf, g.Captured, config.NewOutputConfig()); err != nil {
		t.Fatal(err)
	}
	testutil.AssertContains(t, buf.String(), "LOST PIECES")
	testutil.AssertContains(t, buf.String(), "BLACK ⇨ ♙ - ♘\n")
	testutil.AssertContains(t, buf.String(), "WHITE ⇨ \n")
}

func TestStatusMessage(t *testing.T) {
	tests := []struct {
		name   string
		game   *chess.Game
		status chess.Status
		want   string
	}{
		{"normal", chess.NewGame(), chess.Normal, ""},
		{"check", testutil.MustGame(t, "Ke1 ke8 Re2", chess.Black, ""), chess.Check, "CHECK - Black king is under attack!"},
		{"mate", testutil.MustGame(t, "Ke1 ke8", chess.White, ""), chess.Checkmate, "CHECKMATE - White player wins!"},
		{"stalemate", testutil.MustGame(t, "Ke1 ke8", chess.White, ""), chess.Stalemate, "IT'S A DRAW - Black is not in check"},
		{"kings", testutil.MustGame(t, "Ke1 ke8", chess.White, ""), chess.DrawInsufficientMaterial, "Only kings are left"},
		{"minor", testutil.MustGame(t, "Ke1 Nb1 ke8", chess.White, ""), chess.DrawInsufficientMaterial, "enough material"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.game.Status = tt.status
			got := StatusMessage(tt.game)
			if tt.want == "" {
				testutil.AssertEqual(t, got, "")
				return
			}
			testutil.AssertContains(t, got, tt.want)
		})
	}
}

func TestWriteMoves(t *testing.T) {
	g := playTestGame(t, "e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6", "e1g1")

	var buf bytes.Buffer
	if err := WriteMoves(&buf, g.History, 0); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, buf.String(), "1. e2e4 e7e5 2. g1f3 b8c6 3. f1c4 g8f6 4. O-O\n")

	buf.Reset()
	if err := WriteMoves(&buf, g.History, 20); err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if len(line) > 20 {
			t.Errorf("line %q longer than 20", line)
		}
	}
}

func TestWriteTurnAndWelcome(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTurn(&buf, chess.White); err != nil {
		t.Fatal(err)
	}
	testutil.AssertContains(t, buf.String(), "WHITE PLAYER'S TURN")

	buf.Reset()
	if err := WriteWelcome(&buf); err != nil {
		t.Fatal(err)
	}
	testutil.AssertContains(t, buf.String(), "║                      Welcome to CHESS                      ║")
}
