package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/match"
)

var gameOpts = cmp.Options{cmp.AllowUnexported(chess.Board{}), cmpopts.EquateEmpty()}

// playedGame returns a match after a short opening with a capture and a castle.
func playedGame(t *testing.T) *chess.Game {
	t.Helper()
	m := match.New()
	_, err := m.Replay("e2e4", "d7d5", "e4d5", "g8f6", "g1f3", "f6d5", "f1c4", "e7e6", "e1g1")
	require.NoError(t, err)
	return m.Game()
}

func TestSnapshotRoundTrip(t *testing.T) {
	g := playedGame(t)

	data, err := json.Marshal(FromGame(g))
	require.NoError(t, err)

	var s Snapshot
	require.NoError(t, json.Unmarshal(data, &s))
	got, err := s.Game()
	require.NoError(t, err)

	if diff := cmp.Diff(g, got, gameOpts); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshot_NewGame(t *testing.T) {
	s := FromGame(chess.NewGame())

	assert.Equal(t, SnapshotVersion, s.Version)
	assert.Equal(t, "White", s.Turn)
	assert.Equal(t, "Normal", s.Status)
	assert.Len(t, s.Board, 32)
	assert.Empty(t, s.History)
	assert.Equal(t, PieceRecord{Kind: "King", Colour: "Black", Position: "e8", Active: true}, s.Board["e8"])
	assert.Contains(t, s.Captured, "White")
	assert.Contains(t, s.Captured, "Black")
}

func TestSnapshot_ReportsEveryProblem(t *testing.T) {
	s := FromGame(chess.NewGame())
	s.Turn = "Green"
	delete(s.Board, "e1")
	s.Board["e4"] = PieceRecord{Kind: "Queen", Colour: "White", Position: "e5", Active: true}
	s.Captured["Black"] = []PieceRecord{{Kind: "Pawn", Colour: "White"}}

	_, err := s.Game()
	require.Error(t, err)
	assert.True(t, errors.Is(err, chesserrors.ErrInvalidSnapshot))

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 4)
	assert.Contains(t, err.Error(), "turn \"Green\"")
	assert.Contains(t, err.Error(), "0 White kings")
}

func TestSnapshot_BadRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{"version", func(s *Snapshot) { s.Version = 9 }},
		{"status", func(s *Snapshot) { s.Status = "Won" }},
		{"kind", func(s *Snapshot) { s.Board["a1"] = PieceRecord{Kind: "Castle", Colour: "White", Position: "a1", Active: true} }},
		{"board key", func(s *Snapshot) { s.Board["z9"] = PieceRecord{Kind: "Pawn", Colour: "White", Position: "z9", Active: true} }},
		{"inactive on board", func(s *Snapshot) { s.Board["a2"] = PieceRecord{Kind: "Pawn", Colour: "White", Position: "a2"} }},
		{"two kings", func(s *Snapshot) { s.Board["e4"] = PieceRecord{Kind: "King", Colour: "Black", Position: "e4", Active: true} }},
		{"history square", func(s *Snapshot) {
			s.History = []MoveRecord{{Kind: "Pawn", Colour: "White", Origin: "e2", Destination: "e9"}}
		}},
		{"active capture", func(s *Snapshot) {
			s.Captured["White"] = []PieceRecord{{Kind: "Pawn", Colour: "White", Position: "e2", Active: true}}
		}},
		{"captured colour", func(s *Snapshot) { s.Captured["Red"] = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromGame(chess.NewGame())
			tt.mutate(s)
			_, err := s.Game()
			assert.True(t, errors.Is(err, chesserrors.ErrInvalidSnapshot), "got %v", err)
		})
	}
}

func TestValidName(t *testing.T) {
	for _, name := range []string{"game1", "A", "Final2024"} {
		assert.NoError(t, ValidName(name), name)
	}
	for _, name := range []string{"", "my game", "../etc", "a.json", "naïve", "x-y"} {
		assert.True(t, errors.Is(ValidName(name), chesserrors.ErrInvalidName), name)
	}
	assert.NoError(t, ValidName(NewName()))
	assert.NotEqual(t, NewName(), NewName())
}

func TestDir_SaveLoad(t *testing.T) {
	d := NewDir(filepath.Join(t.TempDir(), "games"))
	g := playedGame(t)

	assert.False(t, d.Exists("opening"))
	require.NoError(t, d.Save("opening", g))
	assert.True(t, d.Exists("opening"))
	assert.FileExists(t, d.Path("opening"))

	got, err := d.Load("opening")
	require.NoError(t, err)
	if diff := cmp.Diff(g, got, gameOpts); diff != "" {
		t.Errorf("load mismatch (-want +got):\n%s", diff)
	}

	// Saving again replaces the old file.
	g2 := chess.NewGame()
	require.NoError(t, d.Save("opening", g2))
	got, err = d.Load("opening")
	require.NoError(t, err)
	assert.Empty(t, got.History)
}

func TestDir_Errors(t *testing.T) {
	d := NewDir(t.TempDir())

	err := d.Save("bad name", chess.NewGame())
	assert.True(t, errors.Is(err, chesserrors.ErrInvalidName))

	_, err = d.Load("missing")
	assert.True(t, errors.Is(err, chesserrors.ErrSaveNotFound))

	require.NoError(t, os.WriteFile(d.Path("junk"), []byte("{not json"), 0o644))
	_, err = d.Load("junk")
	assert.True(t, errors.Is(err, chesserrors.ErrInvalidSnapshot))
}

func TestDir_List(t *testing.T) {
	dir := t.TempDir()
	d := NewDir(dir)

	names, err := NewDir(filepath.Join(dir, "nothing")).List()
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, d.Save(name, chess.NewGame()))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad-name.json"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0o755))

	names, err = d.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestVerify(t *testing.T) {
	d := NewDir(t.TempDir())
	require.NoError(t, d.Save("fresh", chess.NewGame()))
	require.NoError(t, d.Save("played", playedGame(t)))

	m := match.New()
	_, err := m.Replay("f2f3", "e7e5", "g2g4", "d8h4")
	require.NoError(t, err)
	require.NoError(t, d.Save("mate", m.Game()))

	checks, err := Verify(d, 3, engine.Classifier{})
	require.NoError(t, err)
	require.Len(t, checks, 3)
	assert.Equal(t, "fresh", checks[0].Name)
	assert.Equal(t, Check{Name: "mate", Status: chess.Checkmate, Ply: 4}, checks[1])
	assert.Equal(t, 9, checks[2].Ply)
}

func TestVerify_TamperedStatus(t *testing.T) {
	d := NewDir(t.TempDir())
	require.NoError(t, d.Save("good", chess.NewGame()))

	g := chess.NewGame()
	g.Status = chess.Stalemate
	require.NoError(t, d.Save("lying", g))
	require.NoError(t, os.WriteFile(d.Path("broken"), []byte("[]"), 0o644))

	checks, err := Verify(d, 2, engine.Classifier{})
	require.Error(t, err)
	require.Len(t, checks, 3)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 2)
	assert.Contains(t, err.Error(), "lying")
	assert.Contains(t, err.Error(), "broken")

	assert.Equal(t, "broken", checks[0].Name)
	assert.Error(t, checks[0].Err)
	assert.NoError(t, checks[1].Err)
	assert.Equal(t, []string{"lying"}, checks[1].Duplicates)
	assert.Equal(t, []string{"good"}, checks[2].Duplicates)
	assert.True(t, errors.Is(checks[2].Err, chesserrors.ErrInvalidSnapshot))
}
