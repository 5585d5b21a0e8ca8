// Package store persists games as JSON snapshots in a directory of saves.
package store

import (
	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

// SnapshotVersion is the snapshot format written by FromGame.
const SnapshotVersion = 1

// Snapshot is the serialised form of a game.
type Snapshot struct {
	Version  int                      `json:"version"`
	ID       string                   `json:"id"`
	Turn     string                   `json:"turn"`
	Status   string                   `json:"status"`
	Board    map[string]PieceRecord   `json:"board"`
	History  []MoveRecord             `json:"history"`
	Captured map[string][]PieceRecord `json:"captured"`
}

// PieceRecord is a serialised piece. Captured pieces have no position.
type PieceRecord struct {
	Kind     string `json:"kind"`
	Colour   string `json:"colour"`
	Position string `json:"position,omitempty"`
	Active   bool   `json:"active"`
}

// MoveRecord is a serialised history entry.
type MoveRecord struct {
	Kind        string `json:"kind"`
	Colour      string `json:"colour"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// FromGame captures the full state of g.
func FromGame(g *chess.Game) *Snapshot {
	s := &Snapshot{
		Version:  SnapshotVersion,
		ID:       g.ID,
		Turn:     g.Turn.String(),
		Status:   g.Status.String(),
		Board:    map[string]PieceRecord{},
		History:  make([]MoveRecord, 0, len(g.History)),
		Captured: map[string][]PieceRecord{},
	}
	for _, p := range g.Board.All() {
		s.Board[p.Position.String()] = pieceRecord(p)
	}
	for _, m := range g.History {
		s.History = append(s.History, MoveRecord{
			Kind:        m.Kind.String(),
			Colour:      m.Colour.String(),
			Origin:      m.Origin.String(),
			Destination: m.Destination.String(),
		})
	}
	for _, colour := range chess.Colours {
		records := []PieceRecord{}
		for _, p := range g.Captured[colour] {
			records = append(records, pieceRecord(p))
		}
		s.Captured[colour.String()] = records
	}
	return s
}

func pieceRecord(p chess.Piece) PieceRecord {
	r := PieceRecord{Kind: p.Kind.String(), Colour: p.Colour.String(), Active: p.Active}
	if p.Active {
		r.Position = p.Position.String()
	}
	return r
}

// Game rebuilds the game. Every broken invariant is reported, not just the
// first; each one wraps errors.ErrInvalidSnapshot.
func (s *Snapshot) Game() (*chess.Game, error) {
	var errs *multierror.Error
	invalid := func(format string, args ...interface{}) {
		errs = multierror.Append(errs, chesserrors.Wrapf(chesserrors.ErrInvalidSnapshot, format, args...))
	}

	if s.Version < 1 || s.Version > SnapshotVersion {
		invalid("unsupported version %d", s.Version)
	}

	g := chess.NewGame()
	g.ID = s.ID
	g.Board = chess.NewBoard()

	turn, ok := chess.ParseColour(s.Turn)
	if !ok {
		invalid("turn %q", s.Turn)
	}
	g.Turn = turn

	status, ok := chess.ParseStatus(s.Status)
	if !ok {
		invalid("status %q", s.Status)
	}
	g.Status = status

	kings := map[chess.Colour]int{}
	for square, r := range s.Board {
		p, err := r.piece()
		if err != nil {
			invalid("board %s: %v", square, err)
			continue
		}
		sq, err := chess.ParseSquare(square)
		if err != nil {
			invalid("board key %q: %v", square, err)
			continue
		}
		if !p.Active || p.Position != sq {
			invalid("board %s: piece must be active and positioned on its square", square)
			continue
		}
		if p.Kind == chess.King {
			kings[p.Colour]++
		}
		g.Board.Place(p)
	}
	for _, colour := range chess.Colours {
		if kings[colour] != 1 {
			invalid("%d %v kings", kings[colour], colour)
		}
	}

	for i, m := range s.History {
		move, err := m.move()
		if err != nil {
			invalid("history %d: %v", i+1, err)
			continue
		}
		g.History = append(g.History, move)
	}

	for name, records := range s.Captured {
		colour, ok := chess.ParseColour(name)
		if !ok {
			invalid("captured colour %q", name)
			continue
		}
		for i, r := range records {
			p, err := r.piece()
			if err != nil {
				invalid("captured %s %d: %v", name, i+1, err)
				continue
			}
			if p.Active || r.Position != "" {
				invalid("captured %s %d: piece still active", name, i+1)
				continue
			}
			if p.Colour != colour {
				invalid("captured %s %d: %v piece in the %v list", name, i+1, p.Colour, colour)
				continue
			}
			g.Captured[colour] = append(g.Captured[colour], p)
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return g, nil
}

func (r PieceRecord) piece() (chess.Piece, error) {
	kind, ok := chess.ParseKind(r.Kind)
	if !ok || kind.String() != r.Kind {
		return chess.Piece{}, chesserrors.Wrapf(chesserrors.ErrInvalidSnapshot, "kind %q", r.Kind)
	}
	colour, ok := chess.ParseColour(r.Colour)
	if !ok {
		return chess.Piece{}, chesserrors.Wrapf(chesserrors.ErrInvalidSnapshot, "colour %q", r.Colour)
	}
	p := chess.Piece{Kind: kind, Colour: colour, Position: chess.NoSquare, Active: r.Active}
	if r.Position != "" {
		sq, err := chess.ParseSquare(r.Position)
		if err != nil {
			return chess.Piece{}, err
		}
		p.Position = sq
	}
	return p, nil
}

func (r MoveRecord) move() (chess.Move, error) {
	kind, ok := chess.ParseKind(r.Kind)
	if !ok || kind.String() != r.Kind {
		return chess.Move{}, chesserrors.Wrapf(chesserrors.ErrInvalidSnapshot, "kind %q", r.Kind)
	}
	colour, ok := chess.ParseColour(r.Colour)
	if !ok {
		return chess.Move{}, chesserrors.Wrapf(chesserrors.ErrInvalidSnapshot, "colour %q", r.Colour)
	}
	from, err := chess.ParseSquare(r.Origin)
	if err != nil {
		return chess.Move{}, err
	}
	to, err := chess.ParseSquare(r.Destination)
	if err != nil {
		return chess.Move{}, err
	}
	return chess.Move{Kind: kind, Colour: colour, Origin: from, Destination: to}, nil
}
