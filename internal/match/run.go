package match

import (
	stderrors "errors"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Input supplies a player's choices. Returning errors.ErrSuspended from
// Origin stops the match so it can be saved; any other error aborts it.
type Input interface {
	Origin(turn chess.Colour) (string, error)
	Destination(turn chess.Colour, piece chess.Piece) (string, error)
	Promotion(turn chess.Colour) (chess.Kind, error)
}

// Observer is told about rejected input and committed moves. Input
// implementations may also implement it.
type Observer interface {
	TurnStarted(m *Match)
	Rejected(err error)
	Committed(m *Match, outcome Outcome)
}

// Run plays the match until it ends or in suspends it. A rejected origin
// or destination starts the turn over from the origin; an invalid
// promotion choice asks again.
func (m *Match) Run(in Input) (Outcome, error) {
	obs, _ := in.(Observer)

	for !m.Over() {
		if obs != nil {
			obs.TurnStarted(m)
		}
		outcome, err := m.turn(in, obs)
		if err != nil {
			return outcome, err
		}
		if obs != nil {
			obs.Committed(m, outcome)
		}
	}
	return m.Outcome(), nil
}

// turn reads choices until one move is committed.
func (m *Match) turn(in Input, obs Observer) (Outcome, error) {
	reject := func(err error) {
		if obs != nil {
			obs.Rejected(err)
		}
	}

	for {
		from, err := in.Origin(m.game.Turn)
		if err != nil {
			return m.Outcome(), err
		}
		piece, err := m.SelectPiece(from)
		if err != nil {
			reject(err)
			continue
		}

		to, err := in.Destination(m.game.Turn, piece)
		if err != nil {
			return m.Outcome(), err
		}
		if err := m.CheckDestination(piece, to); err != nil {
			reject(err)
			continue
		}

		promotion := chess.NoKind
		if m.NeedsPromotion(piece, to) {
			if promotion, err = m.promotion(in, reject); err != nil {
				return m.Outcome(), err
			}
		}

		return m.Play(from, to, promotion)
	}
}

func (m *Match) promotion(in Input, reject func(error)) (chess.Kind, error) {
	for {
		kind, err := in.Promotion(m.game.Turn)
		if err != nil {
			return chess.NoKind, err
		}
		if kind.IsPromotion() {
			return kind, nil
		}
		reject(errors.Wrapf(errors.ErrInvalidPromotion, "%v", kind))
	}
}

// Suspended reports whether err means the player stopped the match.
func Suspended(err error) bool {
	return stderrors.Is(err, errors.ErrSuspended)
}

// Replay plays coordinate moves such as "e2e4" or "e7e8q" in order and
// returns the final outcome. It stops at the first rejected move.
func (m *Match) Replay(moves ...string) (Outcome, error) {
	outcome := m.Outcome()
	for _, mv := range moves {
		if len(mv) != 4 && len(mv) != 5 {
			return outcome, errors.Wrapf(errors.ErrIllegalMove, "%q: want origin and destination", mv)
		}
		promotion := chess.NoKind
		if len(mv) == 5 {
			kind, ok := chess.KindFromLetter(mv[4])
			if !ok {
				return outcome, errors.Wrapf(errors.ErrInvalidPromotion, "%q", mv)
			}
			promotion = kind
		}
		var err error
		if outcome, err = m.Play(mv[:2], mv[2:4], promotion); err != nil {
			return outcome, err
		}
	}
	return outcome, nil
}

// Moves lists every legal move for the side to move.
func (m *Match) Moves() []engine.Candidate {
	if m.Over() {
		return nil
	}
	return engine.LegalMoves(m.game.Board, m.game.History, m.game.Turn)
}
