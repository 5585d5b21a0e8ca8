// Package match runs a two-player chess match: it alternates turns,
// validates each move, commits it and classifies the resulting position.
package match

import (
	stderrors "errors"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Outcome summarises the match after a move.
type Outcome struct {
	// Classification of the position for the side about to move.
	Status chess.Status

	// The side that delivered mate. Only meaningful when Status is Checkmate.
	Winner chess.Colour

	// Number of half-moves played.
	Ply int
}

// Over reports whether the match has ended.
func (o Outcome) Over() bool {
	return o.Status.Terminal()
}

// Decisive reports whether the match ended with a winner.
func (o Outcome) Decisive() bool {
	return o.Status == chess.Checkmate
}

// Match owns one game and is the only thing that mutates it.
type Match struct {
	game       *chess.Game
	classifier engine.Classifier
	log        log.Interface
}

// Option configures a Match.
type Option func(*Match)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l log.Interface) Option {
	return func(m *Match) {
		if l != nil {
			m.log = l
		}
	}
}

// WithClassifier sets the position classifier.
func WithClassifier(c engine.Classifier) Option {
	return func(m *Match) {
		m.classifier = c
	}
}

// WithConfig applies the rules and logging settings of cfg.
func WithConfig(cfg *config.Config) Option {
	return func(m *Match) {
		m.classifier.ExtendedInsufficientMaterial = cfg.Rules.ExtendedInsufficientMaterial
		m.log = cfg.Logger()
	}
}

// New starts a match from the standard position with white to move.
func New(opts ...Option) *Match {
	return Resume(chess.NewGame(), opts...)
}

// Resume continues a match from an existing game, typically a loaded save.
// A game without an ID is given one.
func Resume(game *chess.Game, opts ...Option) *Match {
	m := &Match{
		game: game,
		log:  &log.Logger{Handler: discard.New(), Level: log.FatalLevel},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.game.ID == "" {
		m.game.ID = uuid.NewString()
	}
	return m
}

// ID returns the match identifier.
func (m *Match) ID() string {
	return m.game.ID
}

// Game returns the match state. Callers must treat it as read-only.
func (m *Match) Game() *chess.Game {
	return m.game
}

// Turn returns the colour to move.
func (m *Match) Turn() chess.Colour {
	return m.game.Turn
}

// Outcome returns the current outcome.
func (m *Match) Outcome() Outcome {
	o := Outcome{Status: m.game.Status, Ply: m.game.Ply()}
	if o.Status == chess.Checkmate {
		// The turn is not handed over once the match ends.
		o.Winner = m.game.Turn
	}
	return o
}

// Over reports whether the match has ended.
func (m *Match) Over() bool {
	return m.game.Status.Terminal()
}

// SelectPiece returns the piece on square if it belongs to the side to move.
func (m *Match) SelectPiece(square string) (chess.Piece, error) {
	if m.Over() {
		return chess.Piece{}, errors.ErrGameOver
	}
	return engine.SelectPiece(m.game.Board, square, m.game.Turn)
}

// CheckDestination validates moving piece to destination, king safety included.
func (m *Match) CheckDestination(piece chess.Piece, destination string) error {
	return engine.CheckDestination(m.game.Board, m.game.History, piece, destination, true)
}

// LegalDestinations lists the squares piece may move to.
func (m *Match) LegalDestinations(piece chess.Piece) []chess.Square {
	return engine.LegalDestinations(m.game.Board, m.game.History, piece)
}

// NeedsPromotion reports whether moving piece to destination promotes it.
func (m *Match) NeedsPromotion(piece chess.Piece, destination string) bool {
	sq, err := chess.ParseSquare(destination)
	return err == nil && engine.NeedsPromotion(piece, sq)
}

// Play validates and commits one move for the side to move, then classifies
// the position for the opponent. promotion is ignored unless the move
// promotes a pawn. The turn passes to the opponent unless the match is over.
// A rejected move leaves the match unchanged and returns a *errors.MoveError.
func (m *Match) Play(from, to string, promotion chess.Kind) (Outcome, error) {
	mover := m.game.Turn
	fail := func(err error) (Outcome, error) {
		if stderrors.Is(err, errors.ErrGameOver) {
			return m.Outcome(), err
		}
		m.log.WithFields(log.Fields{
			"match":  m.game.ID,
			"colour": mover.String(),
			"from":   from,
			"to":     to,
		}).WithError(err).Debug("move rejected")
		return m.Outcome(), &errors.MoveError{
			Err:    err,
			Match:  m.game.ID,
			Ply:    m.game.Ply() + 1,
			Colour: mover.String(),
			From:   from,
			To:     to,
		}
	}

	piece, err := m.SelectPiece(from)
	if err != nil {
		return fail(err)
	}
	if err := m.CheckDestination(piece, to); err != nil {
		return fail(err)
	}
	res, err := engine.Commit(m.game, piece, chess.MustSquare(to), promotion)
	if err != nil {
		return fail(err)
	}

	m.game.Status = m.classifier.Classify(m.game.Board, m.game.History, mover.Opposite())
	if !m.game.Status.Terminal() {
		m.game.Turn = mover.Opposite()
	}

	outcome := m.Outcome()
	fields := log.Fields{
		"match":  m.game.ID,
		"ply":    outcome.Ply,
		"colour": mover.String(),
		"kind":   piece.Kind.String(),
		"from":   from,
		"to":     to,
		"class":  res.Class.String(),
		"status": outcome.Status.String(),
	}
	if res.HasCapture() {
		fields["captured"] = res.Captured.Kind.String()
	}
	if !res.Promoted.IsEmpty() {
		fields["promoted"] = res.Promoted.Kind.String()
	}
	m.log.WithFields(fields).Debug("move committed")

	if outcome.Over() {
		entry := m.log.WithFields(log.Fields{
			"match":  m.game.ID,
			"ply":    outcome.Ply,
			"status": outcome.Status.String(),
		})
		if outcome.Decisive() {
			entry = entry.WithField("winner", outcome.Winner.String())
		}
		entry.Info("match over")
	}
	return outcome, nil
}
