package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/match"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// console plays a match over a line-oriented terminal. It is both the
// match input and its observer.
type console struct {
	in    *bufio.Scanner
	out   io.Writer
	cfg   *config.Config
	match *match.Match

	// set while the last answer was a destination
	destination bool
}

func newConsole(in io.Reader, cfg *config.Config) *console {
	return &console{in: bufio.NewScanner(in), out: cfg.OutputFile, cfg: cfg}
}

// ask prints prompt and returns the next trimmed input line.
func (c *console) ask(prompt string) (string, error) {
	fmt.Fprintf(c.out, "\n %s\n", prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *console) warn(msg string) {
	fmt.Fprintf(c.out, " %s\n", msg)
}

// Origin reads the square of the piece to move. "save" suspends the match
// and "moves" lists the legal moves.
func (c *console) Origin(turn chess.Colour) (string, error) {
	c.destination = false
	for {
		line, err := c.ask("What piece do you want to move? Type its position (ex: d1). " +
			"Or type 'save' to save and exit the game.")
		if err != nil {
			return "", err
		}
		switch strings.ToLower(line) {
		case "save":
			return "", errors.ErrSuspended
		case "moves":
			c.listMoves()
			continue
		}
		return line, nil
	}
}

// Destination reads the square to move piece to.
func (c *console) Destination(turn chess.Colour, piece chess.Piece) (string, error) {
	c.destination = true
	return c.ask("Where do you want to move the piece to? Type a destination (ex: d1):")
}

// Promotion reads the promotion menu choice. Unknown input comes back as
// chess.NoKind and the match asks again.
func (c *console) Promotion(turn chess.Colour) (chess.Kind, error) {
	var menu strings.Builder
	menu.WriteString("What do you want to promote the pawn to?")
	for i, kind := range chess.PromotionKinds {
		fmt.Fprintf(&menu, "\n  Type %d for %s", i+1, strings.ToLower(kind.String()))
	}
	line, err := c.ask(menu.String())
	if err != nil {
		return chess.NoKind, err
	}
	kind, _ := chess.ParseKind(line)
	return kind, nil
}

// TurnStarted draws the board and announces the side to move.
func (c *console) TurnStarted(m *match.Match) {
	c.match = m
	output.WriteBoard(c.out, m.Game().Board, c.cfg.Output)
	if c.cfg.Output.ShowCaptured {
		output.WriteCaptured(c.out, m.Game().Captured, c.cfg.Output)
	}
	output.WriteTurn(c.out, m.Turn())
}

// Rejected explains why a choice was refused.
func (c *console) Rejected(err error) {
	turn := chess.White
	if c.match != nil {
		turn = c.match.Turn()
	}
	c.warn(rejectionMessage(err, turn, c.destination))
}

// Committed announces check and the end of the game.
func (c *console) Committed(m *match.Match, outcome match.Outcome) {
	output.WriteStatus(c.out, m.Game())
}

func (c *console) listMoves() {
	if c.match == nil {
		return
	}
	var moves []string
	for _, mv := range c.match.Moves() {
		moves = append(moves, mv.String())
	}
	lw := output.NewLineWriter(c.out, 60)
	for _, mv := range moves {
		lw.Write(mv)
	}
	lw.NewLine()
}

// rejectionMessage turns a rejection into the sentence shown to the player.
func rejectionMessage(err error, turn chess.Colour, destination bool) string {
	mover := strings.ToLower(turn.String())
	opponent := strings.ToLower(turn.Opposite().String())

	if reason, ok := errors.ReasonOf(err); ok {
		switch reason {
		case errors.MalformedSquare, errors.OutOfBoard:
			if destination {
				return "Invalid destination."
			}
			return "Invalid choice."
		case errors.EmptyOrigin:
			return "Position is empty."
		case errors.WrongColourOrigin:
			return fmt.Sprintf("Position has a %s piece. Choose a %s piece.", opponent, mover)
		case errors.SameAsOrigin:
			return "Destination is the same as origin."
		case errors.DestinationOccupiedBySameColour:
			return fmt.Sprintf("Destination already has a %s piece.", mover)
		case errors.IllegalGeometryForPieceKind:
			return "Invalid move."
		case errors.SelfCheckViolation:
			return "Move puts own king in check."
		}
	}
	if stderrors.Is(err, errors.ErrInvalidPromotion) {
		return "Invalid choice."
	}
	return err.Error()
}
