// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines the move rejection taxonomy and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for move rejections. Exactly one of these is surfaced for
// every rejected candidate move; use errors.Is() to check which one.
var (
	// ErrMalformedSquare indicates a square that is not one lowercase file
	// letter followed by one digit.
	ErrMalformedSquare = errors.New("malformed square")

	// ErrOutOfBoard indicates a well-formed square outside a1..h8.
	ErrOutOfBoard = errors.New("square is off the board")

	// ErrEmptyOrigin indicates that no piece stands on the chosen square.
	ErrEmptyOrigin = errors.New("position is empty")

	// ErrWrongColourOrigin indicates that the chosen piece belongs to the opponent.
	ErrWrongColourOrigin = errors.New("piece belongs to the opponent")

	// ErrSameAsOrigin indicates a destination equal to the origin.
	ErrSameAsOrigin = errors.New("destination is the same as origin")

	// ErrOccupiedBySameColour indicates a destination holding a piece of the mover's colour.
	ErrOccupiedBySameColour = errors.New("destination already has a piece of the same colour")

	// ErrIllegalGeometry indicates a destination the piece kind cannot reach.
	ErrIllegalGeometry = errors.New("invalid move for piece")

	// ErrSelfCheck indicates a move that leaves the mover's own king attacked.
	ErrSelfCheck = errors.New("move puts own king in check")
)

// Sentinel errors for other failure conditions.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrPromotionRequired indicates a promoting move submitted without a kind.
	ErrPromotionRequired = errors.New("promotion kind required")

	// ErrInvalidPromotion indicates a promotion kind other than bishop, knight, queen or rook.
	ErrInvalidPromotion = errors.New("invalid promotion kind")

	// ErrGameOver indicates a move attempted after the match has ended.
	ErrGameOver = errors.New("game is over")

	// ErrSuspended indicates the player asked to stop the match (usually to save it).
	ErrSuspended = errors.New("match suspended")

	// ErrInvalidSnapshot indicates a persisted game that breaks a board invariant.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidName indicates a save name that is not purely letters and digits.
	ErrInvalidName = errors.New("invalid save name")

	// ErrSaveNotFound indicates a save name with no file behind it.
	ErrSaveNotFound = errors.New("saved game not found")
)

// Reason identifies why a candidate move or piece selection was rejected.
type Reason int

const (
	MalformedSquare Reason = iota
	OutOfBoard
	EmptyOrigin
	WrongColourOrigin
	SameAsOrigin
	DestinationOccupiedBySameColour
	IllegalGeometryForPieceKind
	SelfCheckViolation
)

var reasonNames = []string{
	"MalformedSquare",
	"OutOfBoard",
	"EmptyOrigin",
	"WrongColourOrigin",
	"SameAsOrigin",
	"DestinationOccupiedBySameColour",
	"IllegalGeometryForPieceKind",
	"SelfCheckViolation",
}

var reasonErrs = []error{
	ErrMalformedSquare,
	ErrOutOfBoard,
	ErrEmptyOrigin,
	ErrWrongColourOrigin,
	ErrSameAsOrigin,
	ErrOccupiedBySameColour,
	ErrIllegalGeometry,
	ErrSelfCheck,
}

// String returns the name of the reason.
func (r Reason) String() string {
	if r >= 0 && int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "Unknown"
}

// Err returns the sentinel error for this reason.
func (r Reason) Err() error {
	if r >= 0 && int(r) < len(reasonErrs) {
		return reasonErrs[r]
	}
	return ErrIllegalMove
}

// RejectionError is a recoverable rejection of a piece selection or a
// candidate destination. It unwraps to the sentinel matching its Reason.
type RejectionError struct {
	Reason      Reason
	Origin      string // square of the piece being moved, if known
	Destination string // candidate destination as supplied, if any
}

// Reject creates a RejectionError.
func Reject(reason Reason, origin, destination string) *RejectionError {
	return &RejectionError{Reason: reason, Origin: origin, Destination: destination}
}

// Error returns the squares involved followed by the rejection message.
func (e *RejectionError) Error() string {
	var squares string
	switch {
	case e.Origin != "" && e.Destination != "":
		squares = e.Origin + "-" + e.Destination
	case e.Origin != "":
		squares = e.Origin
	default:
		squares = e.Destination
	}
	if squares == "" {
		return e.Reason.Err().Error()
	}
	return fmt.Sprintf("%q: %v", squares, e.Reason.Err())
}

// Unwrap returns the sentinel error for the rejection reason.
func (e *RejectionError) Unwrap() error {
	return e.Reason.Err()
}

// ReasonOf extracts the rejection reason from err, if err is (or wraps) a RejectionError.
func ReasonOf(err error) (Reason, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej.Reason, true
	}
	return 0, false
}

// MoveError wraps errors with match context: the ply being attempted,
// the colour to move and the squares involved. It supports unwrapping
// via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Match  string // Match identifier (if known)
	Ply    int    // 1-based ply being attempted
	Colour string // Colour to move
	From   string // Origin square as supplied
	To     string // Destination square as supplied
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Match != "" {
		parts = append(parts, "match "+e.Match)
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
