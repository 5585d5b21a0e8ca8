// Package chess provides the board model: colours, piece kinds, squares,
// piece and move records, the board and the match state.
package chess

import "strings"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// Colours lists both colours, white first.
var Colours = []Colour{White, Black}

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (the pawn direction in rank space).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// PawnRank returns the 0-based rank on which the colour's pawns start.
func (c Colour) PawnRank() int {
	if c == White {
		return 1
	}
	return 6
}

// BackRank returns the 0-based rank on which the colour's pieces start.
func (c Colour) BackRank() int {
	if c == White {
		return 0
	}
	return 7
}

// PromotionRank returns the 0-based rank on which the colour's pawns promote.
func (c Colour) PromotionRank() int {
	return c.Opposite().BackRank()
}

// ParseColour converts "white" or "black" (any case) to a Colour.
func ParseColour(s string) (Colour, bool) {
	switch strings.ToLower(s) {
	case "white":
		return White, true
	case "black":
		return Black, true
	}
	return Black, false
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter (either case) to a Kind.
func KindFromLetter(c byte) (Kind, bool) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	for k := Pawn; k <= King; k++ {
		if k.Letter() == c {
			return k, true
		}
	}
	return NoKind, false
}

// PromotionKinds lists the kinds a pawn may promote to, in menu order.
var PromotionKinds = []Kind{Bishop, Knight, Queen, Rook}

// IsPromotion reports whether a pawn may promote to k.
func (k Kind) IsPromotion() bool {
	switch k {
	case Bishop, Knight, Queen, Rook:
		return true
	}
	return false
}

// ParseKind converts a kind name ("queen", "Knight") to a Kind.
// The promotion menu digits 1..4 are accepted as well.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 1 && s[0] >= '1' && s[0] <= '4' {
		return PromotionKinds[s[0]-'1'], true
	}
	for k := Pawn; k <= King; k++ {
		if strings.ToLower(k.String()) == s {
			return k, true
		}
	}
	return NoKind, false
}

// Status classifies a position for the colour about to move.
type Status int

const (
	Normal Status = iota
	Check
	Checkmate
	Stalemate
	DrawInsufficientMaterial
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"Normal", "Check", "Checkmate", "Stalemate", "DrawInsufficientMaterial"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Terminal reports whether the status ends the game.
func (s Status) Terminal() bool {
	switch s {
	case Checkmate, Stalemate, DrawInsufficientMaterial:
		return true
	}
	return false
}

// ParseStatus converts a status name back to a Status.
func ParseStatus(name string) (Status, bool) {
	for s := Normal; s <= DrawInsufficientMaterial; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return Normal, false
}
