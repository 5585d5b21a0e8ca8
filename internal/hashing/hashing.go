// Package hashing provides position hashing and duplicate detection for saved games.
package hashing

import (
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Zobrist keys: one per (colour, kind, square), plus one for black to move.
var (
	pieceKeys [2][chess.King + 1][chess.NumSquares]uint64
	blackKey  uint64
)

func init() {
	// splitmix64 with a fixed seed so hashes are stable between runs.
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
	for c := range pieceKeys {
		for k := chess.Pawn; k <= chess.King; k++ {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = next()
			}
		}
	}
	blackKey = next()
}

// GenerateZobristHash hashes the piece placement and the side to move.
func GenerateZobristHash(board *chess.Board, turn chess.Colour) uint64 {
	var hash uint64
	for _, p := range board.All() {
		hash ^= pieceKeys[p.Colour][p.Kind][p.Position]
	}
	if turn == chess.Black {
		hash ^= blackKey
	}
	return hash
}

// Signature identifies a saved game for duplicate detection.
type Signature struct {
	// Name is the save name
	Name string
	// Hash is the Zobrist hash of the current position
	Hash uint64
	// Ply is the number of half-moves played
	Ply int
}

// NewSignature builds the signature of g saved under name.
func NewSignature(name string, g *chess.Game) Signature {
	return Signature{
		Name: name,
		Hash: GenerateZobristHash(g.Board, g.Turn),
		Ply:  g.Ply(),
	}
}

// DuplicateDetector groups saved games that reached the same position.
type DuplicateDetector struct {
	// hashTable stores seen signatures by hash
	hashTable map[uint64][]Signature
	// useExactMatch also requires the same ply count
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]Signature),
		useExactMatch: exactMatch,
	}
}

// Add records sig and reports whether an earlier signature matches it.
func (d *DuplicateDetector) Add(sig Signature) bool {
	dup := false
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			dup = true
			break
		}
	}
	if dup {
		d.duplicateCount++
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return dup
}

func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash {
		return false
	}
	if d.useExactMatch && a.Ply != b.Ply {
		return false
	}
	return true
}

// Duplicates returns the names of matching games, grouped, each group and
// the list of groups sorted by name. Games without a match are left out.
func (d *DuplicateDetector) Duplicates() [][]string {
	var groups [][]string
	for _, sigs := range d.hashTable {
		used := make([]bool, len(sigs))
		for i := range sigs {
			if used[i] {
				continue
			}
			group := []string{sigs[i].Name}
			for j := i + 1; j < len(sigs); j++ {
				if !used[j] && d.signaturesMatch(sigs[i], sigs[j]) {
					used[j] = true
					group = append(group, sigs[j].Name)
				}
			}
			if len(group) > 1 {
				sort.Strings(group)
				groups = append(groups, group)
			}
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })
	return groups
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of games that were not duplicates.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count - d.duplicateCount
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.duplicateCount = 0
}
