package model

import "fmt"

// BlankLetter is the letter carried by a blank tile
const BlankLetter = ' '

// Tile is a single lettered piece. Tiles are never mutated once created and
// are compared by identity: two tiles with the same letter and score are still
// distinct pieces of the supply.
type Tile struct {
	Letter rune
	Score  int
}

// NewTile creates a tile
func NewTile(letter rune, score int) *Tile {
	return &Tile{Letter: letter, Score: score}
}

// NewBlank creates a blank tile worth nothing
func NewBlank() *Tile {
	return NewTile(BlankLetter, 0)
}

// IsBlank returns true for a blank tile
func (t *Tile) IsBlank() bool {
	return t.Letter == BlankLetter
}

// String renders the tile as letter and score, e.g. "Q10"
func (t *Tile) String() string {
	if t.IsBlank() {
		return fmt.Sprintf("_%d", t.Score)
	}
	return fmt.Sprintf("%c%d", t.Letter, t.Score)
}
