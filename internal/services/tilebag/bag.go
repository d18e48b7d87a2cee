package tilebag

import (
	"fmt"

	"github.com/mcoot/scrabb-go/internal/dependencies/random"
	"github.com/mcoot/scrabb-go/internal/model"
)

// LetterCount is how many tiles of one kind a full bag holds
type LetterCount struct {
	Letter rune
	Score  int
	Count  int
}

// StandardDistribution is the 100-tile English set
func StandardDistribution() []LetterCount {
	return []LetterCount{
		{'J', 8, 1}, {'K', 5, 1}, {'Q', 10, 1}, {'X', 8, 1}, {'Z', 10, 1},
		{'B', 3, 2}, {'C', 3, 2}, {'F', 4, 2}, {'H', 4, 2}, {'M', 3, 2},
		{'P', 3, 2}, {'V', 4, 2}, {'W', 4, 2}, {'Y', 4, 2}, {model.BlankLetter, 0, 2},
		{'G', 2, 3},
		{'D', 2, 4}, {'L', 1, 4}, {'S', 1, 4}, {'U', 1, 4},
		{'N', 1, 6}, {'R', 1, 6}, {'T', 1, 6},
		{'O', 1, 8},
		{'A', 1, 9}, {'I', 1, 9},
		{'E', 1, 12},
	}
}

// Bag is the supply of undrawn tiles. It is not safe for concurrent use.
type Bag struct {
	tiles        []*model.Tile
	distribution []LetterCount
	random       random.Random
}

// New creates a bag filled with the standard distribution
func New(rnd random.Random) *Bag {
	b := &Bag{
		distribution: StandardDistribution(),
		random:       rnd,
	}
	b.Populate()
	return b
}

// NewWithTiles creates a bag holding exactly the given tiles.
// Populate refills it from the standard distribution.
func NewWithTiles(rnd random.Random, tiles []*model.Tile) *Bag {
	held := make([]*model.Tile, len(tiles))
	copy(held, tiles)
	return &Bag{
		tiles:        held,
		distribution: StandardDistribution(),
		random:       rnd,
	}
}

// Populate discards the current contents and refills the bag
func (b *Bag) Populate() {
	b.tiles = b.tiles[:0]
	for _, lc := range b.distribution {
		for i := 0; i < lc.Count; i++ {
			b.tiles = append(b.tiles, model.NewTile(lc.Letter, lc.Score))
		}
	}
}

// Len returns the number of tiles left
func (b *Bag) Len() int {
	return len(b.tiles)
}

// Counts returns how many of each letter remain
func (b *Bag) Counts() map[rune]int {
	counts := make(map[rune]int)
	for _, t := range b.tiles {
		counts[t.Letter]++
	}
	return counts
}

// Draw removes up to n tiles at random. Fewer are returned when the bag runs low.
func (b *Bag) Draw(n int) []*model.Tile {
	n = min(max(n, 0), len(b.tiles))
	drawn := make([]*model.Tile, 0, n)
	for i := 0; i < n; i++ {
		idx := b.random.Intn(len(b.tiles))
		last := len(b.tiles) - 1
		drawn = append(drawn, b.tiles[idx])
		b.tiles[idx] = b.tiles[last]
		b.tiles[last] = nil
		b.tiles = b.tiles[:last]
	}
	return drawn
}

// Exchange swaps tiles from a rack for the same number of fresh ones.
// New tiles are drawn before the returned ones go back in, so a player never
// redraws their own tiles.
func (b *Bag) Exchange(tiles []*model.Tile) ([]*model.Tile, error) {
	if len(tiles) > len(b.tiles) {
		return nil, fmt.Errorf("%w: exchanging %d with %d left", model.ErrNotEnoughTiles, len(tiles), len(b.tiles))
	}
	drawn := b.Draw(len(tiles))
	b.tiles = append(b.tiles, tiles...)
	return drawn, nil
}

// Return puts tiles back into the bag
func (b *Bag) Return(tiles []*model.Tile) {
	b.tiles = append(b.tiles, tiles...)
}
