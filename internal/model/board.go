package model

import (
	"fmt"
	"strings"
)

// BoardSize is the width and height of the grid
const BoardSize = 15

// Center is the cell the opening play must cover
var Center = Position{Row: 7, Col: 7}

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// InBounds returns true if the position lies on the board
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Neighbours returns the on-board cells directly above, below, left and right
func (p Position) Neighbours() []Position {
	candidates := []Position{
		{Row: p.Row - 1, Col: p.Col},
		{Row: p.Row + 1, Col: p.Col},
		{Row: p.Row, Col: p.Col - 1},
		{Row: p.Row, Col: p.Col + 1},
	}
	result := make([]Position, 0, len(candidates))
	for _, c := range candidates {
		if c.InBounds() {
			result = append(result, c)
		}
	}
	return result
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Placement puts a tile on a cell
type Placement struct {
	Row  int
	Col  int
	Tile *Tile
}

// Position returns the cell the placement targets
func (p Placement) Position() Position {
	return Position{Row: p.Row, Col: p.Col}
}

// Positions extracts the target cells of a list of placements
func Positions(placements []Placement) []Position {
	result := make([]Position, len(placements))
	for i, p := range placements {
		result[i] = p.Position()
	}
	return result
}

// PositionSet is an unordered set of cells
type PositionSet map[Position]struct{}

// NewPositionSet builds a set from a list of positions
func NewPositionSet(positions ...Position) PositionSet {
	s := make(PositionSet, len(positions))
	for _, p := range positions {
		s[p] = struct{}{}
	}
	return s
}

// Contains reports membership
func (s PositionSet) Contains(p Position) bool {
	_, ok := s[p]
	return ok
}

// Sorted returns the members in row-major order
func (s PositionSet) Sorted() []Position {
	result := make([]Position, 0, len(s))
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := Position{Row: row, Col: col}
			if s.Contains(p) {
				result = append(result, p)
			}
		}
	}
	return result
}

// Bonus is the premium attached to a cell
type Bonus int

const (
	BonusNone Bonus = iota
	BonusDoubleLetter
	BonusTripleLetter
	BonusDoubleWord
	BonusTripleWord
)

// LetterMultiplier is the factor applied to the tile on this cell
func (b Bonus) LetterMultiplier() int {
	switch b {
	case BonusDoubleLetter:
		return 2
	case BonusTripleLetter:
		return 3
	default:
		return 1
	}
}

// WordMultiplier is the factor applied to every word covering this cell
func (b Bonus) WordMultiplier() int {
	switch b {
	case BonusDoubleWord:
		return 2
	case BonusTripleWord:
		return 3
	default:
		return 1
	}
}

func (b Bonus) String() string {
	switch b {
	case BonusDoubleLetter:
		return "DL"
	case BonusTripleLetter:
		return "TL"
	case BonusDoubleWord:
		return "DW"
	case BonusTripleWord:
		return "TW"
	default:
		return ""
	}
}

// BonusLayout lists the premium cells of a board
type BonusLayout struct {
	DoubleLetter []Position `json:"double_letter"`
	TripleLetter []Position `json:"triple_letter"`
	DoubleWord   []Position `json:"double_word"`
	TripleWord   []Position `json:"triple_word"`
}

func positions(coords ...[2]int) []Position {
	result := make([]Position, len(coords))
	for i, c := range coords {
		result[i] = Position{Row: c[0], Col: c[1]}
	}
	return result
}

// StandardLayout returns the premium cells of the standard 15x15 board
func StandardLayout() BonusLayout {
	return BonusLayout{
		DoubleLetter: positions(
			[2]int{0, 3}, [2]int{0, 11}, [2]int{2, 6}, [2]int{2, 8},
			[2]int{3, 0}, [2]int{3, 7}, [2]int{3, 14}, [2]int{6, 2},
			[2]int{6, 6}, [2]int{6, 8}, [2]int{6, 12}, [2]int{7, 3},
			[2]int{7, 11}, [2]int{8, 2}, [2]int{8, 6}, [2]int{8, 8},
			[2]int{8, 12}, [2]int{11, 0}, [2]int{11, 7}, [2]int{11, 14},
			[2]int{12, 6}, [2]int{12, 8}, [2]int{14, 3}, [2]int{14, 11},
		),
		TripleLetter: positions(
			[2]int{1, 5}, [2]int{1, 9}, [2]int{5, 1}, [2]int{5, 5},
			[2]int{5, 9}, [2]int{5, 13}, [2]int{9, 1}, [2]int{9, 5},
			[2]int{9, 9}, [2]int{9, 13}, [2]int{13, 5}, [2]int{13, 9},
		),
		DoubleWord: positions(
			[2]int{1, 1}, [2]int{1, 13}, [2]int{2, 3}, [2]int{2, 12},
			[2]int{3, 3}, [2]int{3, 11}, [2]int{4, 4}, [2]int{4, 10},
			[2]int{7, 7}, [2]int{10, 4}, [2]int{10, 10}, [2]int{11, 3},
			[2]int{11, 11}, [2]int{12, 2}, [2]int{12, 12}, [2]int{13, 1},
			[2]int{13, 13},
		),
		TripleWord: positions(
			[2]int{0, 0}, [2]int{0, 7}, [2]int{0, 14}, [2]int{7, 0},
			[2]int{7, 14}, [2]int{14, 0}, [2]int{14, 7}, [2]int{14, 14},
		),
	}
}

// Board is the 15x15 grid plus the bonus cells still in play.
// A bonus is consumed as soon as a tile lands on its cell.
type Board struct {
	cells        [BoardSize][BoardSize]*Tile
	doubleLetter PositionSet
	tripleLetter PositionSet
	doubleWord   PositionSet
	tripleWord   PositionSet
	empty        bool
}

// NewBoard creates an empty board with the standard layout
func NewBoard() *Board {
	b, err := NewBoardWithLayout(StandardLayout())
	if err != nil {
		panic(err)
	}
	return b
}

// NewBoardWithLayout creates an empty board with custom premium cells.
// The four sets must be disjoint and on the board.
func NewBoardWithLayout(layout BonusLayout) (*Board, error) {
	seen := make(PositionSet)
	sets := make([]PositionSet, 0, 4)
	for _, group := range [][]Position{layout.DoubleLetter, layout.TripleLetter, layout.DoubleWord, layout.TripleWord} {
		set := make(PositionSet, len(group))
		for _, p := range group {
			if !p.InBounds() {
				return nil, fmt.Errorf("%w: %s is off the board", ErrInvalidLayout, p)
			}
			if seen.Contains(p) {
				return nil, fmt.Errorf("%w: %s has more than one bonus", ErrInvalidLayout, p)
			}
			seen[p] = struct{}{}
			set[p] = struct{}{}
		}
		sets = append(sets, set)
	}

	return &Board{
		doubleLetter: sets[0],
		tripleLetter: sets[1],
		doubleWord:   sets[2],
		tripleWord:   sets[3],
		empty:        true,
	}, nil
}

// CellAt returns the tile at the given cell, or nil if the cell is empty.
// Coordinates outside the board are a programming error and panic.
func (b *Board) CellAt(row, col int) *Tile {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		panic(fmt.Sprintf("board: cell (%d,%d) out of range", row, col))
	}
	return b.cells[row][col]
}

// TileAt returns the tile at the given position, or nil if empty
func (b *Board) TileAt(pos Position) *Tile {
	return b.CellAt(pos.Row, pos.Col)
}

// IsFilled returns true if a tile occupies the position
func (b *Board) IsFilled(pos Position) bool {
	return b.TileAt(pos) != nil
}

// IsEmpty returns true until the first tiles are placed
func (b *Board) IsEmpty() bool {
	return b.empty
}

// BonusAt returns the unconsumed bonus at the position, if any
func (b *Board) BonusAt(pos Position) Bonus {
	switch {
	case b.doubleLetter.Contains(pos):
		return BonusDoubleLetter
	case b.tripleLetter.Contains(pos):
		return BonusTripleLetter
	case b.doubleWord.Contains(pos):
		return BonusDoubleWord
	case b.tripleWord.Contains(pos):
		return BonusTripleWord
	default:
		return BonusNone
	}
}

// Place commits tiles to the board without checking legality.
// Each covered cell loses its bonus.
func (b *Board) Place(placements []Placement) {
	for _, p := range placements {
		pos := p.Position()
		delete(b.doubleLetter, pos)
		delete(b.tripleLetter, pos)
		delete(b.doubleWord, pos)
		delete(b.tripleWord, pos)
		b.cells[p.Row][p.Col] = p.Tile
		b.empty = false
	}
}

// Clone returns an independent copy sharing the (immutable) tiles
func (b *Board) Clone() *Board {
	clone := &Board{
		cells:        b.cells,
		doubleLetter: clonePositionSet(b.doubleLetter),
		tripleLetter: clonePositionSet(b.tripleLetter),
		doubleWord:   clonePositionSet(b.doubleWord),
		tripleWord:   clonePositionSet(b.tripleWord),
		empty:        b.empty,
	}
	return clone
}

func clonePositionSet(s PositionSet) PositionSet {
	c := make(PositionSet, len(s))
	for p := range s {
		c[p] = struct{}{}
	}
	return c
}

// Tiles returns every placed tile in row-major order
func (b *Board) Tiles() []Placement {
	var result []Placement
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if t := b.cells[row][col]; t != nil {
				result = append(result, Placement{Row: row, Col: col, Tile: t})
			}
		}
	}
	return result
}

// FilledCount returns the number of occupied cells
func (b *Board) FilledCount() int {
	return len(b.Tiles())
}

// Layout returns the bonus cells that are still live
func (b *Board) Layout() BonusLayout {
	return BonusLayout{
		DoubleLetter: b.doubleLetter.Sorted(),
		TripleLetter: b.tripleLetter.Sorted(),
		DoubleWord:   b.doubleWord.Sorted(),
		TripleWord:   b.tripleWord.Sorted(),
	}
}

// String renders the grid with column and row headers.
// Empty cells show their live bonus in lower case, or '.' when plain.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for col := 0; col < BoardSize; col++ {
		fmt.Fprintf(&sb, "%3d", col)
	}
	sb.WriteString("\n")
	for row := 0; row < BoardSize; row++ {
		fmt.Fprintf(&sb, "%2d ", row)
		for col := 0; col < BoardSize; col++ {
			sb.WriteString("  ")
			sb.WriteString(b.cellGlyph(Position{Row: row, Col: col}))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Board) cellGlyph(pos Position) string {
	if t := b.TileAt(pos); t != nil {
		if t.IsBlank() {
			return "_"
		}
		return string(t.Letter)
	}
	switch b.BonusAt(pos) {
	case BonusDoubleLetter:
		return "d"
	case BonusTripleLetter:
		return "t"
	case BonusDoubleWord:
		return "w"
	case BonusTripleWord:
		return "x"
	default:
		return "."
	}
}
