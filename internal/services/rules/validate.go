package rules

import "github.com/mcoot/scrabb-go/internal/model"

// Direction is a set of sides on which a cell has a filled neighbour
type Direction uint8

const (
	DirectionNone  Direction = 0
	DirectionAbove Direction = 1 << iota
	DirectionBelow
	DirectionLeft
	DirectionRight
)

// Has reports whether every side in d2 is present in d
func (d Direction) Has(d2 Direction) bool {
	return d&d2 == d2
}

// Touching reports the sides of pos that hold a tile, stopping at the board edge
func Touching(board *model.Board, pos model.Position) Direction {
	dir := DirectionNone
	if pos.Row > 0 && board.CellAt(pos.Row-1, pos.Col) != nil {
		dir |= DirectionAbove
	}
	if pos.Row < model.BoardSize-1 && board.CellAt(pos.Row+1, pos.Col) != nil {
		dir |= DirectionBelow
	}
	if pos.Col > 0 && board.CellAt(pos.Row, pos.Col-1) != nil {
		dir |= DirectionLeft
	}
	if pos.Col < model.BoardSize-1 && board.CellAt(pos.Row, pos.Col+1) != nil {
		dir |= DirectionRight
	}
	return dir
}

// Validate checks a candidate play against the board and returns the first
// rule it breaks, or ReasonValid. Rules are checked in a fixed order:
// orientation, opening play, occupancy and adjacency, contiguity.
// All positions must be on the board.
func Validate(board *model.Board, placements []model.Placement, orientation model.Orientation) model.ValidationReason {
	if orientation == model.OrientationNone || len(placements) == 0 {
		return model.ReasonInvalidOrientation
	}

	candidates := make(model.PositionSet, len(placements))
	for _, p := range placements {
		candidates[p.Position()] = struct{}{}
	}

	if board.IsEmpty() {
		if !candidates.Contains(model.Center) {
			return model.ReasonFirstPlayNotOnCenter
		}
		if len(placements) < 2 {
			return model.ReasonFirstPlayTooFewTiles
		}
	}

	// A repeated coordinate behaves as if its first occurrence had filled the cell
	seen := make(model.PositionSet, len(placements))
	for _, p := range placements {
		pos := p.Position()
		if board.IsFilled(pos) || seen.Contains(pos) {
			return model.ReasonCellAlreadyFull
		}
		seen[pos] = struct{}{}
	}

	if !board.IsEmpty() {
		touching := false
		for _, p := range placements {
			if Touching(board, p.Position()) != DirectionNone {
				touching = true
				break
			}
		}
		if !touching {
			return model.ReasonNotAdjacent
		}
	}

	if !contiguous(board, placements, orientation, candidates) {
		return model.ReasonNotContiguous
	}

	return model.ReasonValid
}

func contiguous(board *model.Board, placements []model.Placement, orientation model.Orientation, candidates model.PositionSet) bool {
	lo, hi := axisSpan(placements, orientation)
	dr, dc := step(orientation)
	origin := placements[0].Position()
	// Zero the varying coordinate so origin + i*step walks the line
	if orientation == model.OrientationVertical {
		origin.Row = 0
	} else {
		origin.Col = 0
	}

	for i := lo; i <= hi; i++ {
		pos := model.Position{Row: origin.Row + i*dr, Col: origin.Col + i*dc}
		if !candidates.Contains(pos) && !board.IsFilled(pos) {
			return false
		}
	}
	return true
}

func axisSpan(placements []model.Placement, orientation model.Orientation) (lo, hi int) {
	lo = axisIndex(orientation, placements[0].Position())
	hi = lo
	for _, p := range placements[1:] {
		i := axisIndex(orientation, p.Position())
		lo = min(lo, i)
		hi = max(hi, i)
	}
	return lo, hi
}
