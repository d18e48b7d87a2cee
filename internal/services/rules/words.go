package rules

import (
	"sort"

	"github.com/mcoot/scrabb-go/internal/model"
)

// SortPlacements returns a copy of the placements ordered along the axis
func SortPlacements(placements []model.Placement, orientation model.Orientation) []model.Placement {
	sorted := make([]model.Placement, len(placements))
	copy(sorted, placements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return axisIndex(orientation, sorted[i].Position()) < axisIndex(orientation, sorted[j].Position())
	})
	return sorted
}

// FindWords returns every word a validated play forms: the primary word along
// the play's axis first, then one cross word per placed tile where one exists.
// Words shorter than two tiles are omitted.
// The play must already have passed Validate.
func FindWords(board *model.Board, placements []model.Placement, orientation model.Orientation) []model.Word {
	if len(placements) == 0 {
		return nil
	}
	sorted := SortPlacements(placements, orientation)
	pending := make(map[model.Position]*model.Tile, len(sorted))
	for _, p := range sorted {
		pending[p.Position()] = p.Tile
	}
	lookup := func(pos model.Position) *model.Tile {
		if t, ok := pending[pos]; ok {
			return t
		}
		return board.TileAt(pos)
	}

	var words []model.Word

	first := sorted[0].Position()
	last := sorted[len(sorted)-1].Position()
	if primary := extendLine(lookup, first, last, orientation); len(primary.Cells) >= 2 {
		words = append(words, primary)
	}

	cross := perpendicular(orientation)
	for _, p := range sorted {
		pos := p.Position()
		if w := extendLine(lookup, pos, pos, cross); len(w.Cells) >= 2 {
			words = append(words, w)
		}
	}

	return words
}

// extendLine walks back from start and forward from end along the orientation
// while cells are filled, and returns the run in reading order. Cells between
// start and end are always included.
func extendLine(lookup func(model.Position) *model.Tile, start, end model.Position, orientation model.Orientation) model.Word {
	dr, dc := step(orientation)

	for {
		prev := model.Position{Row: start.Row - dr, Col: start.Col - dc}
		if !prev.InBounds() || lookup(prev) == nil {
			break
		}
		start = prev
	}
	for {
		next := model.Position{Row: end.Row + dr, Col: end.Col + dc}
		if !next.InBounds() || lookup(next) == nil {
			break
		}
		end = next
	}

	word := model.Word{Orientation: orientation}
	for pos := start; ; pos = (model.Position{Row: pos.Row + dr, Col: pos.Col + dc}) {
		word.Cells = append(word.Cells, model.Placement{Row: pos.Row, Col: pos.Col, Tile: lookup(pos)})
		if pos == end {
			break
		}
	}
	return word
}
