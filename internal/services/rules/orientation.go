package rules

import "github.com/mcoot/scrabb-go/internal/model"

// DetectOrientation determines the axis a set of positions lies along.
// A lone position is treated as horizontal so every play has an axis.
func DetectOrientation(positions []model.Position) model.Orientation {
	if len(positions) == 0 {
		return model.OrientationNone
	}
	if len(positions) == 1 {
		return model.OrientationHorizontal
	}

	first := positions[0]
	sameRow, sameCol := true, true
	for _, p := range positions[1:] {
		if p.Row != first.Row {
			sameRow = false
		}
		if p.Col != first.Col {
			sameCol = false
		}
	}

	switch {
	case sameRow:
		return model.OrientationHorizontal
	case sameCol:
		return model.OrientationVertical
	default:
		return model.OrientationNone
	}
}

// step returns the unit offset along an orientation
func step(o model.Orientation) (dr, dc int) {
	if o == model.OrientationVertical {
		return 1, 0
	}
	return 0, 1
}

// perpendicular returns the other axis
func perpendicular(o model.Orientation) model.Orientation {
	if o == model.OrientationVertical {
		return model.OrientationHorizontal
	}
	return model.OrientationVertical
}

// axisIndex is the coordinate that varies along the orientation
func axisIndex(o model.Orientation, p model.Position) int {
	if o == model.OrientationVertical {
		return p.Row
	}
	return p.Col
}
