package model

import "fmt"

// Orientation is the axis a play lies along
type Orientation int

const (
	OrientationNone Orientation = iota
	OrientationHorizontal
	OrientationVertical
)

func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "HORIZONTAL"
	case OrientationVertical:
		return "VERTICAL"
	default:
		return "NONE"
	}
}

// MarshalText encodes the orientation by name
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes an orientation name
func (o *Orientation) UnmarshalText(text []byte) error {
	switch string(text) {
	case "HORIZONTAL":
		*o = OrientationHorizontal
	case "VERTICAL":
		*o = OrientationVertical
	case "NONE", "":
		*o = OrientationNone
	default:
		return fmt.Errorf("unknown orientation %q", text)
	}
	return nil
}

// ValidationReason is the outcome of checking a play. Only one reason is
// ever reported: the first rule the play breaks.
type ValidationReason int

const (
	ReasonValid ValidationReason = iota
	ReasonFirstPlayNotOnCenter
	ReasonFirstPlayTooFewTiles
	ReasonCellAlreadyFull
	ReasonInvalidOrientation
	ReasonNotAdjacent
	ReasonNotContiguous
)

var reasonNames = map[ValidationReason]string{
	ReasonValid:                "VALID",
	ReasonFirstPlayNotOnCenter: "FIRST_PLAY_NOT_ON_CENTER",
	ReasonFirstPlayTooFewTiles: "FIRST_PLAY_TOO_FEW_TILES",
	ReasonCellAlreadyFull:      "CELL_ALREADY_FULL",
	ReasonInvalidOrientation:   "INVALID_ORIENTATION",
	ReasonNotAdjacent:          "NOT_ADJACENT",
	ReasonNotContiguous:        "NOT_CONTIGUOUS",
}

func (r ValidationReason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("REASON(%d)", int(r))
}

// MarshalText encodes the reason by name
func (r ValidationReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a reason name
func (r *ValidationReason) UnmarshalText(text []byte) error {
	for reason, name := range reasonNames {
		if name == string(text) {
			*r = reason
			return nil
		}
	}
	return fmt.Errorf("unknown validation reason %q", text)
}

// IsValid returns true for ReasonValid
func (r ValidationReason) IsValid() bool {
	return r == ReasonValid
}

// Word is a maximal run of filled cells formed by a play, in reading order.
// Cells may mix newly placed tiles with tiles already on the board.
type Word struct {
	Cells       []Placement
	Orientation Orientation
}

// Text spells the word, with '?' standing in for blanks
func (w Word) Text() string {
	letters := make([]rune, len(w.Cells))
	for i, c := range w.Cells {
		if c.Tile.IsBlank() {
			letters[i] = '?'
		} else {
			letters[i] = c.Tile.Letter
		}
	}
	return string(letters)
}

// Start is the first cell of the word
func (w Word) Start() Position {
	return w.Cells[0].Position()
}

// ScoredWord is a word together with its points
type ScoredWord struct {
	Word  Word
	Score int
}

// PlayResult describes a committed (or previewed) play
type PlayResult struct {
	Orientation Orientation
	Words       []ScoredWord
	TilesPlaced int
	Bingo       bool
	Score       int
}
