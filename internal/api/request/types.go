package request

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/mcoot/scrabb-go/internal/model"
)

// Tile is a tile in request bodies. A letter of "", " " or "_" is a blank.
type Tile struct {
	Letter string `json:"letter"`
	Score  int    `json:"score"`
}

// Placement is a tile at a board position
type Placement struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
	Score  int    `json:"score"`
}

// Board describes the tiles already on the board and, optionally, a
// non-standard set of bonus cells
type Board struct {
	Tiles  []Placement        `json:"tiles"`
	Layout *model.BonusLayout `json:"layout,omitempty"`
}

// PlayRequest is the request body for checking or scoring a play against a
// caller-supplied board
type PlayRequest struct {
	Board      Board       `json:"board"`
	Placements []Placement `json:"placements"`
}

// CreateTableRequest is the request body for creating a table
type CreateTableRequest struct {
	Layout *model.BonusLayout `json:"layout,omitempty"`
}

// TablePlayRequest is the request body for playing on a table
type TablePlayRequest struct {
	Placements []Placement `json:"placements"`
}

// DrawRequest is the request body for drawing tiles from a table's bag
type DrawRequest struct {
	Count int `json:"count"`
}

// ExchangeRequest is the request body for exchanging tiles
type ExchangeRequest struct {
	Tiles []Tile `json:"tiles"`
}

// ToModel converts the tile, rejecting multi-letter and non-letter input
func (t Tile) ToModel() (*model.Tile, error) {
	if t.Score < 0 {
		return nil, fmt.Errorf("%w: negative score %d", model.ErrInvalidTile, t.Score)
	}

	switch t.Letter {
	case "", " ", "_":
		blank := model.NewBlank()
		blank.Score = t.Score
		return blank, nil
	}

	if utf8.RuneCountInString(t.Letter) != 1 {
		return nil, fmt.Errorf("%w: %q is not a single letter", model.ErrInvalidTile, t.Letter)
	}
	r, _ := utf8.DecodeRuneInString(t.Letter)
	if !unicode.IsLetter(r) {
		return nil, fmt.Errorf("%w: %q is not a letter", model.ErrInvalidTile, t.Letter)
	}
	return model.NewTile(unicode.ToUpper(r), t.Score), nil
}

// ToModel converts the placement. Bounds are checked by the table service.
func (p Placement) ToModel() (model.Placement, error) {
	tile, err := Tile{Letter: p.Letter, Score: p.Score}.ToModel()
	if err != nil {
		return model.Placement{}, fmt.Errorf("(%d,%d): %w", p.Row, p.Col, err)
	}
	return model.Placement{Row: p.Row, Col: p.Col, Tile: tile}, nil
}

// Placements converts a list of placements
func Placements(in []Placement) ([]model.Placement, error) {
	out := make([]model.Placement, 0, len(in))
	for _, p := range in {
		mp, err := p.ToModel()
		if err != nil {
			return nil, err
		}
		out = append(out, mp)
	}
	return out, nil
}

// Tiles converts a list of tiles
func Tiles(in []Tile) ([]*model.Tile, error) {
	out := make([]*model.Tile, 0, len(in))
	for _, t := range in {
		mt, err := t.ToModel()
		if err != nil {
			return nil, err
		}
		out = append(out, mt)
	}
	return out, nil
}
