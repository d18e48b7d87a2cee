package response

import (
	"time"

	"github.com/mcoot/scrabb-go/internal/model"
)

// Tile represents a tile in API responses. Blanks have the letter "_".
type Tile struct {
	Letter string `json:"letter"`
	Score  int    `json:"score"`
}

// TileFromModel converts a model.Tile
func TileFromModel(t *model.Tile) Tile {
	letter := "_"
	if !t.IsBlank() {
		letter = string(t.Letter)
	}
	return Tile{Letter: letter, Score: t.Score}
}

// TilesFromModel converts a list of tiles
func TilesFromModel(tiles []*model.Tile) []Tile {
	result := make([]Tile, len(tiles))
	for i, t := range tiles {
		result[i] = TileFromModel(t)
	}
	return result
}

// Cell is a filled board cell
type Cell struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
	Score  int    `json:"score"`
}

// CellFromModel converts a model.Placement
func CellFromModel(p model.Placement) Cell {
	t := TileFromModel(p.Tile)
	return Cell{Row: p.Row, Col: p.Col, Letter: t.Letter, Score: t.Score}
}

// Board represents a board in API responses. Layout lists only the bonus
// cells that are still live.
type Board struct {
	Tiles  []Cell            `json:"tiles"`
	Empty  bool              `json:"empty"`
	Layout model.BonusLayout `json:"layout"`
}

// BoardFromModel converts a model.Board
func BoardFromModel(b *model.Board) Board {
	placed := b.Tiles()
	cells := make([]Cell, len(placed))
	for i, p := range placed {
		cells[i] = CellFromModel(p)
	}
	return Board{
		Tiles:  cells,
		Empty:  b.IsEmpty(),
		Layout: b.Layout(),
	}
}

// Word is a scored word formed by a play
type Word struct {
	Text        string            `json:"text"`
	Orientation model.Orientation `json:"orientation"`
	Start       model.Position    `json:"start"`
	Cells       []Cell            `json:"cells"`
	Score       int               `json:"score"`
}

// WordFromModel converts a model.ScoredWord
func WordFromModel(w model.ScoredWord) Word {
	cells := make([]Cell, len(w.Word.Cells))
	for i, c := range w.Word.Cells {
		cells[i] = CellFromModel(c)
	}
	return Word{
		Text:        w.Word.Text(),
		Orientation: w.Word.Orientation,
		Start:       w.Word.Start(),
		Cells:       cells,
		Score:       w.Score,
	}
}

// PlayResult is the outcome of a scored play
type PlayResult struct {
	Orientation model.Orientation `json:"orientation"`
	Words       []Word            `json:"words"`
	TilesPlaced int               `json:"tiles_placed"`
	Bingo       bool              `json:"bingo"`
	Score       int               `json:"score"`
}

// PlayResultFromModel converts a model.PlayResult
func PlayResultFromModel(r *model.PlayResult) PlayResult {
	words := make([]Word, len(r.Words))
	for i, w := range r.Words {
		words[i] = WordFromModel(w)
	}
	return PlayResult{
		Orientation: r.Orientation,
		Words:       words,
		TilesPlaced: r.TilesPlaced,
		Bingo:       r.Bingo,
		Score:       r.Score,
	}
}

// CheckResult is the response for POST /api/v1/plays/check
type CheckResult struct {
	Valid       bool                   `json:"valid"`
	Reason      model.ValidationReason `json:"reason"`
	Orientation model.Orientation      `json:"orientation"`
}

// ScoreResponse is the response for POST /api/v1/plays/score
type ScoreResponse struct {
	Result PlayResult `json:"result"`
	Board  Board      `json:"board"`
}

// PlayRecord is one entry in a table's play history
type PlayRecord struct {
	Number      int               `json:"number"`
	Orientation model.Orientation `json:"orientation"`
	Words       []string          `json:"words"`
	TilesPlaced int               `json:"tiles_placed"`
	Bingo       bool              `json:"bingo"`
	Score       int               `json:"score"`
	PlayedAt    time.Time         `json:"played_at"`
}

// Table represents a hosted table in API responses
type Table struct {
	ID         string       `json:"id"`
	Board      Board        `json:"board"`
	TilesInBag int          `json:"tiles_in_bag"`
	Plays      []PlayRecord `json:"plays"`
	TotalScore int          `json:"total_score"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// TableFromModel converts a model.Table
func TableFromModel(t *model.Table) Table {
	plays := make([]PlayRecord, len(t.Plays))
	for i, p := range t.Plays {
		plays[i] = PlayRecord{
			Number:      p.Number,
			Orientation: p.Orientation,
			Words:       p.Words,
			TilesPlaced: p.TilesPlaced,
			Bingo:       p.Bingo,
			Score:       p.Score,
			PlayedAt:    p.PlayedAt,
		}
	}
	return Table{
		ID:         string(t.ID),
		Board:      BoardFromModel(t.Board),
		TilesInBag: t.TilesInBag,
		Plays:      plays,
		TotalScore: t.TotalScore,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

// TablePlayResponse is the response for POST /api/v1/tables/{id}/plays
type TablePlayResponse struct {
	Result PlayResult `json:"result"`
	Table  Table      `json:"table"`
}

// TilesResponse carries tiles drawn from or returned by a bag
type TilesResponse struct {
	Tiles      []Tile `json:"tiles"`
	TilesInBag int    `json:"tiles_in_bag"`
}

// HealthResponse is the response for GET /api/v1/health
type HealthResponse struct {
	Status string `json:"status"`
	Tables int    `json:"tables"`
}
