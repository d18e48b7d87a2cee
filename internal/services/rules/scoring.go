package rules

import "github.com/mcoot/scrabb-go/internal/model"

const (
	// BingoTiles is the number of tiles that earns the bingo bonus
	BingoTiles = 7
	// BingoBonus is added once when a play uses BingoTiles tiles
	BingoBonus = 50
)

// ScoreWord scores a single word against the board's live bonuses.
// Letter bonuses multiply the tile on their cell; word bonuses compound
// across the whole word.
func ScoreWord(board *model.Board, word model.Word) int {
	letters := 0
	multiplier := 1
	for _, c := range word.Cells {
		bonus := board.BonusAt(c.Position())
		letters += c.Tile.Score * bonus.LetterMultiplier()
		multiplier *= bonus.WordMultiplier()
	}
	return letters * multiplier
}

// ScorePlay discovers and scores every word formed by a validated play.
// The board must not yet hold the placed tiles so their bonuses are still live.
func ScorePlay(board *model.Board, placements []model.Placement, orientation model.Orientation) *model.PlayResult {
	result := &model.PlayResult{
		Orientation: orientation,
		Words:       []model.ScoredWord{},
		TilesPlaced: len(placements),
	}
	if len(placements) == 0 {
		return result
	}

	words := FindWords(board, placements, orientation)
	if len(words) == 0 {
		// An isolated tile still scores as a word of its own
		words = []model.Word{{
			Cells:       SortPlacements(placements, orientation),
			Orientation: orientation,
		}}
	}

	for _, w := range words {
		score := ScoreWord(board, w)
		result.Words = append(result.Words, model.ScoredWord{Word: w, Score: score})
		result.Score += score
	}

	if len(placements) == BingoTiles {
		result.Bingo = true
		result.Score += BingoBonus
	}

	return result
}
