package rules

import (
	"log/slog"

	"github.com/mcoot/scrabb-go/internal/model"
)

// Engine applies plays to a single board. It holds no locks: callers that
// share an Engine between goroutines must serialize calls to Play.
type Engine struct {
	board  *model.Board
	logger *slog.Logger
}

// New creates an Engine for the given board
func New(board *model.Board, logger *slog.Logger) *Engine {
	return &Engine{
		board:  board,
		logger: logger,
	}
}

// Board returns the board the engine plays on
func (e *Engine) Board() *model.Board {
	return e.board
}

// Check reports the orientation of a candidate play and the first rule it
// breaks, without touching the board
func (e *Engine) Check(placements []model.Placement) (model.Orientation, model.ValidationReason) {
	orientation := DetectOrientation(model.Positions(placements))
	return orientation, Validate(e.board, placements, orientation)
}

// Preview validates and scores a play without committing it
func (e *Engine) Preview(placements []model.Placement) (*model.PlayResult, error) {
	orientation, reason := e.Check(placements)
	if !reason.IsValid() {
		return nil, rejection(placements, orientation, reason)
	}
	return ScorePlay(e.board, placements, orientation), nil
}

// Play validates, scores and commits a play. A rejected play returns a
// *model.PlayError and leaves the board exactly as it was.
func (e *Engine) Play(placements []model.Placement) (*model.PlayResult, error) {
	orientation, reason := e.Check(placements)
	if !reason.IsValid() {
		e.logger.Debug("play rejected",
			slog.String("reason", reason.String()),
			slog.String("orientation", orientation.String()),
			slog.Int("tiles", len(placements)),
		)
		return nil, rejection(placements, orientation, reason)
	}

	result := ScorePlay(e.board, placements, orientation)

	// Scoring reads the live bonuses, so commit only afterwards
	e.board.Place(placements)

	e.logger.Info("play committed",
		slog.String("orientation", result.Orientation.String()),
		slog.Int("tiles", result.TilesPlaced),
		slog.Int("words", len(result.Words)),
		slog.Int("score", result.Score),
		slog.Bool("bingo", result.Bingo),
	)

	return result, nil
}

func rejection(placements []model.Placement, orientation model.Orientation, reason model.ValidationReason) *model.PlayError {
	rejected := make([]model.Placement, len(placements))
	copy(rejected, placements)
	return &model.PlayError{
		Placements:  rejected,
		Orientation: orientation,
		Reason:      reason,
	}
}
