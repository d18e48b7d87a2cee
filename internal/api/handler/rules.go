package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mcoot/scrabb-go/internal/api/request"
	"github.com/mcoot/scrabb-go/internal/api/response"
	"github.com/mcoot/scrabb-go/internal/model"
	"github.com/mcoot/scrabb-go/internal/services/rules"
	"github.com/mcoot/scrabb-go/internal/services/table"
)

// RulesHandler handles the stateless rules endpoints. Every request carries
// its own board, so nothing is shared between requests.
type RulesHandler struct {
	logger *slog.Logger
}

// NewRulesHandler creates a new rules handler
func NewRulesHandler(logger *slog.Logger) *RulesHandler {
	return &RulesHandler{logger: logger}
}

// Layout handles GET /api/v1/layout
func (h *RulesHandler) Layout(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, model.StandardLayout())
}

// Check handles POST /api/v1/plays/check
func (h *RulesHandler) Check(w http.ResponseWriter, r *http.Request) {
	engine, placements, ok := h.decodePlay(w, r)
	if !ok {
		return
	}

	orientation, reason := engine.Check(placements)
	response.JSON(w, http.StatusOK, response.CheckResult{
		Valid:       reason.IsValid(),
		Reason:      reason,
		Orientation: orientation,
	})
}

// Score handles POST /api/v1/plays/score
func (h *RulesHandler) Score(w http.ResponseWriter, r *http.Request) {
	engine, placements, ok := h.decodePlay(w, r)
	if !ok {
		return
	}

	result, err := engine.Play(placements)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoreResponse{
		Result: response.PlayResultFromModel(result),
		Board:  response.BoardFromModel(engine.Board()),
	})
}

// decodePlay reads a PlayRequest and builds an engine over its board.
// On failure the error response has already been written.
func (h *RulesHandler) decodePlay(w http.ResponseWriter, r *http.Request) (*rules.Engine, []model.Placement, bool) {
	var req request.PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return nil, nil, false
	}

	board, err := buildBoard(req.Board)
	if err != nil {
		WriteError(w, err)
		return nil, nil, false
	}

	placements, err := request.Placements(req.Placements)
	if err != nil {
		WriteError(w, err)
		return nil, nil, false
	}
	if err := table.CheckPlacements(placements); err != nil {
		WriteError(w, err)
		return nil, nil, false
	}

	return rules.New(board, h.logger), placements, true
}

// buildBoard lays the request's existing tiles onto a fresh board
func buildBoard(req request.Board) (*model.Board, error) {
	board := model.NewBoard()
	if req.Layout != nil {
		var err error
		if board, err = model.NewBoardWithLayout(*req.Layout); err != nil {
			return nil, err
		}
	}

	tiles, err := request.Placements(req.Tiles)
	if err != nil {
		return nil, err
	}
	if err := table.CheckPlacements(tiles); err != nil {
		return nil, err
	}

	seen := model.NewPositionSet()
	for _, t := range tiles {
		if seen.Contains(t.Position()) {
			return nil, fmt.Errorf("%w: board has two tiles at %s", model.ErrInvalidPosition, t.Position())
		}
		seen[t.Position()] = struct{}{}
	}

	board.Place(tiles)
	return board, nil
}
