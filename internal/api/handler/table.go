package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/scrabb-go/internal/api/request"
	"github.com/mcoot/scrabb-go/internal/api/response"
	"github.com/mcoot/scrabb-go/internal/model"
	"github.com/mcoot/scrabb-go/internal/services/table"
)

// TableHandler handles table endpoints
type TableHandler struct {
	tables table.ServiceInterface
}

// NewTableHandler creates a new table handler
func NewTableHandler(tables table.ServiceInterface) *TableHandler {
	return &TableHandler{tables: tables}
}

// Create handles POST /api/v1/tables
func (h *TableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	t, err := h.tables.Create(r.Context(), table.CreateOptions{Layout: req.Layout})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.TableFromModel(t))
}

// Get handles GET /api/v1/tables/{id}
func (h *TableHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.tables.Get(r.Context(), tableID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TableFromModel(t))
}

// Delete handles DELETE /api/v1/tables/{id}
func (h *TableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.tables.Delete(r.Context(), tableID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Play handles POST /api/v1/tables/{id}/plays
func (h *TableHandler) Play(w http.ResponseWriter, r *http.Request) {
	id := tableID(r)

	var req request.TablePlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	placements, err := request.Placements(req.Placements)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.tables.Play(r.Context(), id, placements)
	if err != nil {
		WriteError(w, err)
		return
	}

	t, err := h.tables.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TablePlayResponse{
		Result: response.PlayResultFromModel(result),
		Table:  response.TableFromModel(t),
	})
}

// Draw handles POST /api/v1/tables/{id}/draw
func (h *TableHandler) Draw(w http.ResponseWriter, r *http.Request) {
	id := tableID(r)

	var req request.DrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	tiles, err := h.tables.Draw(r.Context(), id, req.Count)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeTiles(w, r, id, tiles)
}

// Exchange handles POST /api/v1/tables/{id}/exchange
func (h *TableHandler) Exchange(w http.ResponseWriter, r *http.Request) {
	id := tableID(r)

	var req request.ExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	returned, err := request.Tiles(req.Tiles)
	if err != nil {
		WriteError(w, err)
		return
	}

	tiles, err := h.tables.Exchange(r.Context(), id, returned)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeTiles(w, r, id, tiles)
}

func (h *TableHandler) writeTiles(w http.ResponseWriter, r *http.Request, id model.TableID, tiles []*model.Tile) {
	t, err := h.tables.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TilesResponse{
		Tiles:      response.TilesFromModel(tiles),
		TilesInBag: t.TilesInBag,
	})
}

func tableID(r *http.Request) model.TableID {
	return model.TableID(mux.Vars(r)["id"])
}
