package apierr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/scrabb-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes. A rejected play uses its validation reason
// (e.g. NOT_ADJACENT) as the code instead.
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInvalidPosition = "INVALID_POSITION"
	CodeInvalidTile     = "INVALID_TILE"
	CodeInvalidLayout   = "INVALID_LAYOUT"
	CodeInvalidCount    = "INVALID_COUNT"
	CodeTableNotFound   = "TABLE_NOT_FOUND"
	CodeNotEnoughTiles  = "NOT_ENOUGH_TILES"
	CodeRequestCanceled = "REQUEST_CANCELED"
	CodeInternalError   = "INTERNAL_ERROR"
)

// PlayErrorDetails describes a rejected play
type PlayErrorDetails struct {
	Reason      model.ValidationReason `json:"reason"`
	Orientation model.Orientation      `json:"orientation"`
	Positions   []model.Position       `json:"positions"`
}

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// StatusOf returns the HTTP status WriteError would use for err
func StatusOf(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var playErr *model.PlayError
	if errors.As(err, &playErr) {
		return &httpError{http.StatusUnprocessableEntity, APIError{
			Code:    playErr.Reason.String(),
			Message: "Play is not valid",
			Details: PlayErrorDetails{
				Reason:      playErr.Reason,
				Orientation: playErr.Orientation,
				Positions:   model.Positions(playErr.Placements),
			},
		}}
	}

	switch {
	case errors.Is(err, model.ErrTableNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodeTableNotFound, Message: "Table not found"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidPosition, Message: err.Error()}}
	case errors.Is(err, model.ErrInvalidTile):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidTile, Message: err.Error()}}
	case errors.Is(err, model.ErrInvalidLayout):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidLayout, Message: err.Error()}}
	case errors.Is(err, model.ErrInvalidCount):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidCount, Message: err.Error()}}
	case errors.Is(err, model.ErrNotEnoughTiles):
		return &httpError{http.StatusConflict, APIError{Code: CodeNotEnoughTiles, Message: "Not enough tiles left in the bag"}}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return &httpError{http.StatusServiceUnavailable, APIError{Code: CodeRequestCanceled, Message: "Request canceled"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
}
