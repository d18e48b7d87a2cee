package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationReasonNames(t *testing.T) {
	tests := []struct {
		reason ValidationReason
		want   string
	}{
		{ReasonValid, "VALID"},
		{ReasonFirstPlayNotOnCenter, "FIRST_PLAY_NOT_ON_CENTER"},
		{ReasonFirstPlayTooFewTiles, "FIRST_PLAY_TOO_FEW_TILES"},
		{ReasonCellAlreadyFull, "CELL_ALREADY_FULL"},
		{ReasonInvalidOrientation, "INVALID_ORIENTATION"},
		{ReasonNotAdjacent, "NOT_ADJACENT"},
		{ReasonNotContiguous, "NOT_CONTIGUOUS"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.reason.String())

			var decoded ValidationReason
			require.NoError(t, decoded.UnmarshalText([]byte(tt.want)))
			assert.Equal(t, tt.reason, decoded)
		})
	}
}

func TestOrientationJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		O Orientation `json:"o"`
	}{OrientationVertical})
	require.NoError(t, err)
	assert.JSONEq(t, `{"o":"VERTICAL"}`, string(data))

	var o Orientation
	assert.Error(t, o.UnmarshalText([]byte("DIAGONAL")))
}

func TestPlayErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("table t1: %w", &PlayError{Reason: ReasonNotAdjacent, Orientation: OrientationHorizontal})

	assert.ErrorIs(t, err, ErrInvalidPlay)

	var playErr *PlayError
	require.True(t, errors.As(err, &playErr))
	assert.Equal(t, ReasonNotAdjacent, playErr.Reason)
}

func TestWordText(t *testing.T) {
	w := Word{Cells: []Placement{
		{Row: 7, Col: 7, Tile: NewTile('C', 3)},
		{Row: 7, Col: 8, Tile: NewBlank()},
		{Row: 7, Col: 9, Tile: NewTile('T', 1)},
	}}
	assert.Equal(t, "C?T", w.Text())
	assert.Equal(t, Position{Row: 7, Col: 7}, w.Start())
}

func TestTileIdentity(t *testing.T) {
	a1 := NewTile('A', 1)
	a2 := NewTile('A', 1)
	assert.NotSame(t, a1, a2)
	assert.Equal(t, "A1", a1.String())
	assert.True(t, NewBlank().IsBlank())
}
