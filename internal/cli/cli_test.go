package cli

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/scrabb-go/internal/api"
	"github.com/mcoot/scrabb-go/internal/api/request"
	"github.com/mcoot/scrabb-go/internal/api/response"
	"github.com/mcoot/scrabb-go/internal/factory"
	"github.com/mcoot/scrabb-go/internal/testutil"
)

func startServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := testutil.NopLogger()
	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	srv := httptest.NewServer(api.NewRouter(api.RouterConfig{Logger: logger, Tables: app.Tables}))
	t.Cleanup(srv.Close)
	return srv
}

// run executes the CLI against the server and returns stdout
func run(t *testing.T, serverURL string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--server", serverURL}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func runJSON[T any](t *testing.T, serverURL string, args ...string) T {
	t.Helper()

	out, err := run(t, serverURL, append([]string{"--output", "json"}, args...)...)
	require.NoError(t, err, out)

	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		in      string
		want    request.Placement
		wantErr bool
	}{
		{in: "7,7,A,1", want: request.Placement{Row: 7, Col: 7, Letter: "A", Score: 1}},
		{in: " 0, 14 ,q, 10", want: request.Placement{Row: 0, Col: 14, Letter: "q", Score: 10}},
		{in: "7,8,_,0", want: request.Placement{Row: 7, Col: 8, Letter: "_", Score: 0}},
		{in: "7,7,A", wantErr: true},
		{in: "x,7,A,1", wantErr: true},
		{in: "7,7,A,one", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePlacement(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTile(t *testing.T) {
	got, err := ParseTile("Q,10")
	require.NoError(t, err)
	assert.Equal(t, request.Tile{Letter: "Q", Score: 10}, got)

	_, err = ParseTile("Q")
	assert.Error(t, err)

	_, err = ParseTile("Q,ten")
	assert.Error(t, err)
}

func TestLoadLayout(t *testing.T) {
	layout, err := LoadLayout("")
	require.NoError(t, err)
	assert.Nil(t, layout)

	path := filepath.Join(t.TempDir(), "layout.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"double_letter":[{"row":7,"col":8}]}`), 0o600))

	layout, err = LoadLayout(path)
	require.NoError(t, err)
	require.Len(t, layout.DoubleLetter, 1)
	assert.Equal(t, 8, layout.DoubleLetter[0].Col)

	_, err = LoadLayout(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestHealthCommand(t *testing.T) {
	srv := startServer(t)

	out, err := run(t, srv.URL, "health")
	require.NoError(t, err)
	assert.Contains(t, out, "Status: ok")
}

func TestLayoutCommandRendersBoard(t *testing.T) {
	srv := startServer(t)

	out, err := run(t, srv.URL, "layout")
	require.NoError(t, err)
	assert.Contains(t, out, "Double letter: 24")
	assert.Contains(t, out, "Triple word:   8")
	// Row 0: triple word, then a double letter in column 3
	assert.Contains(t, out, " 0 |  x  .  .  d")
}

func TestCheckCommand(t *testing.T) {
	srv := startServer(t)

	res := runJSON[response.CheckResult](t, srv.URL, "check", "7,7,A,1", "7,8,B,1")
	assert.True(t, res.Valid)

	res = runJSON[response.CheckResult](t, srv.URL, "check", "--board", "7,7,A,1", "--board", "7,8,B,1", "0,0,C,3")
	assert.False(t, res.Valid)
	assert.Equal(t, "NOT_ADJACENT", res.Reason.String())

	out, err := run(t, srv.URL, "check", "7,7,A,1", "8,8,B,1")
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid: INVALID_ORIENTATION (NONE)")
}

func TestScoreCommand(t *testing.T) {
	srv := startServer(t)

	res := runJSON[response.ScoreResponse](t, srv.URL, "score", "7,7,A,1", "7,8,B,1")
	assert.Equal(t, 4, res.Result.Score)
	assert.Len(t, res.Board.Tiles, 2)

	out, err := run(t, srv.URL, "score", "7,6,C,3", "7,7,A,1", "7,8,T,1")
	require.NoError(t, err)
	assert.Contains(t, out, "Score: 10")
	assert.Contains(t, out, "CAT at (7,6) horizontal (10 pts)")
	assert.Contains(t, out, " 7 |  x  .  .  d  .  .  C  A  T")
}

func TestScoreCommandWithLayoutFile(t *testing.T) {
	srv := startServer(t)

	path := filepath.Join(t.TempDir(), "layout.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"double_letter":[{"row":7,"col":8}]}`), 0o600))

	res := runJSON[response.ScoreResponse](t, srv.URL, "score", "--layout", path, "7,7,A,1", "7,8,B,1")
	assert.Equal(t, 3, res.Result.Score)
}

func TestScoreCommandRejected(t *testing.T) {
	srv := startServer(t)

	_, err := run(t, srv.URL, "score", "0,0,A,1", "0,1,B,1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.Status)
	assert.Equal(t, "FIRST_PLAY_NOT_ON_CENTER", apiErr.Code)
}

func TestBadArguments(t *testing.T) {
	srv := startServer(t)

	_, err := run(t, srv.URL, "score", "7,7,A")
	assert.Error(t, err)

	_, err = run(t, srv.URL, "--output", "yaml", "health")
	assert.Error(t, err)

	_, err = run(t, srv.URL, "table", "draw", "T1", "many")
	assert.Error(t, err)
}

func TestTableCommands(t *testing.T) {
	srv := startServer(t)

	table := runJSON[response.Table](t, srv.URL, "table", "create")
	require.NotEmpty(t, table.ID)
	assert.Equal(t, 100, table.TilesInBag)

	drawn := runJSON[response.TilesResponse](t, srv.URL, "table", "draw", table.ID, "7")
	assert.Len(t, drawn.Tiles, 7)
	assert.Equal(t, 93, drawn.TilesInBag)

	first := drawn.Tiles[0]
	swapped := runJSON[response.TilesResponse](t, srv.URL, "table", "exchange", table.ID, first.Letter+","+strconv.Itoa(first.Score))
	assert.Len(t, swapped.Tiles, 1)
	assert.Equal(t, 93, swapped.TilesInBag)

	played := runJSON[response.TablePlayResponse](t, srv.URL, "table", "play", table.ID, "7,7,A,1", "7,8,B,1")
	assert.Equal(t, 4, played.Result.Score)
	assert.Equal(t, 4, played.Table.TotalScore)

	out, err := run(t, srv.URL, "table", "get", table.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Table: "+table.ID)
	assert.Contains(t, out, "1. AB (4 pts)")

	out, err = run(t, srv.URL, "table", "delete", table.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted table "+table.ID)

	_, err = run(t, srv.URL, "table", "get", table.ID)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "TABLE_NOT_FOUND", apiErr.Code)
}
