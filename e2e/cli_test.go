package e2e_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/scrabb-go/internal/api"
	"github.com/mcoot/scrabb-go/internal/factory"
	"github.com/mcoot/scrabb-go/internal/testutil"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "scrabb-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/scrabb")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.Output()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// startTestServer runs the real API server on a free port
func startTestServer(t *testing.T) string {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	logger := testutil.NopLogger()
	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{Logger: logger, Tables: app.Tables})

	serverCfg := api.DefaultServerConfig()
	serverCfg.Host = "127.0.0.1"
	serverCfg.Port = port
	server := api.NewServer(router, serverCfg, logger)

	go func() {
		if err := server.Start(); err != nil {
			t.Logf("server error: %v", err)
		}
	}()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	})

	// Wait for server to be ready
	serverURL := "http://" + server.Addr()
	waitForServer(t, serverURL+"/api/v1/health")
	return serverURL
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type healthResponse struct {
	Status string `json:"status"`
}

type checkResponse struct {
	Valid       bool   `json:"valid"`
	Reason      string `json:"reason"`
	Orientation string `json:"orientation"`
}

type playResult struct {
	Score       int  `json:"score"`
	TilesPlaced int  `json:"tiles_placed"`
	Bingo       bool `json:"bingo"`
	Words       []struct {
		Text  string `json:"text"`
		Score int    `json:"score"`
	} `json:"words"`
}

type tableResponse struct {
	ID         string `json:"id"`
	TilesInBag int    `json:"tiles_in_bag"`
	TotalScore int    `json:"total_score"`
	Plays      []struct {
		Number int      `json:"number"`
		Words  []string `json:"words"`
		Score  int      `json:"score"`
	} `json:"plays"`
}

type tablePlayResponse struct {
	Result playResult    `json:"result"`
	Table  tableResponse `json:"table"`
}

type tilesResponse struct {
	Tiles []struct {
		Letter string `json:"letter"`
		Score  int    `json:"score"`
	} `json:"tiles"`
	TilesInBag int `json:"tiles_in_bag"`
}

func decode[T any](t *testing.T, output string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(output), &v), "output: %s", output)
	return v
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)
	assert.Equal(t, "ok", decode[healthResponse](t, output).Status)
}

func TestCLI_CheckAndScore(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	output, err := cli.run("check", "7,7,C,3", "7,8,A,1", "7,9,T,1")
	require.NoError(t, err, "output: %s", output)
	check := decode[checkResponse](t, output)
	assert.True(t, check.Valid)
	assert.Equal(t, "HORIZONTAL", check.Orientation)

	output, err = cli.run("score", "--board", "7,7,C,3", "--board", "7,8,A,1", "--board", "7,9,T,1", "8,9,O,1", "9,9,E,1")
	require.NoError(t, err, "output: %s", output)
	var scored struct {
		Result playResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &scored))
	require.Len(t, scored.Result.Words, 1)
	assert.Equal(t, "TOE", scored.Result.Words[0].Text)
	assert.Equal(t, 2, scored.Result.TilesPlaced)
}

func TestCLI_TableFlow(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	output, err := cli.run("table", "create")
	require.NoError(t, err, "output: %s", output)
	table := decode[tableResponse](t, output)
	require.NotEmpty(t, table.ID)
	assert.Equal(t, 100, table.TilesInBag)

	output, err = cli.run("table", "draw", table.ID, "7")
	require.NoError(t, err, "output: %s", output)
	rack := decode[tilesResponse](t, output)
	assert.Len(t, rack.Tiles, 7)
	assert.Equal(t, 93, rack.TilesInBag)

	// Seven tiles across the center is a bingo
	output, err = cli.run("table", "play", table.ID,
		"7,4,S,1", "7,5,C,3", "7,6,R,1", "7,7,A,1", "7,8,B,3", "7,9,B,3", "7,10,L,1")
	require.NoError(t, err, "output: %s", output)
	played := decode[tablePlayResponse](t, output)
	assert.True(t, played.Result.Bingo)
	assert.Equal(t, 7, played.Result.TilesPlaced)
	require.Len(t, played.Table.Plays, 1)
	assert.Equal(t, []string{"SCRABBL"}, played.Table.Plays[0].Words)

	output, err = cli.run("table", "play", table.ID, "7,11,E,1")
	require.NoError(t, err, "output: %s", output)
	played = decode[tablePlayResponse](t, output)
	assert.Equal(t, []string{"SCRABBLE"}, played.Table.Plays[1].Words)

	output, err = cli.run("table", "get", table.ID)
	require.NoError(t, err, "output: %s", output)
	got := decode[tableResponse](t, output)
	assert.Len(t, got.Plays, 2)
	assert.Equal(t, played.Table.TotalScore, got.TotalScore)

	output, err = cli.run("table", "delete", table.ID)
	require.NoError(t, err, "output: %s", output)

	_, err = cli.run("table", "get", table.ID)
	assert.Error(t, err)
}

func TestCLI_ErrorHandling(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	// Rejected play
	_, err := cli.run("score", "0,0,A,1", "0,1,B,1")
	assert.Error(t, err)

	// Malformed tile
	_, err = cli.run("check", "7,7")
	assert.Error(t, err)

	// Unknown table
	_, err = cli.run("table", "get", "NOPE")
	assert.Error(t, err)
}
