package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mcoot/scrabb-go/internal/api/request"
	"github.com/mcoot/scrabb-go/internal/model"
)

// ParsePlacement reads a tile written as row,col,letter,score
func ParsePlacement(s string) (request.Placement, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return request.Placement{}, fmt.Errorf("placement %q: want row,col,letter,score", s)
	}

	var nums [3]int
	for i, idx := range []int{0, 1, 3} {
		n, err := strconv.Atoi(strings.TrimSpace(parts[idx]))
		if err != nil {
			return request.Placement{}, fmt.Errorf("placement %q: %w", s, err)
		}
		nums[i] = n
	}

	return request.Placement{
		Row:    nums[0],
		Col:    nums[1],
		Letter: strings.TrimSpace(parts[2]),
		Score:  nums[2],
	}, nil
}

// ParsePlacements reads each argument with ParsePlacement
func ParsePlacements(args []string) ([]request.Placement, error) {
	result := make([]request.Placement, 0, len(args))
	for _, arg := range args {
		p, err := ParsePlacement(arg)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

// ParseTile reads a tile written as letter,score
func ParseTile(s string) (request.Tile, error) {
	letter, scoreStr, ok := strings.Cut(s, ",")
	if !ok {
		return request.Tile{}, fmt.Errorf("tile %q: want letter,score", s)
	}
	score, err := strconv.Atoi(strings.TrimSpace(scoreStr))
	if err != nil {
		return request.Tile{}, fmt.Errorf("tile %q: %w", s, err)
	}
	return request.Tile{Letter: strings.TrimSpace(letter), Score: score}, nil
}

// ParseTiles reads each argument with ParseTile
func ParseTiles(args []string) ([]request.Tile, error) {
	result := make([]request.Tile, 0, len(args))
	for _, arg := range args {
		t, err := ParseTile(arg)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, nil
}

// LoadLayout reads a bonus layout from a JSON file. An empty path means the
// standard layout.
func LoadLayout(path string) (*model.BonusLayout, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	var layout model.BonusLayout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}
	return &layout, nil
}
