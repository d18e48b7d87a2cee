package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/scrabb-go/internal/api/response"
	"github.com/mcoot/scrabb-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.HealthResponse:
		o.printHealth(v)
	case model.BonusLayout:
		o.printLayout(v)
	case response.CheckResult:
		o.printCheck(v)
	case response.ScoreResponse:
		o.printResult(v.Result)
		fmt.Fprintln(o.w)
		o.printBoard(v.Board)
	case response.Table:
		o.printTable(v)
	case response.TablePlayResponse:
		o.printResult(v.Result)
		fmt.Fprintln(o.w)
		o.printTable(v.Table)
	case response.TilesResponse:
		o.printTiles(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printHealth(h response.HealthResponse) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	fmt.Fprintf(o.w, "Tables: %d\n", h.Tables)
}

func (o *Output) printLayout(l model.BonusLayout) {
	fmt.Fprintf(o.w, "Double letter: %d\n", len(l.DoubleLetter))
	fmt.Fprintf(o.w, "Triple letter: %d\n", len(l.TripleLetter))
	fmt.Fprintf(o.w, "Double word:   %d\n", len(l.DoubleWord))
	fmt.Fprintf(o.w, "Triple word:   %d\n", len(l.TripleWord))
	fmt.Fprintln(o.w)
	o.printBoard(response.Board{Empty: true, Layout: l})
}

func (o *Output) printCheck(c response.CheckResult) {
	if c.Valid {
		fmt.Fprintf(o.w, "Valid (%s)\n", c.Orientation)
		return
	}
	fmt.Fprintf(o.w, "Invalid: %s (%s)\n", c.Reason, c.Orientation)
}

func (o *Output) printResult(r response.PlayResult) {
	fmt.Fprintf(o.w, "Score: %d\n", r.Score)
	fmt.Fprintf(o.w, "Orientation: %s\n", r.Orientation)
	fmt.Fprintf(o.w, "Tiles placed: %d\n", r.TilesPlaced)
	if r.Bingo {
		fmt.Fprintln(o.w, "Bingo!")
	}
	fmt.Fprintf(o.w, "Words (%d):\n", len(r.Words))
	for _, w := range r.Words {
		fmt.Fprintf(o.w, "  - %s at %s %s (%d pts)\n", w.Text, w.Start, strings.ToLower(w.Orientation.String()), w.Score)
	}
}

func (o *Output) printTable(t response.Table) {
	fmt.Fprintf(o.w, "Table: %s\n", t.ID)
	fmt.Fprintf(o.w, "Tiles in bag: %d\n", t.TilesInBag)
	fmt.Fprintf(o.w, "Total score: %d\n", t.TotalScore)
	if len(t.Plays) > 0 {
		fmt.Fprintf(o.w, "Plays (%d):\n", len(t.Plays))
		for _, p := range t.Plays {
			bingo := ""
			if p.Bingo {
				bingo = " [bingo]"
			}
			fmt.Fprintf(o.w, "  %d. %s (%d pts)%s\n", p.Number, strings.Join(p.Words, ", "), p.Score, bingo)
		}
	}
	fmt.Fprintln(o.w)
	o.printBoard(t.Board)
}

func (o *Output) printTiles(t response.TilesResponse) {
	tiles := make([]string, len(t.Tiles))
	for i, tile := range t.Tiles {
		tiles[i] = fmt.Sprintf("%s%d", tile.Letter, tile.Score)
	}
	fmt.Fprintf(o.w, "Tiles: %s\n", strings.Join(tiles, " "))
	fmt.Fprintf(o.w, "Tiles in bag: %d\n", t.TilesInBag)
}

// printBoard draws the grid. Bonus cells still live are marked d, t, w and x
// for double letter, triple letter, double word and triple word.
func (o *Output) printBoard(b response.Board) {
	var grid [model.BoardSize][model.BoardSize]string
	mark := func(positions []model.Position, glyph string) {
		for _, p := range positions {
			if p.InBounds() {
				grid[p.Row][p.Col] = glyph
			}
		}
	}
	mark(b.Layout.DoubleLetter, "d")
	mark(b.Layout.TripleLetter, "t")
	mark(b.Layout.DoubleWord, "w")
	mark(b.Layout.TripleWord, "x")
	for _, c := range b.Tiles {
		if (model.Position{Row: c.Row, Col: c.Col}).InBounds() {
			grid[c.Row][c.Col] = c.Letter
		}
	}

	// Print column headers
	fmt.Fprint(o.w, "    ")
	for col := 0; col < model.BoardSize; col++ {
		fmt.Fprintf(o.w, "%3d", col)
	}
	fmt.Fprintln(o.w)

	// Print top border
	border := "   +" + strings.Repeat("---", model.BoardSize) + "-+"
	fmt.Fprintln(o.w, border)

	// Print rows
	for row := 0; row < model.BoardSize; row++ {
		fmt.Fprintf(o.w, "%2d |", row)
		for col := 0; col < model.BoardSize; col++ {
			cell := grid[row][col]
			if cell == "" {
				cell = "."
			}
			fmt.Fprintf(o.w, "  %s", cell)
		}
		fmt.Fprintln(o.w, " |")
	}

	// Print bottom border
	fmt.Fprintln(o.w, border)
}
