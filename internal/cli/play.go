package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/scrabb-go/internal/api/request"
	"github.com/mcoot/scrabb-go/internal/api/response"
)

// playFlags describe the board a stateless play is made against
type playFlags struct {
	board  []string
	layout string
}

func (f *playFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.board, "board", "b", nil, "Tile already on the board as row,col,letter,score (repeatable)")
	cmd.Flags().StringVar(&f.layout, "layout", "", "JSON file with a custom bonus layout")
}

func (f *playFlags) request(args []string) (request.PlayRequest, error) {
	tiles, err := ParsePlacements(f.board)
	if err != nil {
		return request.PlayRequest{}, err
	}
	placements, err := ParsePlacements(args)
	if err != nil {
		return request.PlayRequest{}, err
	}
	layout, err := LoadLayout(f.layout)
	if err != nil {
		return request.PlayRequest{}, err
	}
	return request.PlayRequest{
		Board:      request.Board{Tiles: tiles, Layout: layout},
		Placements: placements,
	}, nil
}

func newCheckCmd() *cobra.Command {
	var flags playFlags

	cmd := &cobra.Command{
		Use:   "check <tile>...",
		Short: "Check whether a play is legal",
		Example: `  scrabb check 7,7,C,3 7,8,A,1 7,9,T,1
  scrabb check --board 7,7,A,1 --board 7,8,B,3 8,8,E,1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request(args)
			if err != nil {
				return err
			}

			var result response.CheckResult

			if err := client.Post(cmd.Context(), "/api/v1/plays/check", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newScoreCmd() *cobra.Command {
	var flags playFlags

	cmd := &cobra.Command{
		Use:   "score <tile>...",
		Short: "Score a play and show the resulting board",
		Example: `  scrabb score 7,7,C,3 7,8,A,1 7,9,T,1
  scrabb score --board 7,7,A,1 7,8,_,0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request(args)
			if err != nil {
				return err
			}

			var result response.ScoreResponse

			if err := client.Post(cmd.Context(), "/api/v1/plays/score", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
