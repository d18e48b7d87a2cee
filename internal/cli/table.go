package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/scrabb-go/internal/api/request"
	"github.com/mcoot/scrabb-go/internal/api/response"
)

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Hosted table commands",
	}

	cmd.AddCommand(newTableCreateCmd())
	cmd.AddCommand(newTableGetCmd())
	cmd.AddCommand(newTableDeleteCmd())
	cmd.AddCommand(newTablePlayCmd())
	cmd.AddCommand(newTableDrawCmd())
	cmd.AddCommand(newTableExchangeCmd())

	return cmd
}

func newTableCreateCmd() *cobra.Command {
	var layoutPath string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new table",
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := LoadLayout(layoutPath)
			if err != nil {
				return err
			}

			var result response.Table

			if err := client.Post(cmd.Context(), "/api/v1/tables", request.CreateTableRequest{Layout: layout}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&layoutPath, "layout", "", "JSON file with a custom bonus layout")

	return cmd
}

func newTableGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get table details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Table

			if err := client.Get(cmd.Context(), tablePath(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newTableDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), tablePath(args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage(fmt.Sprintf("Deleted table %s", args[0]))
			return nil
		},
	}
}

func newTablePlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "play <id> <tile>...",
		Short:   "Make a play on a table",
		Example: "  scrabb table play K7Q2M9XA 7,7,C,3 7,8,A,1 7,9,T,1",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			placements, err := ParsePlacements(args[1:])
			if err != nil {
				return err
			}

			var result response.TablePlayResponse

			if err := client.Post(cmd.Context(), tablePath(args[0])+"/plays", request.TablePlayRequest{Placements: placements}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newTableDrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draw <id> <count>",
		Short: "Draw tiles from a table's bag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("count %q: %w", args[1], err)
			}

			var result response.TilesResponse

			if err := client.Post(cmd.Context(), tablePath(args[0])+"/draw", request.DrawRequest{Count: count}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newTableExchangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "exchange <id> <tile>...",
		Short:   "Return tiles to a table's bag for fresh ones",
		Example: "  scrabb table exchange K7Q2M9XA Q,10 _,0",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tiles, err := ParseTiles(args[1:])
			if err != nil {
				return err
			}

			var result response.TilesResponse

			if err := client.Post(cmd.Context(), tablePath(args[0])+"/exchange", request.ExchangeRequest{Tiles: tiles}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func tablePath(id string) string {
	return "/api/v1/tables/" + url.PathEscape(id)
}
