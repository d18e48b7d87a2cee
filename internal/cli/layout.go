package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/scrabb-go/internal/model"
)

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Show the standard bonus layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result model.BonusLayout

			if err := client.Get(cmd.Context(), "/api/v1/layout", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}
