package root

import (
	"github.com/spf13/cobra"

	"github.com/RACSolutions/calm-compass-autism-support/internal/tui"
)

func newBoardCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive zone board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, app)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
