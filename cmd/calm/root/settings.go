package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RACSolutions/calm-compass-autism-support/internal/engine"
	"github.com/RACSolutions/calm-compass-autism-support/internal/ui"
)

func newSettingsCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, app)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.LoadSettings(ctx)
			if err != nil {
				return err
			}
			values, err := engine.SettingsMap(st)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconInfo, "Settings"))
			for _, k := range engine.SettingKeys() {
				fmt.Fprintln(out, ui.LabelValue(k, values[k]))
			}
			return nil
		},
	}
	cmd.AddCommand(newSettingsSetCmd(app))
	return cmd
}

func newSettingsSetCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("key and value are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, app)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.LoadSettings(ctx)
			if err != nil {
				return err
			}
			st, err = engine.ApplySetting(st, args[0], args[1])
			if err != nil {
				return err
			}
			if err := svc.SaveSettings(ctx, &st); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" "+args[0]+" updated"))
			return nil
		},
	}
	return cmd
}
