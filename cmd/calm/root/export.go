package root

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/RACSolutions/calm-compass-autism-support/internal/ui"
)

func newExportCmd(app *appState) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export data as JSON for caregivers (parental email redacted)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, u, cleanup, err := loadUser(ctx, app)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.LoadSettings(ctx)
			if err != nil {
				return err
			}
			payload, err := svc.ExportData(ctx, u, &st)
			if err != nil {
				return err
			}
			raw, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return fmt.Errorf("encode export: %w", err)
			}
			raw = append(raw, '\n')

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(raw)
				return err
			}
			if dir := filepath.Dir(output); dir != "" {
				if err := os.MkdirAll(dir, 0o750); err != nil {
					return fmt.Errorf("create export dir: %w", err)
				}
			}
			if err := os.WriteFile(output, raw, 0o600); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconBox+" Exported to "+output))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}
