package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/RACSolutions/calm-compass-autism-support/internal/config"
	"github.com/RACSolutions/calm-compass-autism-support/internal/logging"
	"github.com/RACSolutions/calm-compass-autism-support/internal/ui"
)

const Version = "0.1.0"

// appState is shared by every subcommand of one invocation.
type appState struct {
	v        *viper.Viper
	cfgFile  string
	cfg      config.Config
	logger   *zap.Logger
	closeLog func()
}

func (a *appState) close() {
	if a.closeLog != nil {
		a.closeLog()
		a.closeLog = nil
	}
}

func newRootCmd() (*cobra.Command, *appState) {
	app := &appState{v: config.New(), logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:           "calm",
		Short:         "Calm Compass: zones of regulation check-ins and coping tools",
		Long:          "Calm Compass is a local-first CLI/TUI for checking in to a zone, picking a coping tool and tracking progress over time.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(app.v, app.cfgFile)
			if err != nil {
				return err
			}
			app.cfg = cfg
			app.logger, app.closeLog = logging.New(logging.Options{
				File:    cfg.LogFile,
				Verbose: cfg.Verbose,
				Console: cmd.ErrOrStderr(),
			})
			app.logger.Debug("config loaded",
				zap.String("command", cmd.CommandPath()),
				zap.String("backend", cfg.Backend),
				zap.String("db", cfg.DB),
			)
			return nil
		},
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.cfgFile, "config", "", "Config file (default: calmcompass.yaml in the user config dir or .)")
	pf.String("db", "", "Database path (file for sqlite, directory for badger)")
	pf.String("backend", "sqlite", "Storage backend (sqlite|badger|memory)")
	pf.String("log-file", "", "Log file (default: calmcompass.log next to the database)")
	pf.BoolP("verbose", "v", false, "Also log debug output to stderr")
	_ = app.v.BindPFlag("db", pf.Lookup("db"))
	_ = app.v.BindPFlag("backend", pf.Lookup("backend"))
	_ = app.v.BindPFlag("log_file", pf.Lookup("log-file"))
	_ = app.v.BindPFlag("verbose", pf.Lookup("verbose"))

	cmd.AddCommand(
		newCheckinCmd(app),
		newToolCmd(app),
		newToolsCmd(app),
		newFavoriteCmd(app),
		newHistoryCmd(app),
		newStatusCmd(app),
		newWeekCmd(app),
		newExportCmd(app),
		newSettingsCmd(app),
		newSetupCmd(app),
		newResetCmd(app),
		newBoardCmd(app),
	)
	return cmd, app
}

func Execute() {
	cmd, app := newRootCmd()
	err := cmd.Execute()
	if err != nil {
		app.logger.Error("command failed", zap.Error(err))
	}
	app.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
