package root

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/RACSolutions/calm-compass-autism-support/internal/engine"
	"github.com/RACSolutions/calm-compass-autism-support/internal/ui"
)

const suggestedTools = 3

func newCheckinCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkin <zone>",
		Short: "Check in to a zone (blue|green|yellow|red)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("zone is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, err := engine.ParseZone(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			svc, u, cleanup, err := loadUser(ctx, app)
			if err != nil {
				return err
			}
			defer cleanup()

			u, err = svc.RecordCheckin(ctx, zone, u)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			c := u.LastCheckin()
			fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Checked in:")+" "+ui.ZoneLabel(string(zone)))
			fmt.Fprintln(out, ui.Muted.Render(u.ZoneDescriptions[zone]))
			fmt.Fprintln(out, ui.LabelValue("Check-in", c.ID))
			fmt.Fprintln(out, ui.LabelValue("Streak", engine.StreakMessage(u.StreakDays)))
			fmt.Fprintln(out, "")

			tools := engine.ToolsForUser(zone, u)
			if len(tools) > suggestedTools {
				tools = tools[:suggestedTools]
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconTool+" Try one of these:"))
			for _, t := range tools {
				fmt.Fprintf(out, "- %s %s %s\n", t.Icon, t.Title, ui.Muted.Render(t.Description))
			}
			fmt.Fprintln(out, ui.Muted.Render(`Record it with: calm tool "<title>"`))
			return nil
		},
	}
	return cmd
}

func newToolCmd(app *appState) *cobra.Command {
	var checkinID string

	cmd := &cobra.Command{
		Use:   "tool <title>",
		Short: "Record using a coping tool on the latest (or given) check-in",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("tool title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			if def := engine.FindTool(title); def != nil {
				title = def.Title
			}

			ctx := cmd.Context()
			svc, u, cleanup, err := loadUser(ctx, app)
			if err != nil {
				return err
			}
			defer cleanup()

			u, err = svc.RecordToolUsage(ctx, title, checkinID, u)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Good.Render(ui.IconSparkle+" Nice work using "+title))
			if engine.FindTool(title) == nil {
				fmt.Fprintln(out, ui.Muted.Render("(not in the built-in catalog; recorded as a custom tool)"))
			}
			stats, err := svc.LoadToolUsage(ctx)
			if err == nil {
				fmt.Fprintln(out, ui.LabelValue("Times used", stats.Count(title)))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&checkinID, "checkin", "", "Check-in id to attach to (default: most recent)")
	return cmd
}

func newToolsCmd(app *appState) *cobra.Command {
	var category string
	var random, autism, listCategories bool

	cmd := &cobra.Command{
		Use:   "tools [zone]",
		Short: "List coping tools, optionally for one zone",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if listCategories {
				for _, c := range engine.Categories() {
					fmt.Fprintf(out, "%s %-14s %s\n", c.Icon, c.Name, ui.Muted.Render(c.Key+": "+c.Description))
				}
				return nil
			}
			var cat *engine.CategoryDef
			if category != "" {
				if cat = engine.FindCategory(category); cat == nil {
					return fmt.Errorf("unknown category %q (see --categories)", category)
				}
			}

			zones := engine.Zones()
			if len(args) == 1 {
				z, err := engine.ParseZone(args[0])
				if err != nil {
					return err
				}
				zones = []engine.Zone{z}
			}

			ctx := cmd.Context()
			_, u, cleanup, err := loadUser(ctx, app)
			if err != nil {
				return err
			}
			defer cleanup()

			if random {
				if len(args) == 0 {
					return errors.New("--random needs a zone")
				}
				r := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
				if t := engine.RandomToolForZone(zones[0], r); t != nil {
					fmt.Fprintf(out, "%s %s %s\n", t.Icon, t.Title, ui.Muted.Render(t.Description))
				}
				return nil
			}
			if cat != nil {
				fmt.Fprintf(out, "%s %s\n%s\n\n", cat.Icon, ui.Title.Render(cat.Name), ui.Muted.Render(cat.Description))
			}
			for _, z := range zones {
				fmt.Fprintln(out, ui.ZoneLabel(string(z)))
				for _, t := range engine.ToolsForUser(z, u) {
					if cat != nil && t.Category != cat.Key {
						continue
					}
					if autism && !t.AutismSpecific {
						continue
					}
					star := "  "
					if engine.ContainsTitle(u.FavoriteTools, t.Title) {
						star = ui.IconStar
					}
					fmt.Fprintf(out, "%s %s %s %s\n", star, t.Icon, t.Title, ui.Muted.Render("("+t.Category+")"))
				}
				fmt.Fprintln(out, "")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "Only tools in this category")
	cmd.Flags().BoolVar(&random, "random", false, "Suggest one tool at random for the zone")
	cmd.Flags().BoolVar(&autism, "autism", false, "Only tools designed for autistic sensory and routine needs")
	cmd.Flags().BoolVar(&listCategories, "categories", false, "List the tool categories and exit")
	return cmd
}

func newFavoriteCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorite <title>",
		Short: "Add a tool to favorites, or remove it",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("tool title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			if def := engine.FindTool(title); def != nil {
				title = def.Title
			}

			ctx := cmd.Context()
			svc, u, cleanup, err := loadUser(ctx, app)
			if err != nil {
				return err
			}
			defer cleanup()

			_, fav, err := svc.ToggleFavoriteTool(ctx, title, u)
			if err != nil {
				return err
			}
			if fav {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconStar+" "+title+" added to favorites"))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(title+" removed from favorites"))
			}
			return nil
		},
	}
	return cmd
}
