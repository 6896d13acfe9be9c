package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RACSolutions/calm-compass-autism-support/internal/engine"
	"github.com/RACSolutions/calm-compass-autism-support/internal/ui"
)

type mode int

const (
	modeZones mode = iota
	modeTools
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	user *engine.UserData
	top  []engine.ToolCount

	mode     mode
	zone     engine.Zone
	tools    []engine.ToolDef
	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	user *engine.UserData
	top  []engine.ToolCount
	err  error
}

type checkedInMsg struct {
	zone engine.Zone
	user *engine.UserData
	err  error
}

type toolUsedMsg struct {
	tool string
	user *engine.UserData
	err  error
}

type favoriteMsg struct {
	tool     string
	favorite bool
	user     *engine.UserData
	err      error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "How are you feeling right now?",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		u, err := m.svc.LoadUserData(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		stats, err := m.svc.LoadToolUsage(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{user: &u, top: stats.Top(engine.TopToolsLimit)}
	}
}

func (m boardModel) checkinCmd(z engine.Zone) tea.Cmd {
	u := m.user
	return func() tea.Msg {
		updated, err := m.svc.RecordCheckin(m.ctx, z, u)
		return checkedInMsg{zone: z, user: updated, err: err}
	}
}

func (m boardModel) toolCmd(tool string) tea.Cmd {
	u := m.user
	return func() tea.Msg {
		updated, err := m.svc.RecordToolUsage(m.ctx, tool, "", u)
		return toolUsedMsg{tool: tool, user: updated, err: err}
	}
}

func (m boardModel) favoriteCmd(tool string) tea.Cmd {
	u := m.user
	return func() tea.Msg {
		updated, fav, err := m.svc.ToggleFavoriteTool(m.ctx, tool, u)
		return favoriteMsg{tool: tool, favorite: fav, user: updated, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.user = msg.user
		m.top = msg.top
		if m.mode == modeTools {
			m.tools = engine.ToolsForUser(m.zone, m.user)
		}
		return m, nil
	case checkedInMsg:
		if msg.err != nil {
			m.lastLog = "Check-in failed: " + msg.err.Error()
			return m, nil
		}
		m.user = msg.user
		m.mode = modeTools
		m.zone = msg.zone
		m.tools = engine.ToolsForUser(msg.zone, m.user)
		m.selected = 0
		m.lastLog = fmt.Sprintf("Checked in: %s. %s", msg.zone, engine.StreakMessage(m.user.StreakDays))
		return m, nil
	case toolUsedMsg:
		if msg.err != nil {
			m.lastLog = "Could not record tool: " + msg.err.Error()
			return m, nil
		}
		m.user = msg.user
		m.lastLog = fmt.Sprintf("Nice work using %s at %s.", msg.tool, m.svc.Now().Format("15:04"))
		return m, m.loadCmd()
	case favoriteMsg:
		if msg.err != nil {
			m.lastLog = "Could not update favorites: " + msg.err.Error()
			return m, nil
		}
		m.user = msg.user
		m.tools = engine.ToolsForUser(m.zone, m.user)
		if msg.favorite {
			m.lastLog = msg.tool + " added to favorites."
		} else {
			m.lastLog = msg.tool + " removed from favorites."
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r":
		m.loading = true
		m.lastLog = "Refreshing…"
		return m, m.loadCmd()
	case "esc", "backspace":
		if m.mode == modeTools {
			m.mode = modeZones
			m.selected = 0
			m.lastLog = "How are you feeling right now?"
		}
		return m, nil
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < m.itemCount()-1 {
			m.selected++
		}
		return m, nil
	case "f":
		if m.mode != modeTools || m.user == nil || m.selected >= len(m.tools) {
			return m, nil
		}
		return m, m.favoriteCmd(m.tools[m.selected].Title)
	case "enter", " ":
		if m.user == nil {
			return m, nil
		}
		switch m.mode {
		case modeZones:
			zones := engine.Zones()
			if m.selected < 0 || m.selected >= len(zones) {
				return m, nil
			}
			z := zones[m.selected]
			m.lastLog = fmt.Sprintf("Checking in to %s…", z)
			return m, m.checkinCmd(z)
		case modeTools:
			if m.selected < 0 || m.selected >= len(m.tools) {
				return m, nil
			}
			t := m.tools[m.selected]
			m.lastLog = fmt.Sprintf("Recording %s…", t.Title)
			return m, m.toolCmd(t.Title)
		}
	}
	return m, nil
}

func (m boardModel) itemCount() int {
	if m.mode == modeTools {
		return len(m.tools)
	}
	return len(engine.Zones())
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	rows := max(len(linesLeft), len(linesRight))

	var body strings.Builder
	for i := 0; i < rows; i++ {
		l, r := "", ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.user == nil {
		return "Calm Compass | loading…"
	}
	return fmt.Sprintf("%s Calm Compass | Hi, %s | Streak %d | Check-ins %d",
		ui.IconCompass, m.user.DisplayName(), m.user.StreakDays, m.user.TotalCheckins)
}

// renderSidebar stays unstyled so padRight can measure it.
func (m boardModel) renderSidebar() string {
	if m.user == nil {
		return "This week\n\nLoading…"
	}
	lines := []string{"This week"}
	week := engine.GetWeeklyProgress(m.user.Checkins, m.svc.Now())
	most := 1
	for _, d := range week {
		most = max(most, d.Count)
	}
	for _, d := range week {
		lines = append(lines, fmt.Sprintf("%s %s %d", d.ShortDate, progressBar(d.Count, most, 10), d.Count))
	}
	if len(m.top) > 0 {
		lines = append(lines, "", "Top tools")
		for _, tc := range m.top {
			lines = append(lines, fmt.Sprintf("- %s (%d)", tc.Tool, tc.Count))
		}
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- enter: choose")
	lines = append(lines, "- f: favorite tool")
	lines = append(lines, "- esc: back to zones")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading && m.user == nil {
		return "Loading…"
	}
	var out []string
	switch m.mode {
	case modeTools:
		out = append(out, ui.ZoneLabel(string(m.zone))+" tools")
		if len(m.tools) == 0 {
			out = append(out, ui.Muted.Render("(every tool for this zone is blocked)"))
		}
		for i, t := range m.tools {
			star := "  "
			if engine.ContainsTitle(m.user.FavoriteTools, t.Title) {
				star = ui.IconStar
			}
			line := fmt.Sprintf("%s%s %s %s", cursor(i == m.selected), star, t.Icon, t.Title)
			if i == m.selected {
				line = ui.SelectedRow.Render(line)
			}
			out = append(out, line, "     "+ui.Muted.Render(t.Description))
		}
	default:
		out = append(out, "Zones")
		for i, z := range engine.Zones() {
			desc := m.user.ZoneDescriptions[z]
			out = append(out, fmt.Sprintf("%s%s", cursor(i == m.selected), ui.ZoneLabel(string(z))))
			out = append(out, "     "+ui.Muted.Render(desc))
		}
		if last := m.user.LastCheckin(); last != nil {
			out = append(out, "", "Last check-in: "+ui.ZoneLabel(string(last.Zone))+" "+last.Timestamp.Local().Format(time.Kitchen))
		}
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func cursor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
