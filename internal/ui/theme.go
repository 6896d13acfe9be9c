package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Calm Compass theme (CLI + TUI).
// Kept small: reusable styles, zone colors and a few emojis.

const (
	IconCompass = "🧭"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconFire    = "🔥"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconTool    = "🧰"
	IconStar    = "⭐"
	IconChart   = "📊"
	IconBox     = "📦"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold

	cZoneBlue   = lipgloss.Color("#7BB3F0")
	cZoneGreen  = lipgloss.Color("#7BC97B")
	cZoneYellow = lipgloss.Color("#F7C52D")
	cZoneRed    = lipgloss.Color("#F28B82")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func zoneColor(zone string) (lipgloss.Color, bool) {
	switch strings.ToLower(strings.TrimSpace(zone)) {
	case "blue":
		return cZoneBlue, true
	case "green":
		return cZoneGreen, true
	case "yellow":
		return cZoneYellow, true
	case "red":
		return cZoneRed, true
	default:
		return "", false
	}
}

// ZoneStyle is a bold style in the zone's color. Unknown zones are muted.
func ZoneStyle(zone string) lipgloss.Style {
	c, ok := zoneColor(zone)
	if !ok {
		return Muted
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}

func ZoneEmoji(zone string) string {
	switch strings.ToLower(strings.TrimSpace(zone)) {
	case "blue":
		return "🔵"
	case "green":
		return "🟢"
	case "yellow":
		return "🟡"
	case "red":
		return "🔴"
	default:
		return "⚪"
	}
}

// ZoneLabel renders e.g. "🔴 Red Zone" in the zone's color.
func ZoneLabel(zone string) string {
	z := strings.ToLower(strings.TrimSpace(zone))
	name := z
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return ZoneEmoji(z) + " " + ZoneStyle(z).Render(name+" Zone")
}

// ZoneBlock is one colored square, used in weekly charts.
func ZoneBlock(zone string) string {
	return ZoneStyle(zone).Render("■")
}
