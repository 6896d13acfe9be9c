package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RACSolutions/calm-compass-autism-support/internal/engine"
	"github.com/RACSolutions/calm-compass-autism-support/internal/storage"
)

func newTestModel(t *testing.T) boardModel {
	t.Helper()
	now := time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)
	svc := engine.NewService(storage.NewMemoryStore(), engine.WithClock(func() time.Time { return now }))
	m := newBoardModel(context.Background(), svc)
	next, _ := m.Update(m.loadCmd()())
	return next.(boardModel)
}

func press(t *testing.T, m boardModel, key tea.KeyMsg) (boardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key)
	return next.(boardModel), cmd
}

func TestBoardCheckinAndToolFlow(t *testing.T) {
	m := newTestModel(t)
	if m.user == nil || m.loading {
		t.Fatalf("model not loaded: %+v", m)
	}

	// Move to red (fourth zone) and check in.
	for i := 0; i < 3; i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected check-in command")
	}
	next, _ := m.Update(cmd())
	m = next.(boardModel)
	if m.mode != modeTools || m.zone != engine.ZoneRed {
		t.Fatalf("mode=%v zone=%s, want tools/red", m.mode, m.zone)
	}
	if m.user.TotalCheckins != 1 {
		t.Fatalf("TotalCheckins=%d", m.user.TotalCheckins)
	}

	// Second red tool is Emergency Breathing.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	next, _ = m.Update(cmd())
	m = next.(boardModel)
	used := m.user.LastCheckin().ToolsUsed
	if len(used) != 1 || used[0].Tool != "Emergency Breathing" {
		t.Fatalf("tools used %+v", used)
	}
	if !strings.Contains(m.lastLog, "Emergency Breathing") {
		t.Fatalf("lastLog=%q", m.lastLog)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeZones || m.selected != 0 {
		t.Fatalf("esc did not return to zones")
	}
}

func TestBoardFavoriteToggle(t *testing.T) {
	m := newTestModel(t)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	next, _ := m.Update(cmd())
	m = next.(boardModel)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	want := m.tools[1].Title
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	next, _ = m.Update(cmd())
	m = next.(boardModel)
	if m.tools[0].Title != want {
		t.Fatalf("favorite %q not moved to top: %q", want, m.tools[0].Title)
	}
}

func TestBoardViewRenders(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	for _, want := range []string{"Calm Compass", "This week", "Zones", "Friend"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestPadRightAndProgressBar(t *testing.T) {
	if got := padRight("abc", 5); got != "abc  " {
		t.Fatalf("padRight=%q", got)
	}
	if got := padRight("abcdef", 3); got != "abc" {
		t.Fatalf("padRight truncate=%q", got)
	}
	if got := progressBar(2, 4, 4); got != "[##--]" {
		t.Fatalf("progressBar=%q", got)
	}
	if got := progressBar(9, 0, 1); got != "[###]" {
		t.Fatalf("progressBar clamp=%q", got)
	}
}
