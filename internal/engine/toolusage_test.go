package engine

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToolUsageStatsKeepsOrder(t *testing.T) {
	stats := NewToolUsageStats()
	stats.Increment("Zebra Walk")
	stats.Increment("Apple Snack")
	stats.Increment("Zebra Walk")
	stats.Increment("Middle")

	raw, err := json.Marshal(stats)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"Zebra Walk":2,"Apple Snack":1,"Middle":1}` {
		t.Fatalf("marshal=%s", raw)
	}

	back := NewToolUsageStats()
	if err := json.Unmarshal([]byte(`{"b":1,"a":3,"c":1}`), back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []ToolCount{{"a", 3}, {"b", 1}, {"c", 1}}
	if diff := cmp.Diff(want, back.Top(10)); diff != "" {
		t.Fatalf("top (-want +got):\n%s", diff)
	}
}

func TestToolUsageStatsUnmarshalEdges(t *testing.T) {
	stats := NewToolUsageStats()
	if err := json.Unmarshal([]byte(`null`), stats); err != nil || stats.Len() != 0 {
		t.Fatalf("null: len=%d err=%v", stats.Len(), err)
	}
	if err := json.Unmarshal([]byte(`{}`), stats); err != nil || stats.Len() != 0 {
		t.Fatalf("empty: len=%d err=%v", stats.Len(), err)
	}
	if err := json.Unmarshal([]byte(`[1]`), stats); err == nil {
		t.Fatalf("expected error for array")
	}
	if err := json.Unmarshal([]byte(`{"a":"x"}`), stats); err == nil {
		t.Fatalf("expected error for string count")
	}
	if err := json.Unmarshal([]byte(`{"a":1,"b":2}`), stats); err != nil || stats.Len() != 2 {
		t.Fatalf("reload: len=%d err=%v", stats.Len(), err)
	}
	if err := json.Unmarshal([]byte(`{"c":5}`), stats); err != nil || stats.Len() != 1 || stats.Count("a") != 0 {
		t.Fatalf("unmarshal should replace old counts: %+v err=%v", stats.Entries(), err)
	}
	var zero ToolUsageStats
	if zero.Increment("x") != 1 || zero.Count("x") != 1 {
		t.Fatalf("zero value not usable")
	}
}

func TestToolUsageStatsIncrementKeepsPosition(t *testing.T) {
	stats := NewToolUsageStats()
	for _, tool := range []string{"a", "b", "c", "a", "c", "a"} {
		stats.Increment(tool)
	}
	want := []ToolCount{{"a", 3}, {"b", 1}, {"c", 2}}
	if diff := cmp.Diff(want, stats.Entries()); diff != "" {
		t.Fatalf("entries (-want +got):\n%s", diff)
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back := NewToolUsageStats()
	if err := json.Unmarshal(raw, back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(want, back.Entries()); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}
}

func TestAchievements(t *testing.T) {
	u := &UserData{SetupCompleted: true, StreakDays: 7}
	for _, z := range Zones() {
		c := Checkin{Zone: z}
		if z == ZoneBlue {
			for _, tool := range []string{"a", "b", "c", "d", "e"} {
				c.ToolsUsed = append(c.ToolsUsed, ToolUsageRecord{Tool: tool})
			}
		}
		u.Checkins = append(u.Checkins, c)
	}

	checker := NewAchievementChecker(u)
	earned := map[string]bool{}
	for _, a := range checker.GetAchievements() {
		earned[a.ID] = a.Earned
	}
	want := map[string]bool{
		"welcome":       true,
		"first_checkin": true,
		"regular":       false,
		"self_aware":    false,
		"three_days":    true,
		"full_week":     true,
		"month_strong":  false,
		"all_zones":     true,
		"explorer":      true,
	}
	if diff := cmp.Diff(want, earned); diff != "" {
		t.Fatalf("earned (-want +got):\n%s", diff)
	}
	if checker.CountEarned() != 6 || checker.CountTotal() != 9 {
		t.Fatalf("earned %d of %d", checker.CountEarned(), checker.CountTotal())
	}

	if NewAchievementChecker(nil).CountEarned() != 0 {
		t.Fatalf("nil user earned badges")
	}
}
