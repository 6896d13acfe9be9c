package engine

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestGetWeeklyProgress(t *testing.T) {
	cs := []Checkin{
		{Zone: ZoneRed, Date: "2025-03-12"},
		{Zone: ZoneBlue, Date: "2025-03-12"},
		{Zone: ZoneRed, Date: "2025-03-12"},
		{Zone: ZoneGreen, Date: "2025-03-06"},
		{Zone: ZoneGreen, Date: "2025-03-05"}, // outside the window
	}
	week := GetWeeklyProgress(cs, testNow)
	if len(week) != 7 {
		t.Fatalf("len=%d, want 7", len(week))
	}
	if week[0].Date != "2025-03-06" || week[6].Date != "2025-03-12" {
		t.Fatalf("window %s..%s", week[0].Date, week[6].Date)
	}
	if week[6].ShortDate != "Wed" {
		t.Fatalf("ShortDate=%q, want Wed", week[6].ShortDate)
	}
	if diff := cmp.Diff([]Zone{ZoneRed, ZoneBlue, ZoneRed}, week[6].Zones); diff != "" {
		t.Fatalf("today zones (-want +got):\n%s", diff)
	}
	if week[0].Count != 1 || week[3].Count != 0 || week[3].Zones == nil {
		t.Fatalf("unexpected days %+v", week)
	}
}

func TestGetAnalytics(t *testing.T) {
	svc, clk := newMemoryService(t)
	ctx := context.Background()
	u := mustLoadUser(t, svc)

	clk.Advance(72 * time.Hour)
	u = mustCheckin(t, svc, ZoneRed, u)
	var err error
	for _, tool := range []string{"Safe Space", "Get Support", "Get Support", "Cooling Down"} {
		if u, err = svc.RecordToolUsage(ctx, tool, "", u); err != nil {
			t.Fatalf("RecordToolUsage(%s): %v", tool, err)
		}
	}
	u = mustCheckin(t, svc, ZoneGreen, u)
	u = mustCheckin(t, svc, ZoneRed, u)

	a, err := svc.GetAnalytics(ctx, u)
	if err != nil {
		t.Fatalf("GetAnalytics: %v", err)
	}
	if a.TotalCheckins != 3 || a.StreakDays != 1 {
		t.Fatalf("total=%d streak=%d", a.TotalCheckins, a.StreakDays)
	}
	if diff := cmp.Diff(map[Zone]int{ZoneRed: 2, ZoneGreen: 1}, a.ZoneStats); diff != "" {
		t.Fatalf("zone stats (-want +got):\n%s", diff)
	}
	wantTop := []ToolCount{{"Get Support", 2}, {"Safe Space", 1}, {"Cooling Down", 1}}
	if diff := cmp.Diff(wantTop, a.TopTools); diff != "" {
		t.Fatalf("top tools (-want +got):\n%s", diff)
	}
	if a.AverageDaily != 1.0 {
		t.Fatalf("AverageDaily=%v, want 1 (3 check-ins over 3 days)", a.AverageDaily)
	}
}

func TestGetAnalyticsEmpty(t *testing.T) {
	svc, _ := newMemoryService(t)
	a, err := svc.GetAnalytics(context.Background(), mustLoadUser(t, svc))
	if err != nil {
		t.Fatalf("GetAnalytics: %v", err)
	}
	if a.TotalCheckins != 0 || a.AverageDaily != 0 || len(a.TopTools) != 0 || len(a.WeeklyData) != 7 {
		t.Fatalf("unexpected empty analytics %+v", a)
	}
}

func TestTopToolsLimit(t *testing.T) {
	stats := NewToolUsageStats()
	for i, tool := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		for j := 0; j <= i; j++ {
			stats.Increment(tool)
		}
	}
	a := BuildAnalytics(&UserData{CreatedAt: testNow}, stats, testNow)
	if len(a.TopTools) != TopToolsLimit || a.TopTools[0].Tool != "g" || a.TopTools[4].Tool != "c" {
		t.Fatalf("top tools %+v", a.TopTools)
	}
}

func TestExportDataRedactsParentalEmail(t *testing.T) {
	svc, _ := newMemoryService(t)
	ctx := context.Background()
	u := mustCheckin(t, svc, ZoneYellow, mustLoadUser(t, svc))
	u, err := svc.RecordToolUsage(ctx, "Grounding", "", u)
	if err != nil {
		t.Fatalf("RecordToolUsage: %v", err)
	}

	st := DefaultSettings()
	st.ParentalEmail = "parent@example.com"
	payload, err := svc.ExportData(ctx, u, &st)
	if err != nil {
		t.Fatalf("ExportData: %v", err)
	}
	if payload.Version != ExportVersion || !payload.ExportDate.Equal(testNow) {
		t.Fatalf("header %s %v", payload.Version, payload.ExportDate)
	}
	if payload.Settings.ParentalEmail != "[REDACTED]" || payload.UserData.ParentalEmail != "[REDACTED]" {
		t.Fatalf("email not redacted: %+v", payload)
	}
	if st.ParentalEmail != "parent@example.com" {
		t.Fatalf("caller settings mutated")
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	js := string(raw)
	if strings.Contains(js, "parent@example.com") {
		t.Fatalf("export leaks email: %s", js)
	}
	for _, want := range []string{`"version":"1.0.0"`, `"toolUsage":{"Grounding":1}`, `"tools_used":[{"tool":"Grounding"`} {
		if !strings.Contains(js, want) {
			t.Fatalf("export missing %s: %s", want, js)
		}
	}
}

func TestExportDataWithoutEmail(t *testing.T) {
	svc, _ := newMemoryService(t)
	st := DefaultSettings()
	payload, err := svc.ExportData(context.Background(), mustLoadUser(t, svc), &st)
	if err != nil {
		t.Fatalf("ExportData: %v", err)
	}
	if payload.Settings.ParentalEmail != "" || payload.UserData.ParentalEmail != "" {
		t.Fatalf("empty email should stay empty")
	}
	if _, err := svc.ExportData(context.Background(), nil, &st); !IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
