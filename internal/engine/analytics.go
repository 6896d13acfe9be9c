package engine

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// TopToolsLimit is how many tools the analytics ranking keeps.
const TopToolsLimit = 5

type DayProgress struct {
	Date      string `json:"date"`
	ShortDate string `json:"shortDate"`
	Count     int    `json:"count"`
	Zones     []Zone `json:"zones"`
}

type Analytics struct {
	TotalCheckins int           `json:"totalCheckins"`
	StreakDays    int           `json:"streakDays"`
	ZoneStats     map[Zone]int  `json:"zoneStats"`
	WeeklyData    []DayProgress `json:"weeklyData"`
	TopTools      []ToolCount   `json:"topTools"`
	AverageDaily  float64       `json:"averageDaily"`
}

func emptyAnalytics() Analytics {
	return Analytics{
		ZoneStats:  map[Zone]int{},
		WeeklyData: []DayProgress{},
		TopTools:   []ToolCount{},
	}
}

// GetWeeklyProgress returns seven days, six days ago through today, oldest
// first. Zones are listed once per check-in, duplicates included.
func GetWeeklyProgress(checkins []Checkin, now time.Time) []DayProgress {
	today := dayStart(now)
	byDate := map[string][]Zone{}
	for _, c := range checkins {
		d, ok := checkinDay(c, now.Location())
		if !ok {
			continue
		}
		key := d.Format(DateLayout)
		byDate[key] = append(byDate[key], c.Zone)
	}

	out := make([]DayProgress, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		key := day.Format(DateLayout)
		zones := append([]Zone{}, byDate[key]...)
		out = append(out, DayProgress{
			Date:      key,
			ShortDate: day.Format("Mon"),
			Count:     len(zones),
			Zones:     zones,
		})
	}
	return out
}

// DaysSinceStart is the number of whole days between createdAt and now.
func DaysSinceStart(createdAt, now time.Time) int {
	if createdAt.IsZero() || now.Before(createdAt) {
		return 0
	}
	return int(now.Sub(createdAt) / (24 * time.Hour))
}

// ZoneStats counts check-ins per zone.
func ZoneStats(checkins []Checkin) map[Zone]int {
	out := map[Zone]int{}
	for _, c := range checkins {
		out[c.Zone]++
	}
	return out
}

// GetAnalytics aggregates u with the global tool counters. If the counters
// cannot be loaded it returns zeroed analytics and the error.
func (s *Service) GetAnalytics(ctx context.Context, u *UserData) (Analytics, error) {
	if err := requireUserData(u); err != nil {
		return emptyAnalytics(), err
	}
	stats, err := s.LoadToolUsage(ctx)
	if err != nil {
		s.logger.Warn("analytics unavailable", zap.Error(err))
		return emptyAnalytics(), err
	}
	return BuildAnalytics(u, stats, s.now()), nil
}

// BuildAnalytics is the pure part of GetAnalytics.
func BuildAnalytics(u *UserData, stats *ToolUsageStats, now time.Time) Analytics {
	days := DaysSinceStart(u.CreatedAt, now)
	if days < 1 {
		days = 1
	}
	if stats == nil {
		stats = NewToolUsageStats()
	}
	return Analytics{
		TotalCheckins: len(u.Checkins),
		StreakDays:    u.StreakDays,
		ZoneStats:     ZoneStats(u.Checkins),
		WeeklyData:    GetWeeklyProgress(u.Checkins, now),
		TopTools:      stats.Top(TopToolsLimit),
		AverageDaily:  float64(len(u.Checkins)) / float64(days),
	}
}
