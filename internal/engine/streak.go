package engine

import (
	"fmt"
	"math"
	"sort"
	"time"
)

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b. Rounding absorbs DST shifts.
func daysBetween(a, b time.Time) int {
	return int(math.Round(dayStart(b).Sub(dayStart(a)).Hours() / 24))
}

// checkinDay resolves the calendar day of c in loc, preferring the stored date.
func checkinDay(c Checkin, loc *time.Location) (time.Time, bool) {
	if c.Date != "" {
		d, err := time.ParseInLocation(DateLayout, c.Date, loc)
		if err == nil {
			return d, true
		}
	}
	if !c.Timestamp.IsZero() {
		return dayStart(c.Timestamp.In(loc)), true
	}
	return time.Time{}, false
}

// CalculateStreak counts consecutive calendar days ending today that have at
// least one check-in. Without a check-in today the streak is 0. Dates after
// today are ignored.
func CalculateStreak(checkins []Checkin, now time.Time) int {
	if len(checkins) == 0 {
		return 0
	}

	loc := now.Location()
	seen := map[int]bool{}
	var offsets []int
	for _, c := range checkins {
		d, ok := checkinDay(c, loc)
		if !ok {
			continue
		}
		off := daysBetween(d, now)
		if off < 0 || seen[off] {
			continue
		}
		seen[off] = true
		offsets = append(offsets, off)
	}
	sort.Ints(offsets)

	streak := 0
	expected := 0
	for _, off := range offsets {
		if off != expected {
			break
		}
		streak++
		expected++
	}
	return streak
}

// StreakMessage is the encouragement shown next to a streak count.
func StreakMessage(streakDays int) string {
	switch {
	case streakDays <= 0:
		return "Ready to start your journey? 🌟"
	case streakDays == 1:
		return "Great start! One day down! 🎯"
	case streakDays < 7:
		return fmt.Sprintf("Amazing! %d days in a row! 🔥", streakDays)
	case streakDays < 30:
		return fmt.Sprintf("Incredible streak! %d days! 🏆", streakDays)
	default:
		return fmt.Sprintf("Phenomenal! %d days of self-care! 🌈", streakDays)
	}
}
