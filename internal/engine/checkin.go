package engine

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// RecordCheckin appends a check-in for zone, refreshes totalCheckins and
// streakDays, persists, and returns the updated copy. On any failure the
// original u is returned untouched together with the error.
func (s *Service) RecordCheckin(ctx context.Context, zone Zone, u *UserData) (*UserData, error) {
	if !zone.IsValid() {
		return u, InvalidArgumentError{Field: "zone", Reason: "must be one of blue, green, yellow, red"}
	}
	if err := requireUserData(u); err != nil {
		return u, err
	}

	now := s.now()
	updated := u.Clone()
	updated.Checkins = append(updated.Checkins, Checkin{
		ID:        nextCheckinID(now, u.LastCheckin()),
		Zone:      zone,
		Timestamp: now,
		Date:      now.Format(DateLayout),
		ToolsUsed: []ToolUsageRecord{},
	})
	updated.TotalCheckins = len(updated.Checkins)
	updated.StreakDays = CalculateStreak(updated.Checkins, now)

	if err := s.SaveUserData(ctx, updated); err != nil {
		s.logger.Warn("check-in not recorded", zap.String("zone", string(zone)), zap.Error(err))
		return u, err
	}

	s.logger.Info("check-in recorded",
		zap.String("zone", string(zone)),
		zap.Int("total", updated.TotalCheckins),
		zap.Int("streak", updated.StreakDays),
	)
	return updated, nil
}

// nextCheckinID is the unix millisecond time, bumped past the last id when two
// check-ins land in the same millisecond.
func nextCheckinID(now time.Time, last *Checkin) string {
	id := now.UnixMilli()
	if last != nil {
		if prev, err := strconv.ParseInt(last.ID, 10, 64); err == nil && prev >= id {
			id = prev + 1
		}
	}
	return strconv.FormatInt(id, 10)
}

// RecordToolUsage attaches a use of tool to a check-in and bumps the global
// counter for tool. checkinID selects the check-in; empty means the most
// recent one. Without any check-in, u comes back unchanged with ErrNoCheckins
// and no counter moves.
//
// The counter lives under its own key and is written first. If it cannot be
// read or written the failure is logged and the check-in is still updated.
func (s *Service) RecordToolUsage(ctx context.Context, tool string, checkinID string, u *UserData) (*UserData, error) {
	title, err := normalizeTitle(tool)
	if err != nil {
		return u, err
	}
	if err := requireUserData(u); err != nil {
		return u, err
	}
	if len(u.Checkins) == 0 {
		return u, ErrNoCheckins
	}

	idx := len(u.Checkins) - 1
	if checkinID != "" {
		idx = -1
		for i := range u.Checkins {
			if u.Checkins[i].ID == checkinID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return u, ErrCheckinNotFound
		}
	}

	now := s.now()
	updated := u.Clone()
	target := &updated.Checkins[idx]
	target.ToolsUsed = append(target.ToolsUsed, ToolUsageRecord{Tool: title, Timestamp: now})

	s.bumpToolUsage(ctx, title)

	if err := s.SaveUserData(ctx, updated); err != nil {
		s.logger.Warn("tool usage not recorded", zap.String("tool", title), zap.Error(err))
		return u, err
	}

	s.logger.Info("tool usage recorded", zap.String("tool", title), zap.String("checkin", target.ID))
	return updated, nil
}

func (s *Service) bumpToolUsage(ctx context.Context, tool string) {
	stats, err := s.LoadToolUsage(ctx)
	if err != nil {
		// Writing over an unreadable record would lose every other count.
		s.logger.Warn("skip tool usage counter", zap.String("tool", tool), zap.Error(err))
		return
	}
	stats.Increment(tool)
	if err := s.saveToolUsage(ctx, stats); err != nil {
		s.logger.Warn("tool usage counter not saved", zap.String("tool", tool), zap.Error(err))
	}
}
