package engine

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const redacted = "[REDACTED]"

// ExportedUserData is the user record as exported, with the parental email
// slot the export format has always carried.
type ExportedUserData struct {
	UserData
	ParentalEmail string `json:"parentalEmail"`
}

type ExportPayload struct {
	ExportDate time.Time        `json:"exportDate"`
	UserData   ExportedUserData `json:"userData"`
	Settings   Settings         `json:"settings"`
	ToolUsage  *ToolUsageStats  `json:"toolUsage"`
	Analytics  Analytics        `json:"analytics"`
	Version    string           `json:"version"`
}

func redact(v string) string {
	if v == "" {
		return ""
	}
	return redacted
}

// ExportData assembles a snapshot for sharing with caregivers.
// The parental email never leaves in clear text.
func (s *Service) ExportData(ctx context.Context, u *UserData, st *Settings) (*ExportPayload, error) {
	if err := requireUserData(u); err != nil {
		return nil, err
	}
	if st == nil {
		return nil, InvalidArgumentError{Field: "settings", Reason: "is required"}
	}

	stats, err := s.LoadToolUsage(ctx)
	if err != nil {
		s.logger.Error("export failed", zap.Error(err))
		return nil, err
	}

	now := s.now()
	settings := *st
	settings.ParentalEmail = redact(st.ParentalEmail)

	payload := &ExportPayload{
		ExportDate: now,
		UserData: ExportedUserData{
			UserData:      *u.Clone(),
			ParentalEmail: redact(st.ParentalEmail),
		},
		Settings:  settings,
		ToolUsage: stats,
		Analytics: BuildAnalytics(u, stats, now),
		Version:   ExportVersion,
	}
	s.logger.Info("export prepared", zap.Int("checkins", len(u.Checkins)), zap.Int("tools", stats.Len()))
	return payload, nil
}
