package engine

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/RACSolutions/calm-compass-autism-support/internal/storage"
)

// LoadUserData returns the stored user record merged over the defaults.
// Fields missing from older records keep their default values. When nothing
// is stored yet the defaults come back with a nil error; when the store or
// the record is broken the defaults come back with the error.
func (s *Service) LoadUserData(ctx context.Context) (UserData, error) {
	u := DefaultUserData(s.now())
	found, err := storage.LoadJSON(ctx, s.store, storage.KeyUserData, &u)
	if err != nil {
		s.logger.Error("load user data", zap.Error(err))
		return DefaultUserData(s.now()), wrapLoadErr(storage.KeyUserData, err)
	}
	if !found {
		return u, nil
	}

	defaults := DefaultZoneDescriptions()
	if u.ZoneDescriptions == nil {
		u.ZoneDescriptions = map[Zone]string{}
	}
	for z, d := range defaults {
		if u.ZoneDescriptions[z] == "" {
			u.ZoneDescriptions[z] = d
		}
	}
	if u.CustomZoneDescriptions == nil {
		u.CustomZoneDescriptions = map[Zone]string{}
	}
	if u.Checkins == nil {
		u.Checkins = []Checkin{}
	}
	if u.FavoriteTools == nil {
		u.FavoriteTools = []string{}
	}
	if u.BlockedTools == nil {
		u.BlockedTools = []string{}
	}
	return u, nil
}

// SaveUserData stamps lastUsed on u and writes the whole record.
func (s *Service) SaveUserData(ctx context.Context, u *UserData) error {
	if err := requireUserData(u); err != nil {
		return err
	}
	toSave := *u
	toSave.LastUsed = s.now()
	if err := storage.SaveJSON(ctx, s.store, storage.KeyUserData, &toSave); err != nil {
		s.logger.Error("save user data", zap.Error(err))
		return &StorageError{Op: "save", Key: storage.KeyUserData, Err: err}
	}
	u.LastUsed = toSave.LastUsed
	return nil
}

// LoadSettings mirrors LoadUserData for the settings record.
func (s *Service) LoadSettings(ctx context.Context) (Settings, error) {
	st := DefaultSettings()
	if _, err := storage.LoadJSON(ctx, s.store, storage.KeySettings, &st); err != nil {
		s.logger.Error("load settings", zap.Error(err))
		return DefaultSettings(), wrapLoadErr(storage.KeySettings, err)
	}
	return st, nil
}

// SaveSettings validates and writes the settings record.
func (s *Service) SaveSettings(ctx context.Context, st *Settings) error {
	if st == nil {
		return InvalidArgumentError{Field: "settings", Reason: "is required"}
	}
	if err := s.validateSettings(st); err != nil {
		return err
	}
	if err := storage.SaveJSON(ctx, s.store, storage.KeySettings, st); err != nil {
		s.logger.Error("save settings", zap.Error(err))
		return &StorageError{Op: "save", Key: storage.KeySettings, Err: err}
	}
	return nil
}

// LoadToolUsage returns the global per-tool counters.
func (s *Service) LoadToolUsage(ctx context.Context) (*ToolUsageStats, error) {
	stats := NewToolUsageStats()
	if _, err := storage.LoadJSON(ctx, s.store, storage.KeyToolUsage, stats); err != nil {
		s.logger.Error("load tool usage", zap.Error(err))
		return NewToolUsageStats(), wrapLoadErr(storage.KeyToolUsage, err)
	}
	return stats, nil
}

func (s *Service) saveToolUsage(ctx context.Context, stats *ToolUsageStats) error {
	if err := storage.SaveJSON(ctx, s.store, storage.KeyToolUsage, stats); err != nil {
		return &StorageError{Op: "save", Key: storage.KeyToolUsage, Err: err}
	}
	return nil
}

// ClearAllData removes every known key in one batch.
func (s *Service) ClearAllData(ctx context.Context) error {
	if err := s.store.Remove(ctx, storage.AllKeys()...); err != nil {
		s.logger.Error("clear all data", zap.Error(err))
		return &StorageError{Op: "clear", Key: "*", Err: err}
	}
	s.logger.Info("cleared all data")
	return nil
}

func wrapLoadErr(key string, err error) error {
	var decErr *storage.DecodeError
	if errors.As(err, &decErr) {
		return decErr
	}
	return &StorageError{Op: "load", Key: key, Err: err}
}
