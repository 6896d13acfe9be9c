package engine

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

type SetupInput struct {
	UserName      string
	PreferredName string
	Age           *int
	// Descriptions overrides the default text per zone. Blank entries keep
	// the default.
	Descriptions map[Zone]string
}

// CompleteSetup applies the first-run answers to u, marks setup as done and
// persists. On failure the original u comes back with the error.
func (s *Service) CompleteSetup(ctx context.Context, in SetupInput, u *UserData) (*UserData, error) {
	if err := requireUserData(u); err != nil {
		return u, err
	}
	if in.Age != nil && (*in.Age < 1 || *in.Age > 120) {
		return u, InvalidArgumentError{Field: "age", Reason: "must be between 1 and 120"}
	}
	for z := range in.Descriptions {
		if !z.IsValid() {
			return u, InvalidArgumentError{Field: "zone", Reason: "unknown zone " + string(z)}
		}
	}

	name := strings.TrimSpace(in.UserName)
	if name == "" {
		name = "Friend"
	}
	preferred := strings.TrimSpace(in.PreferredName)
	if preferred == "" {
		preferred = name
	}

	updated := u.Clone()
	updated.UserName = name
	updated.PreferredName = preferred
	if in.Age != nil {
		age := *in.Age
		updated.Age = &age
	}

	defaults := DefaultZoneDescriptions()
	updated.ZoneDescriptions = make(map[Zone]string, len(defaults))
	updated.CustomZoneDescriptions = map[Zone]string{}
	for _, z := range Zones() {
		if d := strings.TrimSpace(in.Descriptions[z]); d != "" {
			updated.ZoneDescriptions[z] = d
			updated.CustomZoneDescriptions[z] = d
		} else {
			updated.ZoneDescriptions[z] = defaults[z]
		}
	}
	updated.SetupCompleted = true

	if err := s.SaveUserData(ctx, updated); err != nil {
		return u, err
	}
	s.logger.Info("setup completed", zap.Int("custom_zones", len(updated.CustomZoneDescriptions)))
	return updated, nil
}
