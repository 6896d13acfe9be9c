package engine

import "time"

// DateLayout is the calendar-date format stored on each check-in.
const DateLayout = "2006-01-02"

type UserData struct {
	UserName                string          `json:"userName"`
	PreferredName           string          `json:"preferredName"`
	Age                     *int            `json:"age"`
	SetupCompleted          bool            `json:"setupCompleted"`
	AccessibilityMode       bool            `json:"accessibilityMode"`
	ParentalControlsEnabled bool            `json:"parentalControlsEnabled"`
	ZoneDescriptions        map[Zone]string `json:"zoneDescriptions"`
	CustomZoneDescriptions  map[Zone]string `json:"customZoneDescriptions"`
	FavoriteTools           []string        `json:"favoriteTools"`
	BlockedTools            []string        `json:"blockedTools"`
	Checkins                []Checkin       `json:"checkins"`
	StreakDays              int             `json:"streakDays"`
	TotalCheckins           int             `json:"totalCheckins"`
	CreatedAt               time.Time       `json:"createdAt"`
	LastUsed                time.Time       `json:"lastUsed"`
}

type Checkin struct {
	ID         string            `json:"id"`
	Zone       Zone              `json:"zone"`
	Timestamp  time.Time         `json:"timestamp"`
	Date       string            `json:"date"`
	ToolsUsed  []ToolUsageRecord `json:"tools_used"`
	MoodBefore *int              `json:"mood_before"`
	MoodAfter  *int              `json:"mood_after"`
	Notes      string            `json:"notes"`
}

type ToolUsageRecord struct {
	Tool      string    `json:"tool"`
	Timestamp time.Time `json:"timestamp"`
}

type Settings struct {
	Theme                  Theme    `json:"theme" validate:"oneof=default high_contrast dark"`
	SoundEnabled           bool     `json:"soundEnabled"`
	HapticEnabled          bool     `json:"hapticEnabled"`
	ReminderNotifications  bool     `json:"reminderNotifications"`
	ReminderTime           string   `json:"reminderTime" validate:"datetime=15:04"`
	ParentalReportsEnabled bool     `json:"parentalReportsEnabled"`
	ParentalEmail          string   `json:"parentalEmail" validate:"omitempty,email"`
	Language               string   `json:"language" validate:"required,min=2,max=8"`
	FontSize               FontSize `json:"fontSize" validate:"oneof=small normal large"`
	ReducedMotion          bool     `json:"reducedMotion"`
	AutoSaveProgress       bool     `json:"autoSaveProgress"`
	DataSharingEnabled     bool     `json:"dataSharingEnabled"`
}

// DefaultUserData is the first-run record. now stamps createdAt and lastUsed.
func DefaultUserData(now time.Time) UserData {
	return UserData{
		ZoneDescriptions:       DefaultZoneDescriptions(),
		CustomZoneDescriptions: map[Zone]string{},
		FavoriteTools:          []string{},
		BlockedTools:           []string{},
		Checkins:               []Checkin{},
		CreatedAt:              now,
		LastUsed:               now,
	}
}

func DefaultSettings() Settings {
	return Settings{
		Theme:            ThemeDefault,
		SoundEnabled:     true,
		HapticEnabled:    true,
		ReminderTime:     "18:00",
		Language:         "en",
		FontSize:         FontSizeNormal,
		AutoSaveProgress: true,
	}
}

// DisplayName prefers the preferred name, then the user name.
func (u *UserData) DisplayName() string {
	if u.PreferredName != "" {
		return u.PreferredName
	}
	if u.UserName != "" {
		return u.UserName
	}
	return "Friend"
}

// LastCheckin returns the most recent check-in, or nil.
func (u *UserData) LastCheckin() *Checkin {
	if len(u.Checkins) == 0 {
		return nil
	}
	return &u.Checkins[len(u.Checkins)-1]
}

// Clone returns a deep copy so callers can mutate it without touching u.
func (u *UserData) Clone() *UserData {
	out := *u
	if u.Age != nil {
		v := *u.Age
		out.Age = &v
	}
	out.ZoneDescriptions = cloneZoneMap(u.ZoneDescriptions)
	out.CustomZoneDescriptions = cloneZoneMap(u.CustomZoneDescriptions)
	out.FavoriteTools = append([]string{}, u.FavoriteTools...)
	out.BlockedTools = append([]string{}, u.BlockedTools...)
	out.Checkins = make([]Checkin, len(u.Checkins))
	for i, c := range u.Checkins {
		c.ToolsUsed = append([]ToolUsageRecord{}, c.ToolsUsed...)
		out.Checkins[i] = c
	}
	return &out
}

func cloneZoneMap(in map[Zone]string) map[Zone]string {
	out := make(map[Zone]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
