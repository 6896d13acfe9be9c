package engine

// Achievement is a badge the user can earn.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Earned      bool   `json:"earned"`
}

// AchievementChecker works out which badges u has earned.
type AchievementChecker struct {
	user *UserData
}

func NewAchievementChecker(u *UserData) *AchievementChecker {
	if u == nil {
		u = &UserData{}
	}
	return &AchievementChecker{user: u}
}

// GetAchievements returns all achievements with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	return []Achievement{
		c.setupAchievement("welcome", "Welcome", "Finish setting up", "👋"),

		// Check-in milestones
		c.checkinAchievement("first_checkin", "First Check-in", "Check in once", "🌱", 1),
		c.checkinAchievement("regular", "Regular", "Check in 10 times", "🌿", 10),
		c.checkinAchievement("self_aware", "Self Aware", "Check in 50 times", "🌳", 50),

		// Streaks
		c.streakAchievement("three_days", "Three in a Row", "3 day streak", "🔥", 3),
		c.streakAchievement("full_week", "Full Week", "7 day streak", "⭐", 7),
		c.streakAchievement("month_strong", "Month Strong", "30 day streak", "🏆", 30),

		c.zonesAchievement("all_zones", "Every Color", "Check in from all four zones", "🌈"),
		c.toolsAchievement("explorer", "Tool Explorer", "Try 5 different tools", "🧰", 5),
	}
}

// CountEarned returns how many achievements have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.GetAchievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

func (c *AchievementChecker) CountTotal() int {
	return len(c.GetAchievements())
}

func (c *AchievementChecker) setupAchievement(id, name, desc, icon string) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: c.user.SetupCompleted}
}

func (c *AchievementChecker) checkinAchievement(id, name, desc, icon string, count int) Achievement {
	earned := len(c.user.Checkins) >= count
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) streakAchievement(id, name, desc, icon string, days int) Achievement {
	earned := c.user.StreakDays >= days
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) zonesAchievement(id, name, desc, icon string) Achievement {
	seen := map[Zone]bool{}
	for _, ch := range c.user.Checkins {
		if ch.Zone.IsValid() {
			seen[ch.Zone] = true
		}
	}
	earned := len(seen) == len(Zones())
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) toolsAchievement(id, name, desc, icon string, distinct int) Achievement {
	seen := map[string]bool{}
	for _, ch := range c.user.Checkins {
		for _, t := range ch.ToolsUsed {
			seen[t.Tool] = true
		}
	}
	earned := len(seen) >= distinct
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}
