package progress

// ProThreshold is the accuracy at or above which auto-adjust promotes a
// game to Pro.
const ProThreshold = 0.75

// LevelFor maps a completion accuracy to the tier auto-adjust assigns.
// Only the latest sample counts; there is no averaging across attempts.
func LevelFor(percentage float64) ExperienceLevel {
	if percentage >= ProThreshold {
		return Pro
	}
	return Rookie
}

// AchievementLabel is the achievement granted on a game's first completion.
func AchievementLabel(gameID string) string {
	return "Completed " + gameID
}

// applyPerformance records the sample and, when auto-adjust is on,
// recomputes the game's level from it.
func (p *Profile) applyPerformance(gameID string, percentage float64) {
	p.PerformanceHistory[gameID] = percentage
	if p.AutoAdjust {
		p.ExperienceLevels[gameID] = LevelFor(percentage)
	}
}
