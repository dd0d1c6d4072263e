package progress

import "slices"

// Profile is the full progress aggregate for one user.
type Profile struct {
	UserName      string
	UserAge       string
	FavoriteColor ColorToken

	CompletedGames map[string]bool
	Scores         map[string]int
	Percentages    map[string]float64
	Achievements   []string

	ExperienceLevels   map[string]ExperienceLevel
	AutoAdjust         bool
	PerformanceHistory map[string]float64

	FirstLaunchDone bool
}

// normalize replaces nil maps so mutations never write into a nil map.
func (p *Profile) normalize() {
	if p.CompletedGames == nil {
		p.CompletedGames = make(map[string]bool)
	}
	if p.Scores == nil {
		p.Scores = make(map[string]int)
	}
	if p.Percentages == nil {
		p.Percentages = make(map[string]float64)
	}
	if p.ExperienceLevels == nil {
		p.ExperienceLevels = make(map[string]ExperienceLevel)
	}
	if p.PerformanceHistory == nil {
		p.PerformanceHistory = make(map[string]float64)
	}
}

// clone returns a deep copy safe to hand out or persist without holding locks.
func (p Profile) clone() Profile {
	c := p
	c.CompletedGames = cloneMap(p.CompletedGames)
	c.Scores = cloneMap(p.Scores)
	c.Percentages = cloneMap(p.Percentages)
	c.Achievements = slices.Clone(p.Achievements)
	c.ExperienceLevels = cloneMap(p.ExperienceLevels)
	c.PerformanceHistory = cloneMap(p.PerformanceHistory)
	c.normalize()
	return c
}

// clearProgress wipes per-game progress. Experience level keys survive,
// reset to Rookie. Profile fields, the auto-adjust switch and the
// first-launch flag are left alone.
func (p *Profile) clearProgress() {
	p.CompletedGames = make(map[string]bool)
	p.Scores = make(map[string]int)
	p.Percentages = make(map[string]float64)
	p.Achievements = nil
	for id := range p.ExperienceLevels {
		p.ExperienceLevels[id] = Rookie
	}
	p.PerformanceHistory = make(map[string]float64)
}

// addAchievement appends label unless it is already present.
func (p *Profile) addAchievement(label string) bool {
	if slices.Contains(p.Achievements, label) {
		return false
	}
	p.Achievements = append(p.Achievements, label)
	return true
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
