package progress

import "strings"

// Persisted keys owned by the progress store.
const (
	keyUserName           = "userName"
	keyUserAge            = "userAge"
	keyFavoriteColor      = "favoriteColor"
	keyCompletedGames     = "completedGames"
	keyScores             = "miniGameScores"
	keyPercentages        = "miniGamePercentages"
	keyAchievements       = "achievements"
	keyExperienceLevels   = "gameExperienceLevels"
	keyAutoAdjust         = "autoAdjustExperienceLevel"
	keyPerformanceHistory = "gamePerformancePercentages"
	keyHasLaunchedBefore  = "hasLaunchedBefore"
)

var ownedKeys = map[string]bool{
	keyUserName:           true,
	keyUserAge:            true,
	keyFavoriteColor:      true,
	keyCompletedGames:     true,
	keyScores:             true,
	keyPercentages:        true,
	keyAchievements:       true,
	keyExperienceLevels:   true,
	keyAutoAdjust:         true,
	keyPerformanceHistory: true,
	keyHasLaunchedBefore:  true,
}

// phaseKeys are written by the mini-game screens to remember where a player
// left off. Reset always removes them, present or not.
var phaseKeys = []string{
	"BinaryGamePhase",
	"PixelGamePhase",
	"ColorGamePhase",
	"currentGamePhases",
	"BinaryGameCurrentPhase",
	"PixelGameCurrentPhase",
	"ColorGameCurrentPhase",
}

// BootstrapGames are seeded at Rookie when no level map has been persisted.
var BootstrapGames = []string{"Binary Game", "Pixel Art Game", "Color Game"}

var gameStateMarkers = []string{"Phase", "Progress", "State", "Completed"}

// isGameStateKey matches keys other components use for transient game
// state: the name contains "Game" and one of the state markers.
// Matching is case-sensitive.
//
// TODO: replace the substring scan with keys registered by the game
// screens once they persist through this package.
func isGameStateKey(key string) bool {
	if ownedKeys[key] || !strings.Contains(key, "Game") {
		return false
	}
	for _, m := range gameStateMarkers {
		if strings.Contains(key, m) {
			return true
		}
	}
	return false
}
