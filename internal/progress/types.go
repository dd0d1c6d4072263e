package progress

import (
	"fmt"
	"strings"
)

// ExperienceLevel is the per-game difficulty tier.
type ExperienceLevel string

const (
	Rookie ExperienceLevel = "rookie"
	Pro    ExperienceLevel = "pro"
)

// AllExperienceLevels returns all levels in ascending difficulty.
func AllExperienceLevels() []ExperienceLevel {
	return []ExperienceLevel{Rookie, Pro}
}

// Valid reports whether l is one of the known levels.
func (l ExperienceLevel) Valid() bool {
	return l == Rookie || l == Pro
}

// DisplayName returns a human-readable label for the level.
func (l ExperienceLevel) DisplayName() string {
	switch l {
	case Rookie:
		return "Rookie"
	case Pro:
		return "Pro"
	default:
		return string(l)
	}
}

// UnmarshalText rejects anything but the known levels so that a corrupted
// level map falls back as a whole instead of carrying unknown tiers.
func (l *ExperienceLevel) UnmarshalText(b []byte) error {
	parsed, err := ParseExperienceLevel(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// InvalidLevelError is returned when a string does not name a level.
type InvalidLevelError struct {
	Value string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid experience level %q (want rookie or pro)", e.Value)
}

// ParseExperienceLevel parses a level name, ignoring case.
func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	l := ExperienceLevel(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", &InvalidLevelError{Value: s}
	}
	return l, nil
}

// ColorToken names an app palette colour, e.g. "gamePurple".
type ColorToken string

// DefaultColor is the favourite colour of a fresh profile.
const DefaultColor ColorToken = "gamePurple"

// EventKind distinguishes incremental updates from full resets.
type EventKind int

const (
	ProgressUpdated EventKind = iota
	ProgressReset
)

func (k EventKind) String() string {
	switch k {
	case ProgressUpdated:
		return "progress_updated"
	case ProgressReset:
		return "progress_reset"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is delivered to subscribers after a mutation has been persisted.
type Event struct {
	Kind EventKind

	// GameID is set for mutations scoped to a single game.
	GameID string
}
