package progress

import (
	"context"
	"math"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/playtrack/internal/store"
)

// Store is the authoritative record of a user's progress. Every mutation
// updates memory, persists the full aggregate, then notifies subscribers.
// Persistence is best effort: write failures are logged and the in-memory
// state stays correct for the session.
//
// Store is safe for concurrent use. Subscribers run after the state lock
// is released, so handlers may call read accessors but must not mutate.
type Store struct {
	// opMu serialises update → persist → notify.
	opMu sync.Mutex

	mu sync.RWMutex
	p  Profile

	kv                store.KV
	log               *zap.Logger
	autoAdjustDefault bool
	bootstrapGames    []string

	subsMu sync.Mutex
	subs   []subscription
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence warnings.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithAutoAdjustDefault sets the auto-adjust value used when none has been
// persisted yet. Defaults to true.
func WithAutoAdjustDefault(enabled bool) Option {
	return func(s *Store) { s.autoAdjustDefault = enabled }
}

// WithBootstrapGames overrides the games seeded at Rookie when no level map
// has been persisted.
func WithBootstrapGames(games ...string) Option {
	return func(s *Store) { s.bootstrapGames = slices.Clone(games) }
}

// New creates a Store, loading any persisted state from kv.
func New(ctx context.Context, kv store.KV, opts ...Option) *Store {
	s := &Store{
		kv:                kv,
		log:               zap.NewNop(),
		autoAdjustDefault: true,
		bootstrapGames:    BootstrapGames,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.p = s.load(ctx)
	return s
}

// reload replaces the in-memory state with the persisted copy.
func (s *Store) reload(ctx context.Context) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	p := s.load(ctx)
	s.mu.Lock()
	s.p = p
	s.mu.Unlock()
}

func (s *Store) load(ctx context.Context) Profile {
	r := fieldReader{ctx: ctx, kv: s.kv, log: s.log}
	return loadProfile(r, s.autoAdjustDefault, s.bootstrapGames)
}

// --- reads ---

// IsFirstLaunch reports whether the first-launch flow has not completed yet.
func (s *Store) IsFirstLaunch() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.p.FirstLaunchDone
}

// IsGameCompleted reports whether the game has been completed at least once.
func (s *Store) IsGameCompleted(gameID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p.CompletedGames[gameID]
}

// Score returns the last recorded score for the game, or 0.
func (s *Store) Score(gameID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p.Scores[gameID]
}

// Percentage returns the last recorded accuracy for the game, or 0.
func (s *Store) Percentage(gameID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p.Percentages[gameID]
}

// ExperienceLevel returns the game's tier, Rookie if none is recorded.
func (s *Store) ExperienceLevel(gameID string) ExperienceLevel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if l, ok := s.p.ExperienceLevels[gameID]; ok {
		return l
	}
	return Rookie
}

// PerformanceFor returns the latest adaptation sample for the game.
func (s *Store) PerformanceFor(gameID string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.p.PerformanceHistory[gameID]
	return v, ok
}

func (s *Store) AutoAdjust() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p.AutoAdjust
}

func (s *Store) UserName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p.UserName
}

func (s *Store) UserAge() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p.UserAge
}

func (s *Store) FavoriteColor() ColorToken {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p.FavoriteColor
}

// Achievements returns the granted labels in the order they were earned.
func (s *Store) Achievements() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.p.Achievements)
}

// Snapshot returns a deep copy of the whole aggregate.
func (s *Store) Snapshot() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p.clone()
}

// --- mutations ---

// SetFirstLaunchCompleted marks the first-launch flow as done. Calling it
// again is a no-op.
func (s *Store) SetFirstLaunchCompleted(ctx context.Context) {
	s.update(ctx, Event{Kind: ProgressUpdated}, func(p *Profile) bool {
		if p.FirstLaunchDone {
			return false
		}
		p.FirstLaunchDone = true
		return true
	})
}

// SaveUserInfo overwrites the profile fields.
func (s *Store) SaveUserInfo(ctx context.Context, name, age string, color ColorToken) {
	s.update(ctx, Event{Kind: ProgressUpdated}, func(p *Profile) bool {
		p.UserName = name
		p.UserAge = age
		p.FavoriteColor = color
		return true
	})
}

// CompleteMiniGame records a finished play of gameID. Score and accuracy
// overwrite the previous values; the completion achievement is granted
// once; the adaptation policy runs on the new accuracy. A NaN or infinite
// accuracy is dropped with a warning.
func (s *Store) CompleteMiniGame(ctx context.Context, gameID string, score int, percentage float64) {
	if !s.finite(gameID, percentage) {
		return
	}
	s.update(ctx, Event{Kind: ProgressUpdated, GameID: gameID}, func(p *Profile) bool {
		p.CompletedGames[gameID] = true
		p.Scores[gameID] = score
		p.Percentages[gameID] = percentage
		p.addAchievement(AchievementLabel(gameID))
		p.applyPerformance(gameID, percentage)
		return true
	})
}

// SetExperienceLevel overrides the game's tier regardless of auto-adjust.
// Unknown levels are ignored.
func (s *Store) SetExperienceLevel(ctx context.Context, gameID string, level ExperienceLevel) {
	if !level.Valid() {
		s.log.Warn("ignoring unknown experience level",
			zap.String("game", gameID), zap.String("level", string(level)))
		return
	}
	s.update(ctx, Event{Kind: ProgressUpdated, GameID: gameID}, func(p *Profile) bool {
		p.ExperienceLevels[gameID] = level
		return true
	})
}

// SetAutoAdjustExperienceLevel flips the global auto-adjust switch.
// Existing levels are not recomputed.
func (s *Store) SetAutoAdjustExperienceLevel(ctx context.Context, enabled bool) {
	s.update(ctx, Event{Kind: ProgressUpdated}, func(p *Profile) bool {
		p.AutoAdjust = enabled
		return true
	})
}

// UpdateGamePerformance feeds an accuracy sample to the adaptation policy
// without recording a completion.
func (s *Store) UpdateGamePerformance(ctx context.Context, gameID string, percentage float64) {
	if !s.finite(gameID, percentage) {
		return
	}
	s.update(ctx, Event{Kind: ProgressUpdated, GameID: gameID}, func(p *Profile) bool {
		p.applyPerformance(gameID, percentage)
		return true
	})
}

// ResetProgress clears all per-game progress, persists it, sweeps
// transient game-state keys written by other components and finally
// emits ProgressReset.
func (s *Store) ResetProgress(ctx context.Context) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	s.p.clearProgress()
	snap := s.p.clone()
	s.mu.Unlock()

	s.persist(ctx, snap)
	s.notify(Event{Kind: ProgressUpdated})

	s.sweep(ctx)
	s.notify(Event{Kind: ProgressReset})
}

// update runs fn under the state lock; when it reports a change the new
// state is persisted and ev is delivered.
func (s *Store) update(ctx context.Context, ev Event, fn func(p *Profile) bool) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	if !fn(&s.p) {
		s.mu.Unlock()
		return
	}
	snap := s.p.clone()
	s.mu.Unlock()

	s.persist(ctx, snap)
	s.notify(ev)
}

func (s *Store) finite(gameID string, percentage float64) bool {
	if math.IsNaN(percentage) || math.IsInf(percentage, 0) {
		s.log.Warn("ignoring non-finite percentage",
			zap.String("game", gameID), zap.Float64("percentage", percentage))
		return false
	}
	return true
}

func (s *Store) persist(ctx context.Context, p Profile) {
	if err := s.kv.Apply(ctx, encodeProfile(p, s.log)); err != nil {
		s.log.Warn("persist progress", zap.Error(err))
	}
}

// sweep deletes the well-known phase keys plus anything matching the
// game-state naming convention.
func (s *Store) sweep(ctx context.Context) {
	var b store.Batch
	b.Delete(phaseKeys...)

	keys, err := s.kv.Keys(ctx)
	if err != nil {
		s.log.Warn("list keys for reset sweep", zap.Error(err))
	}
	for _, k := range keys {
		if isGameStateKey(k) && !slices.Contains(phaseKeys, k) {
			b.Delete(k)
		}
	}

	if err := s.kv.Apply(ctx, b); err != nil {
		s.log.Warn("reset sweep", zap.Error(err))
		return
	}
	s.log.Debug("reset sweep", zap.Int("deleted", len(b.Deletes)))
}
