package progress

import (
	"context"
	"encoding/json"
	"strconv"

	"go.uber.org/zap"

	"github.com/abhisek/playtrack/internal/store"
)

// fieldReader loads persisted fields one at a time. Every lookup either
// decodes or substitutes the caller's default; failures are logged and
// never abort the load.
type fieldReader struct {
	ctx context.Context
	kv  store.KV
	log *zap.Logger
}

func (r fieldReader) raw(key string) ([]byte, bool) {
	v, ok, err := r.kv.Get(r.ctx, key)
	if err != nil {
		r.log.Warn("read persisted field, using default", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return v, ok
}

func (r fieldReader) stringOr(key, def string) string {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	return string(v)
}

func (r fieldReader) boolOr(key string, def bool) bool {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(string(v))
	if err != nil {
		r.log.Warn("decode persisted field, using default", zap.String("key", key), zap.Error(err))
		return def
	}
	return b
}

// decodeOr unmarshals the JSON value under key into a fresh T, returning
// def when the key is absent or the payload does not decode.
func decodeOr[T any](r fieldReader, key string, def T) T {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	var out T
	if err := json.Unmarshal(v, &out); err != nil {
		r.log.Warn("decode persisted field, using default", zap.String("key", key), zap.Error(err))
		return def
	}
	return out
}

// loadProfile reads every field independently from kv.
func loadProfile(r fieldReader, autoAdjustDefault bool, bootstrap []string) Profile {
	p := Profile{
		UserName:           r.stringOr(keyUserName, ""),
		UserAge:            r.stringOr(keyUserAge, ""),
		FavoriteColor:      ColorToken(r.stringOr(keyFavoriteColor, string(DefaultColor))),
		CompletedGames:     decodeOr(r, keyCompletedGames, map[string]bool{}),
		Scores:             decodeOr(r, keyScores, map[string]int{}),
		Percentages:        decodeOr(r, keyPercentages, map[string]float64{}),
		Achievements:       decodeOr(r, keyAchievements, []string(nil)),
		ExperienceLevels:   decodeOr(r, keyExperienceLevels, bootstrapLevels(bootstrap)),
		AutoAdjust:         r.boolOr(keyAutoAdjust, autoAdjustDefault),
		PerformanceHistory: decodeOr(r, keyPerformanceHistory, map[string]float64{}),
		FirstLaunchDone:    r.boolOr(keyHasLaunchedBefore, false),
	}
	p.normalize()
	return p
}

func bootstrapLevels(games []string) map[string]ExperienceLevel {
	m := make(map[string]ExperienceLevel, len(games))
	for _, g := range games {
		m[g] = Rookie
	}
	return m
}

// encodeProfile renders the whole aggregate as one batch. A field that
// fails to encode is skipped so the rest still lands. An empty
// achievement list deletes its key rather than writing "[]".
func encodeProfile(p Profile, log *zap.Logger) store.Batch {
	var b store.Batch

	b.Put(keyUserName, []byte(p.UserName))
	b.Put(keyUserAge, []byte(p.UserAge))
	b.Put(keyFavoriteColor, []byte(p.FavoriteColor))

	putJSON := func(key string, v any) {
		data, err := json.Marshal(v)
		if err != nil {
			log.Warn("encode field, skipping", zap.String("key", key), zap.Error(err))
			return
		}
		b.Put(key, data)
	}

	putJSON(keyCompletedGames, p.CompletedGames)
	putJSON(keyScores, p.Scores)
	putJSON(keyPercentages, p.Percentages)
	if len(p.Achievements) == 0 {
		b.Delete(keyAchievements)
	} else {
		putJSON(keyAchievements, p.Achievements)
	}
	putJSON(keyExperienceLevels, p.ExperienceLevels)
	b.Put(keyAutoAdjust, []byte(strconv.FormatBool(p.AutoAdjust)))
	putJSON(keyPerformanceHistory, p.PerformanceHistory)
	b.Put(keyHasLaunchedBefore, []byte(strconv.FormatBool(p.FirstLaunchDone)))

	return b
}
