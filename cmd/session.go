package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/playtrack/internal/config"
	"github.com/abhisek/playtrack/internal/logging"
	"github.com/abhisek/playtrack/internal/progress"
	"github.com/abhisek/playtrack/internal/store"
)

// session is the composition root shared by every command: the SQLite
// store, the progress store on top of it and the logger.
type session struct {
	st       *store.Store
	progress *progress.Store
	log      *zap.Logger
}

// openSession loads configuration, opens the database and constructs the
// progress store.
func openSession(cmd *cobra.Command) (*session, error) {
	cfg := config.FromEnv()
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.LogLevel = l
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("opened store", zap.String("path", dbPath))

	ps := progress.New(cmd.Context(), st.KV(),
		progress.WithLogger(logger),
		progress.WithAutoAdjustDefault(cfg.AutoAdjustDefault),
		progress.WithBootstrapGames(cfg.BootstrapGames...),
	)
	ps.Subscribe(func(ev progress.Event) {
		logger.Debug("progress event", zap.Stringer("kind", ev.Kind), zap.String("game", ev.GameID))
	})

	return &session{st: st, progress: ps, log: logger}, nil
}

func (s *session) Close() {
	if err := s.st.Close(); err != nil {
		s.log.Warn("close store", zap.Error(err))
	}
	_ = s.log.Sync()
}
