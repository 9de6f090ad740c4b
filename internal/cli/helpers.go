package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/runnerr0/toolmarks/internal/config"
	"github.com/runnerr0/toolmarks/internal/favorites"
	"github.com/runnerr0/toolmarks/internal/logging"
	"github.com/runnerr0/toolmarks/internal/metrics"
	"github.com/runnerr0/toolmarks/internal/persist"
	"github.com/runnerr0/toolmarks/internal/recency"
	"github.com/runnerr0/toolmarks/internal/storage"
)

var (
	pathColor  = color.New(color.FgCyan)
	starColor  = color.New(color.FgYellow, color.Bold)
	dimColor   = color.New(color.Faint)
	titleColor = color.New(color.FgBlue, color.Bold)
)

// session is everything one command invocation needs: config, storage and
// both hydrated trackers. Close flushes pending writes.
type session struct {
	cfg       *config.Config
	logger    *slog.Logger
	metrics   *metrics.Metrics
	writer    *persist.Writer
	history   *recency.Tracker
	favorites *favorites.Set

	closeLog func() error
}

// loadConfig reads the --config file, or the default path (creating it) when unset.
func loadConfig(globals *GlobalFlags) (*config.Config, error) {
	if globals != nil && globals.Config != "" {
		path, err := config.ExpandPath(globals.Config)
		if err != nil {
			return nil, err
		}
		return config.LoadOrCreateAt(path)
	}
	return config.LoadOrCreate()
}

// openSession loads config, opens the configured backend and hydrates both trackers.
func openSession(globals *GlobalFlags) (*session, error) {
	cfg, err := loadConfig(globals)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logCfg := cfg.Logging
	if globals != nil && globals.Verbose {
		logCfg.Level = "debug"
	}
	logger, closeLog, err := logging.New(logCfg, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	ctx := context.Background()
	adapter, err := storage.Open(ctx, cfg.Storage, logger)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("open storage: %w", err)
	}

	m := metrics.New()
	writer := persist.NewWriter(adapter,
		persist.WithLogger(logger),
		persist.WithObserver(m),
		persist.WithWriteTimeout(time.Duration(cfg.Storage.WriteTimeoutMs)*time.Millisecond),
	)

	s := &session{
		cfg:     cfg,
		logger:  logger,
		metrics: m,
		writer:  writer,
		history: recency.New(ctx, writer,
			recency.WithKey(cfg.History.Key),
			recency.WithMaxItems(cfg.History.MaxItems),
			recency.WithLogger(logger),
			recency.WithObserver(m),
		),
		favorites: favorites.New(ctx, writer,
			favorites.WithKey(cfg.Favorites.Key),
			favorites.WithLogger(logger),
			favorites.WithObserver(m),
		),
		closeLog: closeLog,
	}
	return s, nil
}

// Close drains pending writes and releases storage and the log file.
func (s *session) Close() error {
	err := s.writer.Close()
	if cerr := s.closeLog(); err == nil {
		err = cerr
	}
	return err
}

// withSession opens a session, runs fn and closes the session.
func withSession(globals *GlobalFlags, fn func(*session) error) error {
	s, err := openSession(globals)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			s.logger.Warn("closing storage", "error", err)
		}
	}()
	return fn(s)
}

func wantJSON(globals *GlobalFlags) bool {
	return globals != nil && globals.JSON
}

// formatMillis renders a persisted Unix-millisecond timestamp in local time.
func formatMillis(ms int64) string {
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04:05")
}

func formatRFC3339Millis(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}
