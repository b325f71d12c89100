package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/example/faculty-scheduler/internal/application"
	"github.com/example/faculty-scheduler/internal/cli"
	"github.com/example/faculty-scheduler/internal/config"
	"github.com/example/faculty-scheduler/internal/logging"
	"github.com/example/faculty-scheduler/internal/persistence"
	"github.com/example/faculty-scheduler/internal/persistence/jsonfile"
	"github.com/example/faculty-scheduler/internal/persistence/sqlite"
)

func main() {
	os.Exit(run())
}

func run() int {
	bootstrap := logging.NewLogger(os.Stderr, "info", "text")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		bootstrap.Error("failed to load configuration", "error", err)
		return 1
	}

	logger := logging.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("failed to open store", "error", err, "backend", cfg.Store)
		return 1
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("failed to close store", "error", cerr)
		}
	}()

	app := &cli.App{
		Faculty:   application.NewFacultyService(store, logger),
		Rooms:     application.NewRoomService(store, logger),
		Periods:   application.NewPeriodService(store, logger),
		Subjects:  application.NewSubjectService(store, logger),
		Timetable: application.NewTimetableService(store, store, store, store, store, logger),
		Backups:   application.NewBackupService(store, logger, time.Now),
		Logger:    logger,
		Out:       os.Stdout,
	}

	return cli.Execute(ctx, app)
}

func openStore(ctx context.Context, cfg config.Config) (persistence.Store, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		dsn := cfg.SQLiteDSN
		// The default DSN lives under the data directory next to the JSON
		// files so both backends share one location.
		if dsn == "file:timetable.db" {
			dsn = "file:" + filepath.Join(cfg.DataDir, "timetable.db")
			if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
				return nil, err
			}
		}
		if !strings.HasPrefix(dsn, "file:") {
			dsn = "file:" + dsn
		}
		return sqlite.Open(ctx, dsn)
	default:
		return jsonfile.Open(cfg.DataDir)
	}
}
