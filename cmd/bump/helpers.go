package bump

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ItsHariii/bump-cli/internal/api"
	"github.com/ItsHariii/bump-cli/internal/app"
	"github.com/ItsHariii/bump-cli/internal/cache"
	"github.com/ItsHariii/bump-cli/internal/connectivity"
	"github.com/ItsHariii/bump-cli/internal/db"
	"github.com/ItsHariii/bump-cli/internal/logging"
	"github.com/ItsHariii/bump-cli/internal/service"
	"github.com/ItsHariii/bump-cli/internal/store"
	"github.com/ItsHariii/bump-cli/internal/syncq"
)

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

// withDeps opens the database, wires the client, cache, queue, and
// connectivity monitor, probes the backend once, and hands the bundle to
// run. The probe's offline-to-online edge kicks off a queue replay before
// the command body executes, so reconnecting and syncing need no separate
// step.
func withDeps(ctx context.Context, run func(*service.Deps) error) error {
	return withDB(func(sqldb *sql.DB) error {
		level := logLevel
		if level == "" {
			level, _, _ = service.GetConfig(sqldb, service.ConfigLogLevel)
		}
		logger := logging.Setup(level)

		baseURL := apiURL
		if baseURL == "" {
			baseURL, _, _ = service.GetConfig(sqldb, service.ConfigAPIURL)
		}
		token, _, err := service.GetConfig(sqldb, service.ConfigAuthToken)
		if err != nil {
			return err
		}

		client := &api.Client{BaseURL: baseURL, AuthToken: token}
		kv := store.NewSQLStore(sqldb)
		queue := &syncq.Queue{Store: kv, Dispatch: client, Logger: logger}

		monitor := connectivity.NewMonitor(
			connectivity.HealthProber(client),
			func(wasOnline, isOnline bool) {
				queue.SetOnline(ctx, isOnline)
			},
		)
		if forceOffline {
			reachable := false
			monitor.Apply(connectivity.Status{Connected: false, InternetReachable: &reachable})
		} else {
			probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			monitor.Refresh(probeCtx)
			cancel()
		}

		deps := &service.Deps{
			DB:     sqldb,
			Cache:  cache.New(kv, nil),
			API:    client,
			Queue:  queue,
			Online: monitor.Online,
			Logger: logger,
		}
		return run(deps)
	})
}

func parseDateOrToday(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.ParseInLocation("2006-01-02", value, time.Local); err != nil {
		return "", fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", value)
	}
	return value, nil
}

func parseDateTimeOrNow(date, timeStr string) (time.Time, error) {
	date = strings.TrimSpace(date)
	timeStr = strings.TrimSpace(timeStr)
	if date == "" && timeStr == "" {
		return time.Now(), nil
	}
	if date == "" {
		return time.Time{}, fmt.Errorf("--date is required when --time is set")
	}
	if timeStr == "" {
		t, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
		}
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+timeStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --time %q (expected HH:MM)", timeStr)
	}
	return t, nil
}
