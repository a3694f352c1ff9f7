package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/remarks-cli/internal/config"
	"github.com/sells-group/remarks-cli/internal/reconcile"
	"github.com/sells-group/remarks-cli/internal/sheet"
	"github.com/sells-group/remarks-cli/internal/store"
	"github.com/sells-group/remarks-cli/pkg/gcal"
	"github.com/sells-group/remarks-cli/pkg/gsheets"
)

// appEnv bundles the wired collaborators a command needs.
type appEnv struct {
	locations   *sheet.Locations
	submissions *sheet.Submissions
	engine      *reconcile.Engine
	tracker     *reconcile.Tracker
}

// initLedger opens and migrates the run ledger.
func initLedger(ctx context.Context) (store.Store, error) {
	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, eris.Wrap(err, "migrate ledger")
	}
	return st, nil
}

// initRowStore builds the authenticated spreadsheet client.
func initRowStore(ctx context.Context) (sheet.RowStore, error) {
	if cfg.Sheets.SpreadsheetID == "" {
		return nil, eris.New("sheets.spreadsheet_id is required")
	}

	opts := []gsheets.Option{
		gsheets.WithRateLimit(cfg.Sheets.RequestsPerSecond),
	}
	if cfg.Sheets.CredentialsFile != "" {
		hc, err := config.GoogleHTTPClient(ctx, cfg.Sheets.CredentialsFile, config.ScopeSheets, config.ScopeCalendar)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gsheets.WithHTTPClient(hc))
	}
	return gsheets.NewClient(cfg.Sheets.SpreadsheetID, opts...), nil
}

// initCalendar builds the calendar client, or nil when disabled.
func initCalendar(ctx context.Context) (reconcile.Calendar, error) {
	if !cfg.Calendar.Enabled || cfg.Calendar.CalendarID == "" {
		zap.L().Info("calendar disabled, follow-up events will not be created")
		return nil, nil
	}

	opts := []gcal.Option{
		gcal.WithTimezone(cfg.Calendar.Timezone),
	}
	if cfg.Sheets.CredentialsFile != "" {
		hc, err := config.GoogleHTTPClient(ctx, cfg.Sheets.CredentialsFile, config.ScopeCalendar)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gcal.WithHTTPClient(hc))
	}
	return gcal.NewClient(cfg.Calendar.CalendarID, opts...), nil
}

// initEnv wires the repositories, engine, and tracker for a processing run.
func initEnv(ctx context.Context, dryRun bool) (*appEnv, error) {
	rows, err := initRowStore(ctx)
	if err != nil {
		return nil, err
	}

	calendar, err := initCalendar(ctx)
	if err != nil {
		return nil, err
	}

	overrides, err := config.LoadOverrides(cfg.Overrides.File)
	if err != nil {
		return nil, err
	}

	locations := sheet.NewLocations(rows, cfg.Sheets.HitListWorksheet)
	submissions := sheet.NewSubmissions(rows, cfg.Sheets.RemarksWorksheet)

	engineOpts := []reconcile.Option{
		reconcile.WithOverrides(overrides),
		reconcile.WithDryRun(dryRun),
	}
	if calendar != nil {
		engineOpts = append(engineOpts, reconcile.WithCalendar(calendar))
	}

	return &appEnv{
		locations:   locations,
		submissions: submissions,
		engine:      reconcile.New(locations, engineOpts...),
		tracker:     reconcile.NewTracker(submissions),
	}, nil
}

// batchLimiter paces writes to stay inside the spreadsheet quota.
func batchLimiter() *rate.Limiter {
	rps := cfg.Batch.RequestsPerSecond
	if rps <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(rps), max(int(rps), 1))
}
