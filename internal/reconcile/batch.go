package reconcile

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/remarks-cli/internal/sheet"
)

// Failure records one submission the batch could not process.
type Failure struct {
	SubmissionID string `json:"submission_id"`
	ShopName     string `json:"shop_name"`
	Error        string `json:"error"`
}

// Summary is the end-of-run report.
type Summary struct {
	Scanned   int       `json:"scanned"`
	Processed int       `json:"processed"`
	Skipped   int       `json:"skipped"`
	Failed    int       `json:"failed"`
	DryRun    bool      `json:"dry_run,omitempty"`
	Failures  []Failure `json:"failures,omitempty"`
	Results   []Result  `json:"results,omitempty"`
}

// Driver processes every unprocessed submission in sheet order. One bad
// submission never aborts the batch; a schema violation does, since the
// contract is broken for every remaining row.
type Driver struct {
	engine      *Engine
	tracker     *Tracker
	submissions *sheet.Submissions
	limiter     *rate.Limiter
	limit       int
	dryRun      bool
}

// DriverOption configures the batch driver.
type DriverOption func(*Driver)

// WithLimiter paces submissions to stay inside the row store's write quota.
func WithLimiter(l *rate.Limiter) DriverOption {
	return func(d *Driver) { d.limiter = l }
}

// WithLimit caps how many submissions one run handles (0 = no cap).
func WithLimit(n int) DriverOption {
	return func(d *Driver) { d.limit = n }
}

// WithDriverDryRun skips marking; the engine is expected to be dry too.
func WithDriverDryRun(dry bool) DriverOption {
	return func(d *Driver) { d.dryRun = dry }
}

// NewDriver creates a batch driver.
func NewDriver(engine *Engine, tracker *Tracker, submissions *sheet.Submissions, opts ...DriverOption) *Driver {
	d := &Driver{engine: engine, tracker: tracker, submissions: submissions}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Run scans the remarks log and reconciles each unprocessed submission.
func (d *Driver) Run(ctx context.Context) (*Summary, error) {
	subs, err := d.submissions.ListUnprocessed(ctx)
	if err != nil {
		return nil, err
	}
	if d.limit > 0 && len(subs) > d.limit {
		subs = subs[:d.limit]
	}

	summary := &Summary{Scanned: len(subs), DryRun: d.dryRun}
	zap.L().Info("batch started",
		zap.Int("unprocessed", len(subs)),
		zap.Bool("dry_run", d.dryRun),
	)

	for i := range subs {
		sub := subs[i]

		if d.limiter != nil {
			if err := d.limiter.Wait(ctx); err != nil {
				return summary, err
			}
		}

		done, err := d.tracker.IsProcessed(ctx, &sub)
		if err != nil {
			if sheet.IsSchemaError(err) {
				return summary, err
			}
			summary.fail(sub.ID, sub.ShopName, err)
			continue
		}
		if done {
			continue
		}

		res, err := d.engine.Process(ctx, sub)
		if err != nil {
			if sheet.IsSchemaError(err) {
				return summary, err
			}
			summary.fail(sub.ID, sub.ShopName, err)
			continue
		}

		if res.Skipped {
			summary.Skipped++
			summary.Results = append(summary.Results, *res)
			continue
		}

		if !d.dryRun {
			if err := d.tracker.MarkProcessed(ctx, &sub); err != nil {
				summary.fail(sub.ID, sub.ShopName, err)
				continue
			}
		}
		summary.Processed++
		summary.Results = append(summary.Results, *res)
	}

	zap.L().Info("batch finished",
		zap.Int("processed", summary.Processed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

func (s *Summary) fail(id, shop string, err error) {
	s.Failed++
	s.Failures = append(s.Failures, Failure{SubmissionID: id, ShopName: shop, Error: err.Error()})
	zap.L().Error("submission failed",
		zap.String("submission_id", id),
		zap.String("shop", shop),
		zap.Error(err),
	)
}
