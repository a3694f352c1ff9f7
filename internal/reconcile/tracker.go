package reconcile

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/remarks-cli/internal/model"
	"github.com/sells-group/remarks-cli/internal/sheet"
)

// Tracker owns the per-submission processed flag, the sole idempotence guard
// against duplicate notes and calendar events on rerun.
type Tracker struct {
	submissions *sheet.Submissions
	now         func() time.Time
}

// NewTracker creates a tracker over the submissions repository.
func NewTracker(submissions *sheet.Submissions) *Tracker {
	return &Tracker{submissions: submissions, now: time.Now}
}

// IsProcessed reads the submission's flag fresh from the store.
func (t *Tracker) IsProcessed(ctx context.Context, sub *model.Submission) (bool, error) {
	return t.submissions.IsProcessed(ctx, sub)
}

// MarkProcessed sets the flag and timestamp. Marking an already-processed
// submission is a no-op, reported but not an error.
func (t *Tracker) MarkProcessed(ctx context.Context, sub *model.Submission) error {
	done, err := t.submissions.IsProcessed(ctx, sub)
	if err != nil {
		return err
	}
	if done {
		zap.L().Info("already processed",
			zap.String("submission_id", sub.ID),
			zap.String("shop", sub.ShopName),
		)
		return nil
	}
	return t.submissions.MarkProcessed(ctx, sub, t.now())
}
