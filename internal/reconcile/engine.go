// Package reconcile matches remark submissions to hit-list rows, merges
// extracted fields under the non-destructive merge policy, and requests
// follow-up calendar events, at most once per submission.
package reconcile

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/remarks-cli/internal/extract"
	"github.com/sells-group/remarks-cli/internal/model"
	"github.com/sells-group/remarks-cli/internal/sheet"
)

// Event describes the follow-up calendar event to create.
type Event struct {
	Title       string
	Description string
	// Date is "YYYY-MM-DD"; Time is "HH:MM" or "" for an all-day event.
	Date string
	Time string
}

// Calendar is the external calendar collaborator. CreateEvent returns an
// opaque event reference (a link). Failures are reported, never fatal.
type Calendar interface {
	CreateEvent(ctx context.Context, ev Event) (string, error)
}

// Result summarizes what reconciliation did, or would do, for one submission.
type Result struct {
	SubmissionID     string `json:"submission_id"`
	ShopName         string `json:"shop_name"`
	Plan             Plan   `json:"plan"`
	Applied          int    `json:"applied"`
	NoteAppended     bool   `json:"note_appended"`
	EventLink        string `json:"event_link,omitempty"`
	Skipped          bool   `json:"skipped,omitempty"`
	SkipReason       string `json:"skip_reason,omitempty"`
	AlreadyProcessed bool   `json:"already_processed,omitempty"`
	DryRun           bool   `json:"dry_run,omitempty"`
}

// Engine runs extraction and merge for one submission at a time. Processing
// is strictly sequential; the row store offers no concurrency control.
type Engine struct {
	locations *sheet.Locations
	calendar  Calendar
	overrides []extract.PersonOverride
	dryRun    bool
	now       func() time.Time
}

// Option configures the engine.
type Option func(*Engine)

// WithCalendar attaches the calendar collaborator. Without it, no events are
// created and follow-up dates merge normally.
func WithCalendar(c Calendar) Option {
	return func(e *Engine) { e.calendar = c }
}

// WithOverrides installs the contact-person override rules.
func WithOverrides(o []extract.PersonOverride) Option {
	return func(e *Engine) { e.overrides = o }
}

// WithDryRun computes and reports the plan without writing anything.
func WithDryRun(dry bool) Option {
	return func(e *Engine) { e.dryRun = dry }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates a reconciliation engine over the hit-list repository.
func New(locations *sheet.Locations, opts ...Option) *Engine {
	e := &Engine{
		locations: locations,
		now:       time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Process reconciles one submission into its location row. A missing
// location is a skip, not an error. Schema violations and write failures
// propagate so the caller leaves the submission unprocessed for a rerun.
// Process never flips the processed flag; that is the tracker's job.
func (e *Engine) Process(ctx context.Context, sub model.Submission) (*Result, error) {
	res := &Result{SubmissionID: sub.ID, ShopName: sub.ShopName, DryRun: e.dryRun}

	if sub.Processed {
		res.AlreadyProcessed = true
		return res, nil
	}
	if sub.ShopName == "" {
		res.Skipped = true
		res.SkipReason = "missing shop name"
		return res, nil
	}

	loc, err := e.locations.Get(ctx, sub.ShopName)
	if eris.Is(err, sheet.ErrNotFound) {
		res.Skipped = true
		res.SkipReason = "no matching hit-list row"
		zap.L().Warn("submission skipped",
			zap.String("submission_id", sub.ID),
			zap.String("shop", sub.ShopName),
			zap.String("reason", res.SkipReason),
		)
		return res, nil
	}
	if err != nil {
		return nil, err
	}

	now := e.now()
	ex := extract.Run(sub.Remarks, sub.ShopName, sub.Status, now, e.overrides)
	personOverride := extract.OverrideFor(sub.Remarks, sub.ShopName, e.overrides)

	res.Plan = BuildPlan(loc, sub, ex, e.locations.HasColumn, personOverride, now)

	if e.dryRun {
		return res, nil
	}

	if err := e.apply(ctx, loc, sub, res); err != nil {
		return res, err
	}
	return res, nil
}

// apply performs the planned writes in order: status, merged fields,
// bookkeeping, note, then the calendar side effect. A cell write failure
// reports which columns were already applied and stops, so the rerun can
// retry the remainder.
func (e *Engine) apply(ctx context.Context, loc *model.Location, sub model.Submission, res *Result) error {
	var applied []string
	write := func(c Change) error {
		if err := e.locations.SetField(ctx, loc, c.Column, c.New); err != nil {
			return eris.Wrapf(err, "partial write for %s (applied: %s)", sub.ID, appliedList(applied))
		}
		applied = append(applied, c.Column)
		res.Applied++
		return nil
	}

	if res.Plan.Status != nil {
		if err := write(*res.Plan.Status); err != nil {
			return err
		}
	}
	for _, c := range res.Plan.Fields {
		if err := write(c); err != nil {
			return err
		}
	}
	for _, c := range res.Plan.Meta {
		if err := write(c); err != nil {
			return err
		}
	}

	if res.Plan.Note != "" {
		newNotes := model.AppendNote(loc.Notes, res.Plan.Note)
		if err := e.locations.SetField(ctx, loc, sheet.ColNotes, newNotes); err != nil {
			return eris.Wrapf(err, "append note for %s (applied: %s)", sub.ID, appliedList(applied))
		}
		res.NoteAppended = true
	}

	for _, kept := range res.Plan.Kept {
		zap.L().Info("kept existing value",
			zap.String("submission_id", sub.ID),
			zap.String("shop", loc.Name),
			zap.String("column", kept.Column),
			zap.String("extracted", kept.New),
		)
	}

	if res.Plan.NeedsEvent && e.calendar != nil {
		e.createEvent(ctx, loc, sub, res)
	}
	return nil
}

// createEvent requests the follow-up event. Calendar failures are logged and
// swallowed: the merge stands and the submission is still markable.
func (e *Engine) createEvent(ctx context.Context, loc *model.Location, sub model.Submission, res *Result) {
	date, timeOfDay := splitDateTime(res.Plan.FollowUpDate)

	link, err := e.calendar.CreateEvent(ctx, Event{
		Title:       "Follow-up: " + loc.Name,
		Description: eventDescription(loc, sub),
		Date:        date,
		Time:        timeOfDay,
	})
	if err != nil {
		zap.L().Warn("calendar event creation failed",
			zap.String("submission_id", sub.ID),
			zap.String("shop", loc.Name),
			zap.Error(err),
		)
		return
	}

	if err := e.locations.SetField(ctx, loc, sheet.ColEventLink, link); err != nil {
		zap.L().Warn("event created but link not stored",
			zap.String("submission_id", sub.ID),
			zap.String("shop", loc.Name),
			zap.String("link", link),
			zap.Error(err),
		)
		return
	}
	res.EventLink = link
}

// eventDescription summarizes the row for the calendar entry: status,
// contact fields, and the tail of the notes log.
func eventDescription(loc *model.Location, sub model.Submission) string {
	var lines []string
	add := func(label, value string) {
		if value != "" {
			lines = append(lines, label+": "+value)
		}
	}
	add("Status", sub.Status)
	add("Contact", loc.ContactPerson)
	add("Phone", loc.Phone)
	add("Cell", loc.CellPhone)
	if sub.Remarks != "" {
		lines = append(lines, "", "Latest remark: "+sub.Remarks)
	} else if tail := notesTail(loc.Notes); tail != "" {
		lines = append(lines, "", tail)
	}
	return strings.Join(lines, "\n")
}

// notesTail returns the last entry of the notes log.
func notesTail(notes string) string {
	entries := strings.Split(strings.TrimSpace(notes), "\n\n")
	if len(entries) == 0 {
		return ""
	}
	return strings.TrimSpace(entries[len(entries)-1])
}

// splitDateTime splits "YYYY-MM-DD HH:MM" into date and time parts.
func splitDateTime(v string) (date, timeOfDay string) {
	parts := strings.SplitN(strings.TrimSpace(v), " ", 2)
	date = parts[0]
	if len(parts) == 2 {
		timeOfDay = strings.TrimSpace(parts[1])
	}
	return date, timeOfDay
}

func appliedList(applied []string) string {
	if len(applied) == 0 {
		return "none"
	}
	return strings.Join(applied, ", ")
}
