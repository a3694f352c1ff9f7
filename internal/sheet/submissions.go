package sheet

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/remarks-cli/internal/model"
)

// Submissions reads the append-only remarks log and flips per-submission
// processed flags. Everything else on a submission row is read-only here.
type Submissions struct {
	store     RowStore
	worksheet string

	headers map[string]int
}

// NewSubmissions creates a repository over the given worksheet.
func NewSubmissions(store RowStore, worksheet string) *Submissions {
	return &Submissions{store: store, worksheet: worksheet}
}

func (s *Submissions) load(ctx context.Context) ([][]string, error) {
	rows, err := s.store.ReadAll(ctx, s.worksheet)
	if err != nil {
		return nil, eris.Wrapf(err, "read worksheet %s", s.worksheet)
	}
	if len(rows) < 1 {
		return nil, &SchemaError{Worksheet: s.worksheet, Column: ColSubmissionID}
	}
	s.headers = headerIndex(rows[0])
	err = requireColumns(s.worksheet, s.headers,
		ColSubmissionID, ColShopName, ColStatus, ColRemarks, ColSubmittedBy, ColProcessed)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Submissions) fromRow(row []string, rowNum int) model.Submission {
	get := func(column string) string {
		col, ok := s.headers[column]
		if !ok {
			return ""
		}
		return cell(row, col)
	}
	sub := model.Submission{
		ID:          get(ColSubmissionID),
		ShopName:    get(ColShopName),
		Status:      get(ColStatus),
		Remarks:     get(ColRemarks),
		SubmittedBy: get(ColSubmittedBy),
		SubmittedAt: get(ColSubmittedAt),
		Processed:   strings.EqualFold(get(ColProcessed), "Yes"),
		Row:         rowNum,
	}
	if sub.SubmittedBy == "" {
		sub.SubmittedBy = "DApp"
	}
	if raw := get(ColProcessedAt); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			sub.ProcessedAt = &t
		}
	}
	return sub
}

// List returns every submission in sheet order.
func (s *Submissions) List(ctx context.Context) ([]model.Submission, error) {
	rows, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	subs := make([]model.Submission, 0, len(rows)-1)
	for i, row := range rows[1:] {
		subs = append(subs, s.fromRow(row, i+2))
	}
	return subs, nil
}

// ListUnprocessed returns submissions whose processed flag is anything other
// than the literal "Yes". Partial markers left by older tooling ("Status
// Applied") still count as unprocessed.
func (s *Submissions) ListUnprocessed(ctx context.Context) ([]model.Submission, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Submission
	for _, sub := range all {
		if !sub.Processed {
			out = append(out, sub)
		}
	}
	return out, nil
}

// Get returns the submission with the given id. Returns ErrNotFound when the
// id is absent from the log.
func (s *Submissions) Get(ctx context.Context, id string) (*model.Submission, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, sub := range all {
		if sub.ID == id {
			return &sub, nil
		}
	}
	return nil, eris.Wrapf(ErrNotFound, "submission %q", id)
}

// IsProcessed re-reads the submission's processed cell, so a flag set by an
// earlier interrupted run is seen even when the enumeration is stale.
func (s *Submissions) IsProcessed(ctx context.Context, sub *model.Submission) (bool, error) {
	if s.headers == nil {
		if _, err := s.load(ctx); err != nil {
			return false, err
		}
	}
	col, ok := s.headers[ColProcessed]
	if !ok {
		return false, &SchemaError{Worksheet: s.worksheet, Column: ColProcessed}
	}
	v, err := s.store.ReadCell(ctx, s.worksheet, sub.Row, col+1)
	if err != nil {
		return false, eris.Wrapf(err, "read processed flag %s", sub.ID)
	}
	return strings.EqualFold(strings.TrimSpace(v), "Yes"), nil
}

// MarkProcessed sets the processed flag and, when the column exists, the
// processed-at timestamp. It is the final step of reconciliation.
func (s *Submissions) MarkProcessed(ctx context.Context, sub *model.Submission, at time.Time) error {
	col, ok := s.headers[ColProcessed]
	if !ok {
		return &SchemaError{Worksheet: s.worksheet, Column: ColProcessed}
	}
	if err := s.store.UpdateCell(ctx, s.worksheet, sub.Row, col+1, "Yes"); err != nil {
		return eris.Wrapf(err, "mark processed %s", sub.ID)
	}
	if atCol, ok := s.headers[ColProcessedAt]; ok {
		stamp := at.UTC().Format(time.RFC3339)
		if err := s.store.UpdateCell(ctx, s.worksheet, sub.Row, atCol+1, stamp); err != nil {
			return eris.Wrapf(err, "write processed-at %s", sub.ID)
		}
	}
	return nil
}

// Append adds a new submission row, used by the intake webhook. Only the
// columns present in the worksheet are populated.
func (s *Submissions) Append(ctx context.Context, sub model.Submission) error {
	if _, err := s.load(ctx); err != nil {
		return err
	}

	width := 0
	for _, col := range s.headers {
		if col+1 > width {
			width = col + 1
		}
	}
	row := make([]string, width)
	set := func(column, value string) {
		if col, ok := s.headers[column]; ok {
			row[col] = value
		}
	}
	set(ColSubmissionID, sub.ID)
	set(ColShopName, sub.ShopName)
	set(ColStatus, sub.Status)
	set(ColRemarks, sub.Remarks)
	set(ColSubmittedBy, sub.SubmittedBy)
	set(ColSubmittedAt, sub.SubmittedAt)
	set(ColProcessed, "No")

	if err := s.store.AppendRow(ctx, s.worksheet, row); err != nil {
		return eris.Wrapf(err, "append submission %s", sub.ID)
	}
	return nil
}
