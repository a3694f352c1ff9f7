package reconcile

import (
	"time"

	"github.com/sells-group/remarks-cli/internal/model"
	"github.com/sells-group/remarks-cli/internal/sheet"
)

// Change is one intended cell write on the location row.
type Change struct {
	Column string `json:"column"`
	Old    string `json:"old,omitempty"`
	New    string `json:"new"`
}

// Plan is the full set of writes reconciliation intends for one submission.
// Building it is pure; dry runs print it instead of applying it.
type Plan struct {
	// Fields are merge writes into empty field columns (plus a contact-person
	// override, the one sanctioned overwrite).
	Fields []Change `json:"fields,omitempty"`
	// Status is the last-writer-wins status write, nil when unchanged.
	Status *Change `json:"status,omitempty"`
	// Meta are the status-updated-by/-date bookkeeping writes.
	Meta []Change `json:"meta,omitempty"`
	// Note is the note line to append, "" when nothing to append.
	Note string `json:"note,omitempty"`
	// Kept records extracted values rejected because the field already held a
	// different value; reported, never written.
	Kept []Change `json:"kept,omitempty"`
	// FollowUpDate is the date the merged record ends up with.
	FollowUpDate string `json:"follow_up_date,omitempty"`
	// NeedsEvent is true when the merged record has a follow-up date and no
	// calendar event reference yet.
	NeedsEvent bool `json:"needs_event,omitempty"`
}

// mergeOrder fixes the column order of field writes.
var mergeOrder = []string{
	"phone", "cell_phone", "email", "website", "instagram",
	"address", "city", "state", "contact_person",
	"follow_up_date", "outcome", "visit_date", "contact_method",
}

// BuildPlan applies the merge policy field by field. hasColumn gates writes
// to columns the worksheet actually has; personOverride names the one value
// allowed to replace a populated contact-person cell.
func BuildPlan(loc *model.Location, sub model.Submission, ex model.Extraction, hasColumn func(string) bool, personOverride string, now time.Time) Plan {
	var plan Plan

	current := map[string]string{
		"phone":          loc.Phone,
		"cell_phone":     loc.CellPhone,
		"email":          loc.Email,
		"website":        loc.Website,
		"instagram":      loc.Instagram,
		"address":        loc.Address,
		"city":           loc.City,
		"state":          loc.State,
		"contact_person": loc.ContactPerson,
		"follow_up_date": loc.FollowUpDate,
		"outcome":        loc.Outcome,
		"visit_date":     loc.VisitDate,
		"contact_method": loc.ContactMethod,
	}
	extracted := ex.Fields()

	for _, field := range mergeOrder {
		column := sheet.FieldColumns[field]
		value := extracted[field]
		if value == "" || !hasColumn(column) {
			continue
		}
		cur := current[field]
		switch {
		case cur == value:
			// Nothing to do.
		case cur == "":
			plan.Fields = append(plan.Fields, Change{Column: column, New: value})
		case field == "contact_person" && personOverride != "" && value == personOverride:
			plan.Fields = append(plan.Fields, Change{Column: column, Old: cur, New: value})
		default:
			// Populated fields are never overwritten.
			plan.Kept = append(plan.Kept, Change{Column: column, Old: cur, New: value})
		}
	}

	if sub.Status != "" && sub.Status != loc.Status {
		plan.Status = &Change{Column: sheet.ColStatus, Old: loc.Status, New: sub.Status}
	}

	if sub.Status != "" {
		if hasColumn(sheet.ColStatusUpdatedBy) {
			plan.Meta = append(plan.Meta, Change{Column: sheet.ColStatusUpdatedBy, Old: loc.StatusUpdatedBy, New: sub.SubmittedBy})
		}
		if hasColumn(sheet.ColStatusUpdatedDate) {
			plan.Meta = append(plan.Meta, Change{Column: sheet.ColStatusUpdatedDate, Old: loc.StatusUpdatedDate, New: now.UTC().Format(time.RFC3339)})
		}
	}

	if sub.Remarks != "" && !model.HasNote(loc.Notes, sub.ID) {
		stamp := sub.SubmittedAt
		if stamp == "" {
			stamp = now.UTC().Format(time.RFC3339)
		}
		plan.Note = model.NoteLine(stamp, sub.SubmittedBy, sub.ID, sub.Remarks)
	}

	plan.FollowUpDate = loc.FollowUpDate
	if plan.FollowUpDate == "" && extracted["follow_up_date"] != "" && hasColumn(sheet.ColFollowUpDate) {
		plan.FollowUpDate = extracted["follow_up_date"]
	}
	plan.NeedsEvent = plan.FollowUpDate != "" && loc.FollowUpEventLink == "" && hasColumn(sheet.ColEventLink)

	return plan
}
