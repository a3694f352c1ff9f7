// Package model defines the records shared by the extraction and
// reconciliation packages.
package model

import (
	"fmt"
	"strings"
)

// Location is the persistent, enrichable row representing one retail outlet.
// Pre-existing rows are enriched in place; they are never created or deleted
// by this tool.
type Location struct {
	Name              string `json:"name"`
	Status            string `json:"status,omitempty"`
	Address           string `json:"address,omitempty"`
	City              string `json:"city,omitempty"`
	State             string `json:"state,omitempty"`
	Phone             string `json:"phone,omitempty"`
	CellPhone         string `json:"cell_phone,omitempty"`
	Email             string `json:"email,omitempty"`
	Website           string `json:"website,omitempty"`
	Instagram         string `json:"instagram,omitempty"`
	ContactPerson     string `json:"contact_person,omitempty"`
	FollowUpDate      string `json:"follow_up_date,omitempty"`
	Outcome           string `json:"outcome,omitempty"`
	VisitDate         string `json:"visit_date,omitempty"`
	ContactMethod     string `json:"contact_method,omitempty"`
	StatusUpdatedBy   string `json:"status_updated_by,omitempty"`
	StatusUpdatedDate string `json:"status_updated_date,omitempty"`
	Notes             string `json:"notes,omitempty"`
	FollowUpEventLink string `json:"follow_up_event_link,omitempty"`

	// Row is the 1-based sheet row the location was read from.
	Row int `json:"row,omitempty"`
}

// NoteLine formats one sales-process note entry. The submission id tag makes
// reprocessing detectable (see HasNote).
func NoteLine(timestamp, submittedBy, submissionID, remark string) string {
	return fmt.Sprintf("[%s | %s | %s] %s", timestamp, submittedBy, submissionID, remark)
}

// AppendNote appends a note line to an existing notes log, separating entries
// with a blank line. Prior entries are never modified.
func AppendNote(existing, line string) string {
	if strings.TrimSpace(existing) == "" {
		return line
	}
	return strings.TrimSpace(existing) + "\n\n" + line
}

// HasNote reports whether the notes log already carries an entry tagged with
// the given submission id.
func HasNote(notes, submissionID string) bool {
	if submissionID == "" {
		return false
	}
	return strings.Contains(notes, "| "+submissionID+"]")
}
