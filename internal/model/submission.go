package model

import "time"

// Submission is one free-text remark about a sales visit, tied to a shop and
// a status. Submissions are written by the intake form and are read-only to
// the engine except for the processed flag.
type Submission struct {
	ID          string     `json:"id"`
	ShopName    string     `json:"shop_name"`
	Status      string     `json:"status"`
	Remarks     string     `json:"remarks"`
	SubmittedBy string     `json:"submitted_by"`
	SubmittedAt string     `json:"submitted_at,omitempty"`
	Processed   bool       `json:"processed"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`

	// Row is the 1-based sheet row the submission was read from.
	Row int `json:"row,omitempty"`
}

// Known status labels from the intake form. The set is open-ended; the engine
// treats unknown labels as pass-through.
const (
	StatusContacted       = "Contacted"
	StatusRejected        = "Rejected"
	StatusPartnered       = "Partnered"
	StatusManagerFollowUp = "Manager Follow-up"
	StatusOnHold          = "On Hold"
	StatusShortlisted     = "Shortlisted"
	StatusNotAppropriate  = "Not Appropriate"
)
