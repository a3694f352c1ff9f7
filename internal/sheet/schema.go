package sheet

import "strings"

// Column names in the hit-list worksheet. Only the first three are required;
// the rest are written when present.
const (
	ColShopName          = "Shop Name"
	ColStatus            = "Status"
	ColNotes             = "Sales Process Notes"
	ColAddress           = "Address"
	ColCity              = "City"
	ColState             = "State"
	ColPhone             = "Phone"
	ColCellPhone         = "Cell Phone"
	ColEmail             = "Email"
	ColWebsite           = "Website"
	ColInstagram         = "Instagram"
	ColContactPerson     = "Contact Person"
	ColFollowUpDate      = "Follow Up Date"
	ColOutcome           = "Outcome"
	ColVisitDate         = "Visit Date"
	ColContactMethod     = "Contact Method"
	ColStatusUpdatedBy   = "Status Updated By"
	ColStatusUpdatedDate = "Status Updated Date"
	ColEventLink         = "Follow Up Event Link"
)

// Column names in the remarks worksheet.
const (
	ColSubmissionID = "Submission ID"
	ColRemarks      = "Remarks"
	ColSubmittedBy  = "Submitted By"
	ColSubmittedAt  = "Submitted At"
	ColProcessed    = "Processed"
	ColProcessedAt  = "Processed At"
)

// headerIndex maps trimmed header names to 0-based column indexes. A UTF-8
// BOM on the first header cell is stripped, matching what the intake form
// exports.
func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
		if name == "" {
			continue
		}
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	return idx
}

// requireColumns returns a SchemaError for the first missing column.
func requireColumns(worksheet string, idx map[string]int, columns ...string) error {
	for _, c := range columns {
		if _, ok := idx[c]; !ok {
			return &SchemaError{Worksheet: worksheet, Column: c}
		}
	}
	return nil
}

// cell returns the trimmed value at col in row, tolerating short rows.
func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
