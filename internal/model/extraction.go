package model

// Extraction holds the optional field values pulled out of one remark's text.
// Empty string means the extractor found nothing. Extractions are consumed by
// the merge step and never persisted directly.
type Extraction struct {
	Phone         string `json:"phone,omitempty"`
	CellPhone     string `json:"cell_phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Website       string `json:"website,omitempty"`
	Instagram     string `json:"instagram,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	ContactPerson string `json:"contact_person,omitempty"`
	FollowUpDate  string `json:"follow_up_date,omitempty"`
	Outcome       string `json:"outcome,omitempty"`
	VisitDate     string `json:"visit_date,omitempty"`
	ContactMethod string `json:"contact_method,omitempty"`
}

// Fields returns the extraction as a name → value map, empty values included.
// Names match the Location field they feed.
func (e Extraction) Fields() map[string]string {
	return map[string]string{
		"phone":          e.Phone,
		"cell_phone":     e.CellPhone,
		"email":          e.Email,
		"website":        e.Website,
		"instagram":      e.Instagram,
		"address":        e.Address,
		"city":           e.City,
		"state":          e.State,
		"contact_person": e.ContactPerson,
		"follow_up_date": e.FollowUpDate,
		"outcome":        e.Outcome,
		"visit_date":     e.VisitDate,
		"contact_method": e.ContactMethod,
	}
}
