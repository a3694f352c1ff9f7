package extract

import (
	"time"

	"github.com/sells-group/remarks-cli/internal/model"
)

// Run applies every pattern extractor to the remark text and assembles the
// result. A cell-phone match suppresses the plain-phone extractor so the same
// number is not recorded in both fields. Empty remark text yields an empty
// extraction.
func Run(remarks, shopName, status string, now time.Time, overrides []PersonOverride) model.Extraction {
	var ex model.Extraction
	if remarks == "" {
		return ex
	}

	ex.CellPhone = CellPhone(remarks)
	if ex.CellPhone == "" {
		ex.Phone = Phone(remarks)
	}

	ex.Email = Email(remarks)
	ex.Website = Website(remarks)
	ex.Instagram = Instagram(remarks)
	ex.Address, ex.City, ex.State = Address(remarks)
	ex.ContactPerson = ContactPerson(remarks, shopName, overrides)
	ex.FollowUpDate = FollowUpDate(remarks, now)
	ex.Outcome, ex.VisitDate, ex.ContactMethod = Outcome(status, remarks, now)

	return ex
}
