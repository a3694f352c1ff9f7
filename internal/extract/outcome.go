package extract

import (
	"strings"
	"time"

	"github.com/sells-group/remarks-cli/internal/model"
)

const outcomePartnered = "Partnered - Consignment agreement signed"

// outcomeReasonLimit caps how much remark text is carried into a rejection
// outcome label.
const outcomeReasonLimit = 100

// Outcome derives the outcome label, visit date, and contact method from the
// submission's status and remark text. Fields the status does not speak to
// come back empty.
func Outcome(status, remarks string, now time.Time) (outcome, visitDate, contactMethod string) {
	lower := strings.ToLower(remarks)
	today := now.Format("2006-01-02")

	switch status {
	case model.StatusPartnered:
		outcome = outcomePartnered
		if strings.Contains(lower, "dropped off") || strings.Contains(lower, "visit") {
			visitDate = today
			contactMethod = "In Person"
		}
	case model.StatusRejected:
		reason := remarks
		if len(reason) > outcomeReasonLimit {
			reason = reason[:outcomeReasonLimit]
		}
		outcome = "Rejected - " + reason
	case model.StatusManagerFollowUp:
		switch {
		case strings.Contains(lower, "call") && strings.Contains(lower, "phone"):
			contactMethod = "Phone"
		case strings.Contains(lower, "popped by"), strings.Contains(lower, "visit"), strings.Contains(lower, "dropped off"):
			contactMethod = "In Person"
			visitDate = today
		}
	}
	return outcome, visitDate, contactMethod
}
