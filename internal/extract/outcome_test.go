package extract

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/remarks-cli/internal/model"
)

var outcomeNow = time.Date(2025, time.November, 20, 9, 0, 0, 0, time.UTC)

func TestOutcome_PartneredFixedLabel(t *testing.T) {
	outcome, visitDate, method := Outcome(model.StatusPartnered, "signed agreement, restock in two weeks", outcomeNow)
	assert.Equal(t, "Partnered - Consignment agreement signed", outcome)
	assert.Empty(t, visitDate)
	assert.Empty(t, method)
}

func TestOutcome_PartneredDropOffImpliesVisit(t *testing.T) {
	outcome, visitDate, method := Outcome(model.StatusPartnered, "dropped off first batch of 12 bars", outcomeNow)
	assert.Equal(t, "Partnered - Consignment agreement signed", outcome)
	assert.Equal(t, "2025-11-20", visitDate)
	assert.Equal(t, "In Person", method)
}

func TestOutcome_RejectedCarriesReason(t *testing.T) {
	outcome, _, _ := Outcome(model.StatusRejected, "Not set up for consignment, already carry own cacao", outcomeNow)
	assert.Equal(t, "Rejected - Not set up for consignment, already carry own cacao", outcome)
}

func TestOutcome_RejectedReasonTruncated(t *testing.T) {
	long := strings.Repeat("no shelf space ", 20)
	outcome, _, _ := Outcome(model.StatusRejected, long, outcomeNow)
	assert.Equal(t, "Rejected - "+long[:100], outcome)
}

func TestOutcome_ManagerFollowUpPhone(t *testing.T) {
	_, visitDate, method := Outcome(model.StatusManagerFollowUp, "call her on the store phone Thursday", outcomeNow)
	assert.Equal(t, "Phone", method)
	assert.Empty(t, visitDate)
}

func TestOutcome_ManagerFollowUpInPerson(t *testing.T) {
	_, visitDate, method := Outcome(model.StatusManagerFollowUp, "popped by, manager out until Monday", outcomeNow)
	assert.Equal(t, "In Person", method)
	assert.Equal(t, "2025-11-20", visitDate)
}

func TestOutcome_StatusWithoutRules(t *testing.T) {
	outcome, visitDate, method := Outcome(model.StatusOnHold, "revisit after the holidays", outcomeNow)
	assert.Empty(t, outcome)
	assert.Empty(t, visitDate)
	assert.Empty(t, method)
}
