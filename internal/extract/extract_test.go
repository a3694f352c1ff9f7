package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/remarks-cli/internal/model"
)

func TestRun_SpiceOfLife(t *testing.T) {
	now := time.Date(2025, time.November, 20, 9, 0, 0, 0, time.UTC)

	ex := Run("cell phone 805-610-4130, follow up 3rd Dec", "Spice of Life", model.StatusManagerFollowUp, now, nil)

	assert.Equal(t, "(805) 610-4130", ex.CellPhone)
	assert.Empty(t, ex.Phone, "cell match suppresses the plain phone field")
	assert.Equal(t, "2025-12-03", ex.FollowUpDate)
}

func TestRun_PlainPhoneWhenNoCellMarker(t *testing.T) {
	now := time.Date(2025, time.November, 20, 9, 0, 0, 0, time.UTC)

	ex := Run("store line 805-610-4130", "Spice of Life", model.StatusContacted, now, nil)

	assert.Equal(t, "(805) 610-4130", ex.Phone)
	assert.Empty(t, ex.CellPhone)
}

func TestRun_EmptyRemarks(t *testing.T) {
	ex := Run("", "Moon Kissed", model.StatusNotAppropriate, time.Now(), nil)
	assert.Equal(t, model.Extraction{}, ex)
}

func TestRun_CombinedFields(t *testing.T) {
	now := time.Date(2025, time.November, 20, 9, 0, 0, 0, time.UTC)
	text := "Niccolina signed today, dropped off 6 bars. IG https://instagram.com/goaskalice, email niccolina@goaskalice.com"

	ex := Run(text, "Go Ask Alice", model.StatusPartnered, now, nil)

	assert.Equal(t, "@goaskalice", ex.Instagram)
	assert.Equal(t, "niccolina@goaskalice.com", ex.Email)
	assert.Equal(t, "Partnered - Consignment agreement signed", ex.Outcome)
	assert.Equal(t, "In Person", ex.ContactMethod)
	assert.Equal(t, "2025-11-20", ex.VisitDate)
}
