package sheet

import "github.com/sells-group/remarks-cli/internal/model"

func submissionFixture() model.Submission {
	return model.Submission{
		ID:          "sub-4",
		ShopName:    "Infinity Coven",
		Status:      "On Hold",
		Remarks:     "revisit after the holidays",
		SubmittedBy: "field-team",
		SubmittedAt: "2025-11-21T09:00:00Z",
	}
}
