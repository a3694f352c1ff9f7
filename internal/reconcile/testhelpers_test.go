package reconcile

import (
	"context"
	"time"

	"github.com/sells-group/remarks-cli/internal/model"
	"github.com/sells-group/remarks-cli/internal/sheet"
)

const (
	hitList = "Hit List"
	remarks = "DApp Remarks"
)

var hitListHeader = []string{
	"Shop Name", "Status", "Address", "City", "State",
	"Phone", "Cell Phone", "Email", "Website", "Instagram",
	"Contact Person", "Follow Up Date", "Outcome", "Visit Date", "Contact Method",
	"Status Updated By", "Status Updated Date", "Sales Process Notes", "Follow Up Event Link",
}

var remarksHeader = []string{
	"Submission ID", "Shop Name", "Status", "Remarks",
	"Submitted By", "Submitted At", "Processed", "Processed At",
}

// hitRow builds a hit-list row with just a name and status.
func hitRow(name, status string) []string {
	row := make([]string, len(hitListHeader))
	row[0] = name
	row[1] = status
	return row
}

func remarkRow(id, shop, status, text, by string) []string {
	return []string{id, shop, status, text, by, "", "", ""}
}

func testClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, time.November, 20, 9, 0, 0, 0, time.UTC)
	}
}

type fakeCalendar struct {
	events []Event
	link   string
	err    error
}

func (f *fakeCalendar) CreateEvent(_ context.Context, ev Event) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.events = append(f.events, ev)
	return f.link, nil
}

type env struct {
	mem         *sheet.Memory
	locations   *sheet.Locations
	submissions *sheet.Submissions
	tracker     *Tracker
	calendar    *fakeCalendar
}

func newEnv(hitRows, remarkRows [][]string) *env {
	mem := sheet.NewMemory(map[string][][]string{
		hitList: append([][]string{hitListHeader}, hitRows...),
		remarks: append([][]string{remarksHeader}, remarkRows...),
	})
	subs := sheet.NewSubmissions(mem, remarks)
	tracker := NewTracker(subs)
	tracker.now = testClock()
	return &env{
		mem:         mem,
		locations:   sheet.NewLocations(mem, hitList),
		submissions: subs,
		tracker:     tracker,
		calendar:    &fakeCalendar{link: "https://calendar.example/evt-1"},
	}
}

func (e *env) engine(opts ...Option) *Engine {
	base := []Option{WithCalendar(e.calendar), WithClock(testClock())}
	return New(e.locations, append(base, opts...)...)
}

func (e *env) submission(id string) *model.Submission {
	sub, err := e.submissions.Get(context.Background(), id)
	if err != nil {
		panic(err)
	}
	return sub
}
