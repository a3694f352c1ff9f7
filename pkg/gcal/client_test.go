package gcal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/remarks-cli/internal/reconcile"
)

func TestCreateEvent_AllDay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/calendars/cal-1/events", r.URL.Path)

		var body eventRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Follow-up: Spice of Life", body.Summary)
		assert.Equal(t, "2025-12-03", body.Start.Date)
		assert.Equal(t, "2025-12-04", body.End.Date)
		assert.Empty(t, body.Start.DateTime)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(eventResponse{
			ID:       "ev-1",
			HTMLLink: "https://calendar.example/ev-1",
		})
	}))
	defer srv.Close()

	client := NewClient("cal-1", WithBaseURL(srv.URL))
	link, err := client.CreateEvent(context.Background(), reconcile.Event{
		Title: "Follow-up: Spice of Life",
		Date:  "2025-12-03",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://calendar.example/ev-1", link)
}

func TestCreateEvent_Timed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body eventRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Empty(t, body.Start.Date)
		assert.Equal(t, "2025-11-24T10:00:00-08:00", body.Start.DateTime)
		assert.Equal(t, "2025-11-24T11:00:00-08:00", body.End.DateTime)
		assert.Equal(t, "America/Los_Angeles", body.Start.TimeZone)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(eventResponse{HTMLLink: "https://calendar.example/ev-2"})
	}))
	defer srv.Close()

	client := NewClient("cal-1", WithBaseURL(srv.URL))
	link, err := client.CreateEvent(context.Background(), reconcile.Event{
		Title: "Follow-up: Moon Goddess Market",
		Date:  "2025-11-24",
		Time:  "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://calendar.example/ev-2", link)
}

func TestCreateEvent_BadDate(t *testing.T) {
	client := NewClient("cal-1")
	_, err := client.CreateEvent(context.Background(), reconcile.Event{
		Title: "Follow-up: Somewhere",
		Date:  "Dec 3rd",
	})
	assert.Error(t, err)
}

func TestCreateEvent_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "credentials"}`))
	}))
	defer srv.Close()

	client := NewClient("cal-1", WithBaseURL(srv.URL))
	_, err := client.CreateEvent(context.Background(), reconcile.Event{
		Title: "Follow-up: Somewhere",
		Date:  "2025-12-03",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
