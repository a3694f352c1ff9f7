// Package gcal is a thin client for the Google Calendar v3 events API.
package gcal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/remarks-cli/internal/reconcile"
)

const defaultBaseURL = "https://www.googleapis.com/calendar/v3"

// Client creates follow-up events on one calendar.
type Client interface {
	reconcile.Calendar
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client. Pass an authenticated
// client here (oauth2 service account) for real API access.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithTimezone sets the timezone attached to timed events.
func WithTimezone(tz string) Option {
	return func(c *httpClient) {
		c.timezone = tz
	}
}

type httpClient struct {
	calendarID string
	baseURL    string
	timezone   string
	http       *http.Client
}

// NewClient creates a Calendar client bound to one calendar.
func NewClient(calendarID string, opts ...Option) Client {
	c := &httpClient{
		calendarID: calendarID,
		baseURL:    defaultBaseURL,
		timezone:   "America/Los_Angeles",
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type eventTime struct {
	Date     string `json:"date,omitempty"`
	DateTime string `json:"dateTime,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

type eventRequest struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Start       eventTime `json:"start"`
	End         eventTime `json:"end"`
}

type eventResponse struct {
	ID       string `json:"id"`
	HTMLLink string `json:"htmlLink"`
}

// CreateEvent creates an event for the follow-up and returns its link.
// Events with a time run one hour; date-only events are all-day.
func (c *httpClient) CreateEvent(ctx context.Context, ev reconcile.Event) (string, error) {
	req := eventRequest{
		Summary:     ev.Title,
		Description: ev.Description,
	}

	if ev.Time == "" {
		// All-day events end on the following date.
		day, err := time.Parse("2006-01-02", ev.Date)
		if err != nil {
			return "", eris.Wrapf(err, "gcal: parse date %q", ev.Date)
		}
		req.Start = eventTime{Date: ev.Date}
		req.End = eventTime{Date: day.AddDate(0, 0, 1).Format("2006-01-02")}
	} else {
		loc, err := time.LoadLocation(c.timezone)
		if err != nil {
			return "", eris.Wrapf(err, "gcal: load timezone %q", c.timezone)
		}
		start, err := time.ParseInLocation("2006-01-02 15:04", ev.Date+" "+ev.Time, loc)
		if err != nil {
			return "", eris.Wrapf(err, "gcal: parse time %q %q", ev.Date, ev.Time)
		}
		req.Start = eventTime{DateTime: start.Format(time.RFC3339), TimeZone: c.timezone}
		req.End = eventTime{DateTime: start.Add(time.Hour).Format(time.RFC3339), TimeZone: c.timezone}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", eris.Wrap(err, "gcal: marshal event")
	}

	u := fmt.Sprintf("%s/calendars/%s/events", c.baseURL, url.PathEscape(c.calendarID))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", eris.Wrap(err, "gcal: create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", eris.Wrap(err, "gcal: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", eris.Wrap(err, "gcal: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", eris.Errorf("gcal: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var result eventResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", eris.Wrap(err, "gcal: unmarshal response")
	}
	return result.HTMLLink, nil
}
