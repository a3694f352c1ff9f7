// Package gsheets is a thin client for the Google Sheets v4 values API.
package gsheets

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
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://sheets.googleapis.com/v4"

// Client performs worksheet reads and writes against one spreadsheet.
// Rows and columns are 1-based, matching A1 notation.
type Client interface {
	ReadAll(ctx context.Context, worksheet string) ([][]string, error)
	ReadCell(ctx context.Context, worksheet string, row, col int) (string, error)
	UpdateCell(ctx context.Context, worksheet string, row, col int, value string) error
	AppendRow(ctx context.Context, worksheet string, values []string) error
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

// WithRateLimit sets the request rate in requests per second.
func WithRateLimit(rps float64) Option {
	return func(c *httpClient) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), max(int(rps), 1))
		} else {
			c.limiter = nil
		}
	}
}

type httpClient struct {
	spreadsheetID string
	baseURL       string
	http          *http.Client
	limiter       *rate.Limiter
}

// NewClient creates a Sheets client bound to one spreadsheet.
func NewClient(spreadsheetID string, opts ...Option) Client {
	c := &httpClient{
		spreadsheetID: spreadsheetID,
		baseURL:       defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(1, 1),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type valueRange struct {
	Values [][]string `json:"values"`
}

func (c *httpClient) ReadAll(ctx context.Context, worksheet string) ([][]string, error) {
	vr, err := c.getValues(ctx, fmt.Sprintf("'%s'", worksheet))
	if err != nil {
		return nil, err
	}
	return vr.Values, nil
}

func (c *httpClient) ReadCell(ctx context.Context, worksheet string, row, col int) (string, error) {
	vr, err := c.getValues(ctx, cellRange(worksheet, row, col))
	if err != nil {
		return "", err
	}
	if len(vr.Values) == 0 || len(vr.Values[0]) == 0 {
		return "", nil
	}
	return vr.Values[0][0], nil
}

func (c *httpClient) UpdateCell(ctx context.Context, worksheet string, row, col int, value string) error {
	rng := cellRange(worksheet, row, col)
	body := valueRange{Values: [][]string{{value}}}
	path := fmt.Sprintf("/spreadsheets/%s/values/%s?valueInputOption=USER_ENTERED",
		c.spreadsheetID, url.PathEscape(rng))
	return c.write(ctx, http.MethodPut, path, body)
}

func (c *httpClient) AppendRow(ctx context.Context, worksheet string, values []string) error {
	body := valueRange{Values: [][]string{values}}
	path := fmt.Sprintf("/spreadsheets/%s/values/%s:append?valueInputOption=USER_ENTERED&insertDataOption=INSERT_ROWS",
		c.spreadsheetID, url.PathEscape(fmt.Sprintf("'%s'", worksheet)))
	return c.write(ctx, http.MethodPost, path, body)
}

func (c *httpClient) getValues(ctx context.Context, rng string) (*valueRange, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/spreadsheets/%s/values/%s", c.baseURL, c.spreadsheetID, url.PathEscape(rng))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, eris.Wrap(err, "gsheets: create request")
	}

	respBody, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var vr valueRange
	if err := json.Unmarshal(respBody, &vr); err != nil {
		return nil, eris.Wrap(err, "gsheets: unmarshal response")
	}
	return &vr, nil
}

func (c *httpClient) write(ctx context.Context, method, path string, body valueRange) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return eris.Wrap(err, "gsheets: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return eris.Wrap(err, "gsheets: create request")
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req)
	return err
}

func (c *httpClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "gsheets: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "gsheets: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("gsheets: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}

func (c *httpClient) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return eris.Wrap(c.limiter.Wait(ctx), "gsheets: rate limit wait")
}

// cellRange builds the A1 range for one cell, e.g. 'Hit List'!C5.
func cellRange(worksheet string, row, col int) string {
	return fmt.Sprintf("'%s'!%s%d", worksheet, colLetter(col), row)
}

func colLetter(col int) string {
	var s string
	for col > 0 {
		col--
		s = string(rune('A'+col%26)) + s
		col /= 26
	}
	return s
}
