// Package api talks to the Al Adhan prayer times service, used as an
// external reference to compare locally computed schedules against.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/smokyabdulrahman/hisab/internal/geo"
)

const defaultBaseURL = "https://api.aladhan.com/v1"

// MethodKemenag is the Al Adhan id of the Indonesian Ministry of
// Religious Affairs method (subuh -20°, isya -18°).
const MethodKemenag = 20

// Client communicates with the Al Adhan API.
type Client struct {
	httpClient *http.Client
	// BaseURL is exported so tests can point it at httptest.
	BaseURL string
}

// NewClient creates a client with a 10 second timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		BaseURL: defaultBaseURL,
	}
}

// Query selects one day at one place.
type Query struct {
	Date       time.Time
	Coordinate geo.Coordinate
	Method     int    // Al Adhan method id, negative lets the service choose
	School     int    // 0 Shafi, 1 Hanafi, negative for the service default
	Timezone   string // IANA name, optional
}

// Timings fetches the reference timings for q.
func (c *Client) Timings(ctx context.Context, q Query) (*Response, error) {
	endpoint := fmt.Sprintf("%s/timings/%s", c.BaseURL, q.Date.Format("02-01-2006"))

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(q.Coordinate.Latitude, 'f', 6, 64))
	params.Set("longitude", strconv.FormatFloat(q.Coordinate.Longitude, 'f', 6, 64))
	if q.Method >= 0 {
		params.Set("method", strconv.Itoa(q.Method))
	}
	if q.School >= 0 {
		params.Set("school", strconv.Itoa(q.School))
	}
	if q.Timezone != "" {
		params.Set("timezonestring", q.Timezone)
	}

	return c.doRequest(ctx, endpoint, params)
}

func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp Response
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode API response: %w", err)
	}

	if apiResp.Code != 200 {
		return nil, fmt.Errorf("API error: code=%d status=%s", apiResp.Code, apiResp.Status)
	}

	return &apiResp, nil
}
