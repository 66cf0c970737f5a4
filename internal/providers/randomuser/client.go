package randomuser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// API Docs: https://randomuser.me/documentation
// Sample request: https://randomuser.me/api/?inc=name,gender,picture&noinfo&nat=FR
const (
	BaseURL          = "https://randomuser.me/api/"
	DefaultUserAgent = "IDConsole/7.0"
)

var (
	// ErrUnexpectedStatus is returned for any non-200 response
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrNoResults is returned when the service answers without a profile
	ErrNoResults = errors.New("no results")
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger, baseURL, userAgent string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		userAgent:  userAgent,
		logger:     logger.With("component", "randomuser-client"),
	}
}

// GetUser fetches one random profile. nationality may be empty.
func (c *Client) GetUser(ctx context.Context, nationality string) (*Result, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	// noinfo is a bare flag, so the query is assembled by hand
	q := url.Values{}
	q.Set("inc", "name,gender,picture")
	if nationality != "" {
		q.Set("nat", nationality)
	}
	u.RawQuery = q.Encode() + "&noinfo"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("fetching random user", "nationality", nationality, "url", u.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch random user", "nationality", nationality, "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Error("random user API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode random user response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(apiResp.Results) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoResults, apiResp.Error)
	}

	user := apiResp.Results[0]
	c.logger.Debug("successfully fetched random user", "nationality", nationality, "gender", user.Gender)

	return &user, nil
}
