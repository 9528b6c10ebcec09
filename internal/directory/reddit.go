// Package directory implements the advisory reddit username existence
// check. It is informational only: every outcome, including timeouts and
// upstream errors, degrades to a result payload and never to a hard
// failure, so a broken or slow reddit can never block login or
// participation.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wb-go/wbf/logger"
)

const maxUsernameLen = 30

// Result is returned to the client verbatim with HTTP 200 regardless of
// outcome.
type Result struct {
	Exists       bool   `json:"exists"`
	Canonical    string `json:"canonical,omitempty"`
	CaseMismatch bool   `json:"caseMismatch,omitempty"`
	Reason       string `json:"reason,omitempty"`
	Error        string `json:"error,omitempty"`
	Status       int    `json:"status,omitempty"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     logger.Logger
}

func NewClient(baseURL, userAgent string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		logger:     log,
	}
}

// CheckUsername probes reddit's public about.json for the handle. The
// probe is best-effort: failures map to machine-readable reason codes.
func (c *Client) CheckUsername(ctx context.Context, username string) Result {
	if len(username) > maxUsernameLen {
		return Result{Exists: false, Reason: "too_long"}
	}

	endpoint := fmt.Sprintf("%s/user/%s/about.json", c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Result{Exists: false, Error: "fetch_failed"}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		reason := "fetch_failed"
		var urlErr *url.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &urlErr) && urlErr.Timeout()) {
			reason = "timeout"
		}
		c.logger.Warn("username check failed",
			logger.String("username", username),
			logger.String("reason", reason),
		)
		return Result{Exists: false, Error: reason}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return c.parseAbout(resp, username)
	case http.StatusNotFound:
		return Result{Exists: false, Reason: "not_found"}
	case http.StatusTooManyRequests:
		return Result{Exists: false, Error: "rate_limited", Status: resp.StatusCode}
	default:
		return Result{Exists: false, Error: "unexpected_status", Status: resp.StatusCode}
	}
}

func (c *Client) parseAbout(resp *http.Response, username string) Result {
	var body struct {
		Data struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	// A 200 with an unparseable body still counts as existing.
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Data.Name == "" {
		return Result{Exists: true}
	}

	canonical := body.Data.Name
	if !strings.EqualFold(canonical, username) {
		return Result{Exists: true}
	}

	return Result{
		Exists:       true,
		Canonical:    canonical,
		CaseMismatch: canonical != username,
	}
}
