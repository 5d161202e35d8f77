// Package superclip implements the HTTP client for the SuperClip referral API.
//
// Every response travels in a success envelope; the client unwraps it and
// normalizes failures into *APIError values so handlers never inspect raw
// HTTP responses.
package superclip

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrUnauthorized marks responses rejected by the backend auth layer.
var ErrUnauthorized = errors.New("superclip: unauthorized")

// maxResponseBytes caps how much of a backend response body is read.
const maxResponseBytes = 1 << 20

// APIError is a normalized backend failure.
type APIError struct {
	Status  int
	Message string
	Errors  map[string]string

	wrapped error
}

// Error returns the operator-facing message.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap exposes sentinel errors such as ErrUnauthorized.
func (e *APIError) Unwrap() error {
	return e.wrapped
}

// Client calls the SuperClip REST API on behalf of operator sessions.
//
// Tokens are passed per call because the admin service holds one session per
// operator. The unauthorized hook fires once per rejected response so the
// session layer can discard the stale token without forcing a redirect.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	onUnauthorized func(token string)
}

// NewClient builds a client for the given API base URL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
	}
}

// SetUnauthorizedHook registers fn to run whenever a non-login call is
// rejected with 401. The rejected token is passed through.
func (c *Client) SetUnauthorizedHook(fn func(token string)) {
	if c == nil {
		return
	}
	c.onUnauthorized = fn
}

// envelope mirrors the backend response wrapper. The invites endpoint uses
// dedicated `invites` and `pagination` keys instead of `data`.
type envelope struct {
	Success    *bool             `json:"success"`
	Data       json.RawMessage   `json:"data"`
	Message    string            `json:"message"`
	Errors     map[string]string `json:"errors"`
	Invites    json.RawMessage   `json:"invites"`
	Pagination json.RawMessage   `json:"pagination"`
}

// Login authenticates operator credentials and returns the session material.
//
// A 401 here is a credential failure, not a session expiry, so the
// unauthorized hook is not invoked.
func (c *Client) Login(ctx context.Context, email, password string) (LoginSession, error) {
	body := map[string]string{"email": email, "password": password}
	env, raw, err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, body, "Login failed", false)
	if err != nil {
		return LoginSession{}, err
	}

	var session LoginSession
	if err := decodeData(env, raw, &session); err != nil {
		return LoginSession{}, fmt.Errorf("decode login response: %w", err)
	}
	if strings.TrimSpace(session.Token) == "" {
		return LoginSession{}, &APIError{Status: http.StatusOK, Message: "Login failed"}
	}
	return session, nil
}

// Logout invalidates the token server-side. Callers treat failures as
// best-effort; the local session is discarded regardless.
func (c *Client) Logout(ctx context.Context, token string) error {
	_, _, err := c.do(ctx, http.MethodPost, "/auth/logout", token, nil, nil, "Logout failed", true)
	return err
}

// Members fetches the full membership record set.
func (c *Client) Members(ctx context.Context, token string) ([]Member, error) {
	env, raw, err := c.do(ctx, http.MethodGet, "/members", token, nil, nil, "Failed to fetch Discord members", true)
	if err != nil {
		return nil, err
	}

	var members []Member
	if err := decodeData(env, raw, &members); err != nil {
		return nil, fmt.Errorf("decode members response: %w", err)
	}
	return members, nil
}

// ReferralStatistics fetches fresh referral statistics for one referrer.
func (c *Client) ReferralStatistics(ctx context.Context, token, referrerID string) (ReferralStatistics, error) {
	referrerID = strings.TrimSpace(referrerID)
	if referrerID == "" {
		return ReferralStatistics{}, fmt.Errorf("referrer id is required")
	}

	path := "/referrals/statistics/" + url.PathEscape(referrerID)
	env, raw, err := c.do(ctx, http.MethodGet, path, token, nil, nil, "Failed to fetch referral statistics", true)
	if err != nil {
		return ReferralStatistics{}, err
	}

	var stats ReferralStatistics
	if err := decodeData(env, raw, &stats); err != nil {
		return ReferralStatistics{}, fmt.Errorf("decode statistics response: %w", err)
	}
	return stats, nil
}

// Invites fetches one server-side page of invite records.
func (c *Client) Invites(ctx context.Context, token string, query InviteQuery) (InvitePage, error) {
	params := url.Values{}
	if status := strings.TrimSpace(query.Status); status != "" {
		params.Set("status", status)
	}
	if expiry := strings.TrimSpace(query.ExpiryType); expiry != "" {
		params.Set("expiryType", expiry)
	}
	params.Set("offset", strconv.Itoa(query.Offset))
	params.Set("limit", strconv.Itoa(query.Limit))

	env, raw, err := c.do(ctx, http.MethodGet, "/invites", token, params, nil, "Failed to fetch invites", true)
	if err != nil {
		return InvitePage{}, err
	}

	var page InvitePage
	if env != nil && len(env.Invites) > 0 {
		if err := json.Unmarshal(env.Invites, &page.Invites); err != nil {
			return InvitePage{}, fmt.Errorf("decode invites response: %w", err)
		}
		if len(env.Pagination) > 0 {
			if err := json.Unmarshal(env.Pagination, &page.Pagination); err != nil {
				return InvitePage{}, fmt.Errorf("decode invites pagination: %w", err)
			}
		}
		return page, nil
	}

	var data struct {
		Invites    []Invite   `json:"invites"`
		Pagination Pagination `json:"pagination"`
	}
	if err := decodeData(env, raw, &data); err != nil {
		return InvitePage{}, fmt.Errorf("decode invites response: %w", err)
	}
	return InvitePage{Invites: data.Invites, Pagination: data.Pagination}, nil
}

// do performs one backend request and returns the decoded envelope plus the
// raw body for payloads that skip the `data` key.
func (c *Client) do(ctx context.Context, method, path, token string, params url.Values, body any, fallback string, sessionScoped bool) (*envelope, []byte, error) {
	if c == nil || c.httpClient == nil {
		return nil, nil, fmt.Errorf("superclip client is not configured")
	}

	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token = strings.TrimSpace(token); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", fallback, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	env := &envelope{}
	if err := json.Unmarshal(raw, env); err != nil {
		env = nil
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if sessionScoped && c.onUnauthorized != nil {
			c.onUnauthorized(token)
		}
		return nil, nil, &APIError{
			Status:  resp.StatusCode,
			Message: envelopeMessage(env, fallback),
			Errors:  envelopeErrors(env),
			wrapped: ErrUnauthorized,
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, nil, &APIError{
			Status:  resp.StatusCode,
			Message: envelopeMessage(env, fallback),
			Errors:  envelopeErrors(env),
		}
	}

	if env != nil && env.Success != nil && !*env.Success {
		return nil, nil, &APIError{
			Status:  resp.StatusCode,
			Message: envelopeMessage(env, fallback),
			Errors:  envelopeErrors(env),
		}
	}

	return env, raw, nil
}

// decodeData unmarshals the envelope's data key, or the whole body when the
// backend skipped the wrapper.
func decodeData(env *envelope, raw []byte, target any) error {
	if env != nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		return json.Unmarshal(env.Data, target)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, target)
}

func envelopeMessage(env *envelope, fallback string) string {
	if env != nil {
		if msg := strings.TrimSpace(env.Message); msg != "" {
			return msg
		}
	}
	return fallback
}

func envelopeErrors(env *envelope) map[string]string {
	if env == nil {
		return nil
	}
	return env.Errors
}
