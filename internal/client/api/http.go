package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cyberdetect/cdetect/internal/client/models"
	"github.com/cyberdetect/cdetect/internal/logging"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

const requestIDHeader = "X-Request-Id"

// HTTPClient talks JSON over HTTP to the lookup service. It is configured
// with an ordered list of candidate base URLs (e.g. localhost vs 127.0.0.1);
// each request walks the list and the first base that answers at the
// transport level is remembered and preferred afterwards.
type HTTPClient struct {
	endpoints []string
	http      *http.Client
	log       logging.Logger

	mu        sync.Mutex
	preferred int
}

// NewHTTPClient builds a client over the given candidate base URLs.
// Trailing slashes are trimmed. The timeout applies per HTTP request.
func NewHTTPClient(endpoints []string, timeout time.Duration, log logging.Logger) *HTTPClient {
	cleaned := make([]string, 0, len(endpoints))
	for _, e := range endpoints {
		cleaned = append(cleaned, strings.TrimRight(e, "/"))
	}
	return &HTTPClient{
		endpoints: cleaned,
		http:      &http.Client{Timeout: timeout},
		log:       log.With("component", "api"),
	}
}

// order returns endpoint indexes to try, preferred first.
func (c *HTTPClient) order() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := make([]int, 0, len(c.endpoints))
	for i := range c.endpoints {
		idx = append(idx, (c.preferred+i)%len(c.endpoints))
	}
	return idx
}

func (c *HTTPClient) remember(i int) {
	c.mu.Lock()
	c.preferred = i
	c.mu.Unlock()
}

// roundTrip sends the request against candidate endpoints in order and
// returns the first response obtained. Only transport-level failures move on
// to the next endpoint; any HTTP response, success or error, is final.
// All candidates failing yields ErrUnavailable.
func (c *HTTPClient) roundTrip(ctx context.Context, method, path string, query url.Values, token string, body any) (*http.Response, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
	}

	requestID := uuid.NewString()
	var lastErr error

	for _, i := range c.order() {
		target := c.endpoints[i] + path
		if len(query) > 0 {
			target += "?" + query.Encode()
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, target, reader)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set(requestIDHeader, requestID)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			c.log.Warn(ctx, "endpoint unreachable", "url", target, "request_id", requestID, "error", err)
			lastErr = err
			continue
		}

		c.remember(i)
		return resp, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

// decode reads a JSON body into out, classifying non-JSON answers.
func decode(resp *http.Response, out any) error {
	defer resp.Body.Close()

	ct := resp.Header.Get("Content-Type")
	if !strings.Contains(ct, "application/json") {
		return ErrBadResponse
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return ErrBadResponse
	}
	return nil
}

// errorBody is the shape of a structured remote failure; the service uses
// either field depending on the endpoint.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e errorBody) text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

// remoteError turns a non-2xx response into a typed error.
func remoteError(resp *http.Response) error {
	var eb errorBody
	if err := decode(resp, &eb); err != nil {
		return err
	}
	msg := eb.text()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}

// missingAccount recognizes the error texts the service uses when a login
// references an unknown account.
func missingAccount(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "not found") ||
		strings.Contains(lower, "does not exist") ||
		strings.Contains(lower, "no user found")
}

// Health probes GET /health. The probe is retried a small bounded number of
// times with constant backoff; this is the only automatic retry anywhere in
// the client.
func (c *HTTPClient) Health(ctx context.Context) error {
	backoff := retry.WithMaxRetries(2, retry.NewConstant(300*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := c.roundTrip(ctx, http.MethodGet, "/health", nil, "", nil)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		if resp.StatusCode != http.StatusOK {
			return retry.RetryableError(fmt.Errorf("%w: health status %d", ErrUnavailable, resp.StatusCode))
		}
		return nil
	})
}

// Login posts credentials to /auth/login and returns session credentials.
func (c *HTTPClient) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	body := map[string]string{"identifier": identifier, "password": password}

	resp, err := c.roundTrip(ctx, http.MethodPost, "/auth/login", nil, "", body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := remoteError(resp)
		var apiErr *APIError
		switch {
		case errors.As(err, &apiErr) && missingAccount(apiErr.Message):
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, apiErr.Message)
		case errors.Is(err, ErrUnauthorized) && missingAccount(err.Error()):
			return nil, fmt.Errorf("%w: %v", ErrAccountNotFound, err)
		default:
			return nil, err
		}
	}

	var result LoginResult
	if err := decode(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register posts the profile fields and password to /auth/register.
func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) error {
	resp, err := c.roundTrip(ctx, http.MethodPost, "/auth/register", nil, "", req)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return remoteError(resp)
	}
	return decode(resp, nil)
}

// profileBody is the raw answer of GET /auth/profile/:userId.
type profileBody struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// Profile fetches the user's profile with a bearer token.
func (c *HTTPClient) Profile(ctx context.Context, token, userID string) (*models.Profile, error) {
	resp, err := c.roundTrip(ctx, http.MethodGet, "/auth/profile/"+url.PathEscape(userID), nil, token, nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, remoteError(resp)
	}

	var pb profileBody
	if err := decode(resp, &pb); err != nil {
		return nil, err
	}

	return &models.Profile{
		FirstName: pb.FirstName,
		LastName:  pb.LastName,
		Email:     pb.Email,
		JoinDate:  joinDate(pb.CreatedAt),
	}, nil
}

// joinDate extracts the calendar date from an RFC 3339 timestamp, keeping
// the raw value when it does not parse.
func joinDate(createdAt string) string {
	if createdAt == "" {
		return ""
	}
	if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
		return ts.Format("2006-01-02")
	}
	return createdAt
}

// Search submits the query to /api/data1/search. The category is passed as
// the "type" parameter; "all" (and empty) means no filter.
func (c *HTTPClient) Search(ctx context.Context, token, query string, category models.SearchCategory) ([]models.Person, error) {
	q := url.Values{"query": {query}}
	if category != "" && category != models.CategoryAll {
		q.Set("type", string(category))
	}

	resp, err := c.roundTrip(ctx, http.MethodGet, "/api/data1/search", q, token, nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, remoteError(resp)
	}

	var rows []models.Person
	if err := decode(resp, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
