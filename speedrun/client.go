package speedrun

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client represents a speedrun.com API client.
// It holds no per-call state and is safe for concurrent use.
type Client struct {
	baseURL   *url.URL
	transport Transport
	metrics   *Metrics
	logger    zerolog.Logger
}

// NewClient creates a new speedrun.com client
func NewClient(logger zerolog.Logger, opts ...Option) (*Client, error) {
	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	baseURL, err := url.Parse(options.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", options.baseURL, err)
	}
	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return nil, fmt.Errorf("base URL must use http or https, got %q", options.baseURL)
	}
	if baseURL.Host == "" {
		return nil, fmt.Errorf("base URL must have a host, got %q", options.baseURL)
	}

	transport := options.transport
	if transport == nil {
		transport = newRestyTransport(options, logger)
	}

	return &Client{
		baseURL:   baseURL,
		transport: transport,
		metrics:   options.metrics,
		logger:    logger,
	}, nil
}

// BaseURL returns the API root the client resolves locators against
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// GetUser retrieves a single user by id
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	user, err := Fetch[User](ctx, c, NewRequest(UserEndpoint(id)))
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers retrieves the users matching filter. At least one filter must be set.
func (c *Client) ListUsers(ctx context.Context, filter UsersFilter) ([]User, error) {
	req, err := c.newRequest(UsersEndpoint(), filter.params())
	if err != nil {
		return nil, err
	}
	return Fetch[[]User](ctx, c, req)
}

// ListUserPersonalBests retrieves the personal bests of a user
func (c *Client) ListUserPersonalBests(ctx context.Context, id string, filter PersonalBestsFilter) ([]PersonalBest, error) {
	req, err := c.newRequest(UserPersonalBestsEndpoint(id), filter.params())
	if err != nil {
		return nil, err
	}
	return Fetch[[]PersonalBest](ctx, c, req)
}

// ListGames retrieves the games matching filter. At least one filter must be set.
func (c *Client) ListGames(ctx context.Context, filter GamesFilter) ([]Game, error) {
	req, err := c.newRequest(GamesEndpoint(), filter.params())
	if err != nil {
		return nil, err
	}
	return Fetch[[]Game](ctx, c, req)
}

// newRequest assembles a facade request. Rejected parameters are counted
// because they never reach Fetch.
func (c *Client) newRequest(endpoint Endpoint, params []Parameter) (*Request, error) {
	req := NewRequest(endpoint)
	for _, p := range params {
		if err := req.Add(p); err != nil {
			c.metrics.reject(endpoint.Kind(), err)
			return nil, err
		}
	}
	return req, nil
}

// Fetch builds req, performs a single GET and decodes the "data" member of the
// response into T. Errors are returned as-is; nothing is retried.
func Fetch[T any](ctx context.Context, c *Client, req *Request) (T, error) {
	var zero T
	if c == nil {
		return zero, errors.New("speedrun client is nil")
	}
	if req == nil {
		return zero, errors.New("request is nil")
	}

	start := time.Now()
	endpoint := req.Endpoint().Kind()

	data, err := fetch[T](ctx, c, req)
	c.metrics.observe(endpoint, err, time.Since(start))
	if err != nil {
		return zero, err
	}
	return data, nil
}

func fetch[T any](ctx context.Context, c *Client, req *Request) (T, error) {
	var zero T

	loc, err := Build(c.baseURL, req)
	if err != nil {
		return zero, err
	}

	requestID := uuid.NewString()
	c.logger.Debug().
		Str("request_id", requestID).
		Str("endpoint", req.Endpoint().Kind().String()).
		Str("url", loc.String()).
		Msg("Making speedrun.com API request")

	resp, err := c.transport.Get(ctx, loc.String(), http.Header{"X-Request-Id": {requestID}})
	if err != nil {
		return zero, &TransportError{URL: loc.String(), Err: err}
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Int("bytes", len(resp.Body)).
		Msg("Received speedrun.com API response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, statusError(loc, resp)
	}

	data, err := decode[T](resp.Body)
	if err != nil {
		return zero, &DecodeError{URL: loc.String(), Err: err}
	}
	return data, nil
}

// errMissingData is returned when the envelope has no usable "data" member
var errMissingData = errors.New(`response has no "data" member`)

// envelope mirrors the {"data": ...} wrapper of every response
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// decode unwraps the envelope. On error the zero value is returned, never a
// partially filled one.
func decode[T any](body []byte) (T, error) {
	var zero T

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return zero, err
	}
	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return zero, errMissingData
	}

	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// apiErrorBody is the error document speedrun.com returns with non-2xx statuses
type apiErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func statusError(loc Locator, resp *Response) error {
	e := &TransportError{
		URL:        loc.String(),
		StatusCode: resp.StatusCode,
		Body:       string(resp.Body),
	}

	var body apiErrorBody
	if err := json.Unmarshal(resp.Body, &body); err == nil && body.Message != "" {
		e.Message = body.Message
	}
	return e
}
