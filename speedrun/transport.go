package speedrun

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Response is the raw result of a GET request
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport performs GET requests. Implementations must be safe for concurrent use.
type Transport interface {
	Get(ctx context.Context, rawURL string, header http.Header) (*Response, error)
}

// restyTransport is the default Transport. It never retries.
type restyTransport struct {
	client *resty.Client
}

func newRestyTransport(opts *clientOptions, logger zerolog.Logger) *restyTransport {
	var client *resty.Client
	if opts.httpClient != nil {
		client = resty.NewWithClient(opts.httpClient)
	} else {
		client = resty.New().SetTimeout(opts.timeout)
	}

	client.
		SetRetryCount(0).
		SetLogger(&restyLogger{logger: logger}).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", opts.userAgent)

	return &restyTransport{client: client}
}

// Get implements Transport
func (t *restyTransport) Get(ctx context.Context, rawURL string, header http.Header) (*Response, error) {
	resp, err := t.client.R().
		SetContext(ctx).
		SetHeaderMultiValues(header).
		Get(rawURL)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}, nil
}

// restyLogger routes resty's own log output through zerolog
type restyLogger struct {
	logger zerolog.Logger
}

func (l *restyLogger) Errorf(format string, v ...any) {
	l.logger.Error().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

func (l *restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

func (l *restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}
