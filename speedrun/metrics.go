package speedrun

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Request outcomes used as the "outcome" label
const (
	OutcomeOK                = "ok"
	OutcomeInvalidParameter  = "invalid_parameter"
	OutcomeParameterCount    = "parameter_count"
	OutcomeInvalidIdentifier = "invalid_identifier"
	OutcomeTransport         = "transport"
	OutcomeDecode            = "decode"
	OutcomeOther             = "other"
)

// Metrics holds the Prometheus collectors of a Client
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// Collectors already registered by another client are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "srcapi",
		Name:      "requests_total",
		Help:      "speedrun.com API calls by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "srcapi",
		Name:      "request_duration_seconds",
		Help:      "speedrun.com API call latency by endpoint.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	if err := reg.Register(requests); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		requests = are.ExistingCollector.(*prometheus.CounterVec)
	}

	if err := reg.Register(duration); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		duration = are.ExistingCollector.(*prometheus.HistogramVec)
	}

	return &Metrics{requests: requests, duration: duration}, nil
}

// observe is a no-op on a nil receiver so clients without metrics need no checks
func (m *Metrics) observe(endpoint EndpointKind, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(endpoint.String(), outcomeOf(err)).Inc()
	m.duration.WithLabelValues(endpoint.String()).Observe(elapsed.Seconds())
}

// reject counts a call that failed before any request was built
func (m *Metrics) reject(endpoint EndpointKind, err error) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(endpoint.String(), outcomeOf(err)).Inc()
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrInvalidParameterName), errors.Is(err, ErrInvalidParameterValue):
		return OutcomeInvalidParameter
	case errors.Is(err, ErrWrongParameterCount):
		return OutcomeParameterCount
	case errors.Is(err, ErrInvalidIdentifier):
		return OutcomeInvalidIdentifier
	case errors.Is(err, ErrTransport):
		return OutcomeTransport
	case errors.Is(err, ErrDecode):
		return OutcomeDecode
	default:
		return OutcomeOther
	}
}
