package speedrun

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// countRule bounds the number of encoded query pairs of an endpoint.
// A negative max means unbounded.
type countRule struct {
	min, max int
}

// check returns the expected constraint in the form used by ParameterCountError
func (r countRule) check(got int) (expected string, ok bool) {
	switch {
	case r.min == r.max:
		return strconv.Itoa(r.max), got == r.max
	case got < r.min:
		return ">" + strconv.Itoa(r.min-1), false
	case r.max >= 0 && got > r.max:
		return "<=" + strconv.Itoa(r.max), false
	}
	return "", true
}

var countRules = map[EndpointKind]countRule{
	EndpointUser:              {min: 0, max: 0},
	EndpointUsers:             {min: 1, max: -1},
	EndpointUserPersonalBests: {min: 0, max: -1},
	EndpointGames:             {min: 1, max: -1},
}

// Locator is a validated request URL. It is a value type; the underlying URL is never
// handed out, so callers cannot alter a locator after validation.
type Locator struct {
	u        url.URL
	resource string
	pairs    int
}

// String returns the absolute URL
func (l Locator) String() string {
	return l.u.String()
}

// Resource returns the path relative to the API base, including the query string,
// e.g. "users?name=kyraa".
func (l Locator) Resource() string {
	return l.resource
}

// Query returns a fresh copy of the query parameters
func (l Locator) Query() url.Values {
	return l.u.Query()
}

// Len returns the number of encoded query pairs
func (l Locator) Len() int {
	return l.pairs
}

// Build resolves req against base and validates the result.
// base must be absolute; a missing trailing slash is added.
func Build(base *url.URL, req *Request) (Locator, error) {
	if base == nil || !base.IsAbs() {
		return Locator{}, fmt.Errorf("base URL must be absolute")
	}
	if req == nil {
		return Locator{}, fmt.Errorf("request is nil")
	}

	rule, ok := countRules[req.endpoint.kind]
	if !ok {
		return Locator{}, fmt.Errorf("unknown endpoint kind %d", req.endpoint.kind)
	}

	path, err := resourcePath(req.endpoint)
	if err != nil {
		return Locator{}, err
	}

	rel, err := url.Parse(path)
	if err != nil {
		return Locator{}, fmt.Errorf("failed to parse resource path %q: %w", path, err)
	}

	root := *base
	if !strings.HasSuffix(root.Path, "/") {
		root.Path += "/"
		if root.RawPath != "" {
			root.RawPath += "/"
		}
	}
	root.RawQuery = ""
	root.Fragment = ""

	u := root.ResolveReference(rel)
	u.RawQuery = encodeQuery(req.params)

	// Count what actually ended up on the locator, not what the caller asked for.
	encoded, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return Locator{}, fmt.Errorf("failed to parse encoded query %q: %w", u.RawQuery, err)
	}
	pairs := 0
	for _, values := range encoded {
		pairs += len(values)
	}

	if expected, ok := rule.check(pairs); !ok {
		return Locator{}, &ParameterCountError{
			Endpoint: req.endpoint,
			Expected: expected,
			Got:      pairs,
		}
	}

	resource := path
	if u.RawQuery != "" {
		resource += "?" + u.RawQuery
	}

	return Locator{u: *u, resource: resource, pairs: pairs}, nil
}

// resourcePath returns the escaped path of an endpoint, relative to the API base
func resourcePath(e Endpoint) (string, error) {
	switch e.kind {
	case EndpointUsers, EndpointGames:
		return e.String(), nil
	case EndpointUser, EndpointUserPersonalBests:
		if e.id == "" || e.id == "." || e.id == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, e.id)
		}
		escaped := Endpoint{kind: e.kind, id: url.PathEscape(e.id)}
		return escaped.String(), nil
	default:
		return "", fmt.Errorf("unknown endpoint kind %d", e.kind)
	}
}

// encodeQuery emits name=value pairs in append order. url.Values.Encode sorts by key,
// which would lose the order.
func encodeQuery(params []Parameter) string {
	var sb strings.Builder
	for i, p := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Name()))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value()))
	}
	return sb.String()
}
