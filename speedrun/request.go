package speedrun

import (
	"fmt"
	"strings"
)

// EndpointKind identifies which upstream resource a request targets
type EndpointKind int

const (
	endpointInvalid EndpointKind = iota
	// EndpointUser is a single user by id
	EndpointUser
	// EndpointUsers lists users matching filters
	EndpointUsers
	// EndpointUserPersonalBests lists the personal bests of a user
	EndpointUserPersonalBests
	// EndpointGames lists games matching filters
	EndpointGames
)

// String returns a short name of the endpoint, used in logs and metrics
func (k EndpointKind) String() string {
	switch k {
	case EndpointUser:
		return "user"
	case EndpointUsers:
		return "users"
	case EndpointUserPersonalBests:
		return "user_personal_bests"
	case EndpointGames:
		return "games"
	default:
		return "invalid"
	}
}

// Endpoint is an upstream resource, optionally scoped to an id.
// Build it with UserEndpoint, UsersEndpoint, UserPersonalBestsEndpoint or GamesEndpoint.
type Endpoint struct {
	kind EndpointKind
	id   string
}

func UserEndpoint(id string) Endpoint              { return Endpoint{kind: EndpointUser, id: id} }
func UsersEndpoint() Endpoint                      { return Endpoint{kind: EndpointUsers} }
func UserPersonalBestsEndpoint(id string) Endpoint { return Endpoint{kind: EndpointUserPersonalBests, id: id} }
func GamesEndpoint() Endpoint                      { return Endpoint{kind: EndpointGames} }

// Kind returns the endpoint kind
func (e Endpoint) Kind() EndpointKind {
	return e.kind
}

// ID returns the resource id, empty for collection endpoints
func (e Endpoint) ID() string {
	return e.id
}

// String returns the unescaped resource path of the endpoint
func (e Endpoint) String() string {
	switch e.kind {
	case EndpointUser:
		return "users/" + e.id
	case EndpointUsers:
		return "users"
	case EndpointUserPersonalBests:
		return "users/" + e.id + "/personal-bests"
	case EndpointGames:
		return "games"
	default:
		return ""
	}
}

// ParseEndpoint parses a resource path such as "users/j0ng00m8/personal-bests"
func ParseEndpoint(path string) (Endpoint, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")

	switch {
	case len(parts) == 1 && parts[0] == "users":
		return UsersEndpoint(), nil
	case len(parts) == 1 && parts[0] == "games":
		return GamesEndpoint(), nil
	case len(parts) == 2 && parts[0] == "users":
		return UserEndpoint(parts[1]), nil
	case len(parts) == 3 && parts[0] == "users" && parts[2] == "personal-bests":
		return UserPersonalBestsEndpoint(parts[1]), nil
	}

	return Endpoint{}, fmt.Errorf("unknown endpoint %q", path)
}

// Request pairs an Endpoint with an ordered list of parameters.
// A Request is not safe for concurrent use; build one per call.
type Request struct {
	endpoint Endpoint
	params   []Parameter
}

// NewRequest creates an empty request for the endpoint
func NewRequest(endpoint Endpoint) *Request {
	return &Request{endpoint: endpoint}
}

// Endpoint returns the endpoint the request targets
func (r *Request) Endpoint() Endpoint {
	return r.endpoint
}

// Params returns a copy of the parameters in append order
func (r *Request) Params() []Parameter {
	out := make([]Parameter, len(r.params))
	copy(out, r.params)
	return out
}

// Add appends a parameter. The request is left untouched if the parameter is invalid.
func (r *Request) Add(p Parameter) error {
	if err := p.validate(); err != nil {
		return err
	}
	r.params = append(r.params, p)
	return nil
}

// AddNamed parses name and value against the parameter vocabulary and appends the
// result. Unknown names fail with ErrInvalidParameterName and leave the request untouched.
func (r *Request) AddNamed(name, value string) error {
	p, err := ParseParameter(name, value)
	if err != nil {
		return err
	}
	return r.Add(p)
}
