package speedrun

import (
	"errors"
	"net/url"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apiBase(t *testing.T) *url.URL {
	t.Helper()
	base, err := url.Parse(DefaultBaseURL)
	require.NoError(t, err)
	return base
}

func buildRequest(t *testing.T, endpoint Endpoint, params ...Parameter) *Request {
	t.Helper()
	req := NewRequest(endpoint)
	for _, p := range params {
		require.NoError(t, req.Add(p))
	}
	return req
}

func TestEndpointPaths(t *testing.T) {
	tests := []struct {
		endpoint Endpoint
		expected string
	}{
		{UserEndpoint("j0ng00m8"), "users/j0ng00m8"},
		{UsersEndpoint(), "users"},
		{UserPersonalBestsEndpoint("j0ng00m8"), "users/j0ng00m8/personal-bests"},
		{GamesEndpoint(), "games"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.endpoint.String())

			parsed, err := ParseEndpoint(tt.expected)
			require.NoError(t, err)
			assert.Equal(t, tt.endpoint, parsed)
		})
	}
}

func TestParseEndpoint_Unknown(t *testing.T) {
	for _, path := range []string{"", "runs", "users/a/b", "games/x", "users/a/personal-bests/x"} {
		_, err := ParseEndpoint(path)
		assert.Error(t, err, path)
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		request  *Request
		resource string
		pairs    int
	}{
		{
			name:     "user by id without parameters",
			request:  NewRequest(UserEndpoint("j0ng00m8")),
			resource: "users/j0ng00m8",
			pairs:    0,
		},
		{
			name:     "users by name",
			request:  buildRequest(t, UsersEndpoint(), NameParam("kyraa")),
			resource: "users?name=kyraa",
			pairs:    1,
		},
		{
			name:     "games by abbreviation",
			request:  buildRequest(t, GamesEndpoint(), AbbreviationParam("mc")),
			resource: "games?abbreviation=mc",
			pairs:    1,
		},
		{
			name:     "personal bests without parameters",
			request:  NewRequest(UserPersonalBestsEndpoint("j0ng00m8")),
			resource: "users/j0ng00m8/personal-bests",
			pairs:    0,
		},
		{
			name:     "personal bests with parameters",
			request:  buildRequest(t, UserPersonalBestsEndpoint("j0ng00m8"), TopParam(3), GameParam("sm64")),
			resource: "users/j0ng00m8/personal-bests?top=3&game=sm64",
			pairs:    2,
		},
		{
			name:     "enumerations render as tokens",
			request:  buildRequest(t, UsersEndpoint(), OrderByParam(OrderByNameInt), DirectionParam(DirectionAsc)),
			resource: "users?orderby=name.int&direction=asc",
			pairs:    2,
		},
		{
			name:     "integers render as decimal",
			request:  buildRequest(t, GamesEndpoint(), ReleasedParam(1996)),
			resource: "games?released=1996",
			pairs:    1,
		},
		{
			name:     "insertion order is kept",
			request:  buildRequest(t, UsersEndpoint(), TwitchParam("b"), LookupParam("a")),
			resource: "users?twitch=b&lookup=a",
			pairs:    2,
		},
		{
			name:     "values are query escaped",
			request:  buildRequest(t, GamesEndpoint(), NameParam("Super Mario 64 & more")),
			resource: "games?name=Super+Mario+64+%26+more",
			pairs:    1,
		},
		{
			name:     "ids are path escaped",
			request:  NewRequest(UserEndpoint("a/b c")),
			resource: "users/a%2Fb%20c",
			pairs:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := Build(apiBase(t), tt.request)
			require.NoError(t, err)
			assert.Equal(t, tt.resource, loc.Resource())
			assert.Equal(t, DefaultBaseURL+tt.resource, loc.String())
			assert.Equal(t, tt.pairs, loc.Len())
		})
	}
}

func TestBuild_ParameterCountRules(t *testing.T) {
	tests := []struct {
		name     string
		request  *Request
		expected string
		got      int
	}{
		{
			name:     "user with a parameter",
			request:  buildRequest(t, UserEndpoint("j0ng00m8"), NameParam("kyraa")),
			expected: "0",
			got:      1,
		},
		{
			name:     "users without parameters",
			request:  NewRequest(UsersEndpoint()),
			expected: ">0",
			got:      0,
		},
		{
			name:     "games without parameters",
			request:  NewRequest(GamesEndpoint()),
			expected: ">0",
			got:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(apiBase(t), tt.request)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrWrongParameterCount))

			var countErr *ParameterCountError
			require.True(t, errors.As(err, &countErr))
			assert.Equal(t, tt.expected, countErr.Expected)
			assert.Equal(t, tt.got, countErr.Got)
			assert.Equal(t, tt.request.Endpoint(), countErr.Endpoint)
		})
	}
}

func TestBuild_CountsEncodedPairs(t *testing.T) {
	// Duplicate names are kept as separate pairs and each counts.
	req := buildRequest(t, UsersEndpoint(), LookupParam("a"), LookupParam("b"))
	loc, err := Build(apiBase(t), req)
	require.NoError(t, err)
	assert.Equal(t, "users?lookup=a&lookup=b", loc.Resource())
	assert.Equal(t, 2, loc.Len())

	// An empty value still encodes a pair, so it satisfies the ">0" rule.
	req = buildRequest(t, UsersEndpoint(), NameParam(""))
	loc, err = Build(apiBase(t), req)
	require.NoError(t, err)
	assert.Equal(t, "users?name=", loc.Resource())
	assert.Equal(t, 1, loc.Len())
}

func TestBuild_RoundTrip(t *testing.T) {
	params := []Parameter{
		NameParam("Super Mario"),
		AbbreviationParam("sm64"),
		ReleasedParam(1996),
		PlatformParam("w89rwelk"),
		PlatformParam("n64"),
		ModeratorParam("x=y&z"),
	}
	req := buildRequest(t, GamesEndpoint(), params...)

	loc, err := Build(apiBase(t), req)
	require.NoError(t, err)

	var want, got []string
	for _, p := range params {
		want = append(want, p.Name()+"="+p.Value())
	}
	for name, values := range loc.Query() {
		for _, v := range values {
			got = append(got, name+"="+v)
		}
	}
	sort.Strings(want)
	sort.Strings(got)
	assert.Equal(t, want, got)
}

func TestBuild_QueryIsACopy(t *testing.T) {
	loc, err := Build(apiBase(t), buildRequest(t, UsersEndpoint(), NameParam("kyraa")))
	require.NoError(t, err)

	q := loc.Query()
	q.Set("name", "tampered")
	q.Add("extra", "1")

	assert.Equal(t, "users?name=kyraa", loc.Resource())
	assert.Equal(t, "kyraa", loc.Query().Get("name"))
	assert.Equal(t, 1, loc.Len())
}

func TestBuild_BaseURL(t *testing.T) {
	t.Run("without trailing slash", func(t *testing.T) {
		base, err := url.Parse("http://localhost:8080/api/v1")
		require.NoError(t, err)

		loc, err := Build(base, NewRequest(UserEndpoint("j0ng00m8")))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/api/v1/users/j0ng00m8", loc.String())
	})

	t.Run("base is not modified", func(t *testing.T) {
		base, err := url.Parse("http://localhost:8080/api/v1")
		require.NoError(t, err)

		_, err = Build(base, NewRequest(GamesEndpoint()))
		require.Error(t, err)
		assert.Equal(t, "http://localhost:8080/api/v1", base.String())
	})

	t.Run("relative base", func(t *testing.T) {
		base, err := url.Parse("/api/v1/")
		require.NoError(t, err)

		_, err = Build(base, NewRequest(UserEndpoint("j0ng00m8")))
		require.Error(t, err)
	})
}

func TestBuild_InvalidIdentifier(t *testing.T) {
	for _, id := range []string{"", ".", ".."} {
		_, err := Build(apiBase(t), NewRequest(UserEndpoint(id)))
		assert.ErrorIs(t, err, ErrInvalidIdentifier, "id %q", id)

		_, err = Build(apiBase(t), NewRequest(UserPersonalBestsEndpoint(id)))
		assert.ErrorIs(t, err, ErrInvalidIdentifier, "id %q", id)
	}
}

func TestBuild_ZeroEndpoint(t *testing.T) {
	_, err := Build(apiBase(t), NewRequest(Endpoint{}))
	require.Error(t, err)
}

func TestBuild_NilRequest(t *testing.T) {
	_, err := Build(apiBase(t), nil)
	assert.EqualError(t, err, "request is nil")
}

func TestCountRule(t *testing.T) {
	tests := []struct {
		rule     countRule
		got      int
		expected string
		ok       bool
	}{
		{countRule{min: 0, max: 0}, 0, "0", true},
		{countRule{min: 0, max: 0}, 2, "0", false},
		{countRule{min: 1, max: -1}, 0, ">0", false},
		{countRule{min: 1, max: -1}, 5, "", true},
		{countRule{min: 0, max: -1}, 0, "", true},
		{countRule{min: 0, max: 2}, 3, "<=2", false},
	}

	for _, tt := range tests {
		expected, ok := tt.rule.check(tt.got)
		assert.Equal(t, tt.expected, expected)
		assert.Equal(t, tt.ok, ok)
	}
}
