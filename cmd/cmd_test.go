package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/srcapi/config"
	"github.com/s0up4200/srcapi/speedrun"
)

// fakeAPI serves the speedrun.com fixtures and records requested URLs
type fakeAPI struct {
	mu       sync.Mutex
	requests []string
}

func (f *fakeAPI) hits() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.URL.RequestURI())
	f.mu.Unlock()

	serveFile := func(name string) {
		b, err := os.ReadFile(filepath.Join("..", "speedrun", "testdata", name))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_, _ = w.Write(b)
	}

	switch r.URL.Path {
	case "/api/v1/users/j0ng00m8":
		serveFile("user.json")
	case "/api/v1/users/other":
		_, _ = w.Write([]byte(`{"data":{"id":"other","names":{"international":"other"},"role":"moderator"}}`))
	case "/api/v1/users/missing":
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":404,"message":"The user could not be found."}`))
	case "/api/v1/users":
		_, _ = w.Write([]byte(`{"data":[{"id":"j0ng00m8","names":{"international":"kyraa"},"role":"user"}]}`))
	case "/api/v1/users/j0ng00m8/personal-bests":
		serveFile("personal-bests.json")
	case "/api/v1/games":
		serveFile("games.json")
	default:
		http.NotFound(w, r)
	}
}

func setupCLI(t *testing.T) (*fakeAPI, string) {
	t.Helper()

	api := &fakeAPI{}
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api:\n" +
		"  base_url: " + server.URL + "/api/v1\n" +
		"  concurrency: 2\n" +
		"logging:\n" +
		"  level: error\n" +
		"filter:\n" +
		"  podium: \"Place <= 3\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return api, path
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestUsersCommand(t *testing.T) {
	api, cfgPath := setupCLI(t)

	out, err := execute(t, "users", "--name", "kyraa", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "kyraa [j0ng00m8]")
	assert.Equal(t, []string{"/api/v1/users?name=kyraa"}, api.hits())
}

func TestUsersCommand_Ordering(t *testing.T) {
	api, cfgPath := setupCLI(t)

	_, err := execute(t, "users", "--orderby", "signup", "--direction", "desc", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"/api/v1/users?orderby=signup&direction=desc"}, api.hits())

	_, err = execute(t, "users", "--orderby", "created", "--config", cfgPath)
	require.Error(t, err)
}

func TestUsersCommand_NoFiltersSendsNothing(t *testing.T) {
	api, cfgPath := setupCLI(t)

	_, err := execute(t, "users", "--config", cfgPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, speedrun.ErrWrongParameterCount)
	assert.Empty(t, api.hits())
}

func TestUserCommand(t *testing.T) {
	api, cfgPath := setupCLI(t)

	out, err := execute(t, "user", "j0ng00m8", "other", "--json", "--config", cfgPath)
	require.NoError(t, err)

	var users []speedrun.User
	require.NoError(t, json.Unmarshal([]byte(out), &users))
	require.Len(t, users, 2)
	assert.Equal(t, "j0ng00m8", users[0].ID)
	assert.Equal(t, "other", users[1].ID)
	assert.Len(t, api.hits(), 2)

	t.Run("where", func(t *testing.T) {
		out, err := execute(t, "user", "j0ng00m8", "other", "--where", `Role == "moderator"`, "--config", cfgPath)
		require.NoError(t, err)
		assert.Contains(t, out, "other [other]")
		assert.NotContains(t, out, "kyraa")
	})
}

func TestUserCommand_NotFound(t *testing.T) {
	_, cfgPath := setupCLI(t)

	_, err := execute(t, "user", "missing", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user missing")

	var transportErr *speedrun.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.True(t, transportErr.IsNotFound())
	assert.Equal(t, "The user could not be found.", transportErr.Message)
}

func TestGamesCommand(t *testing.T) {
	api, cfgPath := setupCLI(t)

	out, err := execute(t, "games", "--abbreviation", "mc", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Minecraft: Java Edition (2011) [mc]")
	assert.Equal(t, []string{"/api/v1/games?abbreviation=mc"}, api.hits())

	out, err = execute(t, "games", "--abbreviation", "mc", "--where", "Released < 2000", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No games found")

	_, err = execute(t, "games", "--abbreviation", "mc", "--where", "Released <", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter expression")
}

func TestPersonalBestsCommand(t *testing.T) {
	api, cfgPath := setupCLI(t)

	out, err := execute(t, "pbs", "j0ng00m8", "--preset", "podium", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "#2 14m3s250ms [zgv5l2jm]")
	assert.Equal(t, []string{"/api/v1/users/j0ng00m8/personal-bests"}, api.hits())

	_, err = execute(t, "pbs", "j0ng00m8", "--top", "1", "--game", "mc", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/users/j0ng00m8/personal-bests?top=1&game=mc", api.hits()[1])

	_, err = execute(t, "pbs", "j0ng00m8", "--preset", "missing", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preset 'missing' not found")
}

func TestQueryCommand(t *testing.T) {
	api, cfgPath := setupCLI(t)

	out, err := execute(t, "query", "users", "name=kyraa", "--config", cfgPath)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"j0ng00m8","names":{"international":"kyraa"},"role":"user"}]`, out)
	assert.Equal(t, []string{"/api/v1/users?name=kyraa"}, api.hits())

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unknown parameter", []string{"users", "bogus=1"}, speedrun.ErrInvalidParameterName},
		{"bad value", []string{"games", "released=soon"}, speedrun.ErrInvalidParameterValue},
		{"parameters on user", []string{"users/j0ng00m8", "name=kyraa"}, speedrun.ErrWrongParameterCount},
		{"no parameters on games", []string{"games"}, speedrun.ErrWrongParameterCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(api.hits())
			_, err := execute(t, append(append([]string{"query"}, tt.args...), "--config", cfgPath)...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Len(t, api.hits(), before)
		})
	}
}

func TestParseQuery(t *testing.T) {
	req, err := parseQuery("users/j0ng00m8/personal-bests", []string{"top=3", "game=sm64"})
	require.NoError(t, err)
	assert.Equal(t, speedrun.UserPersonalBestsEndpoint("j0ng00m8"), req.Endpoint())
	assert.Equal(t, []speedrun.Parameter{speedrun.TopParam(3), speedrun.GameParam("sm64")}, req.Params())

	_, err = parseQuery("users", []string{"name"})
	assert.EqualError(t, err, `invalid parameter "name" (expected name=value)`)

	_, err = parseQuery("runs", nil)
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "srcapi dev (built unknown")
}

func TestUpdateCommand_DevelopmentBuild(t *testing.T) {
	_, cfgPath := setupCLI(t)

	_, err := execute(t, "update", "--check", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot update a development build")
}

func TestSetupLogger(t *testing.T) {
	previous := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		setupLogger(config.LoggingConfig{Level: tt.level, Format: "json"})
		assert.Equal(t, tt.expected, zerolog.GlobalLevel(), tt.level)
	}
}
