package speedrun

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeFixture[T any](t *testing.T, name string) T {
	t.Helper()
	out, err := decode[T](fixture(t, name))
	require.NoError(t, err)
	return out
}

func TestFormatUsers(t *testing.T) {
	f := NewConsoleFormatter()
	assert.Equal(t, "No users found", f.FormatUsers(nil))

	user := decodeFixture[User](t, "user.json")
	out := f.FormatUsers([]User{user, {ID: "x8k1m2p3"}})

	assert.Contains(t, out, "Users (2):")
	assert.Contains(t, out, "├── kyraa [j0ng00m8]\n")
	assert.Contains(t, out, "│   Role: user | Country: de | Signup: 2019-07-22\n")
	assert.Contains(t, out, "│   Twitch: https://www.twitch.tv/kyraa\n")
	assert.NotContains(t, out, "YouTube")
	// The id stands in for a missing name
	assert.Contains(t, out, "╰── x8k1m2p3 [x8k1m2p3]\n")
}

func TestFormatGames(t *testing.T) {
	f := NewConsoleFormatter()
	assert.Equal(t, "No games found", f.FormatGames([]Game{}))

	games := decodeFixture[[]Game](t, "games.json")
	out := f.FormatGames(games)

	assert.Contains(t, out, "Game (1):")
	assert.Contains(t, out, "╰── Minecraft: Java Edition (2011) [mc]\n")
	assert.Contains(t, out, "    Released: 2011-11-18 | Moderators: 2\n")
	assert.Contains(t, out, "    Timings: realtime, ingame (default: ingame)\n")
}

func TestFormatPersonalBests(t *testing.T) {
	f := NewConsoleFormatter()
	assert.Equal(t, "No personal bests found", f.FormatPersonalBests(nil))

	pbs := decodeFixture[[]PersonalBest](t, "personal-bests.json")
	out := f.FormatPersonalBests(pbs)

	assert.Contains(t, out, "Personal best (1):")
	assert.Contains(t, out, "╰── #2 14m3s250ms [zgv5l2jm]\n")
	assert.Contains(t, out, "    Game: j1npme6p | Category: mkeyl926\n")
	assert.Contains(t, out, "    Status: verified | Date: 2021-03-01 | Platform: 8gej2n93\n")
	assert.Contains(t, out, "    Players: j0ng00m8\n")
}

func TestFormatRunTime(t *testing.T) {
	assert.Equal(t, "14m3s250ms", FormatRunTime(843.25))
	assert.Equal(t, "1h1m", FormatRunTime(3660))
	assert.Equal(t, "0s", FormatRunTime(0))
}

func TestDecodeFixtures(t *testing.T) {
	t.Run("user optionals", func(t *testing.T) {
		user := decodeFixture[User](t, "user.json")
		assert.Empty(t, user.Names.Japanese)
		assert.Nil(t, user.NameStyle.Color)
		require.NotNil(t, user.NameStyle.ColorTo)
		assert.Equal(t, "#DA5D7E", user.NameStyle.ColorTo.Dark)
		assert.Equal(t, "Germany", user.Location.Country.Names.International)
	})

	t.Run("run optionals", func(t *testing.T) {
		pbs := decodeFixture[[]PersonalBest](t, "personal-bests.json")
		require.Len(t, pbs, 1)
		run := pbs[0].Run
		require.NotNil(t, run.Comment)
		assert.Equal(t, "gg", *run.Comment)
		require.NotNil(t, run.Status.Examiner)
		assert.Equal(t, "zx7gd1yx", *run.Status.Examiner)
		assert.Nil(t, run.Times.Ingame)
		require.NotNil(t, run.Times.Realtime)
		assert.Nil(t, run.System.Region)
		require.NotNil(t, run.Videos)
		assert.Len(t, run.Videos.Links, 1)
	})

	t.Run("decoded types encode back with wire names", func(t *testing.T) {
		game := decodeFixture[[]Game](t, "games.json")[0]
		b, err := json.Marshal(game)
		require.NoError(t, err)
		assert.Contains(t, string(b), `"release-date":"2011-11-18"`)
		assert.Contains(t, string(b), `"cover-tiny":{"uri":`)
	})
}
