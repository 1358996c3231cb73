package filter

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/xhit/go-str2duration/v2"

	"github.com/s0up4200/srcapi/speedrun"
)

// createHelperFunctions creates the static helper functions used during compilation
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	return funcs
}

// addHelperFunctions adds all helper functions to the provided map
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = func(dateStr string) (time.Time, error) {
		return time.Parse(time.DateOnly, dateStr)
	}
	// seconds("14m3s") makes run times readable in expressions
	env["seconds"] = func(d string) (float64, error) {
		parsed, err := str2duration.ParseDuration(d)
		if err != nil {
			return 0, err
		}
		return parsed.Seconds(), nil
	}
	// Case-insensitive string helpers; contains, startsWith and endsWith are
	// expr operators and stay case-sensitive
	env["containsFold"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWithFold"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWithFold"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Current time
	env["now"] = time.Now
}

// createRuntimeEnvironment binds helpers and the fields of v
func createRuntimeEnvironment[T Subject](helpers map[string]any, v T) map[string]any {
	env := make(map[string]any, len(helpers)+24)
	maps.Copy(env, helpers)

	switch s := any(v).(type) {
	case speedrun.User:
		addUserEnvironment(env, s)
	case speedrun.Game:
		addGameEnvironment(env, s)
	case speedrun.PersonalBest:
		addPersonalBestEnvironment(env, s)
	}
	return env
}

func addUserEnvironment(env map[string]any, u speedrun.User) {
	env["User"] = u
	env["ID"] = u.ID
	env["Name"] = u.DisplayName()
	env["JapaneseName"] = u.Names.Japanese
	env["Role"] = string(u.Role)
	env["Staff"] = u.Role.IsStaff()
	env["Pronouns"] = u.Pronouns
	env["Signup"] = timeOrZero(u.Signup)

	var country, region string
	if u.Location != nil {
		country = u.Location.Country.Code
		if u.Location.Region != nil {
			region = u.Location.Region.Code
		}
	}
	env["Country"] = country
	env["Region"] = region

	socials := map[string]*speedrun.Social{
		"twitch":        u.Twitch,
		"hitbox":        u.Hitbox,
		"youtube":       u.YouTube,
		"twitter":       u.Twitter,
		"speedrunslive": u.SpeedRunsLive,
	}
	env["hasSocial"] = func(name string) bool {
		s := socials[strings.ToLower(name)]
		return s != nil && s.URI != ""
	}
}

func addGameEnvironment(env map[string]any, g speedrun.Game) {
	env["Game"] = g
	env["ID"] = g.ID
	env["Name"] = g.Names.International
	env["Abbreviation"] = g.Abbreviation
	env["Released"] = g.Released
	releaseDate, _ := g.ReleaseTime()
	env["ReleaseDate"] = releaseDate
	env["Created"] = timeOrZero(g.Created)
	env["Romhack"] = g.Romhack
	env["Platforms"] = g.Platforms
	env["Genres"] = g.Genres
	env["Engines"] = g.Engines
	env["Developers"] = g.Developers
	env["Publishers"] = g.Publishers
	env["Moderators"] = len(g.Moderators)

	env["isModerator"] = func(userID string) bool {
		_, ok := g.Moderators[userID]
		return ok
	}
	env["hasPlatform"] = func(id string) bool {
		return slices.Contains(g.Platforms, id)
	}
	env["hasGenre"] = func(id string) bool {
		return slices.Contains(g.Genres, id)
	}
}

func addPersonalBestEnvironment(env map[string]any, pb speedrun.PersonalBest) {
	run := pb.Run
	env["PB"] = pb
	env["Run"] = run
	env["ID"] = run.ID
	env["Place"] = pb.Place
	env["Game"] = run.Game
	env["Category"] = run.Category
	env["Level"] = stringOrEmpty(run.Level)
	env["Comment"] = stringOrEmpty(run.Comment)
	env["Time"] = run.Times.PrimarySeconds
	env["Status"] = run.Status.Status
	env["Verified"] = run.Status.IsVerified()
	env["Platform"] = run.System.Platform
	env["Emulated"] = run.System.Emulated
	env["Submitted"] = timeOrZero(run.Submitted)
	date, _ := time.Parse(time.DateOnly, run.Date)
	env["Date"] = date

	players := make([]string, 0, len(run.Players))
	for _, p := range run.Players {
		if p.ID != "" {
			players = append(players, p.ID)
		} else {
			players = append(players, p.Name)
		}
	}
	env["Players"] = players
	env["hasPlayer"] = func(player string) bool {
		return slices.ContainsFunc(players, func(p string) bool {
			return strings.EqualFold(p, player)
		})
	}
}

// describe names a resource in evaluation errors
func describe[T Subject](v T) string {
	switch s := any(v).(type) {
	case speedrun.User:
		return fmt.Sprintf("user %s (%s)", s.ID, s.DisplayName())
	case speedrun.Game:
		return fmt.Sprintf("game %s (%s)", s.ID, s.Names.International)
	case speedrun.PersonalBest:
		return fmt.Sprintf("run %s", s.Run.ID)
	}
	return "resource"
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
