package speedrun

import "time"

// ModeratorRole is the role of a game moderator
type ModeratorRole string

const (
	ModeratorRoleModerator      ModeratorRole = "moderator"
	ModeratorRoleSuperModerator ModeratorRole = "super-moderator"
)

// Game represents a speedrun.com game
type Game struct {
	ID           string    `json:"id"`
	Names        GameNames `json:"names"`
	Abbreviation string    `json:"abbreviation"`
	Weblink      string    `json:"weblink"`
	// Released is the legacy release year; prefer ReleaseDate.
	Released    int                      `json:"released"`
	ReleaseDate string                   `json:"release-date"`
	Ruleset     Ruleset                  `json:"ruleset"`
	Romhack     bool                     `json:"romhack"`
	Gametypes   []string                 `json:"gametypes"`
	Platforms   []string                 `json:"platforms"`
	Regions     []string                 `json:"regions"`
	Genres      []string                 `json:"genres"`
	Engines     []string                 `json:"engines"`
	Developers  []string                 `json:"developers"`
	Publishers  []string                 `json:"publishers"`
	Moderators  map[string]ModeratorRole `json:"moderators"`
	Created     *time.Time               `json:"created"`
	Assets      GameAssets               `json:"assets"`
	Links       []Link                   `json:"links"`
}

// ReleaseTime parses ReleaseDate
func (g *Game) ReleaseTime() (time.Time, error) {
	return time.Parse(time.DateOnly, g.ReleaseDate)
}

// GameNames holds the localized names of a game
type GameNames struct {
	International string `json:"international"`
	Japanese      string `json:"japanese,omitempty"`
	Twitch        string `json:"twitch,omitempty"`
}

// Ruleset holds the submission rules of a game
type Ruleset struct {
	ShowMilliseconds    bool     `json:"show-milliseconds"`
	RequireVerification bool     `json:"require-verification"`
	RequireVideo        bool     `json:"require-video"`
	RunTimes            []string `json:"run-times"`
	DefaultTime         string   `json:"default-time"`
	EmulatorsAllowed    bool     `json:"emulators-allowed"`
}

// GameAssets holds the images of a game. Every asset may be absent.
type GameAssets struct {
	Logo        *Asset `json:"logo"`
	CoverTiny   *Asset `json:"cover-tiny"`
	CoverSmall  *Asset `json:"cover-small"`
	CoverMedium *Asset `json:"cover-medium"`
	CoverLarge  *Asset `json:"cover-large"`
	Icon        *Asset `json:"icon"`
	Trophy1st   *Asset `json:"trophy-1st"`
	Trophy2nd   *Asset `json:"trophy-2nd"`
	Trophy3rd   *Asset `json:"trophy-3rd"`
	Trophy4th   *Asset `json:"trophy-4th"`
	Background  *Asset `json:"background"`
	Foreground  *Asset `json:"foreground"`
}
