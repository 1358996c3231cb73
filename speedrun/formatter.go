package speedrun

import (
	"fmt"
	"strings"
	"time"

	"github.com/xhit/go-str2duration/v2"
)

// ConsoleFormatter renders API resources as trees for terminal output
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatUsers formats a list of users for console display
func (f *ConsoleFormatter) FormatUsers(users []User) string {
	if len(users) == 0 {
		return "No users found"
	}

	var sb strings.Builder
	writeHeader(&sb, "User", len(users))

	for i, user := range users {
		isLast := i == len(users)-1
		indent := writeBranch(&sb, isLast, fmt.Sprintf("%s [%s]", user.DisplayName(), user.ID))

		var parts []string
		if user.Role != "" {
			parts = append(parts, fmt.Sprintf("Role: %s", user.Role))
		}
		if user.Location != nil && user.Location.Country.Code != "" {
			parts = append(parts, fmt.Sprintf("Country: %s", user.Location.Country.Code))
		}
		if user.Signup != nil {
			parts = append(parts, fmt.Sprintf("Signup: %s", user.Signup.Format(time.DateOnly)))
		}
		if len(parts) > 0 {
			fmt.Fprintf(&sb, "%s%s\n", indent, strings.Join(parts, " | "))
		}

		if user.Pronouns != "" {
			fmt.Fprintf(&sb, "%sPronouns: %s\n", indent, user.Pronouns)
		}

		for _, social := range []struct {
			name   string
			social *Social
		}{
			{"Twitch", user.Twitch},
			{"Hitbox", user.Hitbox},
			{"YouTube", user.YouTube},
			{"Twitter", user.Twitter},
			{"SpeedRunsLive", user.SpeedRunsLive},
		} {
			if social.social != nil && social.social.URI != "" {
				fmt.Fprintf(&sb, "%s%s: %s\n", indent, social.name, social.social.URI)
			}
		}

		if user.Weblink != "" {
			fmt.Fprintf(&sb, "%sWeb: %s\n", indent, user.Weblink)
		}

		writeSeparator(&sb, isLast)
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatGames formats a list of games for console display
func (f *ConsoleFormatter) FormatGames(games []Game) string {
	if len(games) == 0 {
		return "No games found"
	}

	var sb strings.Builder
	writeHeader(&sb, "Game", len(games))

	for i, game := range games {
		isLast := i == len(games)-1
		title := game.Names.International
		if game.Released != 0 {
			title = fmt.Sprintf("%s (%d)", title, game.Released)
		}
		if game.Abbreviation != "" {
			title = fmt.Sprintf("%s [%s]", title, game.Abbreviation)
		}
		indent := writeBranch(&sb, isLast, title)

		var parts []string
		if game.ReleaseDate != "" {
			parts = append(parts, fmt.Sprintf("Released: %s", game.ReleaseDate))
		}
		if len(game.Moderators) > 0 {
			parts = append(parts, fmt.Sprintf("Moderators: %d", len(game.Moderators)))
		}
		if game.Romhack {
			parts = append(parts, "Romhack")
		}
		if len(parts) > 0 {
			fmt.Fprintf(&sb, "%s%s\n", indent, strings.Join(parts, " | "))
		}

		if len(game.Ruleset.RunTimes) > 0 {
			fmt.Fprintf(&sb, "%sTimings: %s (default: %s)\n", indent,
				strings.Join(game.Ruleset.RunTimes, ", "), game.Ruleset.DefaultTime)
		}

		if game.Weblink != "" {
			fmt.Fprintf(&sb, "%sWeb: %s\n", indent, game.Weblink)
		}

		writeSeparator(&sb, isLast)
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatPersonalBests formats personal bests for console display
func (f *ConsoleFormatter) FormatPersonalBests(pbs []PersonalBest) string {
	if len(pbs) == 0 {
		return "No personal bests found"
	}

	var sb strings.Builder
	writeHeader(&sb, "Personal best", len(pbs))

	for i, pb := range pbs {
		isLast := i == len(pbs)-1
		run := pb.Run
		indent := writeBranch(&sb, isLast, fmt.Sprintf("#%d %s [%s]", pb.Place, FormatRunTime(run.Times.PrimarySeconds), run.ID))

		target := fmt.Sprintf("Game: %s | Category: %s", run.Game, run.Category)
		if run.Level != nil {
			target += fmt.Sprintf(" | Level: %s", *run.Level)
		}
		fmt.Fprintf(&sb, "%s%s\n", indent, target)

		var parts []string
		if run.Status.Status != "" {
			parts = append(parts, fmt.Sprintf("Status: %s", run.Status.Status))
		}
		if run.Date != "" {
			parts = append(parts, fmt.Sprintf("Date: %s", run.Date))
		}
		if run.System.Platform != "" {
			platform := fmt.Sprintf("Platform: %s", run.System.Platform)
			if run.System.Emulated {
				platform += " (emulated)"
			}
			parts = append(parts, platform)
		}
		if len(parts) > 0 {
			fmt.Fprintf(&sb, "%s%s\n", indent, strings.Join(parts, " | "))
		}

		if len(run.Players) > 0 {
			players := make([]string, 0, len(run.Players))
			for _, p := range run.Players {
				if p.ID != "" {
					players = append(players, p.ID)
				} else {
					players = append(players, p.Name)
				}
			}
			fmt.Fprintf(&sb, "%sPlayers: %s\n", indent, strings.Join(players, ", "))
		}

		if run.Weblink != "" {
			fmt.Fprintf(&sb, "%sWeb: %s\n", indent, run.Weblink)
		}

		writeSeparator(&sb, isLast)
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatRunTime renders a run time in seconds, e.g. 843.25 as "14m3s250ms"
func FormatRunTime(seconds float64) string {
	return str2duration.String(time.Duration(seconds * float64(time.Second)))
}

func writeHeader(sb *strings.Builder, noun string, count int) {
	sb.WriteString("\n")
	sb.WriteString(noun)
	if count != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(sb, " (%d):\n\n", count)
}

// writeBranch writes the title line and returns the indent for detail lines
func writeBranch(sb *strings.Builder, isLast bool, title string) string {
	prefix := "├"
	indent := "│   "
	if isLast {
		prefix = "╰"
		indent = "    "
	}
	fmt.Fprintf(sb, "%s── %s\n", prefix, title)
	return indent
}

func writeSeparator(sb *strings.Builder, isLast bool) {
	if !isLast {
		sb.WriteString("│\n")
	}
}
