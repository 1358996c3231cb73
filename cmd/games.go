package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/srcapi/speedrun"
)

var gamesFilter speedrun.GamesFilter

// gamesCmd represents the games command
var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "Search games",
	Long:  `Search games on speedrun.com. At least one search flag is required.`,
	Args:  cobra.NoArgs,
	RunE:  runGames,
}

func init() {
	flags := gamesCmd.Flags()
	flags.StringVar(&gamesFilter.Name, "name", "", "fuzzy name search")
	flags.StringVar(&gamesFilter.Abbreviation, "abbreviation", "", "exact abbreviation")
	flags.IntVar(&gamesFilter.Released, "released", 0, "release year")
	flags.StringVar(&gamesFilter.Gametype, "gametype", "", "game type id")
	flags.StringVar(&gamesFilter.Platform, "platform", "", "platform id")
	flags.StringVar(&gamesFilter.Region, "region", "", "region id")
	flags.StringVar(&gamesFilter.Genre, "genre", "", "genre id")
	flags.StringVar(&gamesFilter.Engine, "engine", "", "engine id")
	flags.StringVar(&gamesFilter.Developer, "developer", "", "developer id")
	flags.StringVar(&gamesFilter.Publisher, "publisher", "", "publisher id")
	flags.StringVar(&gamesFilter.Moderator, "moderator", "", "moderator user id")
	addFilterFlags(gamesCmd)
}

func runGames(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	games, err := client.ListGames(ctx, gamesFilter)
	if err != nil {
		return err
	}

	games, err = applyFilter(ctx, games)
	if err != nil {
		return err
	}

	return writeResult(cmd, games, formatter.FormatGames(games))
}
