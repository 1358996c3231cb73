package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/srcapi/speedrun"
)

var (
	pbsTop    int
	pbsSeries string
	pbsGame   string
)

// pbsCmd represents the pbs command
var pbsCmd = &cobra.Command{
	Use:   "pbs <user-id>",
	Short: "Show the personal bests of a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runPersonalBests,
}

func init() {
	pbsCmd.Flags().IntVar(&pbsTop, "top", 0, "only runs placed at or above this rank")
	pbsCmd.Flags().StringVar(&pbsSeries, "series", "", "series id or abbreviation")
	pbsCmd.Flags().StringVar(&pbsGame, "game", "", "game id or abbreviation")
	addFilterFlags(pbsCmd)
}

func runPersonalBests(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	pbs, err := client.ListUserPersonalBests(ctx, args[0], speedrun.PersonalBestsFilter{
		Top:    pbsTop,
		Series: pbsSeries,
		Game:   pbsGame,
	})
	if err != nil {
		return err
	}

	pbs, err = applyFilter(ctx, pbs)
	if err != nil {
		return err
	}

	return writeResult(cmd, pbs, formatter.FormatPersonalBests(pbs))
}
