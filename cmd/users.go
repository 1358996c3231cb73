package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/srcapi/speedrun"
)

var (
	usersLookup        string
	usersName          string
	usersTwitch        string
	usersHitbox        string
	usersTwitter       string
	usersSpeedRunsLive string
	usersOrderBy       string
	usersDirection     string
)

// usersCmd represents the users command
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Search users",
	Long: `Search users on speedrun.com. At least one search flag is required;
--orderby and --direction count as search flags.`,
	Args: cobra.NoArgs,
	RunE: runUsers,
}

func init() {
	usersCmd.Flags().StringVar(&usersLookup, "lookup", "", "case-insensitive exact match on names and social accounts")
	usersCmd.Flags().StringVar(&usersName, "name", "", "case-insensitive name search")
	usersCmd.Flags().StringVar(&usersTwitch, "twitch", "", "Twitch username")
	usersCmd.Flags().StringVar(&usersHitbox, "hitbox", "", "Hitbox username")
	usersCmd.Flags().StringVar(&usersTwitter, "twitter", "", "Twitter username")
	usersCmd.Flags().StringVar(&usersSpeedRunsLive, "speedrunslive", "", "SpeedRunsLive username")
	usersCmd.Flags().StringVar(&usersOrderBy, "orderby", "", "sort order: name.int, name.jap, signup or role")
	usersCmd.Flags().StringVar(&usersDirection, "direction", "", "sort direction: asc or desc")
	addFilterFlags(usersCmd)
}

func runUsers(cmd *cobra.Command, args []string) error {
	f := speedrun.UsersFilter{
		Lookup:        usersLookup,
		Name:          usersName,
		Twitch:        usersTwitch,
		Hitbox:        usersHitbox,
		Twitter:       usersTwitter,
		SpeedRunsLive: usersSpeedRunsLive,
	}

	var err error
	if usersOrderBy != "" {
		if f.OrderBy, err = speedrun.ParseOrderBy(usersOrderBy); err != nil {
			return err
		}
	}
	if usersDirection != "" {
		if f.Direction, err = speedrun.ParseOrderDirection(usersDirection); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	users, err := client.ListUsers(ctx, f)
	if err != nil {
		return err
	}

	users, err = applyFilter(ctx, users)
	if err != nil {
		return err
	}

	return writeResult(cmd, users, formatter.FormatUsers(users))
}
