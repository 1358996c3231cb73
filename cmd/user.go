package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/srcapi/speedrun"
)

// userCmd represents the user command
var userCmd = &cobra.Command{
	Use:   "user <id>...",
	Short: "Show users by id",
	Long: `Fetch one or more users by id. Several ids are fetched concurrently,
limited by api.concurrency.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUser,
}

func init() {
	addFilterFlags(userCmd)
}

func runUser(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	users, err := fetchUsers(ctx, args)
	if err != nil {
		return err
	}

	users, err = applyFilter(ctx, users)
	if err != nil {
		return err
	}

	return writeResult(cmd, users, formatter.FormatUsers(users))
}

// fetchUsers fetches users concurrently, keeping the order of ids
func fetchUsers(ctx context.Context, ids []string) ([]speedrun.User, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.API.Concurrency)

	// Each goroutine writes only its own slot
	users := make([]speedrun.User, len(ids))

	for i, id := range ids {
		g.Go(func() error {
			user, err := client.GetUser(ctx, id)
			if err != nil {
				return fmt.Errorf("user %s: %w", id, err)
			}
			users[i] = *user
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return users, nil
}
