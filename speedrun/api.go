package speedrun

import (
	"context"
)

// API defines the read operations of the speedrun.com client
type API interface {
	// GetUser retrieves a single user by id
	GetUser(ctx context.Context, id string) (*User, error)

	// ListUsers retrieves users matching at least one filter
	ListUsers(ctx context.Context, filter UsersFilter) ([]User, error)

	// ListUserPersonalBests retrieves the personal bests of a user
	ListUserPersonalBests(ctx context.Context, id string, filter PersonalBestsFilter) ([]PersonalBest, error)

	// ListGames retrieves games matching at least one filter
	ListGames(ctx context.Context, filter GamesFilter) ([]Game, error)
}

var _ API = (*Client)(nil)
