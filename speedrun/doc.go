// Package speedrun provides a typed client for the read-only speedrun.com REST API.
//
// # Architecture
//
// The package is organized into three layers:
//
//   - Request model: an Endpoint (user, users, user personal bests, games) plus an
//     ordered list of Parameters drawn from a fixed vocabulary
//   - Query builder: Build turns a Request into a validated Locator and enforces the
//     per-endpoint parameter count rules
//   - Client: one method per operation, assembling a Request from optional filters,
//     performing one GET and unwrapping the {"data": ...} envelope
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := speedrun.NewClient(logger, speedrun.WithTimeout(10*time.Second))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	user, err := client.GetUser(ctx, "j0ng00m8")
//
//	users, err := client.ListUsers(ctx, speedrun.UsersFilter{Name: "kyraa"})
//
// Lower level access is available through NewRequest and Fetch:
//
//	req := speedrun.NewRequest(speedrun.GamesEndpoint())
//	if err := req.AddNamed("abbreviation", "mc"); err != nil {
//		return err
//	}
//	games, err := speedrun.Fetch[[]speedrun.Game](ctx, client, req)
//
// # Parameter count rules
//
// Rules are checked against the query pairs actually encoded on the locator:
//
//   - users/{id}: no parameters
//   - users and games: at least one parameter
//   - users/{id}/personal-bests: any number
//
// # Error Handling
//
// Every failure matches one of the sentinel errors with errors.Is:
//
//   - ErrInvalidParameterName, ErrInvalidParameterValue: rejected while building the request
//   - ErrWrongParameterCount, ErrInvalidIdentifier: rejected before any network call
//   - ErrTransport: the GET failed or returned a non-2xx status (see TransportError)
//   - ErrDecode: the body was not the expected JSON (see DecodeError)
//
// Nothing is retried, cached or paginated.
package speedrun
