package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/srcapi/speedrun"
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query <endpoint> [name=value]...",
	Short: "Run a raw API query and print the data as JSON",
	Long: `Build a request for one of the supported endpoints and print the "data"
member of the response as JSON. Parameters are validated against the known
vocabulary and the endpoint's parameter count rule before anything is sent.

Endpoints:
  users/<id>
  users
  users/<id>/personal-bests
  games

Example:
  srcapi query users name=kyraa orderby=signup`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	req, err := parseQuery(args[0], args[1:])
	if err != nil {
		return err
	}

	data, err := speedrun.Fetch[json.RawMessage](cmd.Context(), client, req)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	out.WriteByte('\n')

	_, err = cmd.OutOrStdout().Write(out.Bytes())
	return err
}

// parseQuery turns an endpoint path and name=value assignments into a request
func parseQuery(path string, assignments []string) (*speedrun.Request, error) {
	endpoint, err := speedrun.ParseEndpoint(path)
	if err != nil {
		return nil, err
	}

	req := speedrun.NewRequest(endpoint)
	for _, a := range assignments {
		name, value, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("invalid parameter %q (expected name=value)", a)
		}
		if err := req.AddNamed(name, value); err != nil {
			return nil, err
		}
	}
	return req, nil
}
